package seq

import "iter"

const panicStepInvalid = "seq: StepBy: step must be > 0"

// Skip drops the first n elements of s. A non-positive n returns s unchanged.
func Skip[T any](s iter.Seq[T], n int) iter.Seq[T] {
	if n <= 0 {
		return s
	}

	return func(yield func(T) bool) {
		skipped := 0
		for v := range s {
			if skipped < n {
				skipped++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Take yields at most n elements of s and stops pulling afterwards.
func Take[T any](s iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		taken := 0
		for v := range s {
			if !yield(v) {
				return
			}
			taken++
			if taken == n {
				return
			}
		}
	}
}

// StepBy yields the first element of s and then every step-th element after it.
// Panics when step <= 0 (programmer error).
func StepBy[T any](s iter.Seq[T], step int) iter.Seq[T] {
	if step <= 0 {
		panic(panicStepInvalid)
	}

	return func(yield func(T) bool) {
		i := 0
		for v := range s {
			if i%step == 0 {
				if !yield(v) {
					return
				}
			}
			i++
		}
	}
}

// Filter yields the elements of s for which keep returns true.
func Filter[T any](s iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

// Filter2 yields the pairs of s for which keep returns true.
func Filter2[K, V any](s iter.Seq2[K, V], keep func(K, V) bool) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range s {
			if keep(k, v) && !yield(k, v) {
				return
			}
		}
	}
}

// Enumerate pairs every element of s with its zero-based position.
func Enumerate[T any](s iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		idx := 0
		for v := range s {
			if !yield(idx, v) {
				return
			}
			idx++
		}
	}
}

// Values drops the keys of a Seq2.
func Values[K, V any](s iter.Seq2[K, V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

// Concat yields the elements of every sequence in order.
func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, s := range seqs {
			for v := range s {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Nth returns the element at position n, or false when s is shorter.
func Nth[T any](s iter.Seq[T], n int) (T, bool) {
	var zero T
	if n < 0 {
		return zero, false
	}
	for v := range Skip(s, n) {
		return v, true
	}

	return zero, false
}

// Count drains s and returns the number of elements it produced.
func Count[T any](s iter.Seq[T]) int {
	n := 0
	for range s {
		n++
	}

	return n
}

// Once wraps s so that only the first iteration sees any elements;
// later iterations yield nothing. Use it to model consuming sources.
func Once[T any](s iter.Seq[T]) iter.Seq[T] {
	used := false

	return func(yield func(T) bool) {
		if used {
			return
		}
		used = true
		for v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

// Range yields the integers in [start, end).
func Range(start, end int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := start; i < end; i++ {
			if !yield(i) {
				return
			}
		}
	}
}
