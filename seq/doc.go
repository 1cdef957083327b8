// Package seq provides the small set of lazy combinators the grid views are
// built from: Skip, Take, StepBy, Filter, Enumerate, Concat and friends.
//
// Every combinator accepts and returns a standard iter.Seq, pulls only what
// the consumer asks for, and stops the upstream sequence as soon as the
// consumer stops. A derived sequence can be replayed exactly when its source
// can; Once turns any sequence into a strictly single-pass one.
//
// Complexity:
//
//   - Skip(n), Nth(n): O(n) upstream pulls before the first yield.
//   - Take, StepBy, Filter, Enumerate, Concat: O(1) extra work per element.
package seq
