package counter

import (
	"iter"

	"github.com/specialistvlad/tallygo/internal/model"
)

// Increment yields 0, 1, ..., n-1. Nothing is yielded for n <= 0.
func Increment(n int32) iter.Seq[int32] {
	return func(yield func(int32) bool) {
		for i := int32(0); i < n; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Decrement yields n, n-1, ..., 1. Nothing is yielded for n <= 0.
func Decrement(n int32) iter.Seq[int32] {
	return func(yield func(int32) bool) {
		for i := n; i >= 1; i-- {
			if !yield(i) {
				return
			}
		}
	}
}

// Split yields n and then keeps halving it (integer division) while the
// value stays positive.
func Split(n int32) iter.Seq[int32] {
	return func(yield func(int32) bool) {
		for v := n; v > 0; v /= 2 {
			if !yield(v) {
				return
			}
		}
	}
}

// Steps returns the sequence for op.
func Steps(op model.Operation) iter.Seq[int32] {
	switch op.Kind {
	case model.OpIncrement:
		return Increment(op.Number)
	case model.OpDecrement:
		return Decrement(op.Number)
	case model.OpSplit:
		return Split(op.Number)
	default:
		return func(func(int32) bool) {}
	}
}

// Done returns the value reported once op has finished: the argument itself
// for increment, zero otherwise.
func Done(op model.Operation) int32 {
	if op.Kind == model.OpIncrement {
		return op.Number
	}
	return 0
}
