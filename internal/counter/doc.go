// Package counter implements the three counting operations as lazy
// sequences. Each sequence is pure and finite: Increment and Decrement yield
// |n| values at most, Split yields floor(log2(n))+1 values for n > 0.
package counter
