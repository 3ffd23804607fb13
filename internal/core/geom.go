// Package core holds the frontend-independent building blocks shared by
// games and platforms: actions, colors, the cell screen and the viewport
// that maps game units onto it. It does not import Bubble Tea or tcell.
package core

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
