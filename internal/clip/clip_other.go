//go:build !darwin && !linux && !windows

package clip

// New returns the headless backend; there is no native clipboard here.
func New() Backend { return headless{} }
