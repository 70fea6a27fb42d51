//go:build linux

package threadpool

import (
	"golang.org/x/sys/unix"
)

// PinToCPU restricts the calling thread to one CPU. Callers must hold
// the thread via runtime.LockOSThread first.
func PinToCPU(cpu int) error {
	var mask unix.CPUSet
	mask.Zero()
	mask.Set(cpu)
	return unix.SchedSetaffinity(0, &mask)
}
