package utils

import "golang.org/x/sys/unix"

// Umask returns the current process umask.
//
// The umask can only be read by setting it, so this briefly clears and
// restores it. Safe here because the tool is strictly single-threaded and
// never creates files concurrently with this call.
func Umask() int {
	mask := unix.Umask(0)
	unix.Umask(mask)
	return mask
}
