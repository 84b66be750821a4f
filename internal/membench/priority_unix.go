//go:build unix

package membench

import "golang.org/x/sys/unix"

const nicePriority = -10

// elevatePriority renices the process so background load interferes less
// with the timed loops. Needs CAP_SYS_NICE or root; failure is expected for
// ordinary users and is only worth a warning.
func elevatePriority() error {
	return unix.Setpriority(unix.PRIO_PROCESS, 0, nicePriority)
}
