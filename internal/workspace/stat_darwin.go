//go:build darwin

package workspace

import (
	"time"

	"golang.org/x/sys/unix"
)

// fileTimes returns the birth time and modification time of the file
// at path.
func fileTimes(path string) (created, modified time.Time, ok bool) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return time.Time{}, time.Time{}, false
	}
	created = time.Unix(st.Birthtimespec.Sec, st.Birthtimespec.Nsec)
	modified = time.Unix(st.Mtimespec.Sec, st.Mtimespec.Nsec)
	return created, modified, true
}
