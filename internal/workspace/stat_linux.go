//go:build linux

package workspace

import (
	"time"

	"golang.org/x/sys/unix"
)

// fileTimes returns the inode change time and modification time of the
// file at path. On Linux there is no portable birth time; the change
// time is the closest stand-in, matching when the artifact was created
// in the workspace.
func fileTimes(path string) (created, modified time.Time, ok bool) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return time.Time{}, time.Time{}, false
	}
	created = time.Unix(st.Ctim.Sec, st.Ctim.Nsec)
	modified = time.Unix(st.Mtim.Sec, st.Mtim.Nsec)
	return created, modified, true
}
