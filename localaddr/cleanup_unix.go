//go:build unix

//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Stale socket file cleanup.
//

package localaddr

import "golang.org/x/sys/unix"

// RemoveStaleSocket removes a leftover socket file at the address's
// path so a fresh bind can succeed.
//
// The operation is a no-op for every family except [FamilyUnixPath]:
// abstract sockets have no filesystem entry, and other families do
// not live on the filesystem at all. For path sockets it stats the
// path and unlinks it only when the entry exists and is a socket.
//
// This is best-effort cleanup before a bind, never a hard
// requirement: filesystem errors are swallowed, and a race where the
// entry changes between inspection and removal is acceptable.
func RemoveStaleSocket(addr Addr) {
	if addr.Family() != FamilyUnixPath {
		return
	}
	var st unix.Stat_t
	if err := unix.Stat(addr.Path(), &st); err != nil {
		return
	}
	if st.Mode&unix.S_IFMT != unix.S_IFSOCK {
		return
	}
	unix.Unlink(addr.Path())
}
