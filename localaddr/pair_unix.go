//go:build unix

//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Connected local socket pairs.
//

package localaddr

import (
	"net"
	"os"

	"github.com/rbmk-project/common/runtimex"
	"golang.org/x/sys/unix"
)

// MakeLocalPair creates two connected Unix domain stream endpoints
// via socketpair(2), for local loopback use.
//
// A failing socketpair on a supported platform is an unrecoverable
// environment error, so this function asserts success rather than
// returning an error: ordinary callers are never expected to handle
// failure here as a normal-flow condition.
func MakeLocalPair() (net.Conn, net.Conn) {
	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	runtimex.Assert(err == nil, "socketpair(AF_UNIX, SOCK_STREAM) failed")
	unix.CloseOnExec(fds[0])
	unix.CloseOnExec(fds[1])
	return fdToConn(fds[0]), fdToConn(fds[1])
}

// fdToConn wraps a connected socket descriptor into a [net.Conn].
// [net.FileConn] duplicates the descriptor, so we close both the
// original and the temporary [os.File].
func fdToConn(fd int) net.Conn {
	file := os.NewFile(uintptr(fd), "socketpair")
	conn := runtimex.Try1(net.FileConn(file))
	runtimex.Try0(file.Close())
	return conn
}
