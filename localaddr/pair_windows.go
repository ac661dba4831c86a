//go:build windows

// SPDX-License-Identifier: GPL-3.0-or-later

package localaddr

import (
	"net"

	"github.com/rbmk-project/common/runtimex"
)

// MakeLocalPair asserts on Windows, which lacks socketpair(2). The
// contract treats a missing local-pair facility as an unrecoverable
// environment error, consistent with the Unix implementation.
func MakeLocalPair() (net.Conn, net.Conn) {
	runtimex.Assert(false, "socketpair is not available on windows")
	return nil, nil
}
