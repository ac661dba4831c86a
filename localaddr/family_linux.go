//go:build linux

// SPDX-License-Identifier: GPL-3.0-or-later

package localaddr

import "golang.org/x/sys/unix"

const (
	afUnix  = unix.AF_UNIX
	afVsock = unix.AF_VSOCK
)
