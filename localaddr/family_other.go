//go:build !linux

// SPDX-License-Identifier: GPL-3.0-or-later

package localaddr

// The raw encoding is a wire convention fixed to the Linux ABI
// values, so platforms without native definitions use them verbatim.
const (
	afUnix  = 1
	afVsock = 40
)
