//go:build windows

// SPDX-License-Identifier: GPL-3.0-or-later

package localaddr

// RemoveStaleSocket is a no-op on Windows, where Unix socket files
// are not part of the supported local transports.
func RemoveStaleSocket(addr Addr) {}
