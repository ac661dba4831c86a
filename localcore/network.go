//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Definition of Network.
//

package localcore

import (
	"context"
	"log/slog"
	"net"
	"time"
)

// Network dials and listens on local-transport endpoints.
//
// The zero value is ready to use.
//
// A [*Network] is safe for concurrent use by multiple goroutines as long as
// you don't modify its fields after construction and the underlying fields you
// may set (e.g., DialContextFunc) are also safe.
type Network struct {
	// DialContextFunc is the optional dialer for creating new
	// Unix domain connections. If this field is nil, the default
	// dialer from the [net] package will be used.
	DialContextFunc func(ctx context.Context, network, address string) (net.Conn, error)

	// DialVsockFunc is the optional dialer for creating new VSOCK
	// connections. If this field is nil, we use the
	// [github.com/mdlayher/vsock] package.
	DialVsockFunc func(cid, port uint32) (net.Conn, error)

	// ListenFunc is the optional listener factory for Unix domain
	// sockets. If this field is nil, the default listener from the
	// [net] package will be used.
	ListenFunc func(network, address string) (net.Listener, error)

	// ListenVsockFunc is the optional listener factory for VSOCK
	// sockets. If this field is nil, we use the
	// [github.com/mdlayher/vsock] package.
	ListenVsockFunc func(cid, port uint32) (net.Listener, error)

	// Logger is the optional structured logger for emitting
	// structured diagnostic events. If this field is nil, we
	// will not be emitting structured logs.
	Logger *slog.Logger

	// TimeNow is an optional function that returns the current time.
	// If this field is nil, the [time.Now] function will be used.
	TimeNow func() time.Time
}

// DefaultNetwork is the default [*Network] used by this package.
var DefaultNetwork = &Network{}

// timeNow is a function that returns the current time.
func (nx *Network) timeNow() time.Time {
	if nx.TimeNow != nil {
		return nx.TimeNow()
	}
	return time.Now()
}
