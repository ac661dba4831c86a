//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Local endpoint dialer.
//

package localcore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	"github.com/mdlayher/vsock"
	"github.com/rbmk-project/common/errclass"
	"github.com/rbmk-project/localsock/localaddr"
)

// DialContext establishes a new connection to a local-transport
// endpoint URI such as `unix:/path`, `unix-abstract:name`, or
// `vsock:cid:port`.
func (nx *Network) DialContext(ctx context.Context, endpoint string) (net.Conn, error) {
	// resolve the endpoint to one or more addresses
	addrs, err := localaddr.ResolveURI(endpoint)
	if err != nil {
		return nil, err
	}

	// sequentially attempt with each available address
	return nx.sequentialDial(ctx, addrs...)
}

// sequentialDial attempts to dial the addresses in sequence until one
// of them succeeds. It returns the first successfully established network
// connection, on success, and the union of all errors, otherwise.
func (nx *Network) sequentialDial(
	ctx context.Context,
	addrs ...localaddr.Addr,
) (net.Conn, error) {
	var errv []error
	for _, addr := range addrs {
		conn, err := nx.dialLog(ctx, addr)
		if conn != nil && err == nil {
			return conn, nil
		}
		errv = append(errv, err)
	}
	if len(errv) <= 0 {
		errv = append(errv, errors.New("no address to dial"))
	}
	return nil, errors.Join(errv...)
}

// dialLog dials a single address and emits structured events.
func (nx *Network) dialLog(ctx context.Context, addr localaddr.Addr) (net.Conn, error) {
	t0 := nx.timeNow()
	if nx.Logger != nil {
		nx.Logger.InfoContext(
			ctx,
			"dialStart",
			slog.String("endpoint", addr.URI()),
			slog.String("family", addr.Family().String()),
			slog.Time("t", t0),
		)
	}

	conn, err := nx.dialAddr(ctx, addr)

	if nx.Logger != nil {
		nx.Logger.InfoContext(
			ctx,
			"dialDone",
			slog.String("endpoint", addr.URI()),
			slog.String("family", addr.Family().String()),
			slog.Any("err", err),
			slog.String("errClass", errclass.New(err)),
			slog.Time("t0", t0),
			slog.Time("t", nx.timeNow()),
		)
	}
	return conn, err
}

// dialAddr dials a single address based on its family.
func (nx *Network) dialAddr(ctx context.Context, addr localaddr.Addr) (net.Conn, error) {
	switch addr.Family() {
	case localaddr.FamilyUnixPath:
		return nx.dialUnix(ctx, addr.Path())

	case localaddr.FamilyUnixAbstract:
		// The leading `@` is how the [net] package spells the
		// abstract-namespace leading NUL.
		return nx.dialUnix(ctx, "@"+addr.AbstractName())

	case localaddr.FamilyVsock:
		return nx.dialVsock(addr.ContextID(), addr.Port())

	default:
		return nil, fmt.Errorf("cannot dial address family %s", addr.Family())
	}
}

// dialUnix dials a Unix domain stream socket.
func (nx *Network) dialUnix(ctx context.Context, address string) (net.Conn, error) {
	// if there's an user provided dialer func, use it
	if nx.DialContextFunc != nil {
		return nx.DialContextFunc(ctx, "unix", address)
	}

	// otherwise use a [net.Dialer]
	dialer := &net.Dialer{}
	return dialer.DialContext(ctx, "unix", address)
}

// dialVsock dials a VSOCK stream socket.
func (nx *Network) dialVsock(cid, port uint32) (net.Conn, error) {
	// if there's an user provided dialer func, use it
	if nx.DialVsockFunc != nil {
		return nx.DialVsockFunc(cid, port)
	}

	// otherwise use the vsock package
	return vsock.Dial(cid, port, nil)
}
