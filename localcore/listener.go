//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Local endpoint listener.
//

package localcore

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"github.com/mdlayher/vsock"
	"github.com/rbmk-project/common/errclass"
	"github.com/rbmk-project/localsock/localaddr"
)

// Listen creates a listener bound to a local-transport endpoint URI
// such as `unix:/path`, `unix-abstract:name`, or `vsock:cid:port`.
//
// For path-based Unix endpoints, a stale socket file left behind at
// the same path by a previous process is removed before binding.
func (nx *Network) Listen(ctx context.Context, endpoint string) (net.Listener, error) {
	// resolve the endpoint: local resolvers produce a single address
	addrs, err := localaddr.ResolveURI(endpoint)
	if err != nil {
		return nil, err
	}
	return nx.listenLog(ctx, addrs[0])
}

// listenLog binds a single address and emits structured events.
func (nx *Network) listenLog(ctx context.Context, addr localaddr.Addr) (net.Listener, error) {
	t0 := nx.timeNow()
	if nx.Logger != nil {
		nx.Logger.InfoContext(
			ctx,
			"listenStart",
			slog.String("endpoint", addr.URI()),
			slog.String("family", addr.Family().String()),
			slog.Time("t", t0),
		)
	}

	listener, err := nx.listenAddr(addr)

	if nx.Logger != nil {
		nx.Logger.InfoContext(
			ctx,
			"listenDone",
			slog.String("endpoint", addr.URI()),
			slog.String("family", addr.Family().String()),
			slog.Any("err", err),
			slog.String("errClass", errclass.New(err)),
			slog.Time("t0", t0),
			slog.Time("t", nx.timeNow()),
		)
	}
	return listener, err
}

// listenAddr binds a single address based on its family.
func (nx *Network) listenAddr(addr localaddr.Addr) (net.Listener, error) {
	switch addr.Family() {
	case localaddr.FamilyUnixPath:
		// best-effort removal of a stale socket file before binding
		localaddr.RemoveStaleSocket(addr)
		return nx.listenUnix(addr.Path())

	case localaddr.FamilyUnixAbstract:
		return nx.listenUnix("@" + addr.AbstractName())

	case localaddr.FamilyVsock:
		return nx.listenVsock(addr.ContextID(), addr.Port())

	default:
		return nil, fmt.Errorf("cannot listen on address family %s", addr.Family())
	}
}

// listenUnix binds a Unix domain stream socket.
func (nx *Network) listenUnix(address string) (net.Listener, error) {
	// if there's an user provided listener func, use it
	if nx.ListenFunc != nil {
		return nx.ListenFunc("unix", address)
	}

	// otherwise use the [net] package
	return net.Listen("unix", address)
}

// listenVsock binds a VSOCK stream socket.
func (nx *Network) listenVsock(cid, port uint32) (net.Listener, error) {
	// if there's an user provided listener func, use it
	if nx.ListenVsockFunc != nil {
		return nx.ListenVsockFunc(cid, port)
	}

	// otherwise use the vsock package
	return vsock.ListenContextID(cid, port, nil)
}
