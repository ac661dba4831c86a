// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package localcore binds local-transport endpoints to actual sockets.

This package is designed to turn the endpoint URIs understood by
[github.com/rbmk-project/localsock/localaddr] (`unix:`,
`unix-abstract:`, `vsock:`) into dialed connections and bound
listeners, emitting structured diagnostic events via the [log/slog]
package.

# Features

- Dialer for Unix path, Unix abstract, and VSOCK endpoints;

- Listener with automatic stale socket file cleanup before bind;

- Optional structured logging of dial and listen events.

# Design Documents

This package is experimental and has no design documents for now.
*/
package localcore
