// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package localaddr resolves, classifies, and renders local-transport
socket addresses: Unix domain sockets (path based and abstract) and
VSOCK (virtual-machine guest/host) addresses.

This package is the address layer consumed by
[github.com/rbmk-project/localsock/localcore] to turn a user-supplied
endpoint string into something bindable or connectable.
It deliberately knows nothing about DNS or IP addresses.

# Features

- Resolving `unix`, `unix-abstract`, and `vsock` endpoint text into
one-element [AddrSet] values;

- Classifying any [Addr] or [RawAddr] by [Family];

- Rendering addresses to the canonical `unix:`, `unix-abstract:` and
`vsock:` URI forms;

- Encoding to and decoding from the raw sockaddr wire layout, including
the abstract-socket leading-NUL sentinel;

- Best-effort removal of stale socket files before a fresh bind;

- Creating connected Unix socket pairs for local loopback use.

# Design Documents

The raw sockaddr layout and the URI prefixes are a de facto protocol
shared with peer implementations; see the package tests for the exact
byte-level expectations.
*/
package localaddr
