//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Address value type and family classification.
//

package localaddr

import (
	"net"
	"strconv"
)

// Family is the address family of an [Addr].
type Family int

const (
	// FamilyOther is any family this package does not specifically
	// handle. It is opaque and unsupported but not an error by itself.
	FamilyOther Family = iota

	// FamilyUnixPath is a Unix domain socket bound to a filesystem path.
	FamilyUnixPath

	// FamilyUnixAbstract is a Unix domain socket living in the
	// kernel-managed abstract namespace rather than the filesystem.
	FamilyUnixAbstract

	// FamilyVsock is a VSOCK (virtual-machine guest/host) socket.
	FamilyVsock
)

// String returns the family name, which doubles as the URI scheme
// accepted by [Resolve] for the families this package resolves.
func (f Family) String() string {
	switch f {
	case FamilyUnixPath:
		return "unix"
	case FamilyUnixAbstract:
		return "unix-abstract"
	case FamilyVsock:
		return "vsock"
	default:
		return "other"
	}
}

// Addr is a resolved local-transport socket address.
//
// Addr is a value type: copy it freely. The zero value has
// [FamilyOther] and renders to an empty URI.
//
// Construct values through [Resolve], [ResolveUnix],
// [ResolveUnixAbstract], [ResolveVsock], or [DecodeRaw] so the family
// tag and the family-specific payload always agree.
type Addr struct {
	// family discriminates which payload fields are meaningful.
	family Family

	// name is the filesystem path for [FamilyUnixPath] and the
	// abstract-namespace name for [FamilyUnixAbstract].
	name string

	// cid and port are the VSOCK context ID and port for [FamilyVsock].
	cid  uint32
	port uint32
}

// Ensure [Addr] implements [net.Addr].
var _ net.Addr = Addr{}

// Family classifies the address. It never fails: addresses not
// produced by this package's constructors classify as [FamilyOther].
func (a Addr) Family() Family {
	return a.family
}

// Path returns the filesystem path for a [FamilyUnixPath] address
// and the empty string for every other family.
func (a Addr) Path() string {
	if a.family != FamilyUnixPath {
		return ""
	}
	return a.name
}

// AbstractName returns the abstract-namespace name for a
// [FamilyUnixAbstract] address and the empty string otherwise.
func (a Addr) AbstractName() string {
	if a.family != FamilyUnixAbstract {
		return ""
	}
	return a.name
}

// ContextID returns the VSOCK context ID for a [FamilyVsock]
// address and zero otherwise.
func (a Addr) ContextID() uint32 {
	if a.family != FamilyVsock {
		return 0
	}
	return a.cid
}

// Port returns the VSOCK port for a [FamilyVsock] address and
// zero otherwise.
func (a Addr) Port() uint32 {
	if a.family != FamilyVsock {
		return 0
	}
	return a.port
}

// URI renders the canonical URI for the address:
//
//	unix:<path>
//	unix-abstract:<name>
//	vsock:<cid>:<port>
//
// The path and name are copied verbatim with no escaping, and the
// VSOCK fields are base-10 unsigned integers. These exact forms are
// shared with peer implementations parsing such URIs: do not change
// them. [FamilyOther] renders to the empty string, which callers
// must treat as "not renderable here", not as an error.
func (a Addr) URI() string {
	switch a.family {
	case FamilyUnixPath:
		return "unix:" + a.name
	case FamilyUnixAbstract:
		return "unix-abstract:" + a.name
	case FamilyVsock:
		return "vsock:" + strconv.FormatUint(uint64(a.cid), 10) +
			":" + strconv.FormatUint(uint64(a.port), 10)
	default:
		return ""
	}
}

// Network implements [net.Addr].
func (a Addr) Network() string {
	return a.family.String()
}

// String implements [net.Addr] by returning the canonical URI.
func (a Addr) String() string {
	return a.URI()
}

// AddrSet is the ordered result of resolving one endpoint
// specification. The resolvers in this package always produce
// one-element sets; the slice shape matches the general resolver
// contract, where multi-result resolution (e.g., DNS) is possible.
type AddrSet []Addr
