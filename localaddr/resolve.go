//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Endpoint text resolution.
//

package localaddr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrAddressParse indicates malformed endpoint text (bad VSOCK
// syntax, unknown scheme, empty required field).
var ErrAddressParse = errors.New("cannot parse address")

// ErrAddressConstruction indicates well-formed endpoint text that
// does not fit the fixed-size native socket address representation
// (e.g., a Unix path longer than the kernel's sun_path buffer).
var ErrAddressConstruction = errors.New("cannot construct address")

// maxSunPath is the size of the native sockaddr_un path buffer. This
// matches the conventional Linux limit and bounds both filesystem
// paths (plus NUL terminator) and abstract names (plus leading NUL).
const maxSunPath = 108

// ResolveUnix resolves a filesystem path into a one-element
// [AddrSet] holding a [FamilyUnixPath] address.
//
// The path is taken verbatim: no cleaning, no absolutization, no
// filesystem existence check. Resolution fails with
// [ErrAddressConstruction] when the path plus its NUL terminator
// does not fit the native representation.
func ResolveUnix(path string) (AddrSet, error) {
	if len(path)+1 > maxSunPath {
		return nil, fmt.Errorf(
			"%w: unix path should not exceed %d bytes: %q",
			ErrAddressConstruction, maxSunPath-1, path)
	}
	return AddrSet{{family: FamilyUnixPath, name: path}}, nil
}

// ResolveUnixAbstract resolves an abstract-namespace name into a
// one-element [AddrSet] holding a [FamilyUnixAbstract] address.
//
// The name is not a path: it carries no leading-separator semantics
// and may contain any byte. Resolution fails with
// [ErrAddressConstruction] when the name plus its leading NUL does
// not fit the native representation.
func ResolveUnixAbstract(name string) (AddrSet, error) {
	if len(name)+1 > maxSunPath {
		return nil, fmt.Errorf(
			"%w: abstract unix name should not exceed %d bytes: %q",
			ErrAddressConstruction, maxSunPath-1, name)
	}
	return AddrSet{{family: FamilyUnixAbstract, name: name}}, nil
}

// ResolveVsock resolves a `cid:port` specification into a
// one-element [AddrSet] holding a [FamilyVsock] address.
//
// Both fields are base-10 unsigned 32-bit integers. Resolution fails
// with [ErrAddressParse] when the separator is missing or either
// field is empty, non-numeric, or out of range.
func ResolveVsock(endpoint string) (AddrSet, error) {
	rawCID, rawPort, found := strings.Cut(endpoint, ":")
	if !found {
		return nil, fmt.Errorf(
			"%w: vsock address must be in cid:port form: %q",
			ErrAddressParse, endpoint)
	}
	cid, err := strconv.ParseUint(rawCID, 10, 32)
	if err != nil {
		return nil, fmt.Errorf(
			"%w: invalid vsock cid in %q: %s",
			ErrAddressParse, endpoint, err.Error())
	}
	port, err := strconv.ParseUint(rawPort, 10, 32)
	if err != nil {
		return nil, fmt.Errorf(
			"%w: invalid vsock port in %q: %s",
			ErrAddressParse, endpoint, err.Error())
	}
	return AddrSet{{
		family: FamilyVsock,
		cid:    uint32(cid),
		port:   uint32(port),
	}}, nil
}

// Resolve resolves endpoint text given an explicit family hint. The
// hint is the URI scheme of the corresponding family: `unix`,
// `unix-abstract`, or `vsock`. Unknown schemes fail with
// [ErrAddressParse]: unlike classification, resolution has no
// meaningful opaque result.
func Resolve(scheme, endpoint string) (AddrSet, error) {
	switch scheme {
	case "unix":
		return ResolveUnix(endpoint)
	case "unix-abstract":
		return ResolveUnixAbstract(endpoint)
	case "vsock":
		return ResolveVsock(endpoint)
	default:
		return nil, fmt.Errorf(
			"%w: unsupported scheme %q", ErrAddressParse, scheme)
	}
}

// ResolveURI splits a `scheme:rest` endpoint URI and resolves it
// via [Resolve]. The accepted URIs are exactly the canonical forms
// produced by [Addr.URI], so resolution and rendering round-trip.
func ResolveURI(uri string) (AddrSet, error) {
	scheme, rest, found := strings.Cut(uri, ":")
	if !found {
		return nil, fmt.Errorf(
			"%w: endpoint URI must be in scheme:rest form: %q",
			ErrAddressParse, uri)
	}
	return Resolve(scheme, rest)
}
