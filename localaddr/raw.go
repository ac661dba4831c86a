//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Raw sockaddr wire codec.
//

package localaddr

import (
	"encoding/binary"
	"fmt"
)

// RawAddrSize is the capacity of the [RawAddr] buffer, sized to hold
// the largest supported native socket address representation.
const RawAddrSize = 128

// sockaddr layout constants for the native encodings we speak.
const (
	// familyTagSize is the size of the leading family discriminant
	// shared by every sockaddr layout.
	familyTagSize = 2

	// sockaddrUnSize is the full size of sockaddr_un: the family
	// tag followed by the sun_path buffer.
	sockaddrUnSize = familyTagSize + maxSunPath

	// sockaddrVMSize is the full size of sockaddr_vm: family tag,
	// reserved short, 32-bit port, 32-bit cid, 4 zero bytes.
	sockaddrVMSize = 16
)

// RawAddr is the wire-compatible binary form of an [Addr]: a fixed
// capacity buffer holding a native sockaddr plus the logical length
// of the encoded representation.
//
// The layout is a de facto protocol shared with peer
// implementations. In particular, an AF_UNIX sockaddr whose first
// path byte is NUL and whose second path byte is non-NUL denotes an
// abstract-namespace socket; everything else with AF_UNIX denotes a
// path socket. Preserve these rules exactly.
type RawAddr struct {
	// Data is the native sockaddr bytes. Bytes at and beyond Len
	// are not meaningful.
	Data [RawAddrSize]byte

	// Len is the logical length of the encoding.
	Len int
}

// EncodeRaw encodes an [Addr] into its native sockaddr layout.
//
// Encoding fails with [ErrAddressConstruction] for [FamilyOther],
// which has no native layout. Addresses built by this package's
// resolvers always encode successfully.
func EncodeRaw(addr Addr) (RawAddr, error) {
	var raw RawAddr
	switch addr.family {
	case FamilyUnixPath, FamilyUnixAbstract:
		if len(addr.name)+1 > maxSunPath {
			return RawAddr{}, fmt.Errorf(
				"%w: unix name does not fit sun_path: %q",
				ErrAddressConstruction, addr.name)
		}
		binary.NativeEndian.PutUint16(raw.Data[0:2], afUnix)
		if addr.family == FamilyUnixPath {
			copy(raw.Data[familyTagSize:], addr.name)
			raw.Len = sockaddrUnSize
			return raw, nil
		}
		// sun_path[0] stays NUL: that is the abstract sentinel.
		copy(raw.Data[familyTagSize+1:], addr.name)
		raw.Len = familyTagSize + 1 + len(addr.name)
		return raw, nil

	case FamilyVsock:
		binary.NativeEndian.PutUint16(raw.Data[0:2], afVsock)
		binary.NativeEndian.PutUint32(raw.Data[4:8], addr.port)
		binary.NativeEndian.PutUint32(raw.Data[8:12], addr.cid)
		raw.Len = sockaddrVMSize
		return raw, nil

	default:
		return RawAddr{}, fmt.Errorf(
			"%w: family %s has no native representation",
			ErrAddressConstruction, addr.family)
	}
}

// DecodeRaw decodes a native sockaddr back into an [Addr].
//
// Decoding is total and defensive: buffers that are truncated, have
// an inconsistent length, or carry an unknown family discriminant
// decode to a [FamilyOther] address rather than failing. This is the
// single place where untrusted raw bytes enter the package, so the
// resulting [Addr] is always internally consistent.
func DecodeRaw(raw RawAddr) Addr {
	if raw.Len < familyTagSize || raw.Len > RawAddrSize {
		return Addr{}
	}
	switch binary.NativeEndian.Uint16(raw.Data[0:2]) {
	case afUnix:
		return decodeRawUnix(raw)
	case afVsock:
		return decodeRawVsock(raw)
	default:
		return Addr{}
	}
}

// decodeRawUnix decodes an AF_UNIX sockaddr, telling apart path and
// abstract sockets via the two-byte sentinel rule.
func decodeRawUnix(raw RawAddr) Addr {
	pathLen := min(raw.Len, sockaddrUnSize) - familyTagSize
	sunPath := raw.Data[familyTagSize : familyTagSize+pathLen]
	if pathLen >= 2 && sunPath[0] == 0 && sunPath[1] != 0 {
		// Abstract: the name is everything after the sentinel NUL,
		// its length derived from the logical encoding length.
		return Addr{
			family: FamilyUnixAbstract,
			name:   string(sunPath[1:]),
		}
	}
	// Path: NUL terminated within sun_path.
	end := 0
	for end < len(sunPath) && sunPath[end] != 0 {
		end++
	}
	return Addr{
		family: FamilyUnixPath,
		name:   string(sunPath[:end]),
	}
}

// decodeRawVsock decodes an AF_VSOCK sockaddr.
func decodeRawVsock(raw RawAddr) Addr {
	if raw.Len < sockaddrVMSize {
		return Addr{}
	}
	return Addr{
		family: FamilyVsock,
		port:   binary.NativeEndian.Uint32(raw.Data[4:8]),
		cid:    binary.NativeEndian.Uint32(raw.Data[8:12]),
	}
}

// ClassifyRaw classifies a raw sockaddr by family without fully
// decoding it. Classification never fails: unknown discriminants and
// malformed buffers classify as [FamilyOther].
func ClassifyRaw(raw RawAddr) Family {
	return DecodeRaw(raw).Family()
}
