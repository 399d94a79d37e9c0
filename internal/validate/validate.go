// Package validate holds the pure, side-effect-free checks the builder
// runs before committing any byte: node-name grammar, property names,
// phandle range, and size ceilings. Every function here returns a
// plain bool or error; none of them mutate anything, so the builder can
// always validate first and append second.
package validate

import (
	"math"
	"strings"
)

// MaxNodeNameLen is the maximum length of a node name, excluding the NUL
// terminator, per the Devicetree Specification.
const MaxNodeNameLen = 31

// nodeNameChars is the Devicetree Specification §2.2.1 node-name character
// class: digits, letters, and ",._+-@". The empty string (anonymous root)
// is accepted separately by IsValidNodeName before this class is consulted.
const nodeNameChars = "0123456789" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	",._+-@"

// IsValidNodeName reports whether name is legal: the empty string (the
// anonymous root), or up to MaxNodeNameLen ASCII bytes drawn from the
// Devicetree node-name character class. '/' is rejected explicitly, as are
// all bytes outside the class (including any NUL byte).
func IsValidNodeName(name string) bool {
	if name == "" {
		return true
	}
	if len(name) > MaxNodeNameLen {
		return false
	}
	for i := 0; i < len(name); i++ {
		if !strings.ContainsRune(nodeNameChars, rune(name[i])) {
			return false
		}
	}
	return true
}

// IsValidPropertyName reports whether name is usable as a property name: a
// property name must be non-empty and must not contain a NUL byte (a NUL
// would corrupt the strings-block offset scheme).
func IsValidPropertyName(name string) bool {
	if name == "" {
		return false
	}
	return !strings.ContainsRune(name, 0)
}

// InvalidPhandle values per the Devicetree Specification: 0 is reserved to
// mean "no phandle", and 0xFFFFFFFF is reserved for future use.
const (
	PhandleZero = uint32(0)
	PhandleMax  = uint32(0xFFFFFFFF)
)

// IsValidPhandle reports whether v is usable as a phandle value.
func IsValidPhandle(v uint32) bool {
	return v != PhandleZero && v != PhandleMax
}

// PropertyFitsU32Length reports whether a property payload of the given
// length can be encoded in the FDT_PROP token's 32-bit length field.
func PropertyFitsU32Length(length int) bool {
	return uint64(length) <= math.MaxUint32
}

// TotalSizeFitsU32 reports whether a finalized blob of totalSize bytes can
// be encoded in the header's 32-bit totalsize field.
func TotalSizeFitsU32(totalSize uint64) bool {
	return totalSize <= math.MaxUint32
}
