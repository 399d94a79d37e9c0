// Package fdt constructs, in memory, a byte-exact Flattened Device Tree
// (FDT / DTB) blob conforming to the Devicetree Specification v0.4. It
// accepts a temporally ordered stream of begin-node/property/end-node
// calls from its caller and refuses, via explicit error returns, to ever
// produce a malformed tree.
//
// A Builder is single-owner and single-threaded: no operation blocks, no
// operation may run concurrently with another on the same Builder, and a
// Builder is consumed exactly once by Finish.
package fdt

import (
	"github.com/devicetree-go/fdt/internal/strtab"
	"github.com/devicetree-go/fdt/internal/token"
	"github.com/devicetree-go/fdt/internal/validate"
	"github.com/devicetree-go/fdt/internal/wire"
	"github.com/devicetree-go/fdt/internal/xerrors"
)

// state is the builder's coarse temporal position, tracked alongside
// openDepth so every operation can be validated with two scalar reads
// rather than scattered ad hoc checks.
type state int

const (
	stateEmpty state = iota
	stateInNode
	stateClosed
	stateFinished
)

// ReserveEntry is a single memory-reservation-block entry: a region of
// physical memory the OS must not use. Size must be > 0; the terminating
// (0,0) entry is appended automatically and must never be supplied here.
type ReserveEntry struct {
	Address uint64
	Size    uint64
}

// NodeHandle is the opaque token BeginNode returns and EndNode consumes.
// It carries the depth at which its node was opened so EndNode can assert
// LIFO discipline at the API boundary instead of via a runtime assertion
// buried in the emitter.
type NodeHandle struct {
	depth int
}

// Builder accumulates a structure block and a strings block and, on
// Finish, composes them with a header and memory-reservation block into a
// single DTB byte sequence.
type Builder struct {
	structure    *wire.Buffer
	strings      *strtab.Table
	reservations []ReserveEntry

	openDepth int
	state     state
	finished  bool

	phandles map[uint32]struct{}
}

// New returns a fresh Builder with no memory reservations.
func New() *Builder {
	return &Builder{
		structure: wire.NewBuffer(),
		strings:   strtab.New(),
		phandles:  make(map[uint32]struct{}),
	}
}

// NewWithReservations returns a fresh Builder with a fixed reservation
// list. Every entry must have Size > 0; a zero-size entry is reserved for
// the automatically appended terminator and must not appear here.
func NewWithReservations(entries []ReserveEntry) (*Builder, error) {
	for i, e := range entries {
		if e.Size == 0 {
			return nil, xerrors.Newf(ErrInvalidReservation, "entry %d (address 0x%x)", i, e.Address)
		}
	}

	b := New()
	b.reservations = append(b.reservations, entries...)
	return b, nil
}

// BeginNode validates name against the Devicetree node-name grammar,
// emits FDT_BEGIN_NODE, and returns a handle tagged with the new depth.
func (b *Builder) BeginNode(name string) (NodeHandle, error) {
	if b.finished {
		return NodeHandle{}, xerrors.New(ErrFinished, "begin_node")
	}
	if b.state == stateClosed {
		return NodeHandle{}, xerrors.Newf(ErrTreeSealed, "begin_node(%q)", name)
	}
	if !validate.IsValidNodeName(name) {
		return NodeHandle{}, xerrors.Newf(ErrInvalidNodeName, "%q", name)
	}

	token.EmitBeginNode(b.structure, name)
	b.openDepth++
	b.state = stateInNode

	return NodeHandle{depth: b.openDepth}, nil
}

// EndNode closes the node opened by the matching BeginNode call. handle
// must belong to the currently open node (LIFO discipline).
func (b *Builder) EndNode(handle NodeHandle) error {
	if b.finished {
		return xerrors.New(ErrFinished, "end_node")
	}
	if b.openDepth == 0 {
		return xerrors.New(ErrUnbalancedEndNode, "end_node")
	}
	if handle.depth != b.openDepth {
		return xerrors.Newf(ErrNodeHandleMismatch, "handle depth %d, open depth %d", handle.depth, b.openDepth)
	}

	token.EmitEndNode(b.structure)
	b.openDepth--

	if b.openDepth == 0 {
		b.state = stateClosed
	} else {
		b.state = stateInNode
	}

	return nil
}

// Property emits a property named name with the given raw value bytes
// under the currently open node.
func (b *Builder) Property(name string, value []byte) error {
	if b.finished {
		return xerrors.New(ErrFinished, "property")
	}
	if b.openDepth == 0 {
		if b.state == stateEmpty {
			return xerrors.Newf(ErrPropertyBeforeBeginNode, "property(%q)", name)
		}
		return xerrors.Newf(ErrPropertyAfterEndNode, "property(%q)", name)
	}
	if !validate.IsValidPropertyName(name) {
		return xerrors.Newf(ErrInvalidPropertyName, "%q", name)
	}
	if !validate.PropertyFitsU32Length(len(value)) {
		return xerrors.Newf(ErrPropertyTooLarge, "property(%q): %d bytes", name, len(value))
	}

	nameOff := b.strings.Intern(name)
	token.EmitProp(b.structure, nameOff, value)

	return nil
}

// PropertyNull emits a zero-length property, conventionally used for
// boolean "presence" flags in a devicetree.
func (b *Builder) PropertyNull(name string) error {
	return b.Property(name, nil)
}

// PropertyU32 emits a property whose value is a single big-endian u32.
func (b *Builder) PropertyU32(name string, v uint32) error {
	buf := wire.NewBuffer()
	buf.PutUint32(v)
	return b.Property(name, buf.Bytes())
}

// PropertyU64 emits a property whose value is a single big-endian u64.
func (b *Builder) PropertyU64(name string, v uint64) error {
	buf := wire.NewBuffer()
	buf.PutUint64(v)
	return b.Property(name, buf.Bytes())
}

// PropertyArrayU32 emits a property whose value is the concatenation of
// vs, each encoded as a big-endian u32.
func (b *Builder) PropertyArrayU32(name string, vs []uint32) error {
	buf := wire.NewBuffer()
	for _, v := range vs {
		buf.PutUint32(v)
	}
	return b.Property(name, buf.Bytes())
}

// PropertyArrayU64 emits a property whose value is the concatenation of
// vs, each encoded as a big-endian u64.
func (b *Builder) PropertyArrayU64(name string, vs []uint64) error {
	buf := wire.NewBuffer()
	for _, v := range vs {
		buf.PutUint64(v)
	}
	return b.Property(name, buf.Bytes())
}

// PropertyString emits a property whose value is s followed by a single
// NUL terminator.
func (b *Builder) PropertyString(name, s string) error {
	value := make([]byte, 0, len(s)+1)
	value = append(value, s...)
	value = append(value, 0)
	return b.Property(name, value)
}

// PropertyStringList emits a property whose value is the concatenation of
// strs, each followed by its own NUL terminator.
func (b *Builder) PropertyStringList(name string, strs []string) error {
	var value []byte
	for _, s := range strs {
		value = append(value, s...)
		value = append(value, 0)
	}
	return b.Property(name, value)
}

// PropertyPhandle emits a "phandle" property with value v, after checking
// that v is neither reserved (0 or 0xFFFFFFFF) nor already used by a prior
// call on this Builder. On success v is recorded so later duplicate calls
// fail; on failure the phandle set is left untouched.
func (b *Builder) PropertyPhandle(v uint32) error {
	if !validate.IsValidPhandle(v) {
		return xerrors.Newf(ErrInvalidPhandle, "0x%x", v)
	}
	if _, used := b.phandles[v]; used {
		return xerrors.Newf(ErrDuplicatePhandle, "0x%x", v)
	}

	if err := b.PropertyU32("phandle", v); err != nil {
		return err
	}

	b.phandles[v] = struct{}{}
	return nil
}
