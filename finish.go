package fdt

import (
	"github.com/devicetree-go/fdt/internal/token"
	"github.com/devicetree-go/fdt/internal/validate"
	"github.com/devicetree-go/fdt/internal/wire"
	"github.com/devicetree-go/fdt/internal/xerrors"
)

const (
	headerSize    = 40
	magic         = 0xD00DFEED
	fdtVersion    = 17
	lastCompVers  = 16
	bootCPUIDPhys = 0
)

// Finish seals the builder: it requires a balanced tree (every opened node
// closed), appends FDT_END, and composes the header, memory-reservation
// block, structure block, and strings block into one byte sequence in
// header-defined order. Finish consumes the Builder — no further
// operation on it may succeed afterward.
func (b *Builder) Finish() ([]byte, error) {
	if b.finished {
		return nil, xerrors.New(ErrFinished, "finish")
	}
	if b.openDepth != 0 {
		return nil, xerrors.Newf(ErrUnclosedNode, "%d node(s) still open", b.openDepth)
	}

	rsvSize := (len(b.reservations) + 1) * 16
	structSize := b.structure.Len() + 4 // includes the FDT_END token appended below
	stringsBytes := b.strings.Bytes()

	offDtStruct := headerSize + rsvSize
	offDtStrings := offDtStruct + structSize
	totalSize := offDtStrings + len(stringsBytes)

	if !validate.TotalSizeFitsU32(uint64(totalSize)) {
		return nil, xerrors.Newf(ErrTotalSizeOverflow, "%d bytes", totalSize)
	}

	token.EmitEnd(b.structure)
	structBytes := b.structure.Bytes()

	out := make([]byte, totalSize)

	wire.PutUint32At(out, 0, magic)
	wire.PutUint32At(out, 4, uint32(totalSize))
	wire.PutUint32At(out, 8, uint32(offDtStruct))
	wire.PutUint32At(out, 12, uint32(offDtStrings))
	wire.PutUint32At(out, 16, headerSize)
	wire.PutUint32At(out, 20, fdtVersion)
	wire.PutUint32At(out, 24, lastCompVers)
	wire.PutUint32At(out, 28, bootCPUIDPhys)
	wire.PutUint32At(out, 32, uint32(len(stringsBytes)))
	wire.PutUint32At(out, 36, uint32(len(structBytes)))

	rsvOff := headerSize
	for _, e := range b.reservations {
		wire.PutUint64At(out, rsvOff, e.Address)
		wire.PutUint64At(out, rsvOff+8, e.Size)
		rsvOff += 16
	}
	// Terminating (0,0) entry: out is zero-initialized already, nothing to write.

	copy(out[offDtStruct:], structBytes)
	copy(out[offDtStrings:], stringsBytes)

	b.finished = true
	b.state = stateFinished

	return out, nil
}
