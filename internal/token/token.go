// Package token defines the FDT structure-block tokens and the primitive
// emitters that turn a single builder call into the bytes the Devicetree
// Specification says belong in the structure block. The builder's state
// machine decides *whether* a call is legal; this package only knows how
// to encode the call once it has been accepted.
package token

import "github.com/devicetree-go/fdt/internal/wire"

// Structure-block tokens, each a big-endian u32 (Devicetree Spec §5.3).
const (
	BeginNode uint32 = 0x00000001
	EndNode   uint32 = 0x00000002
	Prop      uint32 = 0x00000003
	Nop       uint32 = 0x00000004
	End       uint32 = 0x00000009
)

// EmitBeginNode appends an FDT_BEGIN_NODE token followed by the
// NUL-terminated node name, padded to 4-byte alignment.
func EmitBeginNode(buf *wire.Buffer, name string) {
	buf.PutUint32(BeginNode)
	buf.PutBytes([]byte(name))
	buf.PutBytes([]byte{0})
	buf.Align4()
}

// EmitEndNode appends an FDT_END_NODE token.
func EmitEndNode(buf *wire.Buffer) {
	buf.PutUint32(EndNode)
}

// EmitProp appends an FDT_PROP token: the value length, the interned
// name's offset, the value bytes, and alignment padding.
func EmitProp(buf *wire.Buffer, nameOff uint32, value []byte) {
	buf.PutUint32(Prop)
	buf.PutUint32(uint32(len(value)))
	buf.PutUint32(nameOff)
	buf.PutBytes(value)
	buf.Align4()
}

// EmitEnd appends the FDT_END token terminating the structure block.
func EmitEnd(buf *wire.Buffer) {
	buf.PutUint32(End)
}
