// Package strtab implements the strings-block interner: a deduplicating
// table from property name to its first-seen, stable byte offset.
//
// It is append-only and single-owner: there is no read path, no removal,
// and no free-list bookkeeping, since a single-pass builder never needs
// any of them.
package strtab

// Table deduplicates NUL-terminated strings and hands back stable offsets.
type Table struct {
	data    []byte
	offsets map[string]uint32
}

// New returns an empty string table.
func New() *Table {
	return &Table{
		offsets: make(map[string]uint32),
	}
}

// Intern returns the offset of name within the table's data segment,
// appending name plus a NUL terminator on first use and returning the
// existing offset on every subsequent call with the same key.
func (t *Table) Intern(name string) uint32 {
	if off, ok := t.offsets[name]; ok {
		return off
	}

	off := uint32(len(t.data))
	t.data = append(t.data, name...)
	t.data = append(t.data, 0)
	t.offsets[name] = off

	return off
}

// Bytes returns the accumulated, NUL-terminated, deduplicated strings
// segment in first-seen order.
func (t *Table) Bytes() []byte {
	return t.data
}

// Len returns the size in bytes of the strings segment.
func (t *Table) Len() int {
	return len(t.data)
}
