package fdt

import "errors"

// Error sentinels for every rejection the builder can raise. Wrap one of
// these with internal/xerrors to attach context; compare with errors.Is.
var (
	ErrInvalidNodeName         = errors.New("fdt: invalid node name")
	ErrInvalidPropertyName     = errors.New("fdt: invalid property name")
	ErrPropertyBeforeBeginNode = errors.New("fdt: property before any node was opened")
	ErrPropertyAfterEndNode    = errors.New("fdt: property after the root node was closed")
	ErrUnbalancedEndNode       = errors.New("fdt: end_node called with no open node")
	ErrNodeHandleMismatch      = errors.New("fdt: end_node handle does not match current depth")
	ErrUnclosedNode            = errors.New("fdt: finish called with an open node")
	ErrDuplicatePhandle        = errors.New("fdt: phandle value already used")
	ErrInvalidPhandle          = errors.New("fdt: phandle value is reserved")
	ErrInvalidReservation      = errors.New("fdt: memory reservation has zero size")
	ErrPropertyTooLarge        = errors.New("fdt: property payload exceeds 32-bit length")
	ErrTotalSizeOverflow       = errors.New("fdt: finalized blob exceeds 32-bit totalsize")
	ErrFinished                = errors.New("fdt: builder already finished")

	// ErrTreeSealed is raised by begin_node once the root node has closed.
	// The property side of this temporal edge has its own name
	// (ErrPropertyAfterEndNode); this is the symmetric case for nodes.
	ErrTreeSealed = errors.New("fdt: tree already sealed, root node has closed")
)
