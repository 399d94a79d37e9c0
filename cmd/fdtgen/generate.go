package main

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"go.uber.org/zap"

	"github.com/devicetree-go/fdt"
)

// Generate drives an fdt.Builder from cfg, logging progress with log and
// animating sp while nodes are emitted. It owns no knowledge of FDT byte
// layout, only of the Builder's public API.
func Generate(cfg *Config, log *zap.Logger, sp *spinner.Spinner) ([]byte, error) {
	var b *fdt.Builder
	var err error

	if len(cfg.Reservations) > 0 {
		entries := make([]fdt.ReserveEntry, len(cfg.Reservations))
		for i, r := range cfg.Reservations {
			entries[i] = fdt.ReserveEntry{Address: r.Address, Size: r.Size}
		}
		b, err = fdt.NewWithReservations(entries)
	} else {
		b = fdt.New()
	}
	if err != nil {
		return nil, fmt.Errorf("build reservation list: %w", err)
	}

	nodeCount := 0
	if sp != nil {
		sp.Start()
		defer sp.Stop()
	}

	var walk func(n Node) error
	walk = func(n Node) error {
		handle, err := b.BeginNode(n.Name)
		if err != nil {
			return fmt.Errorf("begin_node %q: %w", n.Name, err)
		}
		nodeCount++
		if sp != nil {
			sp.Suffix = fmt.Sprintf(" emitting node %q (%d so far)", n.Name, nodeCount)
		}
		log.Debug("opened node", zap.String("name", n.Name), zap.Int("count", nodeCount))

		for propName, spec := range n.Properties {
			if err := applyProperty(b, propName, spec); err != nil {
				return fmt.Errorf("node %q property %q: %w", n.Name, propName, err)
			}
		}

		for _, child := range n.Children {
			if err := walk(child); err != nil {
				return err
			}
		}

		if err := b.EndNode(handle); err != nil {
			return fmt.Errorf("end_node %q: %w", n.Name, err)
		}
		return nil
	}

	if err := walk(cfg.Root); err != nil {
		log.Error("tree construction failed", zap.Error(err))
		return nil, err
	}

	blob, err := b.Finish()
	if err != nil {
		log.Error("finish failed", zap.Error(err))
		return nil, fmt.Errorf("finish: %w", err)
	}

	log.Info("blob assembled", zap.Int("nodes", nodeCount), zap.Int("bytes", len(blob)))
	return blob, nil
}

// applyProperty dispatches one YAML property spec to the matching typed
// fdt.Builder helper. Exactly one field of spec is expected to be set;
// PropertyPhandle takes priority since a phandle is never combined with
// another value kind.
func applyProperty(b *fdt.Builder, name string, spec PropertySpec) error {
	switch {
	case spec.Phandle != nil:
		return b.PropertyPhandle(*spec.Phandle)
	case spec.Null:
		return b.PropertyNull(name)
	case spec.String != nil:
		return b.PropertyString(name, *spec.String)
	case len(spec.StringList) > 0:
		return b.PropertyStringList(name, spec.StringList)
	case spec.U32 != nil:
		return b.PropertyU32(name, *spec.U32)
	case spec.U64 != nil:
		return b.PropertyU64(name, *spec.U64)
	case len(spec.ArrayU32) > 0:
		return b.PropertyArrayU32(name, spec.ArrayU32)
	case len(spec.ArrayU64) > 0:
		return b.PropertyArrayU64(name, spec.ArrayU64)
	case len(spec.Bytes) > 0:
		return b.Property(name, spec.Bytes)
	default:
		return b.PropertyNull(name)
	}
}

// newSpinner sets up a dot-style animation with a short tick interval,
// prefixed with what's being produced.
func newSpinner(label string) *spinner.Spinner {
	sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	sp.Prefix = label + " "
	return sp
}
