package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML description of a device tree the CLI turns into a
// DTB: a fixed reservation list plus a single root Node.
type Config struct {
	Reservations []Reservation `yaml:"reservations"`
	Root         Node          `yaml:"root"`
}

// Reservation mirrors fdt.ReserveEntry in a YAML-friendly shape.
type Reservation struct {
	Address uint64 `yaml:"address"`
	Size    uint64 `yaml:"size"`
}

// Node is one devicetree node: a name, an unordered set of properties, and
// child nodes. Properties is a map so the YAML stays readable; Go map
// iteration order is irrelevant for FDT legality, only relative ordering
// among properties of unrelated names, which the Devicetree Spec does not
// constrain.
type Node struct {
	Name       string                  `yaml:"name"`
	Properties map[string]PropertySpec `yaml:"properties"`
	Children   []Node                  `yaml:"children"`
}

// PropertySpec is a one-of: exactly one field should be set, chosen by the
// author of the YAML document to pick which fdt.Builder typed helper to
// drive.
type PropertySpec struct {
	Null       bool     `yaml:"null"`
	String     *string  `yaml:"string"`
	StringList []string `yaml:"string_list"`
	U32        *uint32  `yaml:"u32"`
	U64        *uint64  `yaml:"u64"`
	ArrayU32   []uint32 `yaml:"array_u32"`
	ArrayU64   []uint64 `yaml:"array_u64"`
	Bytes      []byte   `yaml:"bytes"`
	Phandle    *uint32  `yaml:"phandle"`
}

// LoadConfig reads and parses a device-tree description from path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // operator-supplied config path
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}

	return &cfg, nil
}
