package main

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadConfig_Example(t *testing.T) {
	cfg, err := LoadConfig("testdata/example.yaml")
	require.NoError(t, err)

	require.Len(t, cfg.Reservations, 2)
	assert.Equal(t, uint64(0x1000), cfg.Reservations[0].Address)
	assert.Equal(t, "", cfg.Root.Name)
	require.Len(t, cfg.Root.Children, 2)
	assert.Equal(t, "cpu@0", cfg.Root.Children[0].Name)
}

func TestGenerate_ProducesValidBlob(t *testing.T) {
	cfg, err := LoadConfig("testdata/example.yaml")
	require.NoError(t, err)

	log := zap.NewNop()
	blob, err := Generate(cfg, log, nil)
	require.NoError(t, err)

	assert.Equal(t, []byte{0xD0, 0x0D, 0xFE, 0xED}, blob[0:4])
	assert.GreaterOrEqual(t, len(blob), 40+16*3)

	totalSize := binary.BigEndian.Uint32(blob[4:8])
	assert.Equal(t, uint32(len(blob)), totalSize)
}

func TestGenerate_RejectsDuplicatePhandle(t *testing.T) {
	cfg := &Config{
		Root: Node{
			Name: "root",
			Children: []Node{
				{Name: "a", Properties: map[string]PropertySpec{"phandle": {Phandle: ptrU32(1)}}},
				{Name: "b", Properties: map[string]PropertySpec{"phandle": {Phandle: ptrU32(1)}}},
			},
		},
	}

	_, err := Generate(cfg, zap.NewNop(), nil)
	assert.Error(t, err)
}

func ptrU32(v uint32) *uint32 { return &v }
