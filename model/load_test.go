package model

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRod(t *testing.T) {
	cases := map[string]string{
		".json": `{"length": 0.5, "cells": 5, "material": "copper", "ta": 100, "tb": 500}`,
		".yaml": "length: 0.5\ncells: 5\nmaterial: copper\nta: 100\ntb: 500\n",
		".toml": "length = 0.5\ncells = 5\nmaterial = \"copper\"\nta = 100.0\ntb = 500.0\n",
	}
	for ext, content := range cases {
		t.Run(ext, func(t *testing.T) {
			rod, err := ParseRod([]byte(content), ext)
			require.NoError(t, err)
			assert.Equal(t, 0.5, rod.Length)
			assert.Equal(t, 5, rod.Cells)
			assert.Equal(t, "copper", rod.Material)
			assert.Equal(t, 100.0, rod.TA)
			assert.Equal(t, 500.0, rod.TB)
		})
	}
}

func TestLoadRod(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rod.yml")
	content := "length: 0.5\ncells: 2\narea: [0.001, 0.001]\nconductivity: [1000, 500]\nta: 100\ntb: 500\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	rod, err := LoadRod(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.001, 0.001}, rod.Area)
	assert.Equal(t, []float64{1000, 500}, rod.Conductivity)

	_, err = LoadRod(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = LoadRod(bad)
	require.Error(t, err)
}

func TestConfigError(t *testing.T) {
	err := error(&ConfigError{Field: "conductivity", Index: 3, Value: -1, Reason: "must be positive"})
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
	assert.Contains(t, err.Error(), "conductivity[3]")

	var ce *ConfigError
	require.True(t, errors.As(NewFieldError("length", 0, "must be positive"), &ce))
	assert.Equal(t, "length", ce.Field)
	assert.Equal(t, -1, ce.Index)
}
