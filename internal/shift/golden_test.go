package shift_test

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/require"
)

// Group is a named collection of test cases from a YAML golden file.
type Group[C any] struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Cases       []C    `yaml:"cases"`
}

func loadGolden[C any](t *testing.T, name string) []Group[C] {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name)) //nolint:gosec // test helper reads known testdata files
	require.NoError(t, err)

	var groups []Group[C]

	require.NoError(t, yaml.Unmarshal(data, &groups), "parsing %s", name)
	require.NotEmpty(t, groups, "no groups in %s", name)

	return groups
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()

	data, err := hex.DecodeString(s)
	require.NoError(t, err, "decoding %q", s)

	return data
}
