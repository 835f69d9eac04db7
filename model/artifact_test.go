package model

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtifactRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "seasons.json")
	seasons := []Season{{ID: "2024-25", Label: "2024/25", StartYear: 2024, EndYear: 2025}}

	require.NoError(t, WriteArtifact(path, seasons))

	got, err := ReadArtifact[Season](path)
	require.NoError(t, err)
	assert.Equal(t, seasons, got)
}

func TestArtifactObjectRoundTrip(t *testing.T) {
	type doc struct {
		Clubs []Club `json:"clubs"`
	}
	path := filepath.Join(t.TempDir(), "clubs.json")
	in := doc{Clubs: []Club{{ID: "c1", Name: "Riverton FC"}}}

	require.NoError(t, WriteArtifactObject(path, &in))

	got, err := ReadArtifactObject[doc](path)
	require.NoError(t, err)
	assert.Equal(t, in, *got)
}

func TestReadArtifactUnreadable(t *testing.T) {
	_, err := ReadArtifact[Season](filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnreadableArtifact))
}

func TestReadArtifactMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{oops"), 0o644))

	_, err := ReadArtifact[Season](path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnreadableArtifact))
}

func TestParseFoot(t *testing.T) {
	assert.Equal(t, FootLeft, ParseFoot("Left"))
	assert.Equal(t, FootRight, ParseFoot("R"))
	assert.Equal(t, FootUnknown, ParseFoot(""))
	assert.Equal(t, FootUnknown, ParseFoot("both"))
}
