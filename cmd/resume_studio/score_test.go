package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobIdentity_ExplicitIDWins(t *testing.T) {
	id, err := jobIdentity("a2a6e8f0-1f2d-4b52-9c3d-0a1b2c3d4e5f", "https://example.com/jobs/1", "posting text")
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, "a2a6e8f0-1f2d-4b52-9c3d-0a1b2c3d4e5f", id.String())
}

func TestJobIdentity_InvalidExplicitID(t *testing.T) {
	_, err := jobIdentity("not-a-uuid", "", "posting text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --job-id")
}

func TestJobIdentity_URLDerivedIsStable(t *testing.T) {
	first, err := jobIdentity("", "https://example.com/jobs/1", "fetched body")
	require.NoError(t, err)
	second, err := jobIdentity("", "https://example.com/jobs/1", "different fetch of the same page")
	require.NoError(t, err)

	// Same posting URL, same identity, regardless of fetched body drift.
	assert.Equal(t, first, second)
}

func TestJobIdentity_DifferentPostingsDiffer(t *testing.T) {
	jobA, err := jobIdentity("", "https://example.com/jobs/1", "")
	require.NoError(t, err)
	jobB, err := jobIdentity("", "https://example.com/jobs/2", "")
	require.NoError(t, err)
	assert.NotEqual(t, jobA, jobB)

	fileA, err := jobIdentity("", "", "Backend engineer posting")
	require.NoError(t, err)
	fileB, err := jobIdentity("", "", "Frontend engineer posting")
	require.NoError(t, err)
	assert.NotEqual(t, fileA, fileB)
}

func TestJobIdentity_FileDerivedIsStable(t *testing.T) {
	first, err := jobIdentity("", "", "Backend engineer posting")
	require.NoError(t, err)
	second, err := jobIdentity("", "", "Backend engineer posting")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
