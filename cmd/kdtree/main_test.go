package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kdtree"
)

func TestParsePoint(t *testing.T) {
	p, err := parsePoint(" 15  19 ")
	require.NoError(t, err)
	assert.Equal(t, "15 19", p.String())
	assert.Equal(t, 2, p.NumDims())

	_, err = parsePoint("1 x")
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	require.NoError(t, run(logger, 1000, 2, 1000, 1, "15 19", "9 4"))

	err := run(logger, 100, 2, 1000, 1, "", "1 2 3")
	var dm *kdtree.ErrDimensionMismatch
	assert.ErrorAs(t, err, &dm)

	err = run(logger, 0, 2, 1000, 1, "", "9 4")
	assert.ErrorIs(t, err, kdtree.ErrNoPoints)
}
