package kopt_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gokopt/kopt/kopt"
	"github.com/stretchr/testify/require"
)

func TestTourFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tour.tsp")
	want := []int{3, 1, 0, 2}

	require.NoError(t, kopt.WriteTourFile(path, want))
	got, err := kopt.ReadTourFile(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestReadTourFile_MissingDimension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tour.tsp")
	require.NoError(t, writeRaw(path, "TOUR_SECTION\n1\n2\n3\n"))

	_, err := kopt.ReadTourFile(path)
	require.ErrorIs(t, err, kopt.ErrMalformedFile)
}

func TestReadTourFile_ShortSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tour.tsp")
	require.NoError(t, writeRaw(path, "DIMENSION: 4\nTOUR_SECTION\n1\n2\n"))

	_, err := kopt.ReadTourFile(path)
	require.ErrorIs(t, err, kopt.ErrMalformedFile)
}

func TestReadCoordinateFile_ParsesSequentialIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.tsp")
	content := "DIMENSION: 3\nNODE_COORD_SECTION\n1 0.0 0.0\n2 3.0 4.0\n3 -5.0 2.0\n"
	require.NoError(t, writeRaw(path, content))

	x, y, err := kopt.ReadCoordinateFile(path)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 3, -5}, x)
	require.Equal(t, []float64{0, 4, 2}, y)
}

func TestReadCoordinateFile_MismatchedID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.tsp")
	content := "DIMENSION: 2\nNODE_COORD_SECTION\n1 0.0 0.0\n3 1.0 1.0\n"
	require.NoError(t, writeRaw(path, content))

	_, _, err := kopt.ReadCoordinateFile(path)
	require.ErrorIs(t, err, kopt.ErrPointIDMismatch)
}

func TestReadCoordinateFile_MalformedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.tsp")
	content := "DIMENSION: 1\nNODE_COORD_SECTION\n1 not-a-number 0.0\n"
	require.NoError(t, writeRaw(path, content))

	_, _, err := kopt.ReadCoordinateFile(path)
	require.ErrorIs(t, err, kopt.ErrMalformedFile)
}

func writeRaw(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
