package csvfile

import (
	"context"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/marine-obs-etl/internal/domain"
)

const scenarioRow = "1700000000,34.5,-120.2,5.1,180,18.2,60,12.0,1013.2,0.1,1014.0\n"

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExtract_HappyPath(t *testing.T) {
	path := writeFixture(t, "buoy.csv",
		scenarioRow+"1700000060,34.6,-120.1,4.8,175,18.4,61,12.2,1013.1,0.0,1013.9\n")

	table, err := NewReader(slog.Default()).Extract(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, path, table.Path)
	assert.Equal(t, 2, table.Rows)
	assert.Equal(t, []int64{1700000000, 1700000060}, table.Timestamps)
	assert.Equal(t, []float64{34.5, 34.6}, table.Columns["latitude"])
	assert.Equal(t, []float64{1013.2, 1013.1}, table.Columns["immediate_air_pressure"])
	assert.Len(t, table.Columns, 10)
	for name, col := range table.Columns {
		assert.Len(t, col, 2, name)
	}
}

func TestExtract_MissingValues(t *testing.T) {
	path := writeFixture(t, "gaps.csv",
		"1700000000,,NaN,5.1,180,18.2,60,12.0,1013.2,0.1,1014.0\n")

	table, err := NewReader(slog.Default()).Extract(context.Background(), path)
	require.NoError(t, err)

	assert.True(t, math.IsNaN(table.Columns["latitude"][0]))
	assert.True(t, math.IsNaN(table.Columns["longitude"][0]))
	assert.Equal(t, 5.1, table.Columns["true_wind_speed"][0])
}

func TestExtract_WrongColumnCount(t *testing.T) {
	// Ten columns: one field short of the fixed layout.
	path := writeFixture(t, "short.csv",
		"1700000000,34.5,-120.2,5.1,180,18.2,60,12.0,1013.2,0.1\n")

	_, err := NewReader(slog.Default()).Extract(context.Background(), path)
	require.Error(t, err)

	var fe *domain.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, path, fe.Path)
	assert.Equal(t, 1, fe.Row)
}

func TestExtract_BadCell(t *testing.T) {
	path := writeFixture(t, "bad.csv",
		scenarioRow+"1700000060,34.6,-120.1,gusty,175,18.4,61,12.2,1013.1,0.0,1013.9\n")

	_, err := NewReader(slog.Default()).Extract(context.Background(), path)
	require.Error(t, err)

	var fe *domain.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 2, fe.Row)
	assert.Equal(t, "true_wind_speed", fe.Column)
}

func TestExtract_BadTimestamp(t *testing.T) {
	path := writeFixture(t, "badts.csv",
		"yesterday,34.5,-120.2,5.1,180,18.2,60,12.0,1013.2,0.1,1014.0\n")

	_, err := NewReader(slog.Default()).Extract(context.Background(), path)
	require.Error(t, err)

	var fe *domain.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "timestamp", fe.Column)
}

func TestExtract_EmptyFile(t *testing.T) {
	path := writeFixture(t, "empty.csv", "")

	table, err := NewReader(slog.Default()).Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Zero(t, table.Rows)
	assert.Empty(t, table.Timestamps)
}

func TestExtract_MissingFile(t *testing.T) {
	_, err := NewReader(slog.Default()).Extract(context.Background(),
		filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
