package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenarioTable builds a one-row table matching the canonical test row
// 1700000000,34.5,-120.2,5.1,180,18.2,60,12.0,1013.2,0.1,1014.0.
func scenarioTable() ColumnTable {
	return ColumnTable{
		Path:       "data/buoy_2023.csv",
		Rows:       1,
		Timestamps: []int64{1700000000},
		Columns: map[string][]float64{
			"latitude":                             {34.5},
			"longitude":                            {-120.2},
			"true_wind_speed":                      {5.1},
			"true_wind_direction":                  {180},
			"air_temperature":                      {18.2},
			"air_humidity":                         {60},
			"dew_point":                            {12.0},
			"immediate_air_pressure":               {1013.2},
			"average_air_pressure_for_last_minute": {0.1},
			"sea_level_air_pressure":               {1014.0},
		},
	}
}

func TestBuildDataset_AllFloat(t *testing.T) {
	ds, err := BuildDataset(scenarioTable(), AllFloat)
	require.NoError(t, err)

	assert.Equal(t, []int64{1700000000}, ds.Time)
	assert.Len(t, ds.Vars, 10)
	require.NoError(t, ds.CheckAligned())

	lat := ds.Var("latitude")
	require.NotNil(t, lat)
	assert.Equal(t, []float64{34.5}, lat.Values)

	dir := ds.Var("true_wind_direction")
	require.NotNil(t, dir)
	assert.Equal(t, []float64{180}, dir.Values)
}

func TestBuildDataset_MixedInt(t *testing.T) {
	ds, err := BuildDataset(scenarioTable(), MixedInt)
	require.NoError(t, err)

	dir := ds.Var("true_wind_direction")
	require.NotNil(t, dir)
	assert.Equal(t, []int32{180}, dir.Values)

	hum := ds.Var("air_humidity")
	require.NotNil(t, hum)
	assert.Equal(t, []int32{60}, hum.Values)

	// Everything else stays floating point.
	for _, name := range []string{"latitude", "longitude", "true_wind_speed",
		"air_temperature", "dew_point", "immediate_air_pressure",
		"average_air_pressure_for_last_minute", "sea_level_air_pressure"} {
		v := ds.Var(name)
		require.NotNil(t, v, name)
		assert.IsType(t, []float64{}, v.Values, name)
	}
}

func TestBuildDataset_PreservesOrderAndDuplicates(t *testing.T) {
	table := scenarioTable()
	table.Rows = 3
	table.Timestamps = []int64{1700000100, 1700000000, 1700000000}
	for name := range table.Columns {
		table.Columns[name] = []float64{1, 2, 2}
	}

	ds, err := BuildDataset(table, AllFloat)
	require.NoError(t, err)

	assert.Equal(t, []int64{1700000100, 1700000000, 1700000000}, ds.Time)
	require.NoError(t, ds.CheckAligned())
}

func TestBuildDataset_NaNInIntegerColumn(t *testing.T) {
	table := scenarioTable()
	table.Columns["air_humidity"] = []float64{math.NaN()}

	_, err := BuildDataset(table, MixedInt)
	require.Error(t, err)

	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "data/buoy_2023.csv", fe.Path)
	assert.Equal(t, "air_humidity", fe.Column)

	// The same table is fine under the all-float policy.
	ds, err := BuildDataset(table, AllFloat)
	require.NoError(t, err)
	vals := ds.Var("air_humidity").Values.([]float64)
	assert.True(t, math.IsNaN(vals[0]))
}

func TestBuildDataset_MissingColumn(t *testing.T) {
	table := scenarioTable()
	delete(table.Columns, "dew_point")

	_, err := BuildDataset(table, AllFloat)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dew_point")
	assert.Contains(t, err.Error(), table.Path)
}

func TestBuildDataset_LengthMismatch(t *testing.T) {
	table := scenarioTable()
	table.Columns["latitude"] = []float64{34.5, 34.6}

	_, err := BuildDataset(table, AllFloat)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "latitude")
}
