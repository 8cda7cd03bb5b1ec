package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema_Catalog(t *testing.T) {
	assert.Len(t, Schema, 10)
	assert.Equal(t, 11, ColumnCount)

	for _, f := range Schema {
		assert.NotEmpty(t, f.PlainUnit, "plain unit for %s", f.Name)
		assert.NotEmpty(t, f.CFUnit, "cf unit for %s", f.Name)
		assert.NotEmpty(t, f.StandardName, "standard name for %s", f.Name)
	}
}

func TestSchema_KindPerPolicy(t *testing.T) {
	tests := []struct {
		field    string
		allFloat Kind
		mixed    Kind
	}{
		{"latitude", Float64, Float64},
		{"true_wind_direction", Float64, Int32},
		{"air_humidity", Float64, Int32},
		{"sea_level_air_pressure", Float64, Float64},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			f, ok := FieldByName(tt.field)
			require.True(t, ok)
			assert.Equal(t, tt.allFloat, f.Kinds.For(AllFloat))
			assert.Equal(t, tt.mixed, f.Kinds.For(MixedInt))
		})
	}
}

func TestField_UnitConvention(t *testing.T) {
	f, ok := FieldByName("true_wind_speed")
	require.True(t, ok)
	assert.Equal(t, "m/s", f.Unit(ProfilePlain))
	assert.Equal(t, "m s-1", f.Unit(ProfileCF))

	f, ok = FieldByName("latitude")
	require.True(t, ok)
	assert.Equal(t, "decimal_degrees", f.Unit(ProfilePlain))
	assert.Equal(t, "degree_north", f.Unit(ProfileCF))
}

func TestFieldByName_Unknown(t *testing.T) {
	_, ok := FieldByName("sea_surface_salinity")
	assert.False(t, ok)
}
