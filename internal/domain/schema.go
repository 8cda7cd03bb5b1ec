package domain

// Kind is the storage type of a variable's values in the output dataset.
type Kind int

const (
	Float64 Kind = iota
	Int32
)

// NumericPolicy selects which storage kind each field uses.
type NumericPolicy int

const (
	// AllFloat stores every data variable as float64.
	AllFloat NumericPolicy = iota
	// MixedInt stores true_wind_direction and air_humidity as int32;
	// the remaining eight variables stay float64.
	MixedInt
)

// MetadataProfile selects the annotation strategy and unit convention.
type MetadataProfile int

const (
	// ProfilePlain attaches units only, plus the featureType tag.
	ProfilePlain MetadataProfile = iota
	// ProfileCF attaches CF-convention units, standard_name, long_name,
	// and a history attribute.
	ProfileCF
)

// kinds holds a field's storage kind under each numeric policy. Adding a
// policy means adding a column here, not branching in the builder.
type kinds struct {
	allFloat Kind
	mixed    Kind
}

func (k kinds) For(p NumericPolicy) Kind {
	if p == MixedInt {
		return k.mixed
	}
	return k.allFloat
}

// Field describes one data variable of the fixed telemetry layout.
type Field struct {
	Name         string
	PlainUnit    string
	CFUnit       string
	StandardName string
	Kinds        kinds
}

// Unit returns the field's unit string under the given profile.
func (f Field) Unit(p MetadataProfile) string {
	if p == ProfileCF {
		return f.CFUnit
	}
	return f.PlainUnit
}

const (
	// TimeName is the name of the time coordinate in the output dataset.
	TimeName = "time"
	// TimeUnit is the epoch declaration attached to the time coordinate.
	TimeUnit = "seconds since 1970-01-01 00:00:00"
)

var floats = kinds{allFloat: Float64, mixed: Float64}

// Schema is the ordered catalog of the ten data variables, matching the
// source column order after the leading timestamp column.
var Schema = []Field{
	{Name: "latitude", PlainUnit: "decimal_degrees", CFUnit: "degree_north", StandardName: "latitude", Kinds: floats},
	{Name: "longitude", PlainUnit: "decimal_degrees", CFUnit: "degree_east", StandardName: "longitude", Kinds: floats},
	{Name: "true_wind_speed", PlainUnit: "m/s", CFUnit: "m s-1", StandardName: "wind_speed", Kinds: floats},
	{Name: "true_wind_direction", PlainUnit: "degrees", CFUnit: "degrees", StandardName: "wind_from_direction", Kinds: kinds{allFloat: Float64, mixed: Int32}},
	{Name: "air_temperature", PlainUnit: "degrees_celsius", CFUnit: "degree_Celsius", StandardName: "air_temperature", Kinds: floats},
	{Name: "air_humidity", PlainUnit: "percent", CFUnit: "percent", StandardName: "humidity_mixing_ratio", Kinds: kinds{allFloat: Float64, mixed: Int32}},
	{Name: "dew_point", PlainUnit: "degrees_celsius", CFUnit: "degree_Celsius", StandardName: "dew_point_temperature", Kinds: floats},
	{Name: "immediate_air_pressure", PlainUnit: "hPa", CFUnit: "hPa", StandardName: "air_pressure", Kinds: floats},
	{Name: "average_air_pressure_for_last_minute", PlainUnit: "hPa", CFUnit: "hPa s-1", StandardName: "tendency_of_air_pressure", Kinds: floats},
	{Name: "sea_level_air_pressure", PlainUnit: "hPa", CFUnit: "hPa", StandardName: "air_pressure_at_mean_sea_level", Kinds: floats},
}

// ColumnCount is the number of positional columns in a source row:
// the timestamp plus the ten data variables.
const ColumnCount = 1 + 10

// FieldByName looks up a schema field by variable name.
func FieldByName(name string) (Field, bool) {
	for _, f := range Schema {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
