// Package domain models marine weather-station telemetry and its conversion
// into a self-describing, metadata-annotated dataset.
//
// # Data Source
//
// Input files are delimited text exports from shipboard and moored weather
// stations. Each row is one observation; there is no header row and the
// column layout is fixed at exactly eleven positional columns:
//
//	timestamp, latitude, longitude, true_wind_speed, true_wind_direction,
//	air_temperature, air_humidity, dew_point, immediate_air_pressure,
//	average_air_pressure_for_last_minute, sea_level_air_pressure
//
// Timestamps are integer seconds since 1970-01-01T00:00:00Z. Positions are
// decimal degrees. Missing readings appear as empty cells or the literal
// token "NaN" and are carried through as IEEE NaN rather than dropped, so
// every variable keeps index-for-index alignment with the time coordinate.
//
// # Dataset Model
//
// A [Dataset] holds one "time" coordinate plus ten data variables, each a
// one-dimensional sequence aligned to the time axis. The time coordinate is
// taken from the source as-is: it is not deduplicated and not sorted.
//
// The [Schema] catalog is the single source of truth for the column order,
// per-field storage kinds, unit strings, and CF standard names. Two numeric
// policies exist: [AllFloat] keeps every variable as float64, [MixedInt]
// stores true_wind_direction and air_humidity as int32. The policy is a
// per-field annotation in the schema, not a branch in the builder.
//
// # Metadata Profiles
//
// Two annotation profiles are supported, selected by configuration:
//
//	plain  per-variable units only, plus a featureType=timeSeries tag
//	cf     CF-convention units, standard_name and long_name per variable,
//	       plus a free-text history (provenance) attribute
//
// The unit convention follows the profile as a whole (e.g. "m/s" under
// plain, "m s-1" under cf); mixing conventions within one artifact is a
// configuration defect.
//
// # Coverage Extents
//
// Geospatial and temporal coverage attributes are minimum/maximum
// reductions that skip NaN samples. A variable with no valid samples
// yields a NaN extent attribute rather than an error: an input with no
// usable positions must still produce a writable artifact.
package domain
