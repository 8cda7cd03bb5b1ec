package domain

// Annotate attaches per-variable and dataset-level metadata according to the
// selected profile. Every one of the ten data variables and the time
// coordinate must resolve to a non-empty unit; a miss is a LookupError, not
// a skip.
func Annotate(ds *Dataset, profile MetadataProfile, title string) error {
	for i := range ds.Vars {
		v := &ds.Vars[i]
		f, ok := FieldByName(v.Name)
		if !ok {
			return &LookupError{Variable: v.Name, Table: "schema"}
		}

		unit := f.Unit(profile)
		if unit == "" {
			return &LookupError{Variable: v.Name, Table: "unit"}
		}
		v.Attrs.Set("units", unit)

		if profile == ProfileCF {
			if f.StandardName == "" {
				return &LookupError{Variable: v.Name, Table: "standard_name"}
			}
			v.Attrs.Set("standard_name", f.StandardName)
			v.Attrs.Set("long_name", f.Name)
		}
	}

	ds.TimeAttrs.Set("units", TimeUnit)

	if profile == ProfilePlain {
		ds.Global.Set("featureType", "timeSeries")
	}
	ds.Global.Set("title", title)
	return nil
}
