package domain

import "sort"

// MergeGlobalAttributes layers configured deployment metadata (institution,
// license, contact) onto the dataset's global attributes. Non-empty entries
// overwrite any previously computed attribute with the same name; empty
// values are skipped and never delete an existing attribute.
//
// Keys are applied in sorted order so the output is deterministic across
// runs despite map iteration order.
func MergeGlobalAttributes(ds *Dataset, extra map[string]string) {
	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if extra[k] == "" {
			continue
		}
		ds.Global.Set(k, extra[k])
	}
}
