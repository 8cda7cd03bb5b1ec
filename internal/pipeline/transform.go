package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/marine-obs-etl/internal/domain"
)

// ConvertTransformer implements Transformer using the domain conversion
// steps: build, annotate, extents, provenance, configured-attribute merge.
type ConvertTransformer struct {
	profile    domain.MetadataProfile
	policy     domain.NumericPolicy
	extraAttrs map[string]string
	identity   Identity
	logger     *slog.Logger
}

// Identity names the invoking user and the converter itself for the
// provenance attribute. It is resolved once at startup and passed in
// explicitly rather than read from process state at call time.
type Identity struct {
	Tool    string
	Version string
	User    string
}

// NewTransformer creates a ConvertTransformer.
func NewTransformer(profile domain.MetadataProfile, policy domain.NumericPolicy,
	extraAttrs map[string]string, identity Identity, logger *slog.Logger) *ConvertTransformer {
	return &ConvertTransformer{
		profile:    profile,
		policy:     policy,
		extraAttrs: extraAttrs,
		identity:   identity,
		logger:     logger,
	}
}

// Transform assembles and fully annotates the dataset for one parsed file.
// After the merge step the dataset is attribute-complete and is not mutated
// again before writing.
func (t *ConvertTransformer) Transform(_ context.Context, table domain.ColumnTable, outPath string) (*domain.Dataset, error) {
	ds, err := domain.BuildDataset(table, t.policy)
	if err != nil {
		return nil, err
	}

	if err := domain.Annotate(ds, t.profile, Title(table.Path)); err != nil {
		return nil, err
	}

	if err := domain.ComputeExtents(ds); err != nil {
		return nil, err
	}

	if t.profile == domain.ProfileCF {
		domain.RecordProvenance(ds, domain.Provenance{
			Tool:    t.identity.Tool,
			Version: t.identity.Version,
			User:    t.identity.User,
			Input:   table.Path,
			Output:  outPath,
		})
	}

	domain.MergeGlobalAttributes(ds, t.extraAttrs)
	return ds, nil
}
