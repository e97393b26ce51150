package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/matzehuels/bumpless/pkg/bpd"
	"github.com/matzehuels/bumpless/pkg/observability"
)

// Enumerate walks the orbit of opts.Perm under the requested variant.
// The seed grid comes first. A non-zero opts.Limit truncates the orbit
// once that many grids have been produced.
func Enumerate(ctx context.Context, opts Options) ([]bpd.Grid, error) {
	variant, err := bpd.ParseVariant(opts.Variant)
	if err != nil {
		return nil, err
	}

	observability.Pipeline().OnEnumStart(ctx, opts.Variant, opts.Perm)
	start := time.Now()

	e, err := variant.Enumerate(bpd.Perm(opts.Perm))
	if err != nil {
		observability.Pipeline().OnEnumComplete(ctx, opts.Variant, 0, time.Since(start), err)
		return nil, err
	}

	var grids []bpd.Grid
	for {
		if err := ctx.Err(); err != nil {
			observability.Pipeline().OnEnumComplete(ctx, opts.Variant, len(grids), time.Since(start), err)
			return nil, err
		}
		b, ok := e.Next()
		if !ok {
			break
		}
		grids = append(grids, b)
		if opts.Limit > 0 && len(grids) >= opts.Limit {
			break
		}
	}

	observability.Pipeline().OnEnumComplete(ctx, opts.Variant, len(grids), time.Since(start), nil)
	return grids, nil
}

// MarshalOrbit serializes an orbit for caching and the JSON output
// format. Grids encode as their row strings, so the payload stays
// readable and stable across releases.
func MarshalOrbit(grids []bpd.Grid) ([]byte, error) {
	data, err := json.Marshal(grids)
	if err != nil {
		return nil, fmt.Errorf("marshal orbit: %w", err)
	}
	return data, nil
}

// UnmarshalOrbit reverses [MarshalOrbit].
func UnmarshalOrbit(data []byte) ([]bpd.Grid, error) {
	var grids []bpd.Grid
	if err := json.Unmarshal(data, &grids); err != nil {
		return nil, fmt.Errorf("unmarshal orbit: %w", err)
	}
	return grids, nil
}
