package interop

import (
	"context"
	"errors"
	"fmt"
	"path"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/arloliu/interop/encoding"
	"github.com/arloliu/interop/errs"
	"github.com/arloliu/interop/format"
	"github.com/arloliu/interop/metric"
	"github.com/arloliu/interop/registry"
	"github.com/arloliu/interop/source"
)

// Run holds the metric sets loaded from one run folder.
type Run struct {
	sets    map[format.MetricGroup]metric.AnySet
	missing []format.MetricGroup
}

// Set returns the set of a group, if its file was found.
func (r *Run) Set(group format.MetricGroup) (metric.AnySet, bool) {
	set, ok := r.sets[group]
	return set, ok
}

// Groups returns the loaded groups in identifier order.
func (r *Run) Groups() []format.MetricGroup {
	groups := make([]format.MetricGroup, 0, len(r.sets))
	for g := range r.sets {
		groups = append(groups, g)
	}
	slices.Sort(groups)

	return groups
}

// Missing returns the requested groups that had no file in the run folder.
func (r *Run) Missing() []format.MetricGroup {
	return slices.Clone(r.missing)
}

// RunSet returns the typed set of the codec's group.
func RunSet[T metric.Record](r *Run, codec *encoding.Codec[T]) (*metric.Set[T], bool) {
	set, ok := r.sets[codec.Group()]
	if !ok {
		return nil, false
	}
	typed, ok := set.(*metric.Set[T])

	return typed, ok
}

// LoadRun reads the files of groups from a run folder exposed by src.
//
// Files are looked up as "InterOp/<Prefix>Metrics<Suffix>Out.bin", falling
// back to the name without "Out". A group without a file is reported by
// Run.Missing rather than failing the load, since instruments only write the
// groups they support. An empty group list loads every group. Callers that
// need dependent groups expand the list with registry.GroupsToLoad first.
//
// Files are decoded concurrently, bounded by WithConcurrency.
func LoadRun(ctx context.Context, src source.Source, groups []format.MetricGroup, opts ...Option) (*Run, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		groups = format.AllGroups()
	}
	groups = slices.Clone(groups)
	slices.Sort(groups)
	groups = slices.Compact(groups)

	entries := make([]registry.Entry, len(groups))
	for i, g := range groups {
		if entries[i], err = registry.Lookup(g); err != nil {
			return nil, err
		}
	}

	sets := make([]metric.AnySet, len(entries))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.concurrency)
	for i, entry := range entries {
		eg.Go(func() error {
			set, err := loadGroup(egCtx, cfg, src, entry)
			if err != nil {
				return err
			}
			sets[i] = set

			return nil
		})
	}

	run := &Run{sets: make(map[format.MetricGroup]metric.AnySet, len(entries))}
	if err := eg.Wait(); err != nil {
		cfg.logger.LogRun(ctx, 0, 0, err)
		return nil, err
	}

	for i, set := range sets {
		if set == nil {
			run.missing = append(run.missing, entries[i].Group)
			continue
		}
		run.sets[entries[i].Group] = set
	}
	cfg.logger.LogRun(ctx, len(run.sets), len(run.missing), nil)

	return run, nil
}

// loadGroup returns a nil set without error when the group has no file.
func loadGroup(ctx context.Context, cfg *config, src source.Source, entry registry.Entry) (metric.AnySet, error) {
	for _, useOut := range []bool{true, false} {
		name := path.Join(registry.InterOpDir, entry.FileName(useOut))
		log := cfg.logger.WithMetricGroup(entry.Group).WithPath(name)

		data, err := src.Open(ctx, name)
		if errors.Is(err, errs.ErrFileNotFound) {
			continue
		}
		if err != nil {
			log.LogRead(ctx, 0, format.CompressionNone, 0, err)
			return nil, err
		}

		raw, ct, err := inflate(cfg, data)
		if err == nil {
			var set metric.AnySet
			if set, err = entry.Codec.DecodeAny(raw); err == nil {
				log.LogRead(ctx, len(data), ct, set.Len(), nil)
				return set, nil
			}
		}
		log.LogRead(ctx, len(data), ct, 0, err)

		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return nil, nil
}
