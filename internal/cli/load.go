package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arloliu/interop/compress"
	"github.com/arloliu/interop/errs"
	"github.com/arloliu/interop/format"
	"github.com/arloliu/interop/metric"
	"github.com/arloliu/interop/registry"
	"github.com/arloliu/interop/source"
)

// loadedFile is a decoded metric file together with how it was stored.
type loadedFile struct {
	path        string
	entry       registry.Entry
	set         metric.AnySet
	size        int
	compression format.CompressionType
}

var compressionExts = []string{".zst", ".zstd", ".gz", ".lz4", ".s2"}

// detectGroup infers the metric group from a file name such as
// "QMetrics2030Out.bin" or "TileMetricsOut.bin.zst".
func detectGroup(path string) (registry.Entry, error) {
	base := strings.ToLower(filepath.Base(path))
	for _, ext := range compressionExts {
		base = strings.TrimSuffix(base, ext)
	}

	for _, e := range registry.Entries() {
		if base == strings.ToLower(e.FileName(true)) || base == strings.ToLower(e.FileName(false)) {
			return e, nil
		}
	}

	return registry.Entry{}, fmt.Errorf("%w: cannot infer the metric group of %q, use --group", errs.ErrInvalidArgument, filepath.Base(path))
}

// resolveEntry returns the entry named by --group, or the one inferred from path.
func resolveEntry(cmd *cobra.Command, path string) (registry.Entry, error) {
	name, _ := cmd.Flags().GetString("group")
	if name != "" {
		return registry.LookupName(name)
	}

	return detectGroup(path)
}

func loadFile(cmd *cobra.Command, path string) (*loadedFile, error) {
	entry, err := resolveEntry(cmd, path)
	if err != nil {
		return nil, err
	}

	data, err := source.ReadFile(path, 0)
	if err != nil {
		return nil, err
	}

	log := logger(cmd).WithMetricGroup(entry.Group).WithPath(path)
	raw, ct, err := compress.Decompress(data)
	if err != nil {
		log.LogRead(cmd.Context(), len(data), ct, 0, err)
		return nil, err
	}

	set, err := entry.Codec.DecodeAny(raw)
	if err != nil {
		log.LogRead(cmd.Context(), len(data), ct, 0, err)
		return nil, err
	}
	log.LogRead(cmd.Context(), len(data), ct, set.Len(), nil)

	return &loadedFile{
		path:        path,
		entry:       entry,
		set:         set,
		size:        len(data),
		compression: ct,
	}, nil
}
