package interop

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/interop/encoding"
	"github.com/arloliu/interop/metric"
)

// newErrorSet builds an error metric set of n cycles on lane 1, tile 1101.
func newErrorSet(t testing.TB, n int) *metric.Set[metric.ErrorMetric] {
	t.Helper()

	h, err := encoding.Error.NewHeader(3, nil, 0)
	require.NoError(t, err)

	set := encoding.Error.NewSet(h)
	for i := range n {
		set.Insert(metric.ErrorMetric{
			CycleID:        metric.CycleID{Lane: 1, Tile: 1101, Cycle: uint32(i + 1)},
			ErrorRate:      float32(i) * 0.25,
			MismatchCounts: [metric.MaxMismatch + 1]uint32{uint32(i), 2, 3, 4, 5},
		})
	}

	return set
}

// newTileSet builds a tile metric set with density and count for two tiles.
func newTileSet(t testing.TB) *metric.Set[metric.TileMetric] {
	t.Helper()

	h, err := encoding.Tile.NewHeader(2, nil, 0)
	require.NoError(t, err)

	set := encoding.Tile.NewSet(h)
	for _, tile := range []uint32{1101, 1102} {
		set.Insert(metric.TileMetric{
			TileID: metric.TileID{Lane: 1, Tile: tile},
			Entries: []metric.TileEntry{
				{Code: metric.CodeClusterDensity, Value: 2350000},
				{Code: metric.CodeClusterCount, Value: 6450000},
			},
		})
	}

	return set
}

func encodeSet[T metric.Record](t testing.TB, codec *encoding.Codec[T], set *metric.Set[T]) []byte {
	t.Helper()

	size, err := CalculateBufferSize(codec, set)
	require.NoError(t, err)
	data, err := WriteToBuffer(codec, set, size)
	require.NoError(t, err)

	return data
}
