package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/interop/errs"
	"github.com/arloliu/interop/format"
)

func qLayout(version uint8) Layout {
	return Layout{
		Group:         format.GroupQ,
		Version:       version,
		HasRecordSize: true,
		HasBins:       version >= 5,
		RecordSize: func(h Header) int {
			if version == 6 && len(h.Bins) > 0 {
				return 6 + 4*len(h.Bins)
			}
			return 206
		},
	}
}

func imageLayout() Layout {
	return Layout{
		Group:           format.GroupImage,
		Version:         2,
		HasRecordSize:   true,
		HasChannelCount: true,
		RecordSize:      func(h Header) int { return 6 + 4*int(h.ChannelCount) },
	}
}

func resolver(layouts ...Layout) LayoutResolver {
	return func(version uint8) (Layout, bool) {
		for _, l := range layouts {
			if l.Version == version {
				return l, true
			}
		}
		return Layout{}, false
	}
}

var qV6Header = []byte{6, 34, 1, 7, 2, 10, 20, 25, 30, 35, 40, 9, 19, 24, 29, 34, 39, 40, 2, 14, 21, 27, 32, 36, 40}

func TestParseHeader_QV6Bins(t *testing.T) {
	h, n, err := ParseHeader(format.GroupQ, qV6Header, resolver(qLayout(6)))
	require.NoError(t, err)
	require.Equal(t, len(qV6Header), n)
	require.Equal(t, uint8(6), h.Version)
	require.Equal(t, uint32(34), h.RecordSize)
	require.True(t, h.HasBins)
	require.Equal(t, 7, h.BinCount())

	bin, err := h.BinAt(0)
	require.NoError(t, err)
	require.Equal(t, QScoreBin{Lower: 2, Upper: 9, Value: 2}, bin)

	bin, err = h.BinAt(6)
	require.NoError(t, err)
	require.Equal(t, QScoreBin{Lower: 40, Upper: 40, Value: 40}, bin)

	_, err = h.BinAt(7)
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)

	require.Equal(t, len(qV6Header), h.Size())
	require.Equal(t, qV6Header, h.Bytes())
}

func TestParseHeader_ChannelCount(t *testing.T) {
	data := []byte{2, 14, 2}
	h, n, err := ParseHeader(format.GroupImage, data, resolver(imageLayout()))
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, uint8(2), h.ChannelCount)
	require.Equal(t, data, h.Bytes())
}

func TestParseHeader_Unbinned(t *testing.T) {
	data := []byte{5, 206, 0}
	h, n, err := ParseHeader(format.GroupQ, data, resolver(qLayout(5)))
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.False(t, h.HasBins)
	require.Zero(t, h.BinCount())
	require.Equal(t, data, h.Bytes())
}

func TestParseHeader_Errors(t *testing.T) {
	resolve := resolver(qLayout(4), qLayout(6), imageLayout())

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, errs.ErrIncompleteFile},
		{"missing record size", []byte{4}, errs.ErrIncompleteFile},
		{"unknown version", []byte{9, 206}, errs.ErrUnsupportedVersion},
		{"record size mismatch", []byte{4, 200}, errs.ErrBadFormat},
		{"missing bin flag", []byte{6, 34}, errs.ErrIncompleteFile},
		{"missing bin count", []byte{6, 34, 1}, errs.ErrIncompleteFile},
		{"truncated bins", qV6Header[:10], errs.ErrIncompleteFile},
		{"missing channel count", []byte{2, 14}, errs.ErrIncompleteFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseHeader(format.GroupQ, tt.data, resolve)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewHeader(t *testing.T) {
	t.Run("computes record size from bins", func(t *testing.T) {
		bins := []QScoreBin{{2, 9, 2}, {10, 19, 14}, {20, 40, 30}}
		h := NewHeader(qLayout(6), bins, 0)
		require.Equal(t, uint32(18), h.RecordSize)
		require.True(t, h.HasBins)

		parsed, _, err := ParseHeader(format.GroupQ, h.Bytes(), resolver(qLayout(6)))
		require.NoError(t, err)
		require.Equal(t, h, parsed)
	})

	t.Run("drops bins for layouts without a bin table", func(t *testing.T) {
		h := NewHeader(qLayout(4), []QScoreBin{{1, 2, 3}}, 0)
		require.Zero(t, h.BinCount())
		require.Equal(t, []byte{4, 206}, h.Bytes())
	})

	t.Run("channel count", func(t *testing.T) {
		h := NewHeader(imageLayout(), nil, 4)
		require.Equal(t, []byte{2, 22, 4}, h.Bytes())
	})
}

func TestHeaderValidate(t *testing.T) {
	h := NewHeader(qLayout(6), nil, 0)
	require.NoError(t, h.Validate())

	h.Bins = make([]QScoreBin, MaxBinCount+1)
	require.ErrorIs(t, h.Validate(), errs.ErrInvalidArgument)
}

func summaryRunLayout() Layout {
	return Layout{
		Group:          format.GroupSummaryRun,
		Version:        1,
		HasRecordSize:  true,
		WideRecordSize: true,
		RecordSize:     func(Header) int { return 34 },
	}
}

func TestParseHeader_WideRecordSize(t *testing.T) {
	data := []byte{1, 34, 0, 0, 0}
	h, n, err := ParseHeader(format.GroupSummaryRun, data, resolver(summaryRunLayout()))
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, uint32(34), h.RecordSize)
	require.Equal(t, 5, h.Size())
	require.Equal(t, data, h.Bytes())
	require.Equal(t, data, NewHeader(summaryRunLayout(), nil, 0).Bytes())

	_, _, err = ParseHeader(format.GroupSummaryRun, data[:4], resolver(summaryRunLayout()))
	require.ErrorIs(t, err, errs.ErrIncompleteFile)

	_, _, err = ParseHeader(format.GroupSummaryRun, []byte{1, 34, 1, 0, 0}, resolver(summaryRunLayout()))
	require.ErrorIs(t, err, errs.ErrBadFormat)
}

func TestHeaderValidate_RecordSizeByte(t *testing.T) {
	h := NewHeader(qLayout(4), nil, 0)
	h.RecordSize = 256
	require.ErrorIs(t, h.Validate(), errs.ErrInvalidArgument)

	wide := NewHeader(summaryRunLayout(), nil, 0)
	wide.RecordSize = 256
	require.NoError(t, wide.Validate())
}
