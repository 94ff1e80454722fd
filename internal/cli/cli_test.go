package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/interop"
	"github.com/arloliu/interop/encoding"
	"github.com/arloliu/interop/errs"
	"github.com/arloliu/interop/format"
	"github.com/arloliu/interop/metric"
	"github.com/arloliu/interop/registry"
	"github.com/arloliu/interop/section"
)

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	color.NoColor = true
	resetFlags(RootCmd)

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()

	return out.String(), err
}

// writeErrorFile writes an error metric file with n cycles into a run folder.
func writeErrorFile(t *testing.T, root string, n int) string {
	t.Helper()

	h, err := encoding.Error.NewHeader(3, nil, 0)
	require.NoError(t, err)
	set := encoding.Error.NewSet(h)
	for i := range n {
		set.Insert(metric.ErrorMetric{
			CycleID:   metric.CycleID{Lane: 1, Tile: 1101, Cycle: uint32(i + 1)},
			ErrorRate: 0.5,
		})
	}

	dir := filepath.Join(root, registry.InterOpDir)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, "ErrorMetricsOut.bin")
	require.NoError(t, interop.Write(encoding.Error, set, path))

	return path
}

func TestGroupsCmd(t *testing.T) {
	out, err := execute(t, "groups")
	require.NoError(t, err)
	require.Contains(t, out, "QMetrics2030Out.bin")
	require.Contains(t, out, "CorrectedInt")
	require.Contains(t, out, "2,3,4")
}

func TestInfoCmd(t *testing.T) {
	path := writeErrorFile(t, t.TempDir(), 3)

	t.Run("text", func(t *testing.T) {
		out, err := execute(t, "info", path)
		require.NoError(t, err)
		require.Contains(t, out, "Error v3")
		require.Contains(t, out, "records:     3")
		require.Contains(t, out, "record size: 30")
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := execute(t, "info", "--output", "yaml", path)
		require.NoError(t, err)

		var info fileInfo
		require.NoError(t, yaml.Unmarshal([]byte(out), &info))
		require.Equal(t, "Error", info.Group)
		require.Equal(t, uint8(3), info.Version)
		require.Equal(t, 3, info.Records)
		require.Equal(t, 2+3*30, info.Bytes)
		require.Equal(t, "None", info.Compression)
	})

	t.Run("unknown output", func(t *testing.T) {
		_, err := execute(t, "info", "--output", "xml", path)
		require.ErrorIs(t, err, errs.ErrInvalidArgument)
	})

	t.Run("explicit group", func(t *testing.T) {
		renamed := filepath.Join(t.TempDir(), "errors.dat")
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(renamed, data, 0o600))

		_, err = execute(t, "info", renamed)
		require.ErrorIs(t, err, errs.ErrInvalidArgument)

		out, err := execute(t, "info", "--group", "error", renamed)
		require.NoError(t, err)
		require.Contains(t, out, "Error v3")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := execute(t, "info", filepath.Join(t.TempDir(), "TileMetricsOut.bin"))
		require.ErrorIs(t, err, errs.ErrFileNotFound)
	})
}

func TestDumpCmd(t *testing.T) {
	path := writeErrorFile(t, t.TempDir(), 4)

	out, err := execute(t, "dump", path)
	require.NoError(t, err)
	require.Contains(t, out, "# Error,3,4")
	require.Contains(t, out, "Lane,Tile,Cycle,ErrorRate,Mismatch1,Mismatch2,Mismatch3,Mismatch4,Mismatch5\n")
	require.Contains(t, out, "1,1101,4,0.5,0,0,0,0,0\n")
	require.NotContains(t, out, "CycleID")

	out, err = execute(t, "dump", "-n", "2", path)
	require.NoError(t, err)
	require.Contains(t, out, "1,1101,2,")
	require.NotContains(t, out, "1,1101,3,")
}

func TestConvertCmd(t *testing.T) {
	path := writeErrorFile(t, t.TempDir(), 20)
	dst := filepath.Join(t.TempDir(), "ErrorMetricsOut.bin.zst")

	out, err := execute(t, "convert", "--compression", "zstd", path, dst)
	require.NoError(t, err)
	require.Contains(t, out, "Error v3 -> v3")

	set, err := interop.Read(encoding.Error, dst)
	require.NoError(t, err)
	require.Equal(t, 20, set.Len())

	out, err = execute(t, "info", "-o", "yaml", dst)
	require.NoError(t, err)
	require.Contains(t, out, "compression: Zstd")

	_, err = execute(t, "convert", "--version", "9", path, dst)
	require.ErrorIs(t, err, errs.ErrUnsupportedVersion)

	_, err = execute(t, "convert", "--compression", "brotli", path, dst)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestRunCmd(t *testing.T) {
	root := t.TempDir()
	writeErrorFile(t, root, 2)

	out, err := execute(t, "run", "--groups", "summary", root)
	require.NoError(t, err)
	require.Contains(t, out, "Error")
	require.Contains(t, out, "missing")

	out, err = execute(t, "run", "--groups", "error,tile", root)
	require.NoError(t, err)
	require.Contains(t, out, "Tile")

	_, err = execute(t, "run", filepath.Join(root, "absent"))
	require.ErrorIs(t, err, errs.ErrFileNotFound)

	_, err = execute(t, "run", "--instrument", "sanger", root)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestDetectGroup(t *testing.T) {
	tests := map[string]format.MetricGroup{
		"TileMetricsOut.bin":              format.GroupTile,
		"run/InterOp/QMetrics2030Out.bin": format.GroupQCollapsed,
		"QMetricsByLaneOut.bin":           format.GroupQByLane,
		"qmetricsout.bin":                 format.GroupQ,
		"ErrorMetrics.bin":                format.GroupError,
		"ImageMetricsOut.bin.zst":         format.GroupImage,
		"IndexMetricsOut.bin.gz":          format.GroupIndex,
	}

	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			e, err := detectGroup(name)
			require.NoError(t, err)
			require.Equal(t, want, e.Group)
		})
	}

	_, err := detectGroup("RunInfo.xml")
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestSelectGroups(t *testing.T) {
	groups, err := selectGroups("index", registry.UnknownInstrument)
	require.NoError(t, err)
	require.Equal(t, []format.MetricGroup{format.GroupIndex, format.GroupTile}, groups)

	groups, err = selectGroups("q", registry.UnknownInstrument)
	require.NoError(t, err)
	require.Equal(t, []format.MetricGroup{format.GroupQ, format.GroupQByLane, format.GroupQCollapsed}, groups)

	_, err = selectGroups("q,bogus", registry.UnknownInstrument)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestOpenSource(t *testing.T) {
	_, err := openSource(t.Context(), "s3://")
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = openSource(t.Context(), "minio://localhost:9000")
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	file := filepath.Join(t.TempDir(), "file.bin")
	require.NoError(t, os.WriteFile(file, nil, 0o600))
	_, err = openSource(t.Context(), file)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestTables(t *testing.T) {
	for _, e := range registry.Entries() {
		t.Run(e.Group.String(), func(t *testing.T) {
			tbl, ok := tables[e.Group]
			require.True(t, ok)

			set, err := e.NewSet()
			require.NoError(t, err)
			require.NotEmpty(t, tbl.header(set.Header()))
		})
	}

	t.Run("tile entries print one row each", func(t *testing.T) {
		rows := tables[format.GroupTile].rows(metric.TileMetric{
			TileID:  metric.TileID{Lane: 1, Tile: 1101},
			Entries: []metric.TileEntry{{Code: metric.CodeClusterDensity, Value: 2350000}, {Code: metric.CodeControlLane, Value: 1}},
		})
		require.Equal(t, [][]string{{"1", "1101", "100", "2.35e+06"}, {"1", "1101", "400", "1"}}, rows)
	})

	t.Run("q columns follow the bins", func(t *testing.T) {
		h, err := encoding.Q.NewHeader(6, []section.QScoreBin{{Lower: 2, Upper: 19, Value: 14}, {Lower: 20, Upper: 40, Value: 30}}, 0)
		require.NoError(t, err)
		require.Equal(t, []string{"Lane", "Tile", "Cycle", "Q14", "Q30"}, tables[format.GroupQ].header(h))
	})
}
