package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/interop/compress"
	"github.com/arloliu/interop/format"
)

var convertCmd = &cobra.Command{
	Use:   "convert IN OUT",
	Short: "Re-encode a metric file, optionally at another version or compressed",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		targetVersion, _ := cmd.Flags().GetUint8("version")
		compression, _ := cmd.Flags().GetString("compression")

		ct, err := format.ParseCompressionType(compression)
		if err != nil {
			return err
		}

		f, err := loadFile(cmd, args[0])
		if err != nil {
			return err
		}

		set := f.set
		if targetVersion != 0 && targetVersion != set.Version() {
			if set, err = f.entry.Codec.ConvertAny(set, targetVersion); err != nil {
				return err
			}
		}

		size, err := f.entry.Codec.EncodedSizeAny(set)
		if err != nil {
			return err
		}
		data, err := f.entry.Codec.AppendAny(make([]byte, 0, size), set)
		if err != nil {
			return err
		}

		out, stats, err := compress.Compress(ct, data)
		if err != nil {
			return err
		}

		log := logger(cmd).WithMetricGroup(f.entry.Group).WithPath(args[1])
		err = os.WriteFile(args[1], out, 0o644) //nolint:gosec
		log.LogWrite(cmd.Context(), set.Len(), len(out), ct, err)
		if err != nil {
			return fmt.Errorf("write %s: %w", args[1], err)
		}

		okColor().Fprintf(cmd.OutOrStdout(), "%s v%d -> v%d", f.entry.Group, f.set.Version(), set.Version())
		printf(cmd, ", %d records, %d bytes (%s, %.1f%% saved)\n",
			set.Len(), len(out), ct, stats.SpaceSavings())

		return nil
	},
}

func init() {
	convertCmd.Flags().StringP("group", "g", "", "metric group, inferred from the input file name when omitted")
	convertCmd.Flags().Uint8("version", 0, "target format version, 0 keeps the input version")
	convertCmd.Flags().StringP("compression", "c", "none", "output compression: none, zstd, s2, lz4 or gzip")
}
