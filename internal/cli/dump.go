package cli

import (
	"encoding/csv"

	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump FILE",
	Short: "Print every record of a metric file",
	Long: `dump prints the records as comma separated columns, preceded by a
"# Group,version,records" line and the column names. Tile, index and image
version 1 records print one row per entry, assignment or channel.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		f, err := loadFile(cmd, args[0])
		if err != nil {
			return err
		}

		h := f.set.Header()
		tbl := tables[f.entry.Group]
		headingColor().Fprintf(cmd.OutOrStdout(), "# %s,%d,%d\n", f.entry.Group, h.Version, f.set.Len())

		w := csv.NewWriter(cmd.OutOrStdout())
		if err := w.Write(tbl.header(h)); err != nil {
			return err
		}

		n := f.set.Len()
		if limit > 0 && limit < n {
			n = limit
		}
		for i := range n {
			rec, err := f.set.RecordAt(i)
			if err != nil {
				return err
			}
			if err := w.WriteAll(tbl.rows(rec)); err != nil {
				return err
			}
		}
		w.Flush()

		return w.Error()
	},
}

func init() {
	dumpCmd.Flags().StringP("group", "g", "", "metric group, inferred from the file name when omitted")
	dumpCmd.Flags().IntP("limit", "n", 0, "print at most n records, 0 for all")
}
