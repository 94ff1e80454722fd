package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arloliu/interop/registry"
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List the supported metric groups, their files and versions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		heading := headingColor()
		heading.Fprintf(cmd.OutOrStdout(), "%-4s %-18s %-32s %s\n", "ID", "GROUP", "FILE", "VERSIONS")
		for _, e := range registry.Entries() {
			versions := make([]string, 0, len(e.Codec.Versions()))
			for _, v := range e.Codec.Versions() {
				versions = append(versions, fmt.Sprint(v))
			}
			printf(cmd, "%-4d %-18s %-32s %s\n", e.Group, e.Group, e.FileName(true), strings.Join(versions, ","))
		}

		return nil
	},
}
