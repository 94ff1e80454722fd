package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/interop/errs"
)

type binInfo struct {
	Lower uint8 `yaml:"lower"`
	Upper uint8 `yaml:"upper"`
	Value uint8 `yaml:"value"`
}

type fileInfo struct {
	Path         string    `yaml:"path"`
	Group        string    `yaml:"group"`
	Version      uint8     `yaml:"version"`
	RecordSize   uint32    `yaml:"record_size,omitempty"`
	Bins         []binInfo `yaml:"bins,omitempty"`
	ChannelCount uint8     `yaml:"channel_count,omitempty"`
	Records      int       `yaml:"records"`
	Bytes        int       `yaml:"bytes"`
	Compression  string    `yaml:"compression"`
}

func newFileInfo(f *loadedFile) fileInfo {
	h := f.set.Header()
	info := fileInfo{
		Path:         f.path,
		Group:        f.entry.Group.String(),
		Version:      h.Version,
		RecordSize:   h.RecordSize,
		ChannelCount: h.ChannelCount,
		Records:      f.set.Len(),
		Bytes:        f.size,
		Compression:  f.compression.String(),
	}
	for _, b := range h.Bins {
		info.Bins = append(info.Bins, binInfo{Lower: b.Lower, Upper: b.Upper, Value: b.Value})
	}

	return info
}

var infoCmd = &cobra.Command{
	Use:   "info FILE",
	Short: "Print the header and record count of a metric file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		f, err := loadFile(cmd, args[0])
		if err != nil {
			return err
		}
		info := newFileInfo(f)

		switch output {
		case "yaml":
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(info); err != nil {
				return err
			}

			return enc.Close()
		case "text", "":
			printInfo(cmd, info)
			return nil
		default:
			return fmt.Errorf("%w: unknown output format %q", errs.ErrInvalidArgument, output)
		}
	},
}

func printInfo(cmd *cobra.Command, info fileInfo) {
	headingColor().Fprintf(cmd.OutOrStdout(), "%s v%d\n", info.Group, info.Version)
	printf(cmd, "  path:        %s\n", info.Path)
	printf(cmd, "  bytes:       %d (%s)\n", info.Bytes, info.Compression)
	if info.RecordSize > 0 {
		printf(cmd, "  record size: %d\n", info.RecordSize)
	}
	if info.ChannelCount > 0 {
		printf(cmd, "  channels:    %d\n", info.ChannelCount)
	}
	for i, b := range info.Bins {
		printf(cmd, "  bin %d:       %d-%d -> %d\n", i, b.Lower, b.Upper, b.Value)
	}
	printf(cmd, "  records:     %d\n", info.Records)
}

func init() {
	infoCmd.Flags().StringP("group", "g", "", "metric group, inferred from the file name when omitted")
	infoCmd.Flags().StringP("output", "o", "text", "output format: text or yaml")
}
