package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arloliu/interop"
	"github.com/arloliu/interop/errs"
	"github.com/arloliu/interop/format"
	"github.com/arloliu/interop/registry"
	"github.com/arloliu/interop/source"
	"github.com/arloliu/interop/source/minio"
	"github.com/arloliu/interop/source/s3"
)

var runCmd = &cobra.Command{
	Use:   "run RUN_FOLDER",
	Short: "Load the metric files of a run folder and report what was found",
	Long: `run loads the InterOp files of a run folder and prints the record count
of every group. The run folder is a local directory, s3://bucket/prefix
(credentials from the default AWS chain) or minio://endpoint/bucket/prefix
(credentials from MINIO_ACCESS_KEY and MINIO_SECRET_KEY).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		selection, _ := cmd.Flags().GetString("groups")
		instrumentName, _ := cmd.Flags().GetString("instrument")
		concurrency, _ := cmd.Flags().GetInt("concurrency")

		instrument, err := parseInstrument(instrumentName)
		if err != nil {
			return err
		}
		groups, err := selectGroups(selection, instrument)
		if err != nil {
			return err
		}

		src, err := openSource(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		run, err := interop.LoadRun(cmd.Context(), src, groups,
			interop.WithLogger(logger(cmd)),
			interop.WithConcurrency(concurrency),
		)
		if err != nil {
			return err
		}

		headingColor().Fprintf(cmd.OutOrStdout(), "%-18s %-8s %s\n", "GROUP", "VERSION", "RECORDS")
		for _, g := range run.Groups() {
			set, _ := run.Set(g)
			okColor().Fprintf(cmd.OutOrStdout(), "%-18s", g)
			printf(cmd, " %-8d %d\n", set.Version(), set.Len())
		}
		for _, g := range run.Missing() {
			errorColor().Fprintf(cmd.OutOrStdout(), "%-18s", g)
			printf(cmd, " %-8s %s\n", "-", "missing")
		}

		return nil
	},
}

func parseInstrument(name string) (registry.Instrument, error) {
	switch strings.ToLower(name) {
	case "", "unknown":
		return registry.UnknownInstrument, nil
	case "miseq":
		return registry.MiSeq, nil
	case "hiseq":
		return registry.HiSeq, nil
	case "nextseq":
		return registry.NextSeq, nil
	case "novaseq":
		return registry.NovaSeq, nil
	default:
		return 0, fmt.Errorf("%w: unknown instrument %q", errs.ErrInvalidArgument, name)
	}
}

// selectGroups maps the --groups flag to the expanded list of groups to load.
func selectGroups(selection string, instrument registry.Instrument) ([]format.MetricGroup, error) {
	var groups []format.MetricGroup
	switch strings.ToLower(selection) {
	case "", "all":
		return format.AllGroups(), nil
	case "summary":
		groups = registry.SummaryGroups(instrument)
	case "index":
		groups = registry.IndexGroups()
	case "imaging":
		groups = registry.ImagingTableGroups()
	default:
		for _, name := range strings.Split(selection, ",") {
			e, err := registry.LookupName(name)
			if err != nil {
				return nil, err
			}
			groups = append(groups, e.Group)
		}
	}

	return registry.GroupsToLoad(instrument, groups...), nil
}

// openSource maps a run folder argument to a source.
func openSource(ctx context.Context, location string) (source.Source, error) {
	switch {
	case strings.HasPrefix(location, "s3://"):
		bucket, prefix, _ := strings.Cut(strings.TrimPrefix(location, "s3://"), "/")
		if bucket == "" {
			return nil, fmt.Errorf("%w: missing bucket in %q", errs.ErrInvalidArgument, location)
		}

		return s3.NewStoreFromEnv(ctx, bucket, prefix)
	case strings.HasPrefix(location, "minio://"):
		parts := strings.SplitN(strings.TrimPrefix(location, "minio://"), "/", 3)
		if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("%w: expected minio://endpoint/bucket/prefix, got %q", errs.ErrInvalidArgument, location)
		}
		prefix := ""
		if len(parts) == 3 {
			prefix = parts[2]
		}

		client, err := minio.Dial(parts[0], os.Getenv("MINIO_ACCESS_KEY"), os.Getenv("MINIO_SECRET_KEY"), os.Getenv("MINIO_INSECURE") == "")
		if err != nil {
			return nil, err
		}

		return minio.NewStore(client, parts[1], prefix), nil
	default:
		info, err := os.Stat(location)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", errs.ErrFileNotFound, location)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%w: %s is not a directory", errs.ErrInvalidArgument, location)
		}

		return source.NewLocal(location), nil
	}
}

func init() {
	runCmd.Flags().String("groups", "all", "groups to load: all, summary, index, imaging or a comma separated list")
	runCmd.Flags().String("instrument", "", "instrument type, changes the summary and tile dependencies")
	runCmd.Flags().Int("concurrency", 4, "number of files decoded at once")
}
