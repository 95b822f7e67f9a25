package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/askiada/go-chain/internal/config"
	"github.com/askiada/go-chain/internal/wordcount"
	"github.com/askiada/go-chain/pkg/pipeline"
	"github.com/askiada/go-chain/pkg/pipeline/drawer"
	"github.com/askiada/go-chain/pkg/pipeline/measure"
	"github.com/askiada/go-chain/pkg/pipeline/model"
)

// NewCountCmd creates the count command.
func NewCountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count FILE...",
		Short: "Count the words of every file",
		Long: `Count the words of every file with the wordcount pipeline (read, analyse, rank).
Files are processed concurrently, each one by its own pipeline. Any failure stops the program.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCountCmd,
	}

	cmd.Flags().IntP("jobs", "j", config.DefaultJobs, "Number of files processed at the same time")
	cmd.Flags().IntP("top", "n", config.DefaultTop, "Number of words reported per file, 0 for all")
	cmd.Flags().IntP("min-length", "m", config.DefaultMinLength, "Ignore words shorter than this")
	cmd.Flags().StringSliceP("stop-words", "s", nil, "Words to ignore")
	cmd.Flags().Bool("ensure-name", false, "Reject anonymous pipeline steps")
	cmd.Flags().StringP("graph", "g", "", "Directory receiving one DOT graph per file")

	return cmd
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, errors.Wrap(err, "unable to read config flag")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()

	if flags.Changed("verbose") {
		cfg.Verbose, _ = flags.GetBool("verbose")
	}

	if flags.Changed("ensure-name") {
		cfg.EnsureName, _ = flags.GetBool("ensure-name")
	}

	if flags.Changed("jobs") {
		cfg.Jobs, _ = flags.GetInt("jobs")
	}

	if flags.Changed("top") {
		cfg.Top, _ = flags.GetInt("top")
	}

	if flags.Changed("min-length") {
		cfg.MinLength, _ = flags.GetInt("min-length")
	}

	if flags.Changed("stop-words") {
		cfg.StopWords, _ = flags.GetStringSlice("stop-words")
	}

	if flags.Changed("graph") {
		cfg.GraphDir, _ = flags.GetString("graph")
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func runCountCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Verbose)
	settings := wordcount.NewSettings(cfg)

	opts := []pipeline.Option{pipeline.WithDebug(pipeline.SlogSink(logger, slog.LevelDebug))}
	if cfg.EnsureName {
		opts = append(opts, pipeline.WithEnsureName())
	}

	reports := make([]wordcount.Report, len(args))
	measures := make([]*measure.DefaultMeasure, len(args))

	grp, ctx := errgroup.WithContext(cmd.Context())
	grp.SetLimit(cfg.Jobs)

	for i, path := range args {
		i, path := i, path
		msr := measure.NewDefaultMeasure()
		measures[i] = msr

		hooks := []model.PipelineOption{measure.PipelineMeasure(msr)}
		if cfg.GraphDir != "" {
			hooks = append(hooks, drawer.PipelineDrawer(drawer.NewDOTDrawer(graphFile(cfg.GraphDir, i, path)), msr))
		}

		pipe := wordcount.New(settings, hooks, opts...)

		grp.Go(func() error {
			report, err := wordcount.Count(ctx, pipe, path)
			if err != nil {
				return errors.Wrapf(err, "unable to count words of %s", path)
			}

			reports[i] = report

			return nil
		})
	}

	err = grp.Wait()
	if err != nil {
		return err
	}

	for i, path := range args {
		printReport(cmd.OutOrStdout(), path, reports[i])

		for _, step := range measure.Slowest(measures[i], 1) {
			logger.Debug("slowest step", "file", path, "step", step.Name, "avg", step.Average)
		}
	}

	return nil
}

func graphFile(dir string, i int, path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	return filepath.Join(dir, fmt.Sprintf("%02d-%s.dot", i+1, base))
}

func printReport(w io.Writer, path string, report wordcount.Report) {
	fmt.Fprintf(w, "%s: %d words, %d distinct\n", path, report.Total, report.Distinct)

	for _, wc := range report.Top {
		fmt.Fprintf(w, "  %6d  %s\n", wc.Count, wc.Word)
	}
}
