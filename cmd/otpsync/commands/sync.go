package commands

import (
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/otpsync/internal/adapters/config"
	"go.trai.ch/otpsync/internal/app"
	"go.trai.ch/otpsync/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Synchronize transit feeds and rebuild updated graphs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			opts, err := resolveOptions(cmd, configPath)
			if err != nil {
				return err
			}
			return c.app.Run(cmd.Context(), opts)
		},
	}

	cmd.Flags().String("config", "", "Path to the otpsync.yaml options file")
	cmd.Flags().String("base-dir", app.DefaultOptions().BaseDir, "Base directory for OpenTripPlanner's data")
	cmd.Flags().String("feed-list", app.DefaultOptions().FeedList, "CSV list of feeds")
	cmd.Flags().String("otp-command", "", "Full path to the OpenTripPlanner launcher used to trigger rebuilds")
	cmd.Flags().String("log-dir", app.DefaultOptions().LogDir, "Directory for per-graph rebuild logs")
	cmd.Flags().Bool("force-rebuild", false, "Always trigger rebuild of all graphs")
	cmd.Flags().Bool("keep-failed-graphs", false, "Keep graph directories after failed rebuilds")
	cmd.Flags().String("graph", "", "Only process feeds belonging to this graph")
	cmd.Flags().IntP("parallel", "p", 1, "Number of feeds to process concurrently")
	cmd.Flags().BoolP("watch", "w", false, "Re-run whenever the feed list changes")
	cmd.Flags().Duration("http-timeout", 0, "Timeout for HTTP fetches and probes (0 uses the built-in default)")

	return cmd
}

// resolveOptions assembles the run options with explicit precedence:
// explicit flag > config file > built-in default.
func resolveOptions(cmd *cobra.Command, configPath string) (app.Options, error) {
	opts := app.DefaultOptions()

	file, err := config.NewLoader().Load(configPath)
	if err != nil {
		return app.Options{}, err
	}
	if err := applyFile(&opts, file); err != nil {
		return app.Options{}, err
	}
	applyFlags(&opts, cmd)

	return opts, nil
}

func applyFile(opts *app.Options, file *config.File) error {
	if file == nil {
		return nil
	}

	if file.BaseDir != "" {
		opts.BaseDir = file.BaseDir
	}
	if file.FeedList != "" {
		opts.FeedList = file.FeedList
	}
	if file.OTPCommand != "" {
		opts.Command = file.OTPCommand
	}
	if file.LogDir != "" {
		opts.LogDir = file.LogDir
	}
	if file.ForceRebuild != nil {
		opts.ForceRebuild = *file.ForceRebuild
	}
	if file.KeepFailedGraphs != nil {
		opts.KeepFailedGraphs = *file.KeepFailedGraphs
	}
	if file.Parallelism != nil {
		opts.Parallelism = *file.Parallelism
	}
	if file.HTTPTimeout != "" {
		d, err := time.ParseDuration(file.HTTPTimeout)
		if err != nil {
			wrapped := zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
			return zerr.With(wrapped, "httpTimeout", file.HTTPTimeout)
		}
		opts.HTTPTimeout = d
	}

	return nil
}

//nolint:errcheck // Flags are registered above; lookups cannot fail
func applyFlags(opts *app.Options, cmd *cobra.Command) {
	flags := cmd.Flags()

	if flags.Changed("base-dir") {
		opts.BaseDir, _ = flags.GetString("base-dir")
	}
	if flags.Changed("feed-list") {
		opts.FeedList, _ = flags.GetString("feed-list")
	}
	if flags.Changed("otp-command") {
		opts.Command, _ = flags.GetString("otp-command")
	}
	if flags.Changed("log-dir") {
		opts.LogDir, _ = flags.GetString("log-dir")
	}
	if flags.Changed("force-rebuild") {
		opts.ForceRebuild, _ = flags.GetBool("force-rebuild")
	}
	if flags.Changed("keep-failed-graphs") {
		opts.KeepFailedGraphs, _ = flags.GetBool("keep-failed-graphs")
	}
	if flags.Changed("graph") {
		opts.OnlyGraph, _ = flags.GetString("graph")
	}
	if flags.Changed("parallel") {
		opts.Parallelism, _ = flags.GetInt("parallel")
	}
	if flags.Changed("watch") {
		opts.Watch, _ = flags.GetBool("watch")
	}
	if flags.Changed("http-timeout") {
		opts.HTTPTimeout, _ = flags.GetDuration("http-timeout")
	}
}
