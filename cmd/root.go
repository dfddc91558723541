package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/ymusic-grabber/internal/app"
	"github.com/oshokin/ymusic-grabber/internal/config"
	"github.com/oshokin/ymusic-grabber/internal/logger"
	"github.com/oshokin/ymusic-grabber/internal/version"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "ymusic-grabber [flags] {track refs}",
		Short: "Download tracks from Yandex Music.",
		Long: `Yandex Music Grabber is a CLI tool for downloading tracks by reference.
A reference is one of:
- a track key: 10994777 or 10994777:1193829 (track ID and album ID)
- a track URL: https://music.yandex.ru/album/1193829/track/10994777
- a .txt file with one reference per line

The application requires the OAuth token of an already authenticated session,
see 'ymusic-grabber auth token --help'.`,
		Version:          version.Full(),
		Args:             cobra.MinimumNArgs(1),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, inputs []string) {
			if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
			}

			app.ExecuteRootCommand(cmd.Context(), appConfig, inputs)
		},
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	addLinkFlags(rootCmd.PersistentFlags())
	addDownloadFlags(rootCmd.Flags())
}

// addLinkFlags defines the flags shared by every command that builds links.
func addLinkFlags(flags *pflag.FlagSet) {
	flags.StringP(
		"codec",
		"f",
		"",
		"encoding to download, for example: mp3, aac, flac.")

	flags.Bool(
		"direct",
		false,
		"request direct download metadata.")
}

// addDownloadFlags defines the flags of the download command.
func addDownloadFlags(flags *pflag.FlagSet) {
	flags.StringP(
		"output",
		"o",
		"",
		"directory to save downloaded files (the path will be created if it doesn’t exist).")

	flags.StringP(
		"speed-limit",
		"s",
		"",
		"set download speed limit, for example: 500 kbps, 1 mbps, 1.5 mbps.")

	flags.BoolP(
		"tags",
		"t",
		false,
		"write metadata tags into downloaded files.")

	flags.Int64P(
		"concurrency",
		"n",
		0,
		"maximum number of tracks downloaded simultaneously.")

	flags.Bool(
		"suppress-transfer-errors",
		false,
		"log failed transfers instead of failing the track.")
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}

	if parsedLogLevel, ok := logger.ParseLogLevel(appConfig.LogLevel); ok {
		logger.SetLevel(parsedLogLevel)
	}
}

// bindFlagsToConfig applies the flags set on the command line and validates the result.
// Flags a command doesn't define are ignored.
func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("codec"); flag != nil && flag.Changed {
		cfg.Codec, _ = flags.GetString("codec")
	}

	if flag := flags.Lookup("direct"); flag != nil && flag.Changed {
		cfg.Direct, _ = flags.GetBool("direct")
	}

	if flag := flags.Lookup("output"); flag != nil && flag.Changed {
		cfg.OutputPath, _ = flags.GetString("output")
	}

	if flag := flags.Lookup("speed-limit"); flag != nil && flag.Changed {
		cfg.DownloadSpeedLimit, _ = flags.GetString("speed-limit")
	}

	if flag := flags.Lookup("tags"); flag != nil && flag.Changed {
		cfg.WriteTags, _ = flags.GetBool("tags")
	}

	if flag := flags.Lookup("concurrency"); flag != nil && flag.Changed {
		cfg.MaxConcurrentDownloads, _ = flags.GetInt64("concurrency")
	}

	if flag := flags.Lookup("suppress-transfer-errors"); flag != nil && flag.Changed {
		cfg.SuppressTransferErrors, _ = flags.GetBool("suppress-transfer-errors")
	}

	return config.ValidateConfig(cfg)
}
