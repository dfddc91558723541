package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/ymusic-grabber/internal/app"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition.
	linkCmd = &cobra.Command{
		Use:   "link [flags] {track refs}",
		Short: "Print signed download links",
		Long: `Prints a signed download link for every referenced track, one per line:

<track key>	<link>

Links are built from fresh download metadata on every run and expire quickly.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, inputs []string) error {
			if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
				return err
			}

			return app.ExecuteLinkCommand(cmd.Context(), appConfig, inputs, cmd.OutOrStdout())
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	infoCmd = &cobra.Command{
		Use:          "info [flags] {track refs}",
		Short:        "List available encodings",
		Long:         `Lists the encodings the service offers for every referenced track.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, inputs []string) error {
			if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
				return err
			}

			return app.ExecuteInfoCommand(cmd.Context(), appConfig, inputs, cmd.OutOrStdout())
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(infoCmd)
}
