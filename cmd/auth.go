package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/ymusic-grabber/internal/app"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition.
	authCmd = &cobra.Command{
		Use:   "auth",
		Short: "Authentication management commands",
		Long: `Manage authentication for Yandex Music.

Use 'auth token' to store the OAuth token of an already authenticated session.`,
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	authTokenCmd = &cobra.Command{
		Use:   "token <token>",
		Short: "Save an OAuth token to the configuration file",
		Long: `Saves the OAuth token to the configuration file, keeping the rest of the file as is.
The file is created when it doesn't exist.

You can then download music:
ymusic-grabber https://music.yandex.ru/album/1193829/track/10994777`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.ExecuteAuthTokenCommand(cmd.Context(), appConfig, args[0])
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	authCmd.AddCommand(authTokenCmd)
	rootCmd.AddCommand(authCmd)
}
