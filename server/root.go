package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/weegigs/wee-starter/support"
)

func newRootCommand() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:   "wee-starter",
		Short: "Run the starter backend",
		Long: `Run the starter backend.

Configuration is read from the environment (NODE_ENV, PORT, MONGO_URI) after
loading an optional dotenv file. The server connects to MongoDB before it
opens its listener and exits non-zero if either step fails.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := support.LoadEnvFile(envFile, cmd.Flags().Changed("env-file")); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return run(ctx, support.Environ())
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")

	return cmd
}
