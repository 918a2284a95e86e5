package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/safing/xdgapps/base/log"
	"github.com/safing/xdgapps/service/xdg"
)

var (
	env      *xdg.Env
	logLevel string

	rootCmd = &cobra.Command{
		Use:   "xdgapps",
		Short: "Discover installed applications and resolve their icons",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := log.Start(logLevel, os.Stderr); err != nil {
				return err
			}

			var err error
			env, err = xdg.LoadEnv()
			return err
		},
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warning", "set log level to [trace|debug|info|warning|error|critical]")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
