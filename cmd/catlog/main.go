// Command catlog inspects and exercises categorized logger configuration.
//
//	catlog resolve --config levels.toml --category Combat
//	catlog check --config levels.toml --config local.env
//	catlog demo --file ./app.log
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mordilloSan/go-catlog/config"
	"github.com/mordilloSan/go-catlog/logger"
)

func newRootCommand() *cobra.Command {
	var configPaths []string
	root := &cobra.Command{
		Use:           "catlog",
		Short:         "Inspect categorized logger configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringArrayVarP(&configPaths, "config", "c", nil,
		"Configuration file (.toml, .yaml, .env); repeat to layer, later files win. Without it LOGGER_* variables are used")

	load := func() (logger.Flags, error) {
		if len(configPaths) == 0 {
			return config.FromEnv(), nil
		}
		return config.Load(configPaths...)
	}
	root.AddCommand(
		newResolveCommand(load),
		newCheckCommand(load),
		newDemoCommand(load),
	)
	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
