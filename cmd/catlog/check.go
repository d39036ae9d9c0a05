package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mordilloSan/go-catlog/config"
)

func newCheckCommand(load loadFunc) *cobra.Command {
	return &cobra.Command{
		Use:     "check [options]",
		Short:   "Validate every log and throw key",
		Args:    cobra.NoArgs,
		Example: `catlog check --config levels.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags, err := load()
			if err != nil {
				return err
			}
			if err := config.Validate(flags); err != nil {
				return err
			}
			n := 0
			for k := range flags {
				if config.Consumed(k) {
					n++
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d level keys\n", n)
			return nil
		},
	}
}
