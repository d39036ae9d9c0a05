package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mordilloSan/go-catlog/logger"
	"github.com/mordilloSan/go-catlog/sink"
)

func newDemoCommand(load loadFunc) *cobra.Command {
	var logFile string
	cmd := &cobra.Command{
		Use:   "demo [options]",
		Short: "Log a few messages through the default logger and a Combat category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags, err := load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			s := sink.Writer(out)
			if logFile != "" {
				fileSink, closer, err := sink.File(logFile)
				if err != nil {
					return err
				}
				defer closer.Close()
				s = sink.Multi(s, fileSink)
			}
			logger.SetDefaultSink(s)
			defer logger.SetDefaultSink(nil)

			if err := logger.Init(flags); err != nil {
				return err
			}
			defer logger.Reset()

			logger.Printf("demo starting with %d configuration keys", len(flags))

			combat, err := logger.New("Combat")
			if err != nil {
				return err
			}
			defer combat.Close()

			combat.Warn.Log("low health")
			combat.Info.LogKV("hit", "damage", 12, "target", "slime")
			combat.Verbose.Log("rolling dice")
			if err := combat.Error.Log("player fell out of the world"); err != nil {
				fmt.Fprintln(out, "raised:", err)
			}
			combat.Print("demo finished")
			return nil
		},
	}
	cmd.Flags().StringVar(&logFile, "file", "", "Also append messages to this file")
	return cmd
}
