package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mordilloSan/go-catlog/logger"
)

type loadFunc func() (logger.Flags, error)

type resolveOptions struct {
	category      string
	priority      string
	throwPriority string
}

func newResolveCommand(load loadFunc) *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve [options]",
		Short: "Print the effective log and throw levels of a category",
		Long: `Print the levels a logger would start with.

A "<feature>.log" key beats "log", which beats --priority; "throw" keys work
the same way against --throw-priority. Without --category the global logger
is resolved.`,
		Args:    cobra.NoArgs,
		Example: `catlog resolve --config levels.toml --category "Combat[boss]"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags, err := load()
			if err != nil {
				return err
			}
			return resolve(cmd.OutOrStdout(), flags, opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.category, "category", "", "Logger category; empty resolves the global logger")
	f.StringVar(&opts.priority, "priority", logger.Warn.String(), "Log threshold used when no key applies")
	f.StringVar(&opts.throwPriority, "throw-priority", logger.Error.String(), "Throw threshold used when no key applies")
	return cmd
}

func resolve(out io.Writer, flags logger.Flags, opts resolveOptions) error {
	priority, err := logger.ParseSeverity(opts.priority)
	if err != nil {
		return errors.Wrap(err, "--priority")
	}
	throwPriority, err := logger.ParseSeverity(opts.throwPriority)
	if err != nil {
		return errors.Wrap(err, "--throw-priority")
	}

	name := opts.category
	if name == "" {
		name = "(global)"
	}
	fmt.Fprintf(out, "category: %s\n", name)

	for _, row := range []struct {
		kind     logger.FlagKind
		fallback logger.Severity
	}{
		{logger.KindLog, priority},
		{logger.KindThrow, throwPriority},
	} {
		set, err := logger.Resolve(flags, row.kind, opts.category, logger.FromThreshold(row.fallback))
		if err != nil {
			return errors.Wrapf(err, "resolving %s", logger.Key(row.kind, opts.category))
		}
		fmt.Fprintf(out, "%-9s %s (%s)\n", string(row.kind)+":", set, source(flags, row.kind, opts.category))
	}
	return nil
}

// source names the key Resolve would read, or "default".
func source(flags logger.Flags, kind logger.FlagKind, category string) string {
	if category != "" {
		if _, ok := flags.Lookup(logger.Key(kind, category)); ok {
			return logger.Key(kind, category)
		}
	}
	if _, ok := flags.Lookup(string(kind)); ok {
		return string(kind)
	}
	return "default"
}
