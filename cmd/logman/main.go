package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/codefrk/logman/config"
	"github.com/codefrk/logman/console"
	"github.com/codefrk/logman/registry"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "logman",
		Short: "Manage named, size-bounded log files",
		Long: "logman manages a set of log files declared in a YAML config. Each file\n" +
			"has a maximum size and an overflow behaviour (stop, ignore, split,\n" +
			"rewrite, continue) applied when an append would exceed it.",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "logman.yaml", "path to the config file")

	rootCmd.AddCommand(
		newAppendCmd(),
		newWriteCmd(),
		newClearCmd(),
		newRemoveCmd(),
		newStatusCmd(),
		newPrintCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads the config and rebuilds the registry from it. The registry
// has no persisted state; the log files on disk are the only durable
// artifacts between runs.
func setup() (*registry.Registry, *console.Console, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	c := console.New(console.Config{NoColor: cfg.NoColor()})
	reg := registry.New(c)
	if err := cfg.Apply(reg); err != nil {
		return nil, nil, err
	}
	return reg, c, nil
}

func newAppendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "append ALIAS TEXT...",
		Short: "Append a line to a log",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, _, err := setup()
			if err != nil {
				return err
			}
			return reg.AppendLineLog(args[0], strings.Join(args[1:], " "))
		},
	}
}

func newWriteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "write ALIAS TEXT...",
		Short: "Replace a log's entire content",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, _, err := setup()
			if err != nil {
				return err
			}
			return reg.WriteLog(args[0], strings.Join(args[1:], " ")+"\n")
		},
	}
}

func newClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear ALIAS",
		Short: "Truncate a log to empty",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, _, err := setup()
			if err != nil {
				return err
			}
			return reg.ClearLog(args[0])
		},
	}
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove ALIAS",
		Short: "Delete a log file and forget its alias",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, _, err := setup()
			if err != nil {
				return err
			}
			return reg.RemoveLog(args[0])
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show every registered log and its tracked size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, c, err := setup()
			if err != nil {
				return err
			}
			c.Print(fmt.Sprintf("%-12s %-10s %10s %10s  %s", "ALIAS", "BEHAVIOUR", "LENGTH", "MAX", "PATH"))
			for _, info := range reg.Logs() {
				c.Print(fmt.Sprintf("%-12s %-10s %10d %10d  %s",
					info.Alias, info.Behaviour, info.Length, info.MaxLength, info.Path))
			}
			return nil
		},
	}
}

func newPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print VALUE",
		Short: "Render a value the way printf would",
		Long: "Parses VALUE as JSON when possible (numbers, booleans, null, arrays,\n" +
			"objects) and falls back to plain text, then renders it through the\n" +
			"console formatter.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, c, err := setup()
			if err != nil {
				return err
			}
			var v any
			if err := json.Unmarshal([]byte(args[0]), &v); err != nil {
				v = args[0]
			}
			c.Printf(v)
			return nil
		},
	}
}
