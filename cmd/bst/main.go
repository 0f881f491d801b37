package main

import (
	"os"

	"github.com/QinLinag/omniponent_bst/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	configPath      string
	logLevel        string
	recursiveInsert bool
	jsonOutput      bool

	conf config.Config
	log  *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: logrus.New()}

	rootCmd := &cobra.Command{
		Use:           "bst [command] (flags)",
		Short:         "binary search tree playground",
		Long:          ``,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.prepare(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(
		&a.configPath, "config", "", "path to a TOML config file")
	rootCmd.PersistentFlags().StringVar(
		&a.logLevel, "log-level", "", "log level (overrides the config file)")
	rootCmd.PersistentFlags().BoolVar(
		&a.recursiveInsert, "recursive-insert", false, "build the tree with the recursive insert")
	rootCmd.PersistentFlags().BoolVar(
		&a.jsonOutput, "json", false, "print results as JSON")

	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		a.inspectCmd(),
		a.traverseCmd(),
		a.findCmd(),
		a.removeCmd(),
	)
	return rootCmd
}

// prepare merges the config file with the flags that were set explicitly.
func (a *app) prepare(cmd *cobra.Command) error {
	con, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		con.LogLevel = a.logLevel
	}
	if flags.Changed("recursive-insert") {
		con.RecursiveInsert = a.recursiveInsert
	}
	if flags.Changed("json") {
		con.JSON = a.jsonOutput
	}
	if err := con.Validate(); err != nil {
		return err
	}
	a.conf = con

	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	a.log.SetLevel(con.Level())
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
