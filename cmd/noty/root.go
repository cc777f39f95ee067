package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/aretw0/noty"
	"github.com/aretw0/noty/internal/config"
	"github.com/aretw0/noty/pkg/core"
)

// cli carries the state of one invocation.
type cli struct {
	viper  *viper.Viper
	cfg    config.AppConfig
	logger *slog.Logger
	svc    *core.Service
	opts   []noty.Option

	add, list, remove, export, clear, fix, watch bool

	listJSON bool
}

var actionFlags = []string{"add", "list", "remove", "export", "clear", "fix", "watch"}

// newRootCmd builds the noty command. Extra options are passed to noty.New.
func newRootCmd(opts ...noty.Option) *cobra.Command {
	c := &cli{viper: config.NewViper(), opts: opts}

	cmd := &cobra.Command{
		Use:           "noty [text]",
		Short:         "A simple command line note-taking tool",
		Version:       noty.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.dispatch(cmd, args)
		},
	}

	flags := cmd.Flags()
	// The first word that is not a flag starts the note text; later dashes are text.
	flags.SetInterspersed(false)
	flags.BoolVarP(&c.add, "add", "a", false, "Add a note")
	flags.BoolVarP(&c.list, "list", "l", false, "List all notes")
	flags.BoolVarP(&c.remove, "remove", "r", false, "Remove a note by ID")
	flags.BoolVarP(&c.export, "export", "e", false, "Export notes to text file")
	flags.BoolVarP(&c.clear, "clear", "c", false, "Clear all notes (with confirmation)")
	flags.BoolVarP(&c.fix, "fix", "f", false, "Fix duplicate IDs (maintenance)")
	flags.BoolVarP(&c.watch, "watch", "w", false, "List notes and refresh on every change")
	flags.BoolVar(&c.listJSON, "json", false, "Output the list in JSON format")
	flags.String("store", "", "Notes file (default ~/.noty_notes.json)")
	flags.BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.MarkFlagsMutuallyExclusive(actionFlags...)
	for _, name := range []string{"add", "remove", "export", "clear", "fix"} {
		cmd.MarkFlagsMutuallyExclusive("json", name)
	}

	_ = c.viper.BindPFlag("store", flags.Lookup("store"))
	_ = c.viper.BindPFlag("verbose", flags.Lookup("verbose"))

	cmd.SetVersionTemplate("noty version {{.Version}}\n")
	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), helpText)
	})
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		var unknown *pflag.NotExistError
		if errors.As(err, &unknown) {
			err = fmt.Errorf("Unknown flag '%s'", specifiedFlag(unknown))
		}
		return fmt.Errorf("%w\nUse 'noty -h' to see available flags.", err)
	})

	return cmd
}

// setup loads configuration, configures logging and opens the store.
func (c *cli) setup(cmd *cobra.Command) error {
	if err := config.ReadConfigFile(c.viper); err != nil {
		return err
	}
	cfg, err := config.Load(c.viper)
	if err != nil {
		return err
	}
	c.cfg = cfg

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	c.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(c.logger)

	opts := append([]noty.Option{noty.WithLogger(c.logger)}, c.opts...)
	svc, err := noty.New(cfg.StorePath, opts...)
	if err != nil {
		return fmt.Errorf("initializing store: %w", err)
	}
	c.svc = svc

	c.logger.Debug("store ready", "state", svc.State())
	return nil
}

// specifiedFlag returns the flag as it was typed on the command line.
func specifiedFlag(e *pflag.NotExistError) string {
	if short := e.GetSpecifiedShortnames(); short != "" {
		return "-" + short
	}
	return "--" + e.GetSpecifiedName()
}

func (c *cli) dispatch(cmd *cobra.Command, args []string) error {
	if c.listJSON && !c.watch {
		c.list = true
	}

	switch {
	case c.add:
		if len(args) == 0 {
			return usageError("Please provide text to add", "noty -a <text>")
		}
		return c.runAdd(cmd, strings.Join(args, " "))
	case c.list:
		return c.runList(cmd)
	case c.remove:
		if len(args) == 0 {
			return usageError("Please provide the ID of the note to remove", "noty -r <id>")
		}
		return c.runRemove(cmd, args[0])
	case c.export:
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		return c.runExport(cmd, path)
	case c.clear:
		return c.runClear(cmd)
	case c.fix:
		return c.runFix(cmd)
	case c.watch:
		return c.runWatch(cmd)
	}

	if len(args) == 0 {
		fmt.Fprint(cmd.OutOrStdout(), shortUsage)
		return nil
	}
	return c.runAdd(cmd, strings.Join(args, " "))
}

func usageError(msg, usage string) error {
	return errors.New(msg + "\nUsage: " + usage)
}

// Execute runs the command line and returns the process exit code.
func Execute(args []string) int {
	return execute(newRootCmd(), args)
}

func execute(cmd *cobra.Command, args []string) int {
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Error: %v\n", err)
		return 1
	}
	return 0
}
