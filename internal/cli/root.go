// Package cli implements the fanlog-demo command tree.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/philipp01105/fanlog/color"
	"github.com/philipp01105/fanlog/config"
	"github.com/philipp01105/fanlog/core"
	"github.com/philipp01105/fanlog/formatter"
	"github.com/philipp01105/fanlog/handler/consolehandler"
	"github.com/philipp01105/fanlog/logger"
)

// options holds the persistent flags shared by every command.
type options struct {
	debug     bool
	noColor   bool
	themeFile string
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree. The root command prints the demo.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "fanlog-demo",
		Short:         "Show what fanlog output looks like",
		Long:          `Prints every kind of fanlog line: levels, custom labels, scoped loggers, sections and separators.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := opts.newLogger(cmd)
			if err != nil {
				return err
			}
			defer log.Close()
			runDemo(log)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVar(&opts.debug, "debug", false, "print debug lines as if DEBUG=true")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable ANSI colours")
	flags.StringVar(&opts.themeFile, "theme", "", "YAML file with section widths and colours")

	root.AddCommand(newInfoCmd(opts), newSayCmd(opts), newSectionCmd(opts))
	return root
}

// newLogger builds a logger writing to the command's output.
func (o *options) newLogger(cmd *cobra.Command) (*logger.Logger, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}

	if o.noColor {
		cfg.Color = config.ColorNever
	}
	color.SetEnabled(cfg.ColorEnabled(color.Enabled()))

	var w io.Writer = cmd.OutOrStdout()
	if f, ok := w.(*os.File); ok {
		w = colorable.NewColorable(f)
	}

	lookup := os.LookupEnv
	if o.debug {
		lookup = func(key string) (string, bool) {
			if key == core.DebugEnv {
				return "true", true
			}
			return os.LookupEnv(key)
		}
	}

	errOut := cmd.ErrOrStderr()
	return logger.NewBuilder().
		WithHandler(consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
			Writer:    w,
			Formatter: formatter.NewTextFormatter(cfg.FormatterConfig()),
		})).
		WithConfig(cfg).
		WithEnv(lookup).
		WithErrorHandler(func(err error) {
			fmt.Fprintf(errOut, "fanlog: %v\n", err)
		}).
		Build(), nil
}

func (o *options) loadConfig() (config.Config, error) {
	if o.themeFile == "" {
		return config.Default(), nil
	}

	f, err := os.Open(o.themeFile)
	if err != nil {
		return config.Config{}, errors.Wrap(err, "open theme")
	}
	defer f.Close()

	cfg, err := config.Load(f)
	if err != nil {
		return config.Config{}, errors.Wrapf(err, "load theme %s", o.themeFile)
	}
	return cfg, nil
}
