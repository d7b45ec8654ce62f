package cli

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/philipp01105/fanlog/color"
	"github.com/philipp01105/fanlog/logger"
)

func newInfoCmd(opts *options) *cobra.Command {
	var scope string

	cmd := &cobra.Command{
		Use:   "info [title]",
		Short: "Print CPU, memory and runtime information",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := opts.newLogger(cmd)
			if err != nil {
				return err
			}
			defer log.Close()

			if scope != "" {
				log = log.Scope(scope)
			}
			title := ""
			if len(args) == 1 {
				title = args[0]
			}
			log.ProcessInfo(title)
			return nil
		},
	}
	cmd.Flags().StringVar(&scope, "scope", "", "namespace for the info lines")
	return cmd
}

func newSayCmd(opts *options) *cobra.Command {
	var scopes []string

	cmd := &cobra.Command{
		Use:   "say <level> <message...>",
		Short: "Print one line at the given level (debug, info, ok, warn, err, fatal)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, ok := logger.ParseLevel(args[0])
			if !ok {
				return errors.Errorf("unknown level %q", args[0])
			}

			log, err := opts.newLogger(cmd)
			if err != nil {
				return err
			}
			defer log.Close()

			for _, s := range scopes {
				log = log.Scope(s)
			}
			log.Print(level, strings.Join(args[1:], " "))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&scopes, "scope", nil, "namespace segments, outermost first")
	return cmd
}

func newSectionCmd(opts *options) *cobra.Command {
	var (
		width     int
		colorName string
	)

	cmd := &cobra.Command{
		Use:   "section [name]",
		Short: "Print a section rule, or a separator when no name is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := opts.newLogger(cmd)
			if err != nil {
				return err
			}
			defer log.Close()

			var sectionOpts []logger.SectionOption
			if cmd.Flags().Changed("width") {
				sectionOpts = append(sectionOpts, logger.Width(width))
			}
			if colorName != "" {
				st, err := color.Parse(colorName)
				if err != nil {
					return err
				}
				sectionOpts = append(sectionOpts, logger.Color(st))
			}

			if len(args) == 0 {
				log.Separator(sectionOpts...)
				return nil
			}
			log.Section(args[0], sectionOpts...)
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 0, "rule width (default from theme, 80)")
	cmd.Flags().StringVar(&colorName, "color", "", `rule colour, e.g. "cyan" or "bgRed.white"`)
	return cmd
}
