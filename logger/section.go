package logger

import (
	"github.com/philipp01105/fanlog/color"
	"github.com/philipp01105/fanlog/formatter"
)

type sectionOptions struct {
	width int
	style color.Style
}

// SectionOption adjusts a single Section or Separator call
type SectionOption func(*sectionOptions)

// Width sets the rule width. Named sections grow past it when the
// title needs more room; blank rules with width <= 0 print an empty line.
func Width(n int) SectionOption {
	return func(o *sectionOptions) {
		o.width = n
	}
}

// Color sets the rule colour. nil prints the rule unstyled.
func Color(style color.Style) SectionOption {
	return func(o *sectionOptions) {
		o.style = style
	}
}

// Section prints a rule with name centred in it, or a plain rule when
// name is empty. Defaults: configured width (80) and section colour
// (magenta). Rules carry no timestamp or namespace.
func (l *Logger) Section(name string, opts ...SectionOption) {
	l.rule(name, l.config.SectionStyle(), opts)
}

// Separator prints a plain rule. Defaults: configured width (80) and
// separator colour (gray).
func (l *Logger) Separator(opts ...SectionOption) {
	l.rule("", l.config.SeparatorStyle(), opts)
}

func (l *Logger) rule(name string, style color.Style, opts []SectionOption) {
	o := sectionOptions{width: l.config.SectionWidth, style: style}
	for _, opt := range opts {
		opt(&o)
	}
	if o.style == nil || l.plain {
		o.style = color.None
	}

	if l.lines == nil {
		l.reportError(ErrNoLineWriter)
		return
	}
	if err := l.lines.WriteLine(o.style(formatter.SectionLine(name, o.width))); err != nil {
		l.reportError(err)
	}
}
