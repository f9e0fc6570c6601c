package dispatch

import (
	"fmt"

	dispio "github.com/dzonerzy/go-dispatch/io"
)

// HelpRenderer is invoked when the implicit help option resolves. cmd is the
// command that was current, path the ancestors visited before it. The renderer
// only writes; deciding to terminate the process afterwards is the boundary's
// job (RunAndExit exits 0 after rendering).
type HelpRenderer interface {
	Render(cmd *Command, path []*Command)
}

// DefaultHelpRenderer prints usage text for a command through an IOManager,
// with light styling when the terminal supports color.
type DefaultHelpRenderer struct {
	io *dispio.IOManager
}

// NewHelpRenderer returns the default renderer bound to the given IOManager.
func NewHelpRenderer(io *dispio.IOManager) *DefaultHelpRenderer {
	return &DefaultHelpRenderer{io: io}
}

// Render writes the usage line, the description, the visible options
// (including the implicit help entry) and the subcommands in declaration
// order.
func (r *DefaultHelpRenderer) Render(cmd *Command, path []*Command) {
	out := r.io.Out()

	usage := ""
	for _, ancestor := range path {
		usage += ancestor.Name + " "
	}
	usage += cmd.Name

	fmt.Fprintf(out, "%s %s [OPTIONS]", r.io.Bold("Usage:"), usage)
	if len(cmd.Subcommands) > 0 {
		fmt.Fprint(out, " COMMAND")
	} else {
		fmt.Fprint(out, " [ARGS]")
	}
	fmt.Fprintln(out)

	if cmd.Help != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, cmd.Help)
	}

	options := append([]*Option{}, cmd.Options...)
	options = append(options, HelpOption)

	fmt.Fprintln(out)
	fmt.Fprintln(out, r.io.Bold("Options:"))
	width := 0
	for _, opt := range options {
		if w := len(optionLabel(opt)); w > width {
			width = w
		}
	}
	for _, opt := range options {
		fmt.Fprintf(out, "  %-*s  %s\n", width, optionLabel(opt), opt.Help)
	}

	if len(cmd.Subcommands) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, r.io.Bold("Commands:"))
		width = 0
		for _, sub := range cmd.Subcommands {
			if len(sub.Name) > width {
				width = len(sub.Name)
			}
		}
		for _, sub := range cmd.Subcommands {
			fmt.Fprintf(out, "  %-*s  %s\n", width, sub.Name, sub.Help)
		}
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Use %q for more information about a command.\n",
			usage+" COMMAND --help")
	}
}

// optionLabel formats the flag column: "--name, -n value" with the value
// placeholder omitted for bool options.
func optionLabel(opt *Option) string {
	label := "--" + opt.Name
	if opt.Short != 0 {
		label += ", -" + string(opt.Short)
	}
	if opt.Value.Kind() != KindBool {
		label += " " + opt.Value.Kind().String()
	}
	return label
}
