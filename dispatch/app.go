package dispatch

import (
	"errors"
	"fmt"
	"os"

	dispio "github.com/dzonerzy/go-dispatch/io"
)

// App is the CLI-mode boundary over the parser engine. It owns the root of
// the command tree, the help renderer, the error handler and the exit-code
// mapping. Library callers who want structured errors instead of printed ones
// can use Parser directly.
type App struct {
	root *Command

	renderer     HelpRenderer
	errorHandler *ErrorHandler
	exitCodes    *ExitCodeManager
	ioManager    *dispio.IOManager
	logger       *dispio.Logger
	verbose      bool
}

// New creates an application whose root command carries the given name and
// description. Populate it with Command/Action/option builders or Mount.
func New(name, help string) *App {
	return &App{
		root:         &Command{Name: name, Help: help},
		errorHandler: NewErrorHandler(),
		ioManager:    dispio.New(),
	}
}

// Root returns the root command of the tree being built.
func (a *App) Root() *Command { return a.root }

// Action sets the root action, making the application a single-command
// program. Mutually exclusive with Command/Mount; violations surface as
// InvalidCommandDefinition at parse time.
func (a *App) Action(fn ActionFunc) *App {
	a.root.Action = fn
	return a
}

// Command adds a top-level command and returns its builder.
func (a *App) Command(name, help string) *CommandBuilder {
	cmd := &Command{Name: name, Help: help}
	a.root.Subcommands = append(a.root.Subcommands, cmd)
	return &CommandBuilder{command: cmd, app: a}
}

// Mount attaches an externally declared command literal under the root.
func (a *App) Mount(cmd *Command) *App {
	a.root.Subcommands = append(a.root.Subcommands, cmd)
	return a
}

// addOption implements optionParent for root-level options.
func (a *App) addOption(opt *Option) { a.root.Options = append(a.root.Options, opt) }

// BoolOption declares a bool option on the root command.
func (a *App) BoolOption(name, help string) *OptionBuilder[bool, *App] {
	return newOptionBuilder[bool](a, name, help, Bool(false))
}

// StringOption declares a string option on the root command.
func (a *App) StringOption(name, help string) *OptionBuilder[string, *App] {
	return newOptionBuilder[string](a, name, help, String(""))
}

// IntOption declares an int option on the root command.
func (a *App) IntOption(name, help string) *OptionBuilder[int64, *App] {
	return newOptionBuilder[int64](a, name, help, Int(0))
}

// FloatOption declares a float option on the root command.
func (a *App) FloatOption(name, help string) *OptionBuilder[float64, *App] {
	return newOptionBuilder[float64](a, name, help, Float(0))
}

// Configuration accessors

// IO returns the application's IOManager for fluent configuration.
func (a *App) IO() *dispio.IOManager { return a.ioManager }

// Logger returns the application's logger, creating it on first use.
func (a *App) Logger() *dispio.Logger {
	if a.logger == nil {
		a.logger = dispio.NewLogger(a.ioManager)
	}
	return a.logger
}

// Verbose enables debug tracing of parser decisions through Logger.
func (a *App) Verbose() *App {
	a.verbose = true
	a.Logger().WithLevel(dispio.LevelDebug)
	return a
}

// ErrorHandler returns the app's error handler for configuration.
func (a *App) ErrorHandler() *ErrorHandler { return a.errorHandler }

// ExitCodes returns the exit-code manager, creating it on first use.
func (a *App) ExitCodes() *ExitCodeManager {
	if a.exitCodes == nil {
		a.exitCodes = newExitCodeManager()
	}
	return a.exitCodes
}

// Renderer replaces the default help renderer.
func (a *App) Renderer(r HelpRenderer) *App {
	a.renderer = r
	return a
}

// Execution

// Run parses the process arguments and executes the resolved action.
func (a *App) Run() error {
	return a.RunSource(OSArgs())
}

// RunWithArgs runs with explicit arguments. args must include the program
// name as the first element, mirroring os.Args.
func (a *App) RunWithArgs(args []string) error {
	return a.RunSource(Args(args...))
}

// RunSource parses src and dispatches. Parse failures are formatted (with
// suggestions) onto the error stream as "ERROR: <message>" and returned as a
// *ParseError. A help request renders usage and returns ErrHelpShown. On
// success the leaf action runs and its error propagates unmodified.
func (a *App) RunSource(src ArgSource) error {
	parser := NewParser(a.root)
	if a.verbose {
		parser = parser.WithLogger(a.Logger())
	}

	res, err := parser.Parse(src)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			return a.handleParseError(parseErr)
		}
		return err
	}

	if res.Help {
		if a.renderer == nil {
			a.renderer = NewHelpRenderer(a.ioManager)
		}
		a.renderer.Render(res.Command, res.Path)
		return ErrHelpShown
	}

	ctx := &Context{
		Command: res.Command,
		Path:    res.Path,
		Args:    res.Args,
		Values:  res.Values,
		app:     a,
	}
	return res.Command.Action(ctx)
}

// RunAndGetExitCode executes the app and returns the mapped exit code:
// 0 on success and help, 1 on parse failures (unless remapped), the requested
// code for ExitError.
func (a *App) RunAndGetExitCode() int {
	return a.ExitCodes().resolve(a.Run())
}

// RunAndExit executes the app and terminates the process with the mapped
// exit code.
func (a *App) RunAndExit() {
	os.Exit(a.RunAndGetExitCode())
}

// handleParseError decorates the error with suggestions and prints it to the
// error stream. The error is returned so library-style callers of RunWithArgs
// still see the structured failure.
func (a *App) handleParseError(parseErr *ParseError) error {
	parseErr = a.errorHandler.Process(parseErr)
	fmt.Fprintln(a.ioManager.Err(), a.errorHandler.Format(parseErr))
	return parseErr
}
