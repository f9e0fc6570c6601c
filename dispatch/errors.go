package dispatch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dzonerzy/go-dispatch/internal/fuzzy"
)

// ErrHelpShown is returned by the App boundary after rendering help. It marks
// the single non-error early termination: RunAndGetExitCode maps it to 0.
var ErrHelpShown = errors.New("help shown")

// ErrorType categorizes parse failures. Every failure is fail-fast and
// terminal for the whole parse; the category drives suggestion logic and
// exit-code mapping.
type ErrorType string

const (
	ErrorTypeInvalidCommand    ErrorType = "invalid_command"
	ErrorTypeUnknownSubcommand ErrorType = "unknown_subcommand"
	ErrorTypeUnknownOption     ErrorType = "unknown_option"
	ErrorTypeIllegalShort      ErrorType = "illegal_short_option"
	ErrorTypeMissingValue      ErrorType = "missing_option_argument"
	ErrorTypeInvalidInt        ErrorType = "invalid_integer_value"
	ErrorTypeInvalidFloat      ErrorType = "invalid_float_value"
	ErrorTypeNoAction          ErrorType = "no_action"
)

// ParseError is the structured result of a failed parse. The engine never
// prints and never exits; it returns one of these up to the boundary, which
// decides between print-and-exit (CLI mode) and plain error return (library
// mode).
type ParseError struct {
	Type       ErrorType
	Message    string
	Option     string // offending option name, when applicable
	Command    string // offending command or subcommand name, when applicable
	Suggestion string // filled in by the ErrorHandler

	// CurrentCommand is the node that was current when the error occurred.
	// It scopes suggestion candidates to the visible option/subcommand set.
	CurrentCommand *Command
}

func (e *ParseError) Error() string {
	return e.Message
}

// ErrorHandler decorates parse errors with fuzzy-matched suggestions and
// formats them for the error stream.
type ErrorHandler struct {
	suggestOptions  bool
	suggestCommands bool
	maxDistance     int
}

// NewErrorHandler returns a handler with suggestions enabled and an edit
// distance budget of 2.
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{
		suggestOptions:  true,
		suggestCommands: true,
		maxDistance:     2,
	}
}

// SuggestOptions enables or disables "did you mean" hints for unknown options.
func (eh *ErrorHandler) SuggestOptions(enabled bool) *ErrorHandler {
	eh.suggestOptions = enabled
	return eh
}

// SuggestCommands enables or disables "did you mean" hints for unknown
// subcommands.
func (eh *ErrorHandler) SuggestCommands(enabled bool) *ErrorHandler {
	eh.suggestCommands = enabled
	return eh
}

// MaxDistance sets the maximum edit distance considered for suggestions.
func (eh *ErrorHandler) MaxDistance(distance int) *ErrorHandler {
	eh.maxDistance = distance
	return eh
}

// Process attaches a suggestion to err when one is close enough.
func (eh *ErrorHandler) Process(err *ParseError) *ParseError {
	switch err.Type {
	case ErrorTypeUnknownOption:
		if eh.suggestOptions && err.Option != "" {
			if best := eh.closestOption(err.Option, err.CurrentCommand); best != "" {
				err.Suggestion = fmt.Sprintf("Did you mean '--%s'?", best)
			}
		}
	case ErrorTypeUnknownSubcommand:
		if eh.suggestCommands && err.Command != "" {
			if best := eh.closestSubcommand(err.Command, err.CurrentCommand); best != "" {
				err.Suggestion = fmt.Sprintf("Did you mean '%s'?", best)
			}
		}
	case ErrorTypeInvalidCommand, ErrorTypeIllegalShort, ErrorTypeMissingValue,
		ErrorTypeInvalidInt, ErrorTypeInvalidFloat, ErrorTypeNoAction:
		// No suggestions for these.
	}
	return err
}

// Format renders the message printed to the error stream: the ERROR line,
// followed by the suggestion when present.
func (eh *ErrorHandler) Format(err *ParseError) string {
	var b strings.Builder
	b.WriteString("ERROR: ")
	b.WriteString(err.Message)
	if err.Suggestion != "" {
		b.WriteString("\n  ")
		b.WriteString(err.Suggestion)
	}
	return b.String()
}

func (eh *ErrorHandler) closestOption(input string, cmd *Command) string {
	if cmd == nil {
		return ""
	}
	names := make([]string, 0, len(cmd.Options)+1)
	names = append(names, HelpOption.Name)
	for _, opt := range cmd.Options {
		names = append(names, opt.Name)
	}
	return fuzzy.FindBest(input, names, eh.maxDistance)
}

func (eh *ErrorHandler) closestSubcommand(input string, cmd *Command) string {
	if cmd == nil {
		return ""
	}
	names := make([]string, 0, len(cmd.Subcommands))
	for _, sub := range cmd.Subcommands {
		names = append(names, sub.Name)
	}
	return fuzzy.FindBest(input, names, eh.maxDistance)
}
