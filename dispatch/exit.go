package dispatch

import "errors"

// ExitError is a sentinel used to request a specific exit code from inside
// actions.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit"
}

// ExitCodeDefaults holds the default codes: 0 on success and on help display,
// 1 on parse failures and action errors.
type ExitCodeDefaults struct {
	Success      int
	GeneralError int
	ParseFailure int
}

func defaultExitDefaults() ExitCodeDefaults {
	return ExitCodeDefaults{Success: 0, GeneralError: 1, ParseFailure: 1}
}

// ExitCodeManager maps errors to process exit codes. Parse failure categories
// can be remapped individually via Define.
type ExitCodeManager struct {
	codesByType map[ErrorType]int
	defaults    ExitCodeDefaults
}

func newExitCodeManager() *ExitCodeManager {
	return &ExitCodeManager{
		codesByType: make(map[ErrorType]int),
		defaults:    defaultExitDefaults(),
	}
}

// Define overrides the exit code used for a specific parse error category.
func (e *ExitCodeManager) Define(typ ErrorType, code int) *ExitCodeManager {
	e.codesByType[typ] = code
	return e
}

// Default replaces the manager's default codes.
func (e *ExitCodeManager) Default(d ExitCodeDefaults) *ExitCodeManager {
	e.defaults = d
	return e
}

// resolve converts an error to an exit code. Precedence:
//
//  1. nil and ErrHelpShown: success
//  2. ExitError: the requested code
//  3. ParseError: category mapping, else the parse failure default
//  4. anything else: the general error default
func (e *ExitCodeManager) resolve(err error) int {
	if err == nil || errors.Is(err, ErrHelpShown) {
		return e.defaults.Success
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		if code, ok := e.codesByType[parseErr.Type]; ok {
			return code
		}
		return e.defaults.ParseFailure
	}

	return e.defaults.GeneralError
}
