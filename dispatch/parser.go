package dispatch

import (
	"strconv"

	dispio "github.com/dzonerzy/go-dispatch/io"
)

// tokenKind classifies a raw token against the current command.
type tokenKind int

const (
	tokenNone       tokenKind = iota // empty token, ignored
	tokenPositional                  // captured for the leaf action
	tokenOption                      // resolved option, value may follow
	tokenCommand                     // descend into a subcommand
)

type token struct {
	kind tokenKind
	opt  *Option
	cmd  *Command
	text string
}

// Result is the terminal outcome of a successful parse. Either Help is true
// and Command/Path identify where help was requested, or Command is the
// resolved leaf whose Action runs with Args and Values.
type Result struct {
	Command *Command   // leaf (or help target) command
	Path    []*Command // ancestors in traversal order, not including Command
	Args    []string   // positional arguments in encounter order
	Values  *ValueSet  // captured option values, keyed by option identity
	Help    bool       // help was requested; no action resolution happened
}

// Parser walks a command tree guided by an ArgSource. A Parser holds no
// per-parse state and is safe for concurrent use; all traversal state lives in
// the Result under construction.
type Parser struct {
	root   *Command
	logger *dispio.Logger
}

// NewParser returns a parser over the given root command.
func NewParser(root *Command) *Parser {
	return &Parser{root: root}
}

// WithLogger enables debug tracing of traversal decisions.
func (p *Parser) WithLogger(logger *dispio.Logger) *Parser {
	p.logger = logger
	return p
}

// Parse consumes src until exhaustion and resolves the selected command, its
// option values and the residual positional arguments. The program-name token
// is discarded unconditionally. Every failure is terminal and returned as a
// *ParseError; nothing is printed and the process is never exited from here.
func (p *Parser) Parse(src ArgSource) (*Result, error) {
	src.Next() // program name

	res := &Result{
		Command: p.root,
		Values:  newValueSet(),
	}

	if err := validateCommand(p.root); err != nil {
		return nil, err
	}

	for {
		raw, ok := src.Next()
		if !ok {
			break
		}

		tok, err := p.classify(raw, res.Command)
		if err != nil {
			return nil, err
		}

		switch tok.kind {
		case tokenNone:
			continue

		case tokenCommand:
			if verr := validateCommand(tok.cmd); verr != nil {
				return nil, verr
			}
			p.tracef("descending into %q", tok.cmd.Name)
			res.Path = append(res.Path, res.Command)
			res.Command = tok.cmd

		case tokenOption:
			if tok.opt == HelpOption {
				// Terminal outcome: no further tokens are consumed, the
				// boundary renders help and exits.
				p.tracef("help requested at %q", res.Command.Name)
				res.Help = true
				return res, nil
			}
			if cerr := p.captureOption(tok.opt, src, res.Values); cerr != nil {
				return nil, cerr
			}

		case tokenPositional:
			res.Args = append(res.Args, tok.text)
		}
	}

	if res.Command.Action == nil {
		return nil, &ParseError{
			Type:           ErrorTypeNoAction,
			Message:        "command " + strconv.Quote(res.Command.Name) + " has no action",
			Command:        res.Command.Name,
			CurrentCommand: res.Command,
		}
	}

	return res, nil
}

// classify applies the option-vs-positional-vs-subcommand rules to a single
// raw token against the current command:
//
//  1. empty token: ignored
//  2. "-" alone: positional
//  3. "--name": long option lookup, implicit help first
//  4. "--" alone: positional (an options-terminator is deliberately not
//     implemented; the bare token degrades to a positional argument)
//  5. "-x": short option lookup; "-xyz" is rejected, clusters are not expanded
//  6. bare word with subcommands declared: exact subcommand lookup
//  7. bare word otherwise: positional
func (p *Parser) classify(raw string, cur *Command) (token, error) {
	switch {
	case raw == "":
		return token{kind: tokenNone}, nil

	case raw == "-":
		return token{kind: tokenPositional, text: raw}, nil

	case len(raw) > 2 && raw[0] == '-' && raw[1] == '-':
		name := raw[2:]
		opt := findOption(cur, name)
		if opt == nil {
			return token{}, &ParseError{
				Type:           ErrorTypeUnknownOption,
				Message:        "unknown option: --" + name,
				Option:         name,
				CurrentCommand: cur,
			}
		}
		return token{kind: tokenOption, opt: opt}, nil

	case raw == "--":
		return token{kind: tokenPositional, text: raw}, nil

	case raw[0] == '-':
		if len(raw) > 2 {
			return token{}, &ParseError{
				Type:           ErrorTypeIllegalShort,
				Message:        "illegal short option: " + raw + " (clusters are not supported)",
				Option:         raw[1:],
				CurrentCommand: cur,
			}
		}
		opt := findShortOption(cur, raw[1])
		if opt == nil {
			return token{}, &ParseError{
				Type:           ErrorTypeUnknownOption,
				Message:        "unknown option: " + raw,
				Option:         string(raw[1]),
				CurrentCommand: cur,
			}
		}
		return token{kind: tokenOption, opt: opt}, nil

	case len(cur.Subcommands) > 0:
		sub := findSubcommand(cur, raw)
		if sub == nil {
			return token{}, &ParseError{
				Type:           ErrorTypeUnknownSubcommand,
				Message:        "unknown subcommand: " + strconv.Quote(raw),
				Command:        raw,
				CurrentCommand: cur,
			}
		}
		return token{kind: tokenCommand, cmd: sub}, nil

	default:
		return token{kind: tokenPositional, text: raw}, nil
	}
}

// captureOption records an option occurrence. Bool options take no argument
// and are idempotently set to true; every other kind consumes exactly one
// following token and coerces it to the declared kind.
func (p *Parser) captureOption(opt *Option, src ArgSource, values *ValueSet) *ParseError {
	if opt.Value.Kind() == KindBool {
		values.set(opt, Bool(true))
		return nil
	}

	raw, ok := src.Next()
	if !ok {
		return &ParseError{
			Type:    ErrorTypeMissingValue,
			Message: "missing argument for option --" + opt.Name,
			Option:  opt.Name,
		}
	}

	v, errType := coerceValue(opt.Value.Kind(), raw)
	if errType != "" {
		return &ParseError{
			Type:    errType,
			Message: "invalid " + opt.Value.Kind().String() + " value " + strconv.Quote(raw) + " for option --" + opt.Name,
			Option:  opt.Name,
		}
	}

	p.tracef("captured --%s = %q", opt.Name, raw)
	values.set(opt, v)
	return nil
}

func (p *Parser) tracef(format string, args ...any) {
	if p.logger != nil {
		p.logger.Debugf(format, args...)
	}
}
