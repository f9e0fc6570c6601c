package dispatch

import "strconv"

// ActionFunc is the function executed for a resolved leaf command. It receives
// the execution context carrying the captured positional arguments and option
// values. Its error propagates to the caller unmodified.
type ActionFunc func(ctx *Context) error

// Command is a node in the declarative dispatch tree. Commands are plain data
// owned by the embedding application: either a leaf with an Action or an
// internal node with Subcommands, never both and never neither. The invariant
// is checked lazily the first time a node becomes current during a parse.
//
// A Command tree is never mutated by parsing and may be reused across
// sequential or concurrent parses.
type Command struct {
	Name        string
	Help        string
	Action      ActionFunc
	Subcommands []*Command
	Options     []*Option
}

// Option is a named, optionally aliased, typed flag declared on a command and
// visible while that command is current. The Kind of Value (the declared
// default) fixes the expected type: bool options consume no argument, all
// other kinds consume exactly one following token.
type Option struct {
	Name  string // long name, looked up as --name
	Short byte   // single-character alias looked up as -x, 0 = none
	Help  string
	Value Value // declared default
}

// HelpOption is the implicit help option injected into every command's
// effective option set at lookup time. It is checked before declared options,
// so commands cannot redefine --help or -h for another purpose.
var HelpOption = &Option{Name: "help", Short: 'h', Help: "Show help", Value: Bool(false)}

// validateCommand checks the structural invariants of a command node. It runs
// each time a node becomes current, including the initial root.
func validateCommand(cmd *Command) *ParseError {
	hasAction := cmd.Action != nil
	hasSubs := len(cmd.Subcommands) > 0

	if hasAction == hasSubs {
		return &ParseError{
			Type:    ErrorTypeInvalidCommand,
			Message: "invalid command definition: " + strconv.Quote(cmd.Name) + " must have exactly one of action or subcommands",
			Command: cmd.Name,
		}
	}

	// Duplicate names silently shadow during lookup; reject them up front.
	if dup := findDuplicateName(cmd); dup != "" {
		return &ParseError{
			Type:    ErrorTypeInvalidCommand,
			Message: "invalid command definition: " + strconv.Quote(cmd.Name) + " declares duplicate name " + strconv.Quote(dup),
			Command: cmd.Name,
		}
	}

	return nil
}

// findDuplicateName returns the first subcommand name, option long name or
// short alias declared more than once, or "" when all are unique. The implicit
// help option is exempt: lookup order makes it shadow declared options rather
// than collide with them.
func findDuplicateName(cmd *Command) string {
	if len(cmd.Subcommands) > 1 {
		seen := make(map[string]bool, len(cmd.Subcommands))
		for _, sub := range cmd.Subcommands {
			if seen[sub.Name] {
				return sub.Name
			}
			seen[sub.Name] = true
		}
	}

	if len(cmd.Options) > 1 {
		names := make(map[string]bool, len(cmd.Options))
		shorts := make(map[byte]bool, len(cmd.Options))
		for _, opt := range cmd.Options {
			if names[opt.Name] {
				return opt.Name
			}
			names[opt.Name] = true
			if opt.Short != 0 {
				if shorts[opt.Short] {
					return string(opt.Short)
				}
				shorts[opt.Short] = true
			}
		}
	}

	return ""
}

// findOption resolves a long option name against cmd's visible option set.
// The implicit help option wins over any declared option of the same name.
func findOption(cmd *Command, name string) *Option {
	if name == HelpOption.Name {
		return HelpOption
	}
	for _, opt := range cmd.Options {
		if opt.Name == name {
			return opt
		}
	}
	return nil
}

// findShortOption resolves a single-character alias against cmd's visible
// option set, implicit help alias first.
func findShortOption(cmd *Command, alias byte) *Option {
	if alias == HelpOption.Short {
		return HelpOption
	}
	for _, opt := range cmd.Options {
		if opt.Short != 0 && opt.Short == alias {
			return opt
		}
	}
	return nil
}

// findSubcommand resolves an exact subcommand name, first match in
// declaration order.
func findSubcommand(cmd *Command, name string) *Command {
	for _, sub := range cmd.Subcommands {
		if sub.Name == name {
			return sub
		}
	}
	return nil
}
