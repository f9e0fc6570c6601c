package dispatch

// optionParent allows both App and CommandBuilder to receive declared options.
type optionParent interface {
	addOption(opt *Option)
}

// CommandBuilder provides a fluent API for assembling a command subtree.
type CommandBuilder struct {
	command *Command
	app     *App
}

// Action sets the action for the command.
func (c *CommandBuilder) Action(fn ActionFunc) *CommandBuilder {
	c.command.Action = fn
	return c
}

// Command adds a subcommand and returns its builder.
func (c *CommandBuilder) Command(name, help string) *CommandBuilder {
	cmd := &Command{Name: name, Help: help}
	c.command.Subcommands = append(c.command.Subcommands, cmd)
	return &CommandBuilder{command: cmd, app: c.app}
}

// Mount attaches an externally declared command literal as a subcommand.
func (c *CommandBuilder) Mount(cmd *Command) *CommandBuilder {
	c.command.Subcommands = append(c.command.Subcommands, cmd)
	return c
}

// addOption implements optionParent.
func (c *CommandBuilder) addOption(opt *Option) {
	c.command.Options = append(c.command.Options, opt)
}

// BoolOption declares a bool option on the command.
func (c *CommandBuilder) BoolOption(name, help string) *OptionBuilder[bool, *CommandBuilder] {
	return newOptionBuilder[bool](c, name, help, Bool(false))
}

// StringOption declares a string option on the command.
func (c *CommandBuilder) StringOption(name, help string) *OptionBuilder[string, *CommandBuilder] {
	return newOptionBuilder[string](c, name, help, String(""))
}

// IntOption declares an int option on the command.
func (c *CommandBuilder) IntOption(name, help string) *OptionBuilder[int64, *CommandBuilder] {
	return newOptionBuilder[int64](c, name, help, Int(0))
}

// FloatOption declares a float option on the command.
func (c *CommandBuilder) FloatOption(name, help string) *OptionBuilder[float64, *CommandBuilder] {
	return newOptionBuilder[float64](c, name, help, Float(0))
}

// Build returns the assembled command.
func (c *CommandBuilder) Build() *Command { return c.command }

// App returns to the app for continued chaining.
func (c *CommandBuilder) App() *App { return c.app }

// OptionBuilder configures a declared option with type safety. T is the value
// type, P the parent builder returned by Back.
type OptionBuilder[T bool | string | int64 | float64, P optionParent] struct {
	opt    *Option
	parent P
}

func newOptionBuilder[T bool | string | int64 | float64, P optionParent](
	parent P, name, help string, def Value,
) *OptionBuilder[T, P] {
	opt := &Option{Name: name, Help: help, Value: def}
	parent.addOption(opt)
	return &OptionBuilder[T, P]{opt: opt, parent: parent}
}

// Short sets a single-character alias for the option.
func (b *OptionBuilder[T, P]) Short(alias byte) *OptionBuilder[T, P] {
	b.opt.Short = alias
	return b
}

// Default sets the declared default value. The default's kind was fixed by
// the typed constructor, so this never changes the option's expected type.
func (b *OptionBuilder[T, P]) Default(value T) *OptionBuilder[T, P] {
	switch v := any(value).(type) {
	case bool:
		b.opt.Value = Bool(v)
	case string:
		b.opt.Value = String(v)
	case int64:
		b.opt.Value = Int(v)
	case float64:
		b.opt.Value = Float(v)
	}
	return b
}

// Back returns to the parent builder context for continued chaining.
func (b *OptionBuilder[T, P]) Back() P { return b.parent }
