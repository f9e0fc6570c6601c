package dispatch

import (
	stdio "io"

	dispio "github.com/dzonerzy/go-dispatch/io"
)

// Context is passed to the resolved leaf action. It carries the full ordered
// positional capture, the option values collected along the visited path and
// the commands that were traversed.
type Context struct {
	Command *Command   // the resolved leaf
	Path    []*Command // ancestors in traversal order
	Args    []string   // positional arguments in encounter order
	Values  *ValueSet

	app *App
}

// App returns the owning application, or nil when the parser was used
// directly.
func (c *Context) App() *App { return c.app }

// IO accessors

func (c *Context) IO() *dispio.IOManager {
	if c.app == nil {
		return dispio.New()
	}
	return c.app.IO()
}

func (c *Context) Stdout() stdio.Writer { return c.IO().Out() }
func (c *Context) Stderr() stdio.Writer { return c.IO().Err() }

// lookup resolves an option by long name against the visited commands,
// leaf first, then ancestors from innermost outward.
func (c *Context) lookup(name string) *Option {
	if opt := declaredOption(c.Command, name); opt != nil {
		return opt
	}
	for i := len(c.Path) - 1; i >= 0; i-- {
		if opt := declaredOption(c.Path[i], name); opt != nil {
			return opt
		}
	}
	return nil
}

func declaredOption(cmd *Command, name string) *Option {
	for _, opt := range cmd.Options {
		if opt.Name == name {
			return opt
		}
	}
	return nil
}

// GetBool returns the captured value of a bool option and whether it appeared
// on the command line.
func (c *Context) GetBool(name string) (bool, bool) {
	if opt := c.lookup(name); opt != nil && opt.Value.Kind() == KindBool {
		if v, ok := c.Values.Get(opt); ok {
			return v.BoolVal(), true
		}
	}
	return false, false
}

// GetString returns the captured value of a string option and whether it
// appeared on the command line.
func (c *Context) GetString(name string) (string, bool) {
	if opt := c.lookup(name); opt != nil && opt.Value.Kind() == KindString {
		if v, ok := c.Values.Get(opt); ok {
			return v.StringVal(), true
		}
	}
	return "", false
}

// GetInt returns the captured value of an int option and whether it appeared
// on the command line.
func (c *Context) GetInt(name string) (int64, bool) {
	if opt := c.lookup(name); opt != nil && opt.Value.Kind() == KindInt {
		if v, ok := c.Values.Get(opt); ok {
			return v.IntVal(), true
		}
	}
	return 0, false
}

// GetFloat returns the captured value of a float option and whether it
// appeared on the command line.
func (c *Context) GetFloat(name string) (float64, bool) {
	if opt := c.lookup(name); opt != nil && opt.Value.Kind() == KindFloat {
		if v, ok := c.Values.Get(opt); ok {
			return v.FloatVal(), true
		}
	}
	return 0, false
}

// MustGet variants fall back to the declared default when the option was not
// provided, and to the zero value when no such option is declared.

func (c *Context) MustGetBool(name string) bool {
	if v, ok := c.GetBool(name); ok {
		return v
	}
	if opt := c.lookup(name); opt != nil && opt.Value.Kind() == KindBool {
		return opt.Value.BoolVal()
	}
	return false
}

func (c *Context) MustGetString(name string) string {
	if v, ok := c.GetString(name); ok {
		return v
	}
	if opt := c.lookup(name); opt != nil && opt.Value.Kind() == KindString {
		return opt.Value.StringVal()
	}
	return ""
}

func (c *Context) MustGetInt(name string) int64 {
	if v, ok := c.GetInt(name); ok {
		return v
	}
	if opt := c.lookup(name); opt != nil && opt.Value.Kind() == KindInt {
		return opt.Value.IntVal()
	}
	return 0
}

func (c *Context) MustGetFloat(name string) float64 {
	if v, ok := c.GetFloat(name); ok {
		return v
	}
	if opt := c.lookup(name); opt != nil && opt.Value.Kind() == KindFloat {
		return opt.Value.FloatVal()
	}
	return 0
}
