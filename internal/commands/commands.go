package commands

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Command is a named action with its own flags. Run is called after the flags parse.
type Command struct {
	Name    string
	FlagSet *flag.FlagSet
	Run     func() error
}

// Registry holds commands by name and the key bindings that trigger them.
type Registry struct {
	cmds     map[string]*Command
	bindings map[rune][]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		cmds:     make(map[string]*Command),
		bindings: make(map[rune][]string),
	}
}

// Register adds a command. fs may be nil for commands without flags. Registering a name twice
// replaces the earlier command.
func (r *Registry) Register(name string, fs *flag.FlagSet, run func() error) {
	if fs == nil {
		fs = flag.NewFlagSet(name, flag.ContinueOnError)
	}
	fs.SetOutput(io.Discard)
	r.cmds[name] = &Command{Name: name, FlagSet: fs, Run: run}
}

// Bind makes key run the command line (e.g. "pause" or "orbits -show=on").
func (r *Registry) Bind(key rune, line string) {
	r.bindings[key] = strings.Fields(line)
}

// Key runs the command bound to key and returns its name. Unbound keys do nothing and return
// an empty name.
func (r *Registry) Key(key rune) (string, error) {
	args, ok := r.bindings[key]
	if !ok || len(args) == 0 {
		return "", nil
	}
	return args[0], r.Execute(args)
}

// Execute runs the command in args[0] with args[1:] as its flags.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing command")
	}
	name := args[0]
	cmd, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("unknown command: %s", name)
	}
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return cmd.Run()
}

// Names returns the registered command names in order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
