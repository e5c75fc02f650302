package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

var (
	// ErrUnknownCommand is returned for a name with no registered command.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrEmpty is returned for a blank command line.
	ErrEmpty = errors.New("empty command")
)

// Command is a named action with its own flags. Run is called after its
// FlagSet parsed the arguments and can read flag state.
type Command struct {
	Name    string
	Usage   string
	FlagSet *flag.FlagSet
	Run     func() error
}

// Registry holds commands by name. Buttons, key bindings and the console all
// dispatch through it.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// NewFlagSet returns a flag set that reports errors instead of exiting and
// writes nothing to stderr.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// Register adds a command. A nil fs means the command takes no flags.
func (r *Registry) Register(name, usage string, fs *flag.FlagSet, run func() error) {
	if fs == nil {
		fs = NewFlagSet(name)
	}
	r.cmds[name] = &Command{Name: name, Usage: usage, FlagSet: fs, Run: run}
}

// Parse tokenizes a command line on whitespace.
func Parse(line string) []string {
	return strings.Fields(line)
}

// Execute runs the command named by args[0] with args[1:] as its flags.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return ErrEmpty
	}
	cmd, ok := r.cmds[args[0]]
	if !ok {
		return fmt.Errorf("%s: %w", args[0], ErrUnknownCommand)
	}
	// flags left over from the previous run would otherwise stick
	cmd.FlagSet.VisitAll(func(f *flag.Flag) { _ = f.Value.Set(f.DefValue) })
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w", cmd.Name, err)
	}
	return cmd.Run()
}

// Run parses and executes a command line.
func (r *Registry) Run(line string) error {
	return r.Execute(Parse(line))
}

// Names returns the registered command names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Help returns one "name - usage" line per command, sorted by name.
func (r *Registry) Help() []string {
	var out []string
	for _, name := range r.Names() {
		out = append(out, name+" - "+r.cmds[name].Usage)
	}
	return out
}
