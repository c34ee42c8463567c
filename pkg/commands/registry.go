package commands

import (
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/dirsh/pkg/logging"
)

// SentinelName is the registered name of the unknown-command variant. It
// is excluded from listCommands output.
const SentinelName = "noSuchCommand"

// Constructor builds a command bound to its argument tokens.
type Constructor func(args []string) Command

// Registry is the static mapping from command names to constructors.
// It is populated once at construction and read-only afterwards; lookups
// are case-sensitive and exact-match only.
type Registry struct {
	env   *Env
	ctors map[string]Constructor
	order []string
	log   zerolog.Logger
}

// NewRegistry builds the registry with the full command vocabulary.
func NewRegistry(env *Env) *Registry {
	r := &Registry{
		env:   env,
		ctors: make(map[string]Constructor),
		log:   logging.GetLogger("commands"),
	}

	r.register(SentinelName, func(args []string) Command {
		return newNoSuchCommand()
	})
	r.register("exit", func(args []string) Command {
		return &exitCommand{base: base{name: "exit", args: args}}
	})
	r.register("listCommands", func(args []string) Command {
		return &listCommandsCommand{base: base{name: "listCommands", args: args}, registry: r}
	})
	r.register("help", func(args []string) Command {
		return &helpCommand{base: base{name: "help", args: args}, registry: r}
	})
	r.register("currentPath", func(args []string) Command {
		return &currentPathCommand{base: base{name: "currentPath", args: args}}
	})
	r.register("changePath", func(args []string) Command {
		return &changePathCommand{base: base{name: "changePath", args: args}, env: env}
	})
	r.register("listDir", func(args []string) Command {
		return &listDirCommand{base: base{name: "listDir", args: args}, env: env}
	})
	r.register("makeDir", func(args []string) Command {
		return &makeDirCommand{base: base{name: "makeDir", args: args}, env: env}
	})
	r.register("remove", func(args []string) Command {
		return &removeCommand{base: base{name: "remove", args: args}, env: env}
	})
	r.register("copy", func(args []string) Command {
		return &copyCommand{base: base{name: "copy", args: args}, env: env}
	})
	r.register("move", func(args []string) Command {
		return &moveCommand{base: base{name: "move", args: args}, env: env}
	})
	r.register("print", func(args []string) Command {
		return &printCommand{base: base{name: "print", args: args}, env: env}
	})
	r.register("find", func(args []string) Command {
		return &findCommand{base: base{name: "find", args: args}, env: env}
	})
	r.register("fileTree", func(args []string) Command {
		return &treeCommand{base: base{name: "fileTree", args: args}, env: env}
	})
	r.register("calendar", func(args []string) Command {
		return &calendarCommand{base: base{name: "calendar", args: args}, now: time.Now}
	})
	r.register("archive", func(args []string) Command {
		return &archiveCommand{base: base{name: "archive", args: args}, env: env}
	})

	return r
}

func (r *Registry) register(name string, ctor Constructor) {
	r.ctors[name] = ctor
	r.order = append(r.order, name)
}

// Parse splits a raw input line on runs of whitespace; the first token is
// the command name, the remaining tokens become the argument list
// verbatim. Unrecognized names, and empty lines, resolve to the
// unknown-command variant rather than an error.
func (r *Registry) Parse(line string) Command {
	fields := strings.Fields(line)
	if len(fields) > 0 {
		if ctor, ok := r.ctors[fields[0]]; ok {
			r.log.Trace().Str("command", fields[0]).Strs("args", fields[1:]).Msg("Parsed command")
			return ctor(fields[1:])
		}
	}
	return newNoSuchCommand()
}

// Names returns the registered command names in registration order,
// excluding the unknown-command sentinel.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.order)-1)
	for _, name := range r.order {
		if name != SentinelName {
			names = append(names, name)
		}
	}
	return names
}

// UsageOf returns the usage text of a registered command.
func (r *Registry) UsageOf(name string) (string, bool) {
	ctor, ok := r.ctors[name]
	if !ok {
		return "", false
	}
	return ctor(nil).Usage(), true
}
