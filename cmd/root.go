package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/XertroV/tasks/todo_go/internal/commands"
)

// RootCommand captures shared CLI metadata and the interactive command grammar.
type RootCommand struct {
	name     string
	version  string
	commands []string
}

var commandSyntax = map[string]string{
	commands.CmdBye:      "bye                                end the session",
	commands.CmdList:     "list                               show all tasks",
	commands.CmdFind:     "find <term>                        show tasks whose description contains <term>",
	commands.CmdDone:     "done <n>                           mark task n as done",
	commands.CmdDelete:   "delete <n>                         remove task n",
	commands.CmdTodo:     "todo <description>                 add a todo",
	commands.CmdDeadline: "deadline <description> /by <date>  add a deadline (date as yyyy-mm-dd)",
	commands.CmdEvent:    "event <description> /at <time>     add an event",
}

func NewRootCommand() *RootCommand {
	return &RootCommand{
		name:     "todo",
		version:  "0.1.0",
		commands: append([]string{}, commands.Priority...),
	}
}

func (r *RootCommand) Name() string {
	return r.name
}

func (r *RootCommand) Version() string {
	return r.version
}

// Commands returns the command words sorted alphabetically.
func (r *RootCommand) Commands() []string {
	out := append([]string{}, r.commands...)
	sort.Strings(out)
	return out
}

func (r *RootCommand) IsKnownCommand(candidate string) bool {
	for _, command := range r.commands {
		if command == candidate {
			return true
		}
	}
	return false
}

func (r *RootCommand) Usage() string {
	lines := make([]string, 0, len(r.commands))
	for _, command := range r.commands {
		lines = append(lines, "  "+commandSyntax[command])
	}
	return fmt.Sprintf(`Usage: %s [flags] [command line]

Without a command line, %s reads one command per line from standard input.

Commands:
%s`, r.name, r.name, strings.Join(lines, "\n"))
}
