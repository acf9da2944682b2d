package commands

// Command words of the interactive grammar. Input is matched against them
// case-sensitively, in the order listed by Priority.
const (
	CmdBye      = "bye"
	CmdList     = "list"
	CmdFind     = "find"
	CmdDone     = "done"
	CmdDelete   = "delete"
	CmdTodo     = "todo"
	CmdDeadline = "deadline"
	CmdEvent    = "event"
)

// Priority is the classification order. Earlier entries win when prefixes overlap.
var Priority = []string{
	CmdBye,
	CmdList,
	CmdFind,
	CmdDone,
	CmdDelete,
	CmdTodo,
	CmdDeadline,
	CmdEvent,
}

// AddCommands lists the commands that append a new task.
var AddCommands = []string{CmdTodo, CmdDeadline, CmdEvent}

// Prefix returns the command word followed by the separating space.
func Prefix(command string) string {
	return command + " "
}
