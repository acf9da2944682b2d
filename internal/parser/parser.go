package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/XertroV/tasks/todo_go/internal/commands"
	"github.com/XertroV/tasks/todo_go/internal/models"
	"github.com/XertroV/tasks/todo_go/internal/tasklist"
)

const (
	byeMessage       = "Bye. Hope to see you again soon!"
	emptyListMessage = "There are no tasks in your list yet."
	taskIndent       = "    "
)

// Outcome is the result of handling one line of input.
type Outcome struct {
	// Message is the user-facing text, for successes and failures alike.
	Message string
	// Exit asks the caller to stop reading input.
	Exit bool
	// Mutated is set when the task list changed.
	Mutated bool
	// Task is the task added, completed or removed, if any.
	Task models.Task
	// Err holds the failure, if any. The list is unchanged when it is set.
	Err error
}

// taskAction binds a command that acts on an existing task number to the
// list operation it performs.
type taskAction struct {
	command     string
	verb        string
	apply       func(*tasklist.TaskList, int) (models.Task, error)
	reportCount bool
}

var (
	doneAction = taskAction{
		command: commands.CmdDone,
		verb:    "marked as done",
		apply:   (*tasklist.TaskList).MarkDone,
	}
	deleteAction = taskAction{
		command:     commands.CmdDelete,
		verb:        "deleted",
		apply:       (*tasklist.TaskList).Remove,
		reportCount: true,
	}
)

type taskBuilder struct {
	command string
	build   func(string) (models.Task, error)
}

var buildersByCommand = map[string]func(string) (models.Task, error){
	commands.CmdTodo:     models.ParseTodo,
	commands.CmdDeadline: models.ParseDeadline,
	commands.CmdEvent:    models.ParseEvent,
}

// taskBuilders follows the order of commands.AddCommands.
var taskBuilders = newTaskBuilders()

func newTaskBuilders() []taskBuilder {
	out := make([]taskBuilder, 0, len(commands.AddCommands))
	for _, command := range commands.AddCommands {
		build, ok := buildersByCommand[command]
		if !ok {
			panic("parser: no builder for add command " + command)
		}
		out = append(out, taskBuilder{command: command, build: build})
	}
	return out
}

// Parser interprets input lines and applies them to the task list it owns.
type Parser struct {
	list *tasklist.TaskList
}

func New(list *tasklist.TaskList) *Parser {
	if list == nil {
		list = tasklist.New()
	}
	return &Parser{list: list}
}

// List exposes the task list, e.g. for persisting it after a mutation.
func (p *Parser) List() *tasklist.TaskList {
	return p.list
}

// Handle classifies input, applies it, and reports the outcome. Failures are
// returned inside the Outcome and never leave the list partially modified.
func (p *Parser) Handle(input string) Outcome {
	outcome, err := p.dispatch(input)
	if err != nil {
		return Outcome{Message: err.Error(), Err: err}
	}
	return outcome
}

func (p *Parser) dispatch(input string) (Outcome, error) {
	switch {
	case input == commands.CmdBye:
		return Outcome{Message: byeMessage, Exit: true}, nil
	case input == commands.CmdList:
		return Outcome{Message: p.renderList()}, nil
	case strings.HasPrefix(input, commands.Prefix(commands.CmdFind)):
		return p.find(input)
	case strings.HasPrefix(input, commands.Prefix(commands.CmdDone)):
		return p.alter(input, doneAction)
	case strings.HasPrefix(input, commands.Prefix(commands.CmdDelete)):
		return p.alter(input, deleteAction)
	}
	if builder, ok := findBuilder(input); ok {
		return p.add(input, builder)
	}
	return Outcome{}, &models.UnrecognizedCommandError{Input: input}
}

// matchesCommand reports whether input is command alone or command followed
// by a space and arguments. Only add commands accept the bare word.
func matchesCommand(input, command string) bool {
	return input == command || strings.HasPrefix(input, commands.Prefix(command))
}

func argument(input, command string) string {
	return strings.TrimPrefix(strings.TrimPrefix(input, command), " ")
}

func (p *Parser) renderList() string {
	entries := p.list.Entries()
	if len(entries) == 0 {
		return emptyListMessage
	}
	return "Here are the tasks in your list:\n" + renderEntries(entries)
}

func (p *Parser) find(input string) (Outcome, error) {
	term := argument(input, commands.CmdFind)
	matches := p.list.FilterByDescription(term)
	if len(matches) == 0 {
		return Outcome{Message: fmt.Sprintf("No tasks have descriptions that contain the phrase '%s'.", term)}, nil
	}
	message := fmt.Sprintf("These tasks have descriptions that contain the phrase '%s':\n", term)
	return Outcome{Message: message + renderEntries(matches)}, nil
}

func (p *Parser) alter(input string, action taskAction) (Outcome, error) {
	number, err := parseTaskNumber(argument(input, action.command), action, p.list.Count())
	if err != nil {
		return Outcome{}, err
	}
	// Users count from 1, the list from 0.
	task, err := action.apply(p.list, number-1)
	if err != nil {
		return Outcome{}, err
	}
	message := fmt.Sprintf("This task is successfully %s!\n\n%s%s", action.verb, taskIndent, task)
	if action.reportCount {
		message += "\n" + countMessage(p.list.Count())
	}
	return Outcome{Message: message, Mutated: true, Task: task}, nil
}

// parseTaskNumber tells malformed numbers apart from well-formed ones too
// large to be in the list.
func parseTaskNumber(raw string, action taskAction, count int) (int, error) {
	number, err := strconv.Atoi(strings.TrimSpace(raw))
	if err == nil {
		return number, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, &models.OutOfRangeError{Count: count}
	}
	return 0, &models.InvalidParamError{
		Hint: fmt.Sprintf("Please specify which task you would like to have %s by adding a single number after '%s', e.g. %s 1",
			action.verb, action.command, action.command),
	}
}

func findBuilder(input string) (taskBuilder, bool) {
	for _, builder := range taskBuilders {
		if matchesCommand(input, builder.command) {
			return builder, true
		}
	}
	return taskBuilder{}, false
}

func (p *Parser) add(input string, builder taskBuilder) (Outcome, error) {
	if len(strings.Fields(input)) <= 1 {
		return Outcome{}, &models.MissingDescriptionError{Command: builder.command}
	}
	task, err := builder.build(argument(input, builder.command))
	if err != nil {
		return Outcome{}, err
	}
	if task == nil {
		panic("parser: " + builder.command + " builder returned no task and no error")
	}
	p.list.Add(task)
	message := fmt.Sprintf("You have successfully added the following task!\n\n%s%s\n%s",
		taskIndent, task, countMessage(p.list.Count()))
	return Outcome{Message: message, Mutated: true, Task: task}, nil
}

func renderEntries(entries []tasklist.Entry) string {
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, fmt.Sprintf("%d. %s", entry.Number, entry.Task))
	}
	return strings.Join(lines, "\n")
}

func countMessage(count int) string {
	if count == 1 {
		return "Now you have 1 task in the list."
	}
	return fmt.Sprintf("Now you have %d tasks in the list.", count)
}
