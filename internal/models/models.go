package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind names a task variant.
type Kind string

const (
	KindTodo     Kind = "todo"
	KindDeadline Kind = "deadline"
	KindEvent    Kind = "event"
)

const (
	// DateLayout is the accepted input form for dates (yyyy-mm-dd).
	DateLayout        = "2006-01-02"
	// DisplayDateLayout renders dates as e.g. "Dec 25 2021".
	DisplayDateLayout = "Jan 02 2006"

	byMarker = "/by"
	atMarker = "/at"
)

// Task is implemented by exactly *Todo, *Deadline and *Event.
type Task interface {
	ID() uuid.UUID
	Kind() Kind
	Description() string
	IsDone() bool
	MarkAsDone()
	String() string

	core() *base
}

type base struct {
	id          uuid.UUID
	description string
	done        bool
}

func newBase(description string) base {
	return base{id: uuid.New(), description: description}
}

func (b *base) core() *base { return b }

func (b *base) ID() uuid.UUID { return b.id }

func (b *base) Description() string { return b.description }

func (b *base) IsDone() bool { return b.done }

// MarkAsDone is idempotent.
func (b *base) MarkAsDone() { b.done = true }

func (b *base) render() string {
	status := " "
	if b.done {
		status = "X"
	}
	return "[" + status + "] " + b.description
}

type Todo struct {
	base
}

func NewTodo(description string) *Todo {
	return &Todo{base: newBase(description)}
}

func (t *Todo) Kind() Kind { return KindTodo }

func (t *Todo) String() string { return "[T]" + t.render() }

// Deadline is a task that must be done by a calendar date.
type Deadline struct {
	base
	by time.Time
}

func NewDeadline(description string, by time.Time) *Deadline {
	return &Deadline{base: newBase(description), by: by}
}

func (d *Deadline) Kind() Kind { return KindDeadline }

func (d *Deadline) By() time.Time { return d.by }

func (d *Deadline) String() string {
	return fmt.Sprintf("[D]%s (by: %s)", d.render(), d.by.Format(DisplayDateLayout))
}

// Event is a task happening at a free-text time.
type Event struct {
	base
	at string
}

func NewEvent(description, at string) *Event {
	return &Event{base: newBase(description), at: at}
}

func (e *Event) Kind() Kind { return KindEvent }

func (e *Event) At() string { return e.at }

func (e *Event) String() string {
	at := e.at
	if date, err := time.Parse(DateLayout, at); err == nil {
		at = date.Format(DisplayDateLayout)
	}
	return fmt.Sprintf("[E]%s (at: %s)", e.render(), at)
}

// Restore overwrites the identity and completion state of a task, used when
// reading a persisted list back in.
func Restore(task Task, id uuid.UUID, done bool) Task {
	b := task.core()
	b.id = id
	b.done = done
	return task
}

// ParseTodo builds a Todo from the text following the command word.
func ParseTodo(raw string) (Task, error) {
	description := strings.TrimSpace(raw)
	if description == "" {
		return nil, &MissingDescriptionError{Command: string(KindTodo)}
	}
	return NewTodo(description), nil
}

// ParseDeadline accepts "<description> /by <yyyy-mm-dd>" or, without the
// marker, a trailing date token.
func ParseDeadline(raw string) (Task, error) {
	description, field, ok := splitTrailingField(raw, byMarker)
	if !ok {
		return nil, deadlineFormatError()
	}
	by, err := time.Parse(DateLayout, field)
	if err != nil {
		return nil, deadlineFormatError()
	}
	return NewDeadline(description, by), nil
}

// ParseEvent accepts "<description> /at <when>" or, without the marker, a
// trailing time token. The time field is free text.
func ParseEvent(raw string) (Task, error) {
	description, field, ok := splitTrailingField(raw, atMarker)
	if !ok {
		return nil, &InvalidParamError{
			Hint: "An event needs a description and a time in the form: event <description> /at <time>, e.g. event project meeting /at 2021-12-25",
		}
	}
	return NewEvent(description, field), nil
}

func deadlineFormatError() error {
	return &InvalidParamError{
		Hint: "The deadline should be a valid date in the form: yyyy-mm-dd, e.g. deadline return book /by 2021-12-25",
	}
}

// splitTrailingField separates the description from its extra field, either
// at the last occurrence of marker or at the last whitespace-separated token.
func splitTrailingField(raw, marker string) (string, string, bool) {
	raw = strings.TrimSpace(raw)
	var description, field string
	if idx := markerIndex(raw, marker); idx >= 0 {
		description = raw[:idx]
		field = raw[idx+len(marker):]
	} else {
		idx := strings.LastIndexAny(raw, " \t")
		if idx < 0 {
			return "", "", false
		}
		description = raw[:idx]
		field = raw[idx+1:]
	}
	description = strings.TrimSpace(description)
	field = strings.TrimSpace(field)
	if description == "" || field == "" {
		return "", "", false
	}
	return description, field, true
}

// markerIndex returns the offset of the last standalone occurrence of marker,
// or -1.
func markerIndex(raw, marker string) int {
	for idx := strings.LastIndex(raw, marker); idx >= 0; idx = strings.LastIndex(raw[:idx], marker) {
		before := idx == 0 || isBlank(raw[idx-1])
		end := idx + len(marker)
		after := end == len(raw) || isBlank(raw[end])
		if before && after {
			return idx
		}
	}
	return -1
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}
