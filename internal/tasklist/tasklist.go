package tasklist

import (
	"strings"

	"github.com/XertroV/tasks/todo_go/internal/models"
)

// Entry pairs a task with its 1-based position in the list.
type Entry struct {
	Number int
	Task   models.Task
}

// TaskList is an ordered collection of tasks. Indices taken by its methods
// are 0-based; Entry numbers are 1-based.
type TaskList struct {
	tasks []models.Task
}

func New(tasks ...models.Task) *TaskList {
	return &TaskList{tasks: append([]models.Task{}, tasks...)}
}

// Add appends task to the end of the list.
func (l *TaskList) Add(task models.Task) {
	l.tasks = append(l.tasks, task)
}

// Remove deletes and returns the task at index.
func (l *TaskList) Remove(index int) (models.Task, error) {
	if err := l.checkIndex(index); err != nil {
		return nil, err
	}
	task := l.tasks[index]
	l.tasks = append(l.tasks[:index], l.tasks[index+1:]...)
	return task, nil
}

// MarkDone marks the task at index done and returns it.
func (l *TaskList) MarkDone(index int) (models.Task, error) {
	if err := l.checkIndex(index); err != nil {
		return nil, err
	}
	task := l.tasks[index]
	task.MarkAsDone()
	return task, nil
}

func (l *TaskList) Count() int {
	return len(l.tasks)
}

// Entries returns every task with its 1-based number, in list order.
func (l *TaskList) Entries() []Entry {
	out := make([]Entry, 0, len(l.tasks))
	for idx, task := range l.tasks {
		out = append(out, Entry{Number: idx + 1, Task: task})
	}
	return out
}

// Tasks returns a copy of the underlying slice.
func (l *TaskList) Tasks() []models.Task {
	return append([]models.Task{}, l.tasks...)
}

// FilterByDescription returns the entries whose description contains term
// (case-sensitive), keeping their list numbers and order.
func (l *TaskList) FilterByDescription(term string) []Entry {
	out := []Entry{}
	for idx, task := range l.tasks {
		if strings.Contains(task.Description(), term) {
			out = append(out, Entry{Number: idx + 1, Task: task})
		}
	}
	return out
}

func (l *TaskList) checkIndex(index int) error {
	if index < 0 || index >= len(l.tasks) {
		return &models.OutOfRangeError{Number: index + 1, Count: len(l.tasks)}
	}
	return nil
}
