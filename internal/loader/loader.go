package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/XertroV/tasks/todo_go/internal/models"
	"github.com/XertroV/tasks/todo_go/internal/tasklist"
)

// Record is the persisted form of a task.
type Record struct {
	ID          string `yaml:"id"`
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
	Done        bool   `yaml:"done,omitempty"`
	By          string `yaml:"by,omitempty"`
	At          string `yaml:"at,omitempty"`
}

type document struct {
	Tasks []Record `yaml:"tasks"`
}

// Load reads the task list stored at path. A missing file yields an empty list.
func Load(path string) (*tasklist.TaskList, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return tasklist.New(), nil
		}
		return nil, err
	}
	doc := document{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	list := tasklist.New()
	for idx, record := range doc.Tasks {
		task, err := FromRecord(record)
		if err != nil {
			return nil, fmt.Errorf("%s: task %d: %w", path, idx+1, err)
		}
		list.Add(task)
	}
	return list, nil
}

// Save writes list to path, replacing the file atomically. Missing parent
// directories are created.
func Save(path string, list *tasklist.TaskList) error {
	doc := document{Tasks: []Record{}}
	for _, task := range list.Tasks() {
		doc.Tasks = append(doc.Tasks, ToRecord(task))
	}
	payload, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// ToRecord converts a task to its persisted form.
func ToRecord(task models.Task) Record {
	record := Record{
		ID:          task.ID().String(),
		Type:        string(task.Kind()),
		Description: task.Description(),
		Done:        task.IsDone(),
	}
	switch value := task.(type) {
	case *models.Deadline:
		record.By = value.By().Format(models.DateLayout)
	case *models.Event:
		record.At = value.At()
	}
	return record
}

// FromRecord rebuilds a task, keeping its stored id. Records without an id get
// a fresh one.
func FromRecord(record Record) (models.Task, error) {
	if record.Description == "" {
		return nil, &models.MissingDescriptionError{Command: record.Type}
	}

	var task models.Task
	switch models.Kind(record.Type) {
	case models.KindTodo:
		task = models.NewTodo(record.Description)
	case models.KindDeadline:
		by, err := time.Parse(models.DateLayout, record.By)
		if err != nil {
			return nil, fmt.Errorf("invalid deadline date %q: %w", record.By, err)
		}
		task = models.NewDeadline(record.Description, by)
	case models.KindEvent:
		if record.At == "" {
			return nil, fmt.Errorf("event %q has no time", record.Description)
		}
		task = models.NewEvent(record.Description, record.At)
	default:
		return nil, fmt.Errorf("unknown task type %q", record.Type)
	}

	id := task.ID()
	if record.ID != "" {
		parsed, err := uuid.Parse(record.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid task id %q: %w", record.ID, err)
		}
		id = parsed
	}
	return models.Restore(task, id, record.Done), nil
}
