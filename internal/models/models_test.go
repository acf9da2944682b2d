package models

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTaskRendering(t *testing.T) {
	t.Parallel()

	by := time.Date(2021, time.December, 25, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		task     Task
		expected string
	}{
		{NewTodo("read book"), "[T][ ] read book"},
		{NewDeadline("return book", by), "[D][ ] return book (by: Dec 25 2021)"},
		{NewEvent("meeting", "Mon 2-4pm"), "[E][ ] meeting (at: Mon 2-4pm)"},
		{NewEvent("party", "2021-12-25"), "[E][ ] party (at: Dec 25 2021)"},
	}
	for _, tc := range cases {
		if got := tc.task.String(); got != tc.expected {
			t.Fatalf("String() = %q, expected %q", got, tc.expected)
		}
	}
}

func TestMarkAsDoneIsIdempotent(t *testing.T) {
	t.Parallel()

	task := NewTodo("read book")
	if task.IsDone() {
		t.Fatal("new task should not be done")
	}
	task.MarkAsDone()
	first := task.String()
	task.MarkAsDone()
	if task.String() != first {
		t.Fatalf("String() = %q after second MarkAsDone, expected %q", task.String(), first)
	}
	if first != "[T][X] read book" {
		t.Fatalf("String() = %q, expected done marker", first)
	}
}

func TestParseDeadline(t *testing.T) {
	t.Parallel()

	valid := map[string]string{
		"return book /by 2021-12-25":   "[D][ ] return book (by: Dec 25 2021)",
		"buy milk 2021-12-25":          "[D][ ] buy milk (by: Dec 25 2021)",
		"  pay  rent   /by 2022-01-01": "[D][ ] pay  rent (by: Jan 01 2022)",
		"use /by-pass /by 2022-03-04":  "[D][ ] use /by-pass (by: Mar 04 2022)",
	}
	for input, expected := range valid {
		task, err := ParseDeadline(input)
		if err != nil {
			t.Fatalf("ParseDeadline(%q) = %v, expected success", input, err)
		}
		if task.String() != expected {
			t.Fatalf("ParseDeadline(%q).String() = %q, expected %q", input, task.String(), expected)
		}
		if task.Kind() != KindDeadline {
			t.Fatalf("Kind() = %q, expected deadline", task.Kind())
		}
	}

	for _, input := range []string{
		"buy milk",
		"buy milk /by tomorrow",
		"buy milk /by 2021-13-01",
		"buy milk /by 2021-2-3",
		"2021-12-25",
		"/by 2021-12-25",
		"buy milk /by",
	} {
		_, err := ParseDeadline(input)
		var paramErr *InvalidParamError
		if !errors.As(err, &paramErr) {
			t.Fatalf("ParseDeadline(%q) error = %v, expected InvalidParamError", input, err)
		}
		if !strings.Contains(paramErr.Error(), "yyyy-mm-dd") {
			t.Fatalf("error = %q, expected date format hint", paramErr.Error())
		}
	}
}

func TestParseEvent(t *testing.T) {
	t.Parallel()

	task, err := ParseEvent("project meeting /at Mon 2-4pm")
	if err != nil {
		t.Fatalf("ParseEvent() = %v, expected success", err)
	}
	if task.Description() != "project meeting" {
		t.Fatalf("Description() = %q, expected project meeting", task.Description())
	}
	if event := task.(*Event); event.At() != "Mon 2-4pm" {
		t.Fatalf("At() = %q, expected Mon 2-4pm", event.At())
	}

	task, err = ParseEvent("concert tonight")
	if err != nil {
		t.Fatalf("ParseEvent() = %v, expected success", err)
	}
	if task.String() != "[E][ ] concert (at: tonight)" {
		t.Fatalf("String() = %q, expected trailing token as time", task.String())
	}

	for _, input := range []string{"party", "party /at", "/at 6pm", ""} {
		var paramErr *InvalidParamError
		if _, err := ParseEvent(input); !errors.As(err, &paramErr) {
			t.Fatalf("ParseEvent(%q) error = %v, expected InvalidParamError", input, err)
		}
	}
}

func TestParseTodo(t *testing.T) {
	t.Parallel()

	task, err := ParseTodo("  read book ")
	if err != nil {
		t.Fatalf("ParseTodo() = %v, expected success", err)
	}
	if task.Description() != "read book" {
		t.Fatalf("Description() = %q, expected read book", task.Description())
	}

	var missing *MissingDescriptionError
	if _, err := ParseTodo("   "); !errors.As(err, &missing) {
		t.Fatalf("ParseTodo(blank) error = %v, expected MissingDescriptionError", err)
	}
}

func TestRestore(t *testing.T) {
	t.Parallel()

	id := uuid.MustParse("f45a05b3-c12e-42e5-9c9c-333333333333")
	task := Restore(NewTodo("read book"), id, true)
	if task.ID() != id {
		t.Fatalf("ID() = %s, expected %s", task.ID(), id)
	}
	if !task.IsDone() {
		t.Fatal("restored task should be done")
	}
	if NewTodo("a").ID() == NewTodo("a").ID() {
		t.Fatal("new tasks should get distinct ids")
	}
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	if got := (&MissingDescriptionError{Command: "deadline"}).Error(); got != "The description of a deadline cannot be empty." {
		t.Fatalf("MissingDescriptionError.Error() = %q", got)
	}
	if got := (&OutOfRangeError{Number: 5, Count: 3}).Error(); !strings.Contains(got, "1 to 3") {
		t.Fatalf("OutOfRangeError.Error() = %q, expected valid range", got)
	}
	if got := (&OutOfRangeError{Number: 1}).Error(); !strings.Contains(got, "empty") {
		t.Fatalf("OutOfRangeError.Error() = %q, expected empty list hint", got)
	}
	if (&InvalidParamError{}).Error() == "" {
		t.Fatal("InvalidParamError.Error() should not be empty")
	}
	if (&UnrecognizedCommandError{Input: "blah"}).Error() == "" {
		t.Fatal("UnrecognizedCommandError.Error() should not be empty")
	}
}
