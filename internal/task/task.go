// Package task holds the account and task data model and the tusk
// configuration.
//
// Tasks have no identity of their own. Commands address them by 1-based
// position within the owning account, so ids shift when a task is deleted.
package task

import (
	"fmt"
	"slices"
)

// Task is a single to-do item.
type Task struct {
	Description string   `json:"description"`
	Completed   bool     `json:"completed"`
	Priority    Priority `json:"priority"`
}

// NewTask returns an incomplete, low priority task.
func NewTask(description string) Task {
	return Task{Description: description, Priority: PriorityLow}
}

// NewTaskWithPriority returns an incomplete task with the given priority.
func NewTaskWithPriority(description string, priority Priority) Task {
	return Task{Description: description, Priority: priority}
}

// MarkComplete sets the task completed.
func (t *Task) MarkComplete() {
	t.Completed = true
}

// MarkIncomplete clears the completed flag.
func (t *Task) MarkIncomplete() {
	t.Completed = false
}

// Account is a named, ordered list of tasks.
//
// Subaccounts is carried through load and save but no command reads or
// writes it.
type Account struct {
	Name        string              `json:"name"`
	Tasks       []Task              `json:"tasks"`
	Subaccounts map[string]*Account `json:"subaccounts"`
}

// NewAccount returns an empty account.
func NewAccount(name string) *Account {
	return &Account{
		Name:        name,
		Tasks:       []Task{},
		Subaccounts: map[string]*Account{},
	}
}

// AddTask appends a low priority task.
func (a *Account) AddTask(description string) {
	a.Tasks = append(a.Tasks, NewTask(description))
}

// AddTaskWithPriority appends a task with the given priority.
func (a *Account) AddTaskWithPriority(description string, priority Priority) {
	a.Tasks = append(a.Tasks, NewTaskWithPriority(description, priority))
}

// Task returns the task at the 1-based position id.
func (a *Account) Task(id int) (*Task, error) {
	if id < 1 || id > len(a.Tasks) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIndex, id)
	}

	return &a.Tasks[id-1], nil
}

// DeleteTask removes the task at the 1-based position id and reports whether
// anything was removed. Out of range ids are ignored.
func (a *Account) DeleteTask(id int) bool {
	if id < 1 || id > len(a.Tasks) {
		return false
	}

	a.Tasks = slices.Delete(a.Tasks, id-1, id)

	return true
}

// CompleteTask marks the task at id complete.
// Returns [ErrInvalidIndex] if id is out of range.
func (a *Account) CompleteTask(id int) error {
	t, err := a.Task(id)
	if err != nil {
		return err
	}

	t.MarkComplete()

	return nil
}

// UncompleteTask marks the task at id incomplete.
// Returns [ErrInvalidIndex] if id is out of range.
func (a *Account) UncompleteTask(id int) error {
	t, err := a.Task(id)
	if err != nil {
		return err
	}

	t.MarkIncomplete()

	return nil
}

// ClearTasks removes all tasks.
func (a *Account) ClearTasks() {
	a.Tasks = []Task{}
}

// OpenCount returns the number of tasks not yet completed.
func (a *Account) OpenCount() int {
	n := 0

	for _, t := range a.Tasks {
		if !t.Completed {
			n++
		}
	}

	return n
}

// normalize replaces nil collections left by decoding with empty ones so the
// account re-serializes as [] and {} rather than null. Subaccounts are
// normalized recursively; a null subaccount is an error.
func (a *Account) normalize(name string) error {
	if a.Name == "" {
		a.Name = name
	}

	if a.Tasks == nil {
		a.Tasks = []Task{}
	}

	if a.Subaccounts == nil {
		a.Subaccounts = map[string]*Account{}
	}

	for subName, sub := range a.Subaccounts {
		if sub == nil {
			return fmt.Errorf("subaccount %q of %q is null", subName, a.Name)
		}

		err := sub.normalize(subName)
		if err != nil {
			return err
		}
	}

	return nil
}
