// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todo/internal/service"
)

const (
	// MenuTitle heads the menu on every loop iteration.
	MenuTitle = "TODO Application"

	// DoneSymbol and OpenSymbol mark completed and open tasks.
	DoneSymbol = "✓"
	OpenSymbol = "✗"

	// NoTasks is printed by view when the list is empty.
	NoTasks = "No tasks found."

	// InvalidTaskNumber is printed when a task number is out of range.
	InvalidTaskNumber = "Invalid task number."

	// InvalidChoice is printed for an unknown menu entry.
	InvalidChoice = "Invalid choice."

	// Goodbye is printed when the user exits.
	Goodbye = "Goodbye!"
)

// MenuItem is a single menu line.
type MenuItem struct {
	Key   string
	Label string
}

// FormatTask formats a task line.
// Format: "{N}. [{✓|✗}] {DESCRIPTION}\n"
func FormatTask(w io.Writer, num int, task service.Task) {
	status := OpenSymbol
	if task.Completed {
		status = DoneSymbol
	}
	fmt.Fprintf(w, "%d. [%s] %s\n", num, status, oneLine(task.Description))
}

// FormatTasks prints all tasks numbered from 1, or NoTasks if there are none.
func FormatTasks(w io.Writer, tasks []service.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, NoTasks)
		return
	}
	for i, task := range tasks {
		FormatTask(w, i+1, task)
	}
}

// FormatMenu prints a blank line, the title and one "K. Label" line per item.
func FormatMenu(w io.Writer, items []MenuItem) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, MenuTitle)
	for _, item := range items {
		fmt.Fprintf(w, "%s. %s\n", item.Key, item.Label)
	}
}

// oneLine keeps a description on a single output line.
func oneLine(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
