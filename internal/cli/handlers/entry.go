// Package handlers implements the one-shot hours commands on top of a
// service.Session, writing results to the streams in cli.Deps.
package handlers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xolan/hours/internal/cli"
	"github.com/xolan/hours/internal/project"
	"github.com/xolan/hours/internal/record"
	"github.com/xolan/hours/internal/service"
)

// EntryInput holds the raw field values for a new entry
type EntryInput struct {
	Employee string
	Project  string
	Date     string
	Hours    string
}

// LoadSession reads the hours file into the session and reports skipped rows.
// Returns false after exiting with an error.
func LoadSession(deps *cli.Deps) (service.LoadResult, bool) {
	session := deps.Services.Session
	result, err := session.Load()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to read entries from the hours file")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that file exists and is readable: %s\n", session.Path())
		deps.Exit(1)
		return result, false
	}

	if len(result.Warnings) > 0 {
		_, _ = fmt.Fprintf(deps.Stderr, "Warning: Skipped %d malformed %s in the hours file:\n",
			len(result.Warnings), cli.Pluralize("row", len(result.Warnings)))
		for _, warning := range result.Warnings {
			_, _ = fmt.Fprintln(deps.Stderr, cli.FormatCorruptionWarning(warning))
		}
		_, _ = fmt.Fprintln(deps.Stderr)
	}
	if len(result.Irregular) > 0 {
		_, _ = fmt.Fprintf(deps.Stderr, "Warning: Kept %d irregular %s as written:\n",
			len(result.Irregular), cli.Pluralize("row", len(result.Irregular)))
		for _, warning := range result.Irregular {
			_, _ = fmt.Fprintln(deps.Stderr, cli.FormatCorruptionWarning(warning))
		}
		_, _ = fmt.Fprintln(deps.Stderr)
	}
	return result, true
}

// ListEntries prints every entry sorted by project
func ListEntries(deps *cli.Deps) {
	if _, ok := LoadSession(deps); !ok {
		return
	}
	printLines(deps.Stdout, cli.FormatEntryTable(deps.Services.Session.Entries()))
}

// ListProjects prints the projects found in the hours file
func ListProjects(deps *cli.Deps) {
	if _, ok := LoadSession(deps); !ok {
		return
	}
	printLines(deps.Stdout, cli.FormatProjectList(deps.Services.Session.Projects()))
}

// AddEntry validates and appends one entry, then saves the file.
// With register set, an unknown project is added to the project list first.
func AddEntry(deps *cli.Deps, input EntryInput, register bool) {
	if _, ok := LoadSession(deps); !ok {
		return
	}
	session := deps.Services.Session

	if register {
		res := session.AddProject(input.Project)
		if res.Result == project.Added {
			_, _ = fmt.Fprintln(deps.Stdout, res.Message)
		}
	}

	result, err := session.TryAddEntry(input.Employee, input.Project, input.Date, input.Hours)
	if err != nil {
		if result.ProjectMessage != "" {
			_, _ = fmt.Fprintln(deps.Stderr, result.ProjectMessage)
		}
		_, _ = fmt.Fprintln(deps.Stderr, result.Message)
		if errors.Is(err, record.ErrProjectNotRecognized) && !register {
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use --register to add a new project together with the entry")
		}
		deps.Exit(1)
		return
	}
	_, _ = fmt.Fprintln(deps.Stdout, result.Message)
	_, _ = fmt.Fprintln(deps.Stdout, cli.FormatEntryRow(result.Record))

	saveSession(deps)
}

// DeleteEntry removes one entry by its listed number and saves the file.
// The entry is shown and confirmed first unless skipConfirm is set.
func DeleteEntry(deps *cli.Deps, seqText string, skipConfirm bool) {
	if _, ok := LoadSession(deps); !ok {
		return
	}
	session := deps.Services.Session

	r, err := session.FindEntry(seqText)
	if err != nil {
		if len(session.Entries()) == 0 {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: "+service.MsgNoEntries)
		} else {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %s (got '%s')\n", service.MsgEntryNotFound, seqText)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: List entries with 'hours list' to see entry numbers")
		}
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "The entry you chose to remove is:")
	_, _ = fmt.Fprintln(deps.Stdout, cli.FormatEntryRow(r))

	if !skipConfirm && deps.Confirm() {
		if !promptConfirmation(deps.Stdout, deps.Stdin, "Are you sure you want to delete this entry?") {
			_, _ = fmt.Fprintln(deps.Stdout, "Entry Was Not Removed!")
			return
		}
	}

	result, err := session.RemoveEntry(seqText)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %s\n", result.Message)
		deps.Exit(1)
		return
	}
	_, _ = fmt.Fprintln(deps.Stdout, result.Message)

	if len(session.Entries()) == 0 {
		// The file cannot be emptied through a save
		_, _ = fmt.Fprintln(deps.Stderr, "Warning: This was the last entry; the hours file was left unchanged")
		return
	}
	saveSession(deps)
}

// saveSession writes the session back to the hours file
func saveSession(deps *cli.Deps) {
	session := deps.Services.Session
	result, err := session.Save()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to write entries to the hours file")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that the directory is writable: %s\n", session.Path())
		deps.Exit(1)
		return
	}
	_, _ = fmt.Fprintln(deps.Stdout, result.Message)
}

// promptConfirmation asks a y/N question
func promptConfirmation(stdout io.Writer, stdin io.Reader, question string) bool {
	_, _ = fmt.Fprintf(stdout, "%s [y/N]: ", question)

	scanner := bufio.NewScanner(stdin)
	if !scanner.Scan() {
		return false
	}

	response := strings.TrimSpace(scanner.Text())
	return response == "y" || response == "Y"
}

func printLines(w io.Writer, lines []string) {
	for _, line := range lines {
		_, _ = fmt.Fprintln(w, line)
	}
}
