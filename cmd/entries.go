package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/hours/internal/cli/handlers"
)

var (
	addInput    handlers.EntryInput
	addRegister bool
	yesFlag     bool
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all entries sorted by project",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if d, ok := newCLIDeps(); ok {
			handlers.ListEntries(d)
		}
	},
}

// projectsCmd represents the projects command
var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List the projects found in the hours file",
	Long: `List the projects found in the hours file, sorted alphabetically.

Projects are stored only through the entries that use them. To start a new
project, add its first entry with 'hours add --register'.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if d, ok := newCLIDeps(); ok {
			handlers.ListProjects(d)
		}
	},
}

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new entry and save the hours file",
	Long: `Add a new entry and save the hours file.

The project must already appear in the hours file unless --register is given.

Example:
  hours add --employee 'John Smith' --project Alpha --date 01/15/2021 --hours 3.5
  hours add -e 'Jane Doe' -p Gamma -d 02/01/2021 -H 8 --register`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if d, ok := newCLIDeps(); ok {
			handlers.AddEntry(d, addInput, addRegister)
		}
	},
}

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <entry>",
	Short: "Delete an entry by its number",
	Long: `Delete an entry by the number shown in 'hours list' and save the hours file.
The entry is shown and a confirmation prompt follows unless --yes is given
or confirm is disabled in the config file.

Example:
  hours delete 3
  hours delete 3 --yes`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if d, ok := newCLIDeps(); ok {
			handlers.DeleteEntry(d, args[0], yesFlag)
		}
	},
}

func init() {
	addCmd.Flags().StringVarP(&addInput.Employee, "employee", "e", "", "employee name")
	addCmd.Flags().StringVarP(&addInput.Project, "project", "p", "", "project name")
	addCmd.Flags().StringVarP(&addInput.Date, "date", "d", "", "date worked, as 01/15/2021")
	addCmd.Flags().StringVarP(&addInput.Hours, "hours", "H", "", "hours worked, as a decimal")
	addCmd.Flags().BoolVar(&addRegister, "register", false, "add the project to the project list if it is new")
	for _, name := range []string{"employee", "project", "date", "hours"} {
		_ = addCmd.MarkFlagRequired(name)
	}

	deleteCmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "skip confirmation prompt")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(deleteCmd)
}
