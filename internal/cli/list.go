package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmmx/mdbed/internal/files"
	"github.com/lmmx/mdbed/internal/output"
)

var (
	listRecursive bool
	listFilter    string
)

var listCmd = &cobra.Command{
	Use:   "list [paths...]",
	Short: "List input files without processing",
	Long: `List the input files matching the filter without processing them.

Examples:

  List markdown files in the current directory:
      mdbed list .

  List specific files:
      mdbed list file1.md file2.md`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(args)
	},
}

func init() {
	listCmd.Flags().BoolVarP(&listRecursive, "recursive", "r", false, "Search directories recursively")
	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "", `Filename filter glob (default "*.md")`)
	rootCmd.AddCommand(listCmd)
}

func runList(paths []string) error {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	entries, err := files.List(paths, listFilter, listRecursive)
	if err != nil {
		return err
	}
	found := files.Files(entries)
	if len(found) == 0 {
		fmt.Println("No files found.")
		return nil
	}

	fmt.Printf("Found %d files:\n", len(found))
	fmt.Print(output.RenderFiles(found))
	return nil
}
