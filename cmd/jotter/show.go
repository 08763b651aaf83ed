package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a single note",
	Long:  `Show prints one note, rendering its description as Markdown.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			fatal("Invalid note id", err)
		}

		service, err := newService()
		if err != nil {
			fatal("Failed to initialize jotter", err)
		}

		n, ok := service.FindNote(id)
		if !ok {
			fmt.Printf("Note %d not found\n", id)
			return
		}

		fmt.Printf("# %d - %s\n", n.ID, n.Title)
		rendered, err := glamour.Render(n.Description, "auto")
		if err != nil {
			// Fall back to the raw text when the terminal can't be probed.
			fmt.Println(n.Description)
			return
		}
		fmt.Print(rendered)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
