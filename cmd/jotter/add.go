package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	addTitle string
	addDesc  string
)

// addCmd creates a note in the seeded collection and prints the result.
// The collection is in-memory only, so the effect lasts for this
// invocation; the command exists for scripting and demos.
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a note",
	Long:  `Create a note with the given title and description and print the resulting collection.`,
	Run: func(cmd *cobra.Command, args []string) {
		if addTitle == "" {
			fmt.Println("Error: --title is required")
			cmd.Usage()
			os.Exit(1)
		}

		service, err := newService()
		if err != nil {
			fatal("Failed to initialize jotter", err)
		}

		n, err := service.CreateNote(context.Background(), addTitle, addDesc)
		if err != nil {
			fatal("Failed to create note", err)
		}

		fmt.Printf("Note created: %d - %s\n", n.ID, n.Title)
		for _, note := range service.Notes() {
			fmt.Printf("%d  %s\n", note.ID, note.Title)
		}
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addTitle, "title", "", "Note title (required)")
	addCmd.Flags().StringVar(&addDesc, "description", "", "Note description")
}
