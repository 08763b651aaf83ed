package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	editTitle string
	editDesc  string
)

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a note's title or description",
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

		if cmd.Flags().Changed("title") {
			n.Title = editTitle
		}
		if cmd.Flags().Changed("description") {
			n.Description = editDesc
		}

		if err := service.UpdateNote(context.Background(), n); err != nil {
			fatal("Failed to update note", err)
		}

		fmt.Printf("Note updated: %d - %s\n", n.ID, n.Title)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVar(&editDesc, "description", "", "New description")
}
