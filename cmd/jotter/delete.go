package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note from the collection",
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

		before := service.Len()
		if err := service.DeleteNote(context.Background(), id); err != nil {
			fatal("Failed to delete note", err)
		}

		if service.Len() == before {
			fmt.Printf("Note %d not found, nothing deleted\n", id)
			return
		}
		fmt.Printf("Note deleted: %d (%d remaining)\n", id, service.Len())
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
