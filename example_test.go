package jotter_test

import (
	"context"
	"fmt"

	"github.com/jotter-app/jotter"
)

func ExampleNew() {
	svc, err := jotter.New(jotter.WithSeed([]jotter.Note{
		{ID: 1, Title: "First Task", Description: "Pick Up Paycheck"},
	}))
	if err != nil {
		fmt.Println("init failed:", err)
		return
	}

	ctx := context.Background()

	created, _ := svc.CreateNote(ctx, "Second Task", "Mail Rent Check")
	fmt.Println("created:", created.ID, created.Title)

	_ = svc.UpdateNote(ctx, jotter.Note{ID: 1, Title: "First Task", Description: "Deposit Paycheck"})
	_ = svc.DeleteNote(ctx, 2)

	for _, n := range svc.Notes() {
		fmt.Println(n.ID, n.Title, "-", n.Description)
	}
	// Output:
	// created: 2 Second Task
	// 1 First Task - Deposit Paycheck
}
