package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
)

// List prints one page of the user's service requests.
func (a *App) List(ctx context.Context) error {
	raw, err := getSimpleText(a.reader, "Page number (empty for 1)", os.Stdout)
	if err != nil {
		return err
	}
	page := 1
	if raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil {
			fmt.Println("Not a page number:", raw)
			return err
		}
	}

	result, err := a.mural.ListServices(ctx, page)
	if err != nil {
		a.log.Error(ctx, "listing services failed", "error", err)
		return err
	}

	for _, s := range result.Services {
		fmt.Printf("#%d [%s] %s\n", s.ID, s.Status, s.Title)
	}
	fmt.Printf("Page %d of %d\n", result.Meta.CurrentPage, result.Meta.LastPage)
	return nil
}

// Show prints a single service request with its comments.
func (a *App) Show(ctx context.Context) error {
	id, err := a.promptServiceID()
	if err != nil {
		return err
	}

	rec, err := a.mural.ServiceByID(ctx, id)
	if err != nil {
		a.log.Error(ctx, "fetching service failed", "error", err)
		return err
	}

	fmt.Printf("#%d [%s] %s\n", rec.ID, rec.Status, rec.Title)
	fmt.Println(rec.Description)
	if rec.RequestedDueDate != "" {
		fmt.Println("Due:", rec.RequestedDueDate)
	}
	for _, c := range rec.Comments {
		fmt.Printf("  %s (%s): %s\n", c.UserName, c.CreatedAt, c.Content)
	}
	return nil
}

// Comment posts a comment on a service request.
func (a *App) Comment(ctx context.Context) error {
	id, err := a.promptServiceID()
	if err != nil {
		return err
	}

	text, err := GetMultiline(a.reader, "Comment text", os.Stdout)
	if err != nil {
		return err
	}
	if text == "" {
		fmt.Println("Empty comment, nothing sent.")
		return nil
	}

	if err := a.mural.PostComment(ctx, id, text); err != nil {
		a.log.Error(ctx, "posting comment failed", "error", err)
		return err
	}

	fmt.Println("Comment posted.")
	return nil
}

func (a *App) promptServiceID() (int64, error) {
	return a.promptID("Service id")
}
