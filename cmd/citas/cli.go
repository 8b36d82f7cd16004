package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/graffic/citas-go/internal/pages"
	"github.com/graffic/citas-go/internal/quotes"
)

var errUsage = errors.New("usage: citas [home|list|add <phrase> <author>|delete <id>|random|settings [on|off]|bot]")

func runCLI(ctx context.Context, a *app, cmd string, args []string, out io.Writer) error {
	renderer := quotes.NewRenderer()

	switch cmd {
	case "home":
		view, err := a.pages.home.Enter(ctx)
		if err != nil {
			return err
		}
		if view.Quote == nil {
			fmt.Fprintln(out, "No quotes yet.")
		} else {
			text, err := renderer.Render(quotes.RenderOptions{Quote: view.Quote, IncludeID: view.AllowDelete})
			if err != nil {
				return err
			}
			fmt.Fprintln(out, text)
		}
		fmt.Fprintf(out, "\nDelete from home: %s\n", onOff(view.AllowDelete))
		return nil

	case "random":
		view, err := a.pages.home.Enter(ctx)
		if err != nil {
			return err
		}
		if view.Quote == nil {
			fmt.Fprintln(out, "No quotes yet.")
			return nil
		}
		text, err := renderer.RenderCard(view.Quote)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, text)
		return nil

	case "list":
		list, err := a.pages.manage.Enter(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, renderer.RenderList(list))
		return nil

	case "add":
		if len(args) != 2 {
			return errUsage
		}
		list, err := a.pages.manage.Save(ctx, pages.QuoteForm{Phrase: args[0], Author: args[1]})
		var formErrors pages.FormErrors
		if errors.As(err, &formErrors) {
			fmt.Fprintln(out, strings.Join(formErrors.Messages(), "\n"))
			return err
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Quote added. There are %d quotes now.\n", len(list))
		return nil

	case "delete":
		if len(args) != 1 {
			return errUsage
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid quote id %q: %w", args[0], errUsage)
		}
		if _, err := a.pages.manage.Remove(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(out, "Quote #%d deleted.\n", id)
		return nil

	case "settings":
		var (
			allow bool
			err   error
		)
		switch {
		case len(args) == 0:
			allow, err = a.pages.settings.Enter(ctx)
		case len(args) == 1 && args[0] == "on":
			allow, err = a.pages.settings.Toggle(ctx, true)
		case len(args) == 1 && args[0] == "off":
			allow, err = a.pages.settings.Toggle(ctx, false)
		default:
			return errUsage
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Delete from home: %s\n", onOff(allow))
		return nil

	default:
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
