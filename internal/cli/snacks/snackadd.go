package snacks

import (
	"fmt"
	"time"

	"mealdiary/internal/cli"
	"mealdiary/internal/validation"
)

type SnackAddCmd struct {
	Reason string `arg:"" help:"Why you snacked (hunger|stress|routine|sweet)."`
	Hunger int    `short:"H" help:"Hunger level at the time (1-5)." default:"3"`
	Note   string `short:"n" help:"Free-text note."`
	When   string `short:"w" help:"Timestamp (YYYY-MM-DD or 'YYYY-MM-DD HH:MM'). Defaults to now."`
}

func (c *SnackAddCmd) Run(ctx *cli.Context) error {
	now := time.Now()

	reason, err := cli.ParseReason(c.Reason)
	if err != nil {
		return err
	}
	date, err := cli.ParseWhen(c.When, now)
	if err != nil {
		return err
	}

	draft := validation.SnackDraft{
		Date:   date,
		Reason: reason,
		Hunger: c.Hunger,
		Note:   c.Note,
	}
	if err := draft.Validate(); err != nil {
		return err
	}

	stored := ctx.Store.AddSnack(draft.Event())
	fmt.Printf("Logged snack (%s, ID: %s)\n", stored.Reason, stored.ID)
	return nil
}
