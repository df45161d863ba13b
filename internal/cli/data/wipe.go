package data

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"mealdiary/internal/cli"
)

type WipeCmd struct {
	Force bool `short:"f" help:"Skip the confirmation prompt."`
}

func (c *WipeCmd) Run(ctx *cli.Context) error {
	if !c.Force {
		confirmed := false
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Erase every meal, snack and insight?").
				Description("This cannot be undone.").
				Value(&confirmed),
		))
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := ctx.Store.WipeAll(); err != nil {
		return err
	}
	fmt.Println("Diary wiped.")
	return nil
}
