package snacks

import (
	"fmt"

	"mealdiary/internal/cli"
)

type SnackDeleteCmd struct {
	ID string `arg:"" help:"ID of the snack to delete."`
}

func (c *SnackDeleteCmd) Run(ctx *cli.Context) error {
	if !ctx.Store.RemoveSnack(c.ID) {
		fmt.Printf("No snack with ID %s\n", c.ID)
		return nil
	}
	fmt.Printf("Deleted snack %s\n", c.ID)
	return nil
}
