package meals

import (
	"fmt"

	"mealdiary/internal/cli"
)

type MealDeleteCmd struct {
	ID string `arg:"" help:"ID of the meal to delete."`
}

func (c *MealDeleteCmd) Run(ctx *cli.Context) error {
	if !ctx.Store.RemoveMeal(c.ID) {
		fmt.Printf("No meal with ID %s\n", c.ID)
		return nil
	}
	fmt.Printf("Deleted meal %s\n", c.ID)
	return nil
}
