package statsview

import (
	"fmt"
	"time"

	"mealdiary/internal/cli"
	"mealdiary/internal/constants"
	"mealdiary/internal/insights"
	"mealdiary/internal/stats"
)

type InsightsCmd struct {
	Range string `short:"r" help:"Named range (today|last7|week|month)." default:"last7"`
	From  string `help:"Custom range start (YYYY-MM-DD). Overrides --range with --to."`
	To    string `help:"Custom range end (YYYY-MM-DD)."`
	Save  bool   `short:"s" help:"Persist the generated insights in the diary."`
	Saved bool   `help:"List previously saved insights instead of generating."`
}

func (c *InsightsCmd) Run(ctx *cli.Context) error {
	now := time.Now()

	if c.Saved {
		stored := ctx.Store.Insights()
		if len(stored) == 0 {
			fmt.Println("No saved insights.")
			return nil
		}
		for _, item := range stored {
			fmt.Printf("%s %s\n",
				cli.SubtleStyle.Render(item.Date.Format(constants.DateFormat)),
				cli.HeaderStyle.Render(item.Title))
			fmt.Printf("  %s\n", item.Description)
			fmt.Println(cli.SubtleStyle.Render("  " + item.ID))
		}
		return nil
	}

	kind, custom, err := resolveRange(c.Range, c.From, c.To, now)
	if err != nil {
		return err
	}

	weekly := stats.Weekly(ctx.Store, kind, custom, now)
	items := insights.Generate(weekly, now)

	if len(items) == 0 {
		fmt.Println("Nothing stands out this week.")
		return nil
	}

	for _, item := range items {
		fmt.Printf("%s %s\n", cli.HeaderStyle.Render(item.Title), cli.SubtleStyle.Render("("+string(item.Category)+")"))
		fmt.Printf("  %s\n", item.Description)
		if c.Save {
			ctx.Store.AddInsight(item)
		}
	}
	if c.Save {
		fmt.Printf("Saved %d insight(s)\n", len(items))
	}
	return nil
}
