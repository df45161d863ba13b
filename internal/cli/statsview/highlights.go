package statsview

import (
	"fmt"
	"time"

	"mealdiary/internal/cli"
	"mealdiary/internal/insights"
	"mealdiary/internal/query"
	"mealdiary/internal/stats"
)

type HighlightsCmd struct {
	Range string `short:"r" help:"Named range (today|last7|week|month)." default:"last7"`
	From  string `help:"Custom range start (YYYY-MM-DD). Overrides --range with --to."`
	To    string `help:"Custom range end (YYYY-MM-DD)."`
}

func (c *HighlightsCmd) Run(ctx *cli.Context) error {
	now := time.Now()

	kind, custom, err := resolveRange(c.Range, c.From, c.To, now)
	if err != nil {
		return err
	}
	r := stats.Resolve(kind, custom, now)
	meals := ctx.Store.MealsInRange(r)
	snacks := ctx.Store.SnacksInRange(r)

	fmt.Println(cli.HeaderStyle.Render("Energizing meals"))
	printNameCounts(insights.TopEnergizingMeals(meals))

	fmt.Println(cli.HeaderStyle.Render("Heavy meals"))
	printNameCounts(insights.TopHeavyMeals(meals))

	fmt.Println(cli.HeaderStyle.Render("Snack reasons"))
	for _, rank := range insights.RankSnackReasons(snacks) {
		fmt.Printf("  %-12s %3d  %5.1f%%\n", rank.Reason, rank.Count, rank.Ratio*100)
	}

	fmt.Println(cli.HeaderStyle.Render("Energy by time of day"))
	byPart := query.EnergyByDaypart(meals)
	for _, part := range query.AllDayparts {
		fmt.Printf("  %-10s %s\n", part, cli.ValueStyle.Render(fmt.Sprintf("%.1f", byPart[part])))
	}

	fmt.Println(cli.HeaderStyle.Render("Flavor balance"))
	fmt.Printf("  %s\n", insights.BalanceText(query.Distribution(meals)))
	return nil
}

func printNameCounts(ranked []insights.NameCount) {
	if len(ranked) == 0 {
		fmt.Println(cli.SubtleStyle.Render("  none"))
		return
	}
	for _, nc := range ranked {
		fmt.Printf("  %-24s %s\n", nc.Name, cli.ValueStyle.Render(fmt.Sprintf("x%d", nc.Count)))
	}
}
