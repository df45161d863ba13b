// Package statsview holds the read-only analytics commands.
package statsview

import (
	"fmt"
	"time"

	"mealdiary/internal/cli"
	"mealdiary/internal/constants"
	"mealdiary/internal/models"
	"mealdiary/internal/stats"
)

type StatsCmd struct {
	Range string `short:"r" help:"Named range (today|last7|week|month)." default:"last7"`
	From  string `help:"Custom range start (YYYY-MM-DD). Overrides --range with --to."`
	To    string `help:"Custom range end (YYYY-MM-DD)."`
	Day   string `short:"d" help:"Show a single day's summary instead (YYYY-MM-DD)."`
}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	now := time.Now()

	if c.Day != "" {
		day, err := cli.ParseWhen(c.Day, now)
		if err != nil {
			return err
		}
		return c.printDay(ctx, day)
	}

	kind, custom, err := resolveRange(c.Range, c.From, c.To, now)
	if err != nil {
		return err
	}

	weekly := stats.Weekly(ctx.Store, kind, custom, now)

	fmt.Println(cli.HeaderStyle.Render(fmt.Sprintf("Stats %s to %s",
		weekly.Range.Start.Format(constants.DateFormat), weekly.Range.End.Format(constants.DateFormat))))
	fmt.Printf("Meals:       %s\n", cli.ValueStyle.Render(fmt.Sprintf("%d", weekly.MealCount)))
	fmt.Printf("Snacks:      %s\n", cli.ValueStyle.Render(fmt.Sprintf("%d", weekly.SnackCount)))
	fmt.Printf("Avg satiety: %s\n", cli.ValueStyle.Render(fmt.Sprintf("%.1f", weekly.AvgSatiety)))
	fmt.Printf("Avg energy:  %s\n", cli.ValueStyle.Render(fmt.Sprintf("%.1f", weekly.AvgEnergy)))
	fmt.Printf("Avg hunger:  %s\n", cli.ValueStyle.Render(fmt.Sprintf("%.1f", weekly.AvgHunger)))

	fmt.Println(cli.HeaderStyle.Render("Flavors"))
	for _, tag := range models.AllFlavorTags {
		fmt.Printf("  %-8s %5.1f%%\n", tag, weekly.FlavorRatios[tag]*100)
	}

	if len(weekly.ReasonRatios) > 0 {
		fmt.Println(cli.HeaderStyle.Render("Snack reasons"))
		for _, reason := range models.AllSnackReasons {
			ratio, ok := weekly.ReasonRatios[reason]
			if !ok {
				continue
			}
			fmt.Printf("  %-12s %5.1f%%\n", reason, ratio*100)
		}
	}
	return nil
}

func (c *StatsCmd) printDay(ctx *cli.Context, day time.Time) error {
	summary := stats.DailySummary(ctx.Store, day)

	fmt.Println(cli.HeaderStyle.Render("Summary " + summary.Date.Format(constants.DateFormat)))
	fmt.Printf("Meals:       %s\n", cli.ValueStyle.Render(fmt.Sprintf("%d", summary.TotalMeals)))
	fmt.Printf("Avg satiety: %s\n", cli.ValueStyle.Render(fmt.Sprintf("%.1f", summary.AvgSatiety)))
	fmt.Printf("Avg energy:  %s\n", cli.ValueStyle.Render(fmt.Sprintf("%.1f", summary.AvgEnergy)))
	if summary.FavoriteFlavor != nil {
		fmt.Printf("Top flavor:  %s\n", cli.ValueStyle.Render(string(*summary.FavoriteFlavor)))
	}
	return nil
}

// resolveRange maps the shared range flags onto a kind plus optional custom
// interval. Custom from/to wins over the named range.
func resolveRange(named, from, to string, now time.Time) (stats.RangeKind, models.DateRange, error) {
	if from != "" || to != "" {
		custom, err := cli.CustomRange(from, to, now)
		if err != nil {
			return "", models.DateRange{}, err
		}
		return stats.RangeCustom, custom, nil
	}
	kind, err := cli.ParseRangeKind(named)
	if err != nil {
		return "", models.DateRange{}, err
	}
	return kind, models.DateRange{}, nil
}
