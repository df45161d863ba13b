package meals

import (
	"fmt"
	"strings"
	"time"

	"mealdiary/internal/cli"
	"mealdiary/internal/constants"
	"mealdiary/internal/models"
	"mealdiary/internal/query"
	"mealdiary/internal/stats"
)

type MealListCmd struct {
	Range      string `short:"r" help:"Named range (today|last7|week|month)." default:"last7"`
	From       string `help:"Custom range start (YYYY-MM-DD). Overrides --range with --to."`
	To         string `help:"Custom range end (YYYY-MM-DD)."`
	Flavor     string `short:"f" help:"Keep meals matching any of these comma-separated flavors."`
	Type       string `short:"t" help:"Keep meals of these comma-separated types."`
	MinSatiety int    `help:"Keep meals with at least this satiety level."`
	Energy     string `short:"e" help:"Keep meals with these comma-separated energy levels."`
	Search     string `short:"q" help:"Case-insensitive substring match on name and notes."`
	Sort       string `help:"Sort key (time_asc|time_desc|satiety_desc|energy_desc|name)." default:"time_asc"`
}

func (c *MealListCmd) Run(ctx *cli.Context) error {
	now := time.Now()

	filters, err := c.filters(now)
	if err != nil {
		return err
	}

	matched := query.FilterMeals(ctx.Store.Meals(), filters, now)
	matched = query.SortMeals(matched, query.MealSortKey(c.Sort))

	if len(matched) == 0 {
		fmt.Println("No meals match.")
		return nil
	}

	for _, group := range query.GroupMealsByDay(matched) {
		fmt.Println(cli.DayStyle.Render(group.Day.Format(constants.DateFormat)))
		for _, m := range group.Meals {
			line := fmt.Sprintf("  %s  %-24s %s satiety=%d energy=%s",
				m.Date.Format(constants.TimeFormat), m.Name, m.Type, m.SatietyLevel, m.EnergyAfter)
			if len(m.FlavorTags) > 0 {
				line += " [" + joinFlavors(m.FlavorTags) + "]"
			}
			fmt.Println(line)
			fmt.Println(cli.SubtleStyle.Render("    " + m.ID))
		}
	}
	fmt.Printf("%d meal(s)\n", len(matched))
	return nil
}

func (c *MealListCmd) filters(now time.Time) (query.MealFilters, error) {
	var f query.MealFilters

	if c.From != "" || c.To != "" {
		custom, err := cli.CustomRange(c.From, c.To, now)
		if err != nil {
			return f, err
		}
		f.Range = stats.RangeCustom
		f.Custom = custom
	} else {
		kind, err := cli.ParseRangeKind(c.Range)
		if err != nil {
			return f, err
		}
		f.Range = kind
	}

	if c.Flavor != "" {
		flavors, err := cli.ParseFlavors(c.Flavor)
		if err != nil {
			return f, err
		}
		f.Flavors = flavors
	}
	if c.Type != "" {
		for _, part := range strings.Split(c.Type, ",") {
			mealType, err := cli.ParseMealType(part)
			if err != nil {
				return f, err
			}
			f.Types = append(f.Types, mealType)
		}
	}
	if c.Energy != "" {
		for _, part := range strings.Split(c.Energy, ",") {
			energy, err := cli.ParseEnergy(part)
			if err != nil {
				return f, err
			}
			f.EnergyIn = append(f.EnergyIn, energy)
		}
	}
	f.MinSatiety = c.MinSatiety
	f.Search = c.Search
	return f, nil
}

func joinFlavors(tags []models.FlavorTag) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, ",")
}
