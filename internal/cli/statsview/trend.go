package statsview

import (
	"fmt"
	"strings"
	"time"

	"mealdiary/internal/cli"
	"mealdiary/internal/constants"
	"mealdiary/internal/models"
	"mealdiary/internal/stats"
)

type TrendCmd struct {
	Metric string `arg:"" help:"Metric to plot (satiety|energy|hunger)." default:"satiety"`
	Range  string `short:"r" help:"Named range (today|last7|week|month)." default:"last7"`
	From   string `help:"Custom range start (YYYY-MM-DD). Overrides --range with --to."`
	To     string `help:"Custom range end (YYYY-MM-DD)."`
}

func (c *TrendCmd) Run(ctx *cli.Context) error {
	now := time.Now()

	kind, custom, err := resolveRange(c.Range, c.From, c.To, now)
	if err != nil {
		return err
	}
	r := stats.Resolve(kind, custom, now)

	metric := strings.ToLower(strings.TrimSpace(c.Metric))

	var points []models.TrendPoint
	var max float64
	switch metric {
	case "satiety":
		points = stats.SatietyTrend(ctx.Store, r)
		max = float64(constants.MaxLevel)
	case "energy":
		points = stats.EnergyTrend(ctx.Store, r)
		max = 3
	case "hunger":
		points = stats.HungerTrend(ctx.Store, r)
		max = float64(constants.MaxLevel)
	default:
		return fmt.Errorf("invalid metric: %s (expected satiety|energy|hunger)", c.Metric)
	}

	fmt.Println(cli.HeaderStyle.Render(metric + " trend"))
	for _, p := range points {
		fmt.Printf("%s  %s %s\n",
			cli.SubtleStyle.Render(p.Day.Format(constants.DateFormat)),
			bar(p.Value, max),
			cli.ValueStyle.Render(fmt.Sprintf("%.1f", p.Value)))
	}
	return nil
}

// bar renders a fixed-width block chart scaled against the metric's maximum.
func bar(value, max float64) string {
	const width = 20
	if max <= 0 {
		max = 1
	}
	filled := int(value / max * width)
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
