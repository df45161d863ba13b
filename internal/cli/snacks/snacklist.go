package snacks

import (
	"fmt"
	"strings"
	"time"

	"mealdiary/internal/cli"
	"mealdiary/internal/constants"
	"mealdiary/internal/query"
	"mealdiary/internal/stats"
)

type SnackListCmd struct {
	Range     string `short:"r" help:"Named range (today|last7|week|month)." default:"last7"`
	From      string `help:"Custom range start (YYYY-MM-DD). Overrides --range with --to."`
	To        string `help:"Custom range end (YYYY-MM-DD)."`
	Reason    string `help:"Keep snacks with these comma-separated reasons."`
	MinHunger int    `help:"Keep snacks with at least this hunger level."`
	Search    string `short:"q" help:"Case-insensitive substring match on the note."`
	Sort      string `help:"Sort key (time_asc|time_desc|hunger_desc)." default:"time_asc"`
}

func (c *SnackListCmd) Run(ctx *cli.Context) error {
	now := time.Now()

	var f query.SnackFilters
	if c.From != "" || c.To != "" {
		custom, err := cli.CustomRange(c.From, c.To, now)
		if err != nil {
			return err
		}
		f.Range = stats.RangeCustom
		f.Custom = custom
	} else {
		kind, err := cli.ParseRangeKind(c.Range)
		if err != nil {
			return err
		}
		f.Range = kind
	}
	if c.Reason != "" {
		for _, part := range strings.Split(c.Reason, ",") {
			reason, err := cli.ParseReason(part)
			if err != nil {
				return err
			}
			f.Reasons = append(f.Reasons, reason)
		}
	}
	f.MinHunger = c.MinHunger
	f.Search = c.Search

	matched := query.FilterSnacks(ctx.Store.Snacks(), f, now)
	matched = query.SortSnacks(matched, query.SnackSortKey(c.Sort))

	if len(matched) == 0 {
		fmt.Println("No snacks match.")
		return nil
	}

	for _, group := range query.GroupSnacksByDay(matched) {
		fmt.Println(cli.DayStyle.Render(group.Day.Format(constants.DateFormat)))
		for _, sn := range group.Snacks {
			line := fmt.Sprintf("  %s  %-12s hunger=%d", sn.Date.Format(constants.TimeFormat), sn.Reason, sn.HungerLevel)
			if sn.Note != "" {
				line += "  " + sn.Note
			}
			fmt.Println(line)
			fmt.Println(cli.SubtleStyle.Render("    " + sn.ID))
		}
	}
	fmt.Printf("%d snack(s)\n", len(matched))
	return nil
}
