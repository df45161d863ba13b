package data

import (
	"fmt"
	"os"

	"mealdiary/internal/cli"
)

type ImportCmd struct {
	File    string `arg:"" help:"Path of a previously exported diary document."`
	Replace bool   `help:"Replace the current diary instead of merging. Merging never overwrites existing records."`
}

func (c *ImportCmd) Run(ctx *cli.Context) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("unable to read import file: %w", err)
	}

	before := len(ctx.Store.Meals()) + len(ctx.Store.Snacks()) + len(ctx.Store.Insights())
	if err := ctx.Store.Import(data, c.Replace); err != nil {
		return err
	}
	after := len(ctx.Store.Meals()) + len(ctx.Store.Snacks()) + len(ctx.Store.Insights())

	if c.Replace {
		fmt.Printf("Replaced diary with %d record(s) from %s\n", after, c.File)
	} else {
		fmt.Printf("Merged %d new record(s) from %s\n", after-before, c.File)
	}
	return nil
}
