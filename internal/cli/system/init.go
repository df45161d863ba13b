// Package system holds setup and maintenance commands.
package system

import (
	"errors"
	"fmt"

	"mealdiary/internal/cli"
	"mealdiary/internal/storage"
)

type InitCmd struct {
	Force bool `short:"f" help:"Reinitialize even if a diary document already exists."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	_, err := ctx.Backend.Load()
	switch {
	case err == nil:
		if !c.Force {
			return fmt.Errorf("diary already exists at %s (use --force to reinitialize)", ctx.Backend.Path())
		}
	case errors.Is(err, storage.ErrNotInitialized):
		// fresh setup
	default:
		if !c.Force {
			return fmt.Errorf("existing document at %s is unreadable (use --force to reinitialize): %w", ctx.Backend.Path(), err)
		}
	}

	if err := ctx.Backend.Save(storage.NewDocument()); err != nil {
		return err
	}
	fmt.Printf("Initialized empty diary at %s\n", ctx.Backend.Path())
	return nil
}
