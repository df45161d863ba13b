// Package data holds the bulk import/export and wipe commands.
package data

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"mealdiary/internal/cli"
	"mealdiary/internal/constants"
)

type ExportCmd struct {
	Out    string `short:"o" help:"Directory or file to write the export to. Defaults to the current directory."`
	Stdout bool   `help:"Write the export to stdout instead of a file."`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	data, err := ctx.Store.ExportData()
	if err != nil {
		return err
	}

	if c.Stdout {
		_, err := os.Stdout.Write(data)
		return err
	}

	path, err := c.targetPath(time.Now())
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("unable to write export: %w", err)
	}
	fmt.Printf("Exported diary to %s\n", path)
	return nil
}

// targetPath resolves --out into a concrete file path. A directory (or empty
// flag) gets a timestamped filename so repeated exports never clobber each
// other.
func (c *ExportCmd) targetPath(now time.Time) (string, error) {
	name := fmt.Sprintf("%s-%s.json", constants.AppName, now.Format("20060102-1504"))
	if c.Out == "" {
		return name, nil
	}
	info, err := os.Stat(c.Out)
	if err == nil && info.IsDir() {
		return filepath.Join(c.Out, name), nil
	}
	if filepath.Ext(c.Out) == "" {
		if err := os.MkdirAll(c.Out, 0700); err != nil {
			return "", fmt.Errorf("unable to create export directory: %w", err)
		}
		return filepath.Join(c.Out, name), nil
	}
	return c.Out, nil
}
