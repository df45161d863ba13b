package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"mealdiary/internal/cli"
	"mealdiary/internal/cli/data"
	"mealdiary/internal/cli/meals"
	"mealdiary/internal/cli/snacks"
	"mealdiary/internal/cli/statsview"
	"mealdiary/internal/cli/system"
	"mealdiary/internal/constants"
	"mealdiary/internal/errors"
	"mealdiary/internal/logger"
	"mealdiary/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Data    string `help:"Diary file path. A .db/.sqlite extension selects the SQLite backend." type:"string" default:"~/.config/mealdiary/mealdiary.json"`
	Debug   bool   `help:"Enable verbose logging to stderr."`

	Init system.InitCmd `cmd:"" help:"Initialize an empty diary."`
	Meal struct {
		Add    meals.MealAddCmd    `cmd:"" help:"Log a meal." default:"1"`
		Edit   meals.MealEditCmd   `cmd:"" help:"Edit a logged meal."`
		Delete meals.MealDeleteCmd `cmd:"" help:"Delete a logged meal."`
		List   meals.MealListCmd   `cmd:"" help:"List logged meals."`
	} `cmd:"" help:"Manage meal entries."`
	Snack struct {
		Add    snacks.SnackAddCmd    `cmd:"" help:"Log a snack." default:"1"`
		Delete snacks.SnackDeleteCmd `cmd:"" help:"Delete a logged snack."`
		List   snacks.SnackListCmd   `cmd:"" help:"List logged snacks."`
	} `cmd:"" help:"Manage snack events."`
	Stats      statsview.StatsCmd      `cmd:"" help:"Show aggregate stats for a range or day."`
	Trend      statsview.TrendCmd      `cmd:"" help:"Plot a per-day metric trend."`
	Insights   statsview.InsightsCmd   `cmd:"" help:"Generate weekly insights."`
	Highlights statsview.HighlightsCmd `cmd:"" help:"Show ranked highlights for a range."`
	Export     data.ExportCmd          `cmd:"" help:"Export the diary to a JSON document."`
	Import     data.ImportCmd          `cmd:"" help:"Import a previously exported document."`
	Wipe       data.WipeCmd            `cmd:"" help:"Erase the entire diary."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal meal and snack diary with weekly analytics"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	path := expandHome(CLI.Data)
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: filepath.Dir(path)}); err != nil {
		errors.Fatal(err)
	}

	var backend storage.Backend
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite":
		backend = storage.NewSQLiteBackend(path)
	default:
		backend = storage.NewJSONBackend(path)
	}

	appCtx := &cli.Context{
		Backend:  backend,
		DataPath: path,
		Debug:    CLI.Debug,
	}

	// Init handles its own document creation; every other command runs
	// against an opened store.
	if ctx.Selected() == nil || ctx.Selected().Name != "init" {
		store, err := storage.Open(backend)
		if err != nil {
			errors.Fatal(err)
		}
		appCtx.Store = store
	}

	runErr := ctx.Run(appCtx)

	// Close after the command so a pending debounced autosave is flushed
	// before the process exits.
	if appCtx.Store != nil {
		if err := appCtx.Store.Close(); err != nil {
			logger.Warn("Close failed", "error", err)
		}
	}

	errors.Fatal(runErr)
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
