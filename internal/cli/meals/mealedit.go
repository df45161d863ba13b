package meals

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"mealdiary/internal/cli"
	"mealdiary/internal/models"
	"mealdiary/internal/validation"
)

type MealEditCmd struct {
	ID      string `arg:"" help:"ID of the meal to edit."`
	Name    string `help:"New meal name."`
	Type    string `short:"t" help:"New meal type (meal|breakfast|lunch|dinner|snack)."`
	Satiety int    `short:"s" help:"New satiety level (1-5)."`
	Energy  string `short:"e" help:"New energy level (low|medium|high)."`
	Flavors string `short:"f" help:"New comma-separated flavor tags (replaces the old set)."`
	Notes   string `short:"n" help:"New notes."`
	When    string `short:"w" help:"New timestamp (YYYY-MM-DD or 'YYYY-MM-DD HH:MM')."`
}

func (c *MealEditCmd) Run(ctx *cli.Context) error {
	var editor validation.MealEditor
	for _, m := range ctx.Store.Meals() {
		if m.ID == c.ID {
			editor.Begin(m)
			break
		}
	}
	if !editor.Editing() {
		return fmt.Errorf("meal not found: %s", c.ID)
	}

	draft := editor.Draft()
	if !c.hasOverrides() {
		if err := promptEdit(draft); err != nil {
			return err
		}
	}
	if c.Name != "" {
		draft.Name = c.Name
	}
	if c.Type != "" {
		mealType, err := cli.ParseMealType(c.Type)
		if err != nil {
			return err
		}
		draft.Type = mealType
	}
	if c.Satiety != 0 {
		draft.Satiety = c.Satiety
	}
	if c.Energy != "" {
		energy, err := cli.ParseEnergy(c.Energy)
		if err != nil {
			return err
		}
		draft.Energy = energy
	}
	if c.Flavors != "" {
		flavors, err := cli.ParseFlavors(c.Flavors)
		if err != nil {
			return err
		}
		draft.Flavors = flavors
	}
	if c.Notes != "" {
		draft.Notes = c.Notes
	}
	if c.When != "" {
		date, err := cli.ParseWhen(c.When, draft.Date)
		if err != nil {
			return err
		}
		draft.Date = date
	}

	updated, err := editor.Commit(ctx.Store)
	if err != nil {
		return err
	}
	fmt.Printf("Updated meal: %s (ID: %s)\n", updated.Name, updated.ID)
	return nil
}

func (c *MealEditCmd) hasOverrides() bool {
	return c.Name != "" || c.Type != "" || c.Satiety != 0 || c.Energy != "" ||
		c.Flavors != "" || c.Notes != "" || c.When != ""
}

// promptEdit opens an interactive form pre-populated from the stored entry.
func promptEdit(draft *validation.MealDraft) error {
	satiety := strconv.Itoa(draft.Satiety)
	mealType := string(draft.Type)
	energy := string(draft.Energy)
	flavors := joinFlavors(draft.Flavors)

	typeOptions := make([]huh.Option[string], 0, len(models.AllMealTypes))
	for _, t := range models.AllMealTypes {
		typeOptions = append(typeOptions, huh.NewOption(string(t), string(t)))
	}
	energyOptions := make([]huh.Option[string], 0, len(models.AllEnergyLevels))
	for _, e := range models.AllEnergyLevels {
		energyOptions = append(energyOptions, huh.NewOption(string(e), string(e)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Meal name").
				Value(&draft.Name),
			huh.NewSelect[string]().
				Title("Meal type").
				Options(typeOptions...).
				Value(&mealType),
			huh.NewSelect[string]().
				Title("Satiety (1-5)").
				Options(
					huh.NewOption("1 - still hungry", "1"),
					huh.NewOption("2", "2"),
					huh.NewOption("3", "3"),
					huh.NewOption("4", "4"),
					huh.NewOption("5 - stuffed", "5"),
				).
				Value(&satiety),
			huh.NewSelect[string]().
				Title("Energy afterwards").
				Options(energyOptions...).
				Value(&energy),
			huh.NewInput().
				Title("Flavors (comma-separated: sweet,salty,spicy,sour,bitter)").
				Value(&flavors),
			huh.NewInput().
				Title("Notes").
				Value(&draft.Notes),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive form error: %w", err)
	}

	level, err := strconv.Atoi(satiety)
	if err != nil {
		return fmt.Errorf("invalid satiety level: %s", satiety)
	}
	draft.Satiety = level
	draft.Type = models.MealType(mealType)
	draft.Energy = models.EnergyLevel(energy)

	tags, err := cli.ParseFlavors(flavors)
	if err != nil {
		return err
	}
	draft.Flavors = tags
	return nil
}
