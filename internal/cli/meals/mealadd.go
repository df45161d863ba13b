package meals

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"

	"mealdiary/internal/cli"
	"mealdiary/internal/models"
	"mealdiary/internal/validation"
)

type MealAddCmd struct {
	Name    string `arg:"" optional:"" help:"Meal name. Omit to fill in interactively."`
	Type    string `short:"t" help:"Meal type (meal|breakfast|lunch|dinner|snack)." default:"meal"`
	Satiety int    `short:"s" help:"Satiety level (1-5)." default:"3"`
	Energy  string `short:"e" help:"Energy after eating (low|medium|high)." default:"medium"`
	Flavors string `short:"f" help:"Comma-separated flavor tags (sweet|salty|spicy|sour|bitter)."`
	Notes   string `short:"n" help:"Free-text notes."`
	When    string `short:"w" help:"Timestamp (YYYY-MM-DD or 'YYYY-MM-DD HH:MM'). Defaults to now."`
}

func (c *MealAddCmd) Run(ctx *cli.Context) error {
	now := time.Now()

	if c.Name == "" {
		if err := c.promptForm(); err != nil {
			return err
		}
	}

	mealType, err := cli.ParseMealType(c.Type)
	if err != nil {
		return err
	}
	energy, err := cli.ParseEnergy(c.Energy)
	if err != nil {
		return err
	}
	flavors, err := cli.ParseFlavors(c.Flavors)
	if err != nil {
		return err
	}
	date, err := cli.ParseWhen(c.When, now)
	if err != nil {
		return err
	}

	draft := validation.MealDraft{
		Date:    date,
		Name:    c.Name,
		Type:    mealType,
		Satiety: c.Satiety,
		Energy:  energy,
		Flavors: flavors,
		Notes:   c.Notes,
	}
	if err := draft.Validate(); err != nil {
		return err
	}

	stored := ctx.Store.AddMeal(draft.Entry())
	fmt.Printf("Added meal: %s (ID: %s)\n", stored.Name, stored.ID)
	return nil
}

func (c *MealAddCmd) promptForm() error {
	satiety := strconv.Itoa(c.Satiety)

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
				Title("What did you eat?").
				Value(&c.Name),
			huh.NewSelect[string]().
				Title("Meal type").
				Options(typeOptions...).
				Value(&c.Type),
			huh.NewSelect[string]().
				Title("How full are you? (1-5)").
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
				Value(&c.Energy),
			huh.NewInput().
				Title("Flavors (comma-separated: sweet,salty,spicy,sour,bitter)").
				Value(&c.Flavors),
			huh.NewInput().
				Title("Notes (optional)").
				Value(&c.Notes),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive form error: %w", err)
	}

	level, err := strconv.Atoi(satiety)
	if err != nil {
		return fmt.Errorf("invalid satiety level: %s", satiety)
	}
	c.Satiety = level
	return nil
}
