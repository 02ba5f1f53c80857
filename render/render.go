package render

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/uhppoted/mealplan-sheets/log"
	"github.com/uhppoted/mealplan-sheets/mealplan"
	"github.com/uhppoted/mealplan-sheets/preferences"
)

var ErrInvalidPlan = errors.New("invalid plan data")
var ErrInvalidPreferences = errors.New("invalid preferences")

const Title = "Meal Plan"
const RecipeLabel = "View Recipe"

var Header = []string{"Day", "Meal", "Recipe Link", "Calories", "Fat", "Protein", "Carbohydrates"}

// Sink is the write side of the output worksheet region. Clear removes both the
// values and the formatting of the region.
type Sink interface {
	Clear(ctx context.Context) error
	Write(ctx context.Context, rows [][]any, styles []Style) error
}

// Sheet is a meal plan laid out as worksheet rows, ready to be written in a
// single operation.
type Sheet struct {
	Rows   [][]any
	Styles []Style
	Header int // row index of the column header
	Days   int
	Meals  int
}

// Render lays out the meal plan and overwrites the sink with it. An invalid plan
// is rejected before the sink is touched.
func Render(ctx context.Context, sink Sink, p *preferences.Preferences, plan *mealplan.Plan) (*Sheet, error) {
	sheet, err := Layout(p, plan)
	if err != nil {
		return nil, err
	}

	log.Infof("Clearing existing meal plan from worksheet")
	if err := sink.Clear(ctx); err != nil {
		return nil, fmt.Errorf("error clearing meal plan worksheet (%w)", err)
	}

	log.Infof("Writing meal plan to worksheet")
	if err := sink.Write(ctx, sheet.Rows, sheet.Styles); err != nil {
		return nil, fmt.Errorf("error writing meal plan worksheet (%w)", err)
	}

	return sheet, nil
}

// Layout stages the meal plan worksheet in memory. Days are laid out in
// Monday to Sunday order, one row per meal with the day label and the day's
// nutrient totals on the first row only, followed by a blank separator row. A day
// without meals gets a single row with its label and totals.
func Layout(p *preferences.Preferences, plan *mealplan.Plan) (*Sheet, error) {
	if p == nil {
		return nil, ErrInvalidPreferences
	}

	if plan.IsEmpty() {
		return nil, ErrInvalidPlan
	}

	sheet := Sheet{
		Rows:   [][]any{},
		Styles: []Style{},
	}

	add := func(cells ...any) int {
		row := make([]any, len(Header))
		for i := range row {
			row[i] = ""
		}

		copy(row, cells)
		sheet.Rows = append(sheet.Rows, row)

		return len(sheet.Rows) - 1
	}

	// ... title
	title := add(Title)
	sheet.Styles = append(sheet.Styles, Style{Row: title, Columns: 1, Bold: true, FontSize: 14})
	add()

	// ... preferences summary
	diet := p.Diet
	if diet == "" {
		diet = "any"
	}

	summary := []int{
		add("Calorie Goal", p.CalorieGoal),
		add("Diet", diet),
		add("Excluded Ingredients", strings.Join(p.Exclude, ", ")),
	}

	for _, row := range summary {
		sheet.Styles = append(sheet.Styles, Style{Row: row, Columns: 1, Bold: true})
	}

	add()

	// ... header
	header := make([]any, len(Header))
	for i, h := range Header {
		header[i] = h
	}

	sheet.Header = add(header...)
	sheet.Styles = append(sheet.Styles, Style{
		Row:        sheet.Header,
		Columns:    len(Header),
		Bold:       true,
		Background: &HeaderBackground,
		Align:      Center,
	})

	// ... days
	for _, key := range plan.Days() {
		day := plan.Week[key]
		n := day.Nutrients

		if len(day.Meals) == 0 {
			row := add(mealplan.Capitalise(key), "", "", n.Calories, n.Fat, n.Protein, n.Carbohydrates)
			sheet.Styles = append(sheet.Styles, Style{Row: row, Columns: 1, Bold: true})
		}

		for i, meal := range day.Meals {
			if i == 0 {
				row := add(mealplan.Capitalise(key), meal.Title, hyperlink(meal.SourceURL), n.Calories, n.Fat, n.Protein, n.Carbohydrates)
				sheet.Styles = append(sheet.Styles, Style{Row: row, Columns: 1, Bold: true})
			} else {
				add("", meal.Title, hyperlink(meal.SourceURL))
			}

			sheet.Meals++
		}

		add()
		sheet.Days++
	}

	return &sheet, nil
}

func hyperlink(url string) string {
	if url == "" {
		return ""
	}

	return fmt.Sprintf(`=HYPERLINK("%v","%v")`, strings.ReplaceAll(url, `"`, `""`), RecipeLabel)
}
