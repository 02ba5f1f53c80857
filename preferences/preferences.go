package preferences

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/uhppoted/mealplan-sheets/log"
)

// Preferences is the dietary preference record read from the preferences worksheet.
type Preferences struct {
	CalorieGoal float64
	Diet        string
	Exclude     []string
	Days        int
}

// Source is the read side of a spreadsheet, returning the cells in an A1 range.
type Source interface {
	Get(ctx context.Context, area string) ([][]any, error)
}

// ConfigurationError reports a missing or invalid field in the preferences worksheet.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid preferences (%v)", e.Reason)
	}

	return fmt.Sprintf("invalid preferences '%v' (%v)", e.Field, e.Reason)
}

const (
	CalorieGoal = "calorie goal"
	Diet        = "diet"
	Exclude     = "excluded ingredients"
	Days        = "number of days"
)

var aliases = map[string]string{
	"caloriegoal":         CalorieGoal,
	"calories":            CalorieGoal,
	"targetcalories":      CalorieGoal,
	"diet":                Diet,
	"exclude":             Exclude,
	"excludeingredients":  Exclude,
	"excludedingredients": Exclude,
	"numberofdays":        Days,
	"days":                Days,
}

// Read retrieves the preferences range from the source and parses it.
func Read(ctx context.Context, source Source, area string) (*Preferences, error) {
	rows, err := source.Get(ctx, area)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve preferences from %v (%w)", area, err)
	}

	p, err := Parse(rows)
	if err != nil {
		return nil, err
	}

	log.Debugf("preferences  calories:%v  diet:'%v'  exclude:%q  days:%v", p.CalorieGoal, p.Diet, p.Exclude, p.Days)

	return p, nil
}

// Parse builds a Preferences record from a header row of labels and a row of values.
// Columns are matched by label, ignoring case and spaces.
func Parse(rows [][]any) (*Preferences, error) {
	if len(rows) == 0 {
		return nil, &ConfigurationError{Reason: "empty sheet"}
	}

	// ... build index
	index := map[string]int{}
	for i, v := range rows[0] {
		k, ok := aliases[normalise(text(v))]
		if !ok {
			continue
		}

		if _, ok := index[k]; ok {
			return nil, &ConfigurationError{Field: k, Reason: "duplicate column"}
		}

		index[k] = i
	}

	for _, k := range []string{CalorieGoal, Diet, Exclude, Days} {
		if _, ok := index[k]; !ok {
			return nil, &ConfigurationError{Field: k, Reason: "missing column"}
		}
	}

	if len(rows) < 2 {
		return nil, &ConfigurationError{Reason: "missing preferences row"}
	}

	// ... values
	row := rows[1]
	cell := func(k string) any {
		if ix := index[k]; ix < len(row) {
			return row[ix]
		}

		return ""
	}

	calories, err := number(cell(CalorieGoal))
	if err != nil {
		return nil, &ConfigurationError{Field: CalorieGoal, Reason: err.Error()}
	} else if calories <= 0 || math.IsNaN(calories) || math.IsInf(calories, 0) {
		return nil, &ConfigurationError{Field: CalorieGoal, Reason: fmt.Sprintf("%v is not a positive number", calories)}
	}

	days, err := number(cell(Days))
	if err != nil {
		return nil, &ConfigurationError{Field: Days, Reason: err.Error()}
	} else if math.IsInf(days, 0) || days != math.Trunc(days) || days < 1 || days > math.MaxInt32 {
		return nil, &ConfigurationError{Field: Days, Reason: fmt.Sprintf("%v is not a positive integer", days)}
	}

	return &Preferences{
		CalorieGoal: calories,
		Diet:        clean(text(cell(Diet))),
		Exclude:     Split(text(cell(Exclude))),
		Days:        int(days),
	}, nil
}

// Split splits a comma separated list of ingredients, trimming each entry and
// discarding empty entries.
func Split(s string) []string {
	list := []string{}
	for _, v := range strings.Split(s, ",") {
		if v = clean(v); v != "" {
			list = append(list, v)
		}
	}

	return list
}

func number(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil

	case int:
		return float64(n), nil

	case int64:
		return float64(n), nil
	}

	s := clean(text(v))
	if s == "" {
		return 0, fmt.Errorf("missing value")
	}

	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("'%v' is not a number", s)
	}

	return f, nil
}

func text(v any) string {
	switch s := v.(type) {
	case nil:
		return ""

	case string:
		return s

	default:
		return fmt.Sprintf("%v", v)
	}
}

func clean(v string) string {
	return strings.TrimSpace(v)
}

func normalise(v string) string {
	return strings.ToLower(strings.ReplaceAll(v, " ", ""))
}
