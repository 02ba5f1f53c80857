package mealplan

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Plan is a generated meal plan, keyed by day (e.g. 'monday').
type Plan struct {
	Week map[string]Day `json:"week"`
}

// Day is the set of meals and the aggregate nutrition for one day of a plan.
type Day struct {
	Meals     []Meal    `json:"meals"`
	Nutrients Nutrients `json:"nutrients"`
}

type Meal struct {
	ID             int64      `json:"id"`
	Title          string     `json:"title"`
	SourceURL      string     `json:"sourceUrl"`
	ReadyInMinutes int        `json:"readyInMinutes"`
	Servings       int        `json:"servings"`
	Nutrients      *Nutrients `json:"nutrients,omitempty"`
}

// Nutrients are in grams, except for calories.
type Nutrients struct {
	Calories      float64 `json:"calories"`
	Fat           float64 `json:"fat"`
	Protein       float64 `json:"protein"`
	Carbohydrates float64 `json:"carbohydrates"`
}

var weekdays = map[string]int{
	"monday":    1,
	"tuesday":   2,
	"wednesday": 3,
	"thursday":  4,
	"friday":    5,
	"saturday":  6,
	"sunday":    7,
}

// IsEmpty returns true if the plan is nil or has no days.
func (p *Plan) IsEmpty() bool {
	return p == nil || len(p.Week) == 0
}

// Days returns the plan day keys, Monday to Sunday first followed by any
// other keys in lexical order.
func (p *Plan) Days() []string {
	if p == nil {
		return nil
	}

	keys := make([]string, 0, len(p.Week))
	for k := range p.Week {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		a := weekdays[strings.ToLower(keys[i])]
		b := weekdays[strings.ToLower(keys[j])]

		switch {
		case a != 0 && b != 0:
			return a < b
		case a != 0:
			return true
		case b != 0:
			return false
		default:
			return keys[i] < keys[j]
		}
	})

	return keys
}

// Meals returns the total number of meals across all days.
func (p *Plan) Meals() int {
	count := 0
	if p != nil {
		for _, d := range p.Week {
			count += len(d.Meals)
		}
	}

	return count
}

// Capitalise upper-cases the first character of s and leaves the remainder unchanged.
func Capitalise(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 || r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[n:]
}
