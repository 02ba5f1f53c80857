package mealplan

import (
	"reflect"
	"testing"
)

func TestDays(t *testing.T) {
	plan := Plan{
		Week: map[string]Day{
			"sunday":    {},
			"wednesday": {},
			"monday":    {},
			"holiday":   {},
			"Friday":    {},
			"today":     {},
			"tuesday":   {},
		},
	}

	expected := []string{"monday", "tuesday", "wednesday", "Friday", "sunday", "holiday", "today"}

	if days := plan.Days(); !reflect.DeepEqual(days, expected) {
		t.Errorf("Incorrect day order\n   expected: %v\n   got:      %v", expected, days)
	}
}

func TestIsEmpty(t *testing.T) {
	var nilplan *Plan

	tests := []struct {
		plan     *Plan
		expected bool
	}{
		{nilplan, true},
		{&Plan{}, true},
		{&Plan{Week: map[string]Day{}}, true},
		{&Plan{Week: map[string]Day{"monday": {}}}, false},
	}

	for i, test := range tests {
		if got := test.plan.IsEmpty(); got != test.expected {
			t.Errorf("test %v: incorrect IsEmpty - expected:%v, got:%v", i+1, test.expected, got)
		}
	}
}

func TestCapitalise(t *testing.T) {
	tests := map[string]string{
		"wednesday": "Wednesday",
		"Monday":    "Monday",
		"sUNDAY":    "SUNDAY",
		"today":     "Today",
		"":          "",
		"élevenses": "Élevenses",
		"1st day":   "1st day",
	}

	for s, expected := range tests {
		if got := Capitalise(s); got != expected {
			t.Errorf("Incorrect capitalisation for %q - expected:%q, got:%q", s, expected, got)
		}
	}
}
