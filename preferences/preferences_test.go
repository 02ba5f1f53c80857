package preferences

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
)

type source struct {
	rows [][]any
	err  error
	area string
}

func (s *source) Get(ctx context.Context, area string) ([][]any, error) {
	s.area = area

	return s.rows, s.err
}

func TestParse(t *testing.T) {
	expected := Preferences{
		CalorieGoal: 2000,
		Diet:        "vegetarian",
		Exclude:     []string{"shellfish"},
		Days:        7,
	}

	rows := [][]any{
		{"Calorie Goal", "Diet", "Exclude Ingredients", "Number of Days"},
		{"2000", "vegetarian", "shellfish", "7"},
	}

	p, err := Parse(rows)
	if err != nil {
		t.Fatalf("Unexpected error returned from Parse (%v)", err)
	}

	if !reflect.DeepEqual(*p, expected) {
		t.Errorf("Incorrect preferences\n   expected: %+v\n   got:      %+v\n", expected, *p)
	}
}

func TestParseWithOutOfOrderColumns(t *testing.T) {
	expected := Preferences{
		CalorieGoal: 1800.5,
		Diet:        "ketogenic",
		Exclude:     []string{"egg", "milk", "nuts"},
		Days:        3,
	}

	rows := [][]any{
		{"Days", "Excluded Ingredients", "Target Calories", "DIET"},
		{3.0, "egg, milk ,nuts", 1800.5, " ketogenic "},
	}

	p, err := Parse(rows)
	if err != nil {
		t.Fatalf("Unexpected error returned from Parse (%v)", err)
	}

	if !reflect.DeepEqual(*p, expected) {
		t.Errorf("Incorrect preferences\n   expected: %+v\n   got:      %+v\n", expected, *p)
	}
}

func TestParseWithTrimmedTrailingCells(t *testing.T) {
	expected := Preferences{
		CalorieGoal: 2200,
		Diet:        "",
		Exclude:     []string{},
		Days:        1,
	}

	rows := [][]any{
		{"Number of Days", "Calorie Goal", "Diet", "Exclude"},
		{"1", "2,200"},
	}

	p, err := Parse(rows)
	if err != nil {
		t.Fatalf("Unexpected error returned from Parse (%v)", err)
	}

	if !reflect.DeepEqual(*p, expected) {
		t.Errorf("Incorrect preferences\n   expected: %+v\n   got:      %+v\n", expected, *p)
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"egg, milk ,nuts", []string{"egg", "milk", "nuts"}},
		{"", []string{}},
		{" , ,", []string{}},
		{"peanut butter,,  egg", []string{"peanut butter", "egg"}},
		{"egg,egg", []string{"egg", "egg"}},
	}

	for _, test := range tests {
		if got := Split(test.input); !reflect.DeepEqual(got, test.expected) {
			t.Errorf("Incorrect split for %q\n   expected: %q\n   got:      %q", test.input, test.expected, got)
		}
	}
}

func TestParseWithInvalidSheet(t *testing.T) {
	header := []any{"Calorie Goal", "Diet", "Exclude", "Days"}

	tests := []struct {
		name  string
		rows  [][]any
		field string
	}{
		{"empty sheet", [][]any{}, ""},
		{"missing row", [][]any{header}, ""},
		{"missing calorie goal column", [][]any{{"Diet", "Exclude", "Days"}, {"vegan", "", "7"}}, CalorieGoal},
		{"missing diet column", [][]any{{"Calories", "Exclude", "Days"}, {"2000", "", "7"}}, Diet},
		{"missing exclude column", [][]any{{"Calories", "Diet", "Days"}, {"2000", "", "7"}}, Exclude},
		{"missing days column", [][]any{{"Calories", "Diet", "Exclude"}, {"2000", "", ""}}, Days},
		{"duplicate column", [][]any{{"Calories", "Calorie Goal", "Diet", "Exclude", "Days"}, {"2000", "2000", "", "", "7"}}, CalorieGoal},
		{"non-numeric calories", [][]any{header, {"lots", "", "", "7"}}, CalorieGoal},
		{"missing calories", [][]any{header, {"", "", "", "7"}}, CalorieGoal},
		{"negative calories", [][]any{header, {"-100", "", "", "7"}}, CalorieGoal},
		{"non-numeric days", [][]any{header, {"2000", "", "", "week"}}, Days},
		{"fractional days", [][]any{header, {"2000", "", "", "2.5"}}, Days},
		{"zero days", [][]any{header, {"2000", "", "", "0"}}, Days},
		{"too many days", [][]any{header, {"2000", "", "", "1e19"}}, Days},
		{"missing days", [][]any{header, {"2000", "", ""}}, Days},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse(test.rows)
			if err == nil {
				t.Fatalf("Expected error, got %v", err)
			}

			var cerr *ConfigurationError
			if !errors.As(err, &cerr) {
				t.Fatalf("Expected ConfigurationError, got %T (%v)", err, err)
			}

			if cerr.Field != test.field {
				t.Errorf("Incorrect error field - expected:'%v', got:'%v'", test.field, cerr.Field)
			}
		})
	}
}

func TestRead(t *testing.T) {
	s := source{
		rows: [][]any{
			{"Calorie Goal", "Diet", "Exclude Ingredients", "Number of Days"},
			{"2000", "vegan", "tofu", "1"},
		},
	}

	p, err := Read(context.Background(), &s, "Preferences!A1:D2")
	if err != nil {
		t.Fatalf("Unexpected error returned from Read (%v)", err)
	}

	if s.area != "Preferences!A1:D2" {
		t.Errorf("Incorrect range - expected:%v, got:%v", "Preferences!A1:D2", s.area)
	}

	if p.Diet != "vegan" || p.Days != 1 || !reflect.DeepEqual(p.Exclude, []string{"tofu"}) {
		t.Errorf("Incorrect preferences %+v", *p)
	}
}

func TestReadWithSourceError(t *testing.T) {
	s := source{
		err: fmt.Errorf("quota exceeded"),
	}

	if _, err := Read(context.Background(), &s, "Preferences!A1:D2"); err == nil {
		t.Fatalf("Expected error, got %v", err)
	}
}
