package sheet

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"google.golang.org/api/sheets/v4"
)

// Spreadsheet is a Google Sheets spreadsheet, used as both the preferences source
// and the meal plan output.
type Spreadsheet struct {
	google      *sheets.Service
	spreadsheet *sheets.Spreadsheet
}

// Range is a parsed A1 range e.g. 'Meal Plan!A1:G'. Rows and columns are zero-based,
// Bottom is -1 for an open-ended range.
type Range struct {
	Sheet  string
	Left   int
	Top    int
	Right  int
	Bottom int
}

var urlRegex = regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`)
var rangeRegex = regexp.MustCompile(`^(.+?)!([a-zA-Z]+)([0-9]+):([a-zA-Z]+)([0-9]+)?$`)

// ExtractID returns the spreadsheet ID from a Google Sheets URL.
func ExtractID(url string) (string, error) {
	match := urlRegex.FindStringSubmatch(strings.TrimSpace(url))
	if len(match) < 2 || match[1] == "" {
		return "", fmt.Errorf("invalid spreadsheet URL - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'")
	}

	return match[1], nil
}

func Open(ctx context.Context, google *sheets.Service, id string) (*Spreadsheet, error) {
	spreadsheet, err := google.Spreadsheets.Get(id).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch spreadsheet (%v)", err)
	}

	return &Spreadsheet{
		google:      google,
		spreadsheet: spreadsheet,
	}, nil
}

// Get returns the cell values in an A1 range.
func (s *Spreadsheet) Get(ctx context.Context, area string) ([][]any, error) {
	response, err := s.google.Spreadsheets.Values.Get(s.spreadsheet.SpreadsheetId, area).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve data from sheet (%v)", err)
	}

	if len(response.Values) == 0 {
		return nil, fmt.Errorf("no data in spreadsheet/range '%v'", area)
	}

	return response.Values, nil
}

// Formulas returns the cell formulas in an A1 range, with plain values for cells
// without a formula.
func (s *Spreadsheet) Formulas(ctx context.Context, area string) ([][]any, error) {
	response, err := s.google.Spreadsheets.Values.Get(s.spreadsheet.SpreadsheetId, area).ValueRenderOption("FORMULA").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve data from sheet (%v)", err)
	}

	if len(response.Values) == 0 {
		return nil, fmt.Errorf("no data in spreadsheet/range '%v'", area)
	}

	return response.Values, nil
}

// Region returns the writable region of a worksheet for an A1 range.
func (s *Spreadsheet) Region(area string) (*Region, error) {
	r, err := ParseRange(area)
	if err != nil {
		return nil, err
	}

	sheet, err := s.getSheet(r.Sheet)
	if err != nil {
		return nil, err
	}

	return &Region{
		google:        s.google,
		spreadsheetID: s.spreadsheet.SpreadsheetId,
		sheetID:       sheet.Properties.SheetId,
		area:          r,
	}, nil
}

func (s *Spreadsheet) getSheet(name string) (*sheets.Sheet, error) {
	for _, sheet := range s.spreadsheet.Sheets {
		if strings.ToLower(strings.TrimSpace(sheet.Properties.Title)) == strings.ToLower(strings.TrimSpace(name)) {
			return sheet, nil
		}
	}

	return nil, fmt.Errorf("unable to identify worksheet '%s'", name)
}

// ParseRange parses an A1 range of the form <sheet>!<column><row>:<column>[<row>].
func ParseRange(area string) (*Range, error) {
	match := rangeRegex.FindStringSubmatch(strings.TrimSpace(area))
	if len(match) < 5 {
		return nil, fmt.Errorf("invalid spreadsheet range '%s' - expected something like 'Meal Plan!A1:G'", area)
	}

	name := match[1]
	if len(name) > 1 && strings.HasPrefix(name, "'") && strings.HasSuffix(name, "'") {
		name = strings.ReplaceAll(name[1:len(name)-1], "''", "'")
	}

	top, _ := strconv.Atoi(match[3])
	if top < 1 {
		return nil, fmt.Errorf("invalid spreadsheet range '%s' - rows start at 1", area)
	}

	r := Range{
		Sheet:  name,
		Left:   column(match[2]),
		Top:    top - 1,
		Right:  column(match[4]),
		Bottom: -1,
	}

	if match[5] != "" {
		bottom, _ := strconv.Atoi(match[5])
		r.Bottom = bottom - 1
	}

	if r.Right < r.Left || (r.Bottom >= 0 && r.Bottom < r.Top) {
		return nil, fmt.Errorf("invalid spreadsheet range '%s'", area)
	}

	return &r, nil
}

// A1 returns the range in A1 notation, with the sheet name quoted.
func (r Range) A1() string {
	name := fmt.Sprintf("'%v'", strings.ReplaceAll(r.Sheet, "'", "''"))

	if r.Bottom < 0 {
		return fmt.Sprintf("%v!%v%v:%v", name, letters(r.Left), r.Top+1, letters(r.Right))
	}

	return fmt.Sprintf("%v!%v%v:%v%v", name, letters(r.Left), r.Top+1, letters(r.Right), r.Bottom+1)
}

// Columns returns the number of columns spanned by the range.
func (r Range) Columns() int {
	return r.Right - r.Left + 1
}

// column converts a column name to a zero-based index i.e. A is 0, Z is 25, AA is 26.
func column(name string) int {
	index := 0
	for _, ch := range strings.ToUpper(name) {
		index = index*26 + int(ch-'A') + 1
	}

	return index - 1
}

func letters(index int) string {
	name := ""
	for n := index + 1; n > 0; n = (n - 1) / 26 {
		name = string(rune('A'+(n-1)%26)) + name
	}

	return name
}
