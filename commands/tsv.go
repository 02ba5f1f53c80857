package commands

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/uhppoted/mealplan-sheets/render"
)

var hyperlinkRegex = regexp.MustCompile(`(?i)^=HYPERLINK\("((?:[^"]|"")*)"\s*(?:[,;].*)?\)$`)

// sheetToTSV writes the meal rows of a meal plan worksheet as TSV, starting from the
// column header row. Blank separator rows are skipped and recipe hyperlink formulas
// are replaced by the recipe URL.
func sheetToTSV(f io.Writer, rows [][]any) error {
	if len(rows) == 0 {
		return fmt.Errorf("Empty sheet")
	}

	// ... find header
	start := -1
	for i, row := range rows {
		if isHeader(row) {
			start = i
			break
		}
	}

	if start < 0 {
		return fmt.Errorf("Missing/invalid header row")
	}

	header := make([]string, len(render.Header))
	for i := range header {
		header[i] = clean(text(rows[start][i]))
	}

	// ... records
	records := [][]string{}
	for _, row := range rows[start+1:] {
		record := make([]string, len(header))
		blank := true

		for i := range record {
			if i < len(row) {
				record[i] = clean(text(row[i]))
			}

			if record[i] != "" {
				blank = false
			}
		}

		if blank {
			continue
		}

		record[2] = link(record[2])
		records = append(records, record)
	}

	// ... write to file
	w := csv.NewWriter(f)
	w.Comma = '\t'

	w.Write(header)
	for _, record := range records {
		w.Write(record)
	}

	w.Flush()

	return w.Error()
}

func isHeader(row []any) bool {
	if len(row) < len(render.Header) {
		return false
	}

	for i, h := range render.Header {
		if normalise(text(row[i])) != normalise(h) {
			return false
		}
	}

	return true
}

// link extracts the URL from a =HYPERLINK(...) formula. Anything else is returned
// unchanged.
func link(v string) string {
	if match := hyperlinkRegex.FindStringSubmatch(v); len(match) > 1 {
		return strings.ReplaceAll(match[1], `""`, `"`)
	}

	return v
}

func text(v any) string {
	switch s := v.(type) {
	case nil:
		return ""

	case string:
		return s

	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)

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
