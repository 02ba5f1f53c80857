package sheet

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/sheets/v4"

	"github.com/uhppoted/mealplan-sheets/log"
	"github.com/uhppoted/mealplan-sheets/render"
)

// Region is the meal plan output area of a worksheet.
type Region struct {
	google        *sheets.Service
	spreadsheetID string
	sheetID       int64
	area          *Range
}

var _ render.Sink = (*Region)(nil)

// Clear removes the values and the formatting from the region.
func (g *Region) Clear(ctx context.Context) error {
	rq := sheets.BatchClearValuesRequest{
		Ranges: []string{g.area.A1()},
	}

	if _, err := g.google.Spreadsheets.Values.BatchClear(g.spreadsheetID, &rq).Context(ctx).Do(); err != nil {
		return err
	}

	reset := sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				RepeatCell: &sheets.RepeatCellRequest{
					Range:  g.gridRange(0, g.area.Bottom-g.area.Top+1, g.area.Columns()),
					Cell:   &sheets.CellData{},
					Fields: "userEnteredFormat",
				},
			},
		},
	}

	if _, err := g.google.Spreadsheets.BatchUpdate(g.spreadsheetID, &reset).Context(ctx).Do(); err != nil {
		return fmt.Errorf("error clearing worksheet formatting (%w)", err)
	}

	return nil
}

// Write stores the rows at the top left of the region in a single update and then
// applies the cell formatting.
func (g *Region) Write(ctx context.Context, rows [][]any, styles []render.Style) error {
	values := g.clip(rows)
	if len(values) == 0 {
		return nil
	}

	area := Range{
		Sheet:  g.area.Sheet,
		Left:   g.area.Left,
		Top:    g.area.Top,
		Right:  g.area.Right,
		Bottom: g.area.Top + len(values) - 1,
	}

	log.Debugf("writing %v rows to %v", len(values), area.A1())

	rq := sheets.BatchUpdateValuesRequest{
		ValueInputOption: "USER_ENTERED",
		Data: []*sheets.ValueRange{
			{
				Range:  area.A1(),
				Values: values,
			},
		},
	}

	if _, err := g.google.Spreadsheets.Values.BatchUpdate(g.spreadsheetID, &rq).Context(ctx).Do(); err != nil {
		return err
	}

	format := sheets.BatchUpdateSpreadsheetRequest{
		Requests: g.format(styles, len(values)),
	}

	if _, err := g.google.Spreadsheets.BatchUpdate(g.spreadsheetID, &format).Context(ctx).Do(); err != nil {
		return fmt.Errorf("error formatting worksheet (%w)", err)
	}

	return nil
}

// clip truncates the rows to the width and height of the region.
func (g *Region) clip(rows [][]any) [][]any {
	columns := g.area.Columns()
	values := [][]any{}

	for i, row := range rows {
		if g.area.Bottom >= 0 && g.area.Top+i > g.area.Bottom {
			log.Warnf("meal plan truncated to %v rows to fit range %v", i, g.area.A1())
			break
		}

		if len(row) > columns {
			row = row[:columns]
		}

		values = append(values, row)
	}

	return values
}

func (g *Region) format(styles []render.Style, rows int) []*sheets.Request {
	requests := []*sheets.Request{}

	for _, style := range styles {
		if style.Row >= rows {
			continue
		}

		format := sheets.CellFormat{
			TextFormat: &sheets.TextFormat{
				Bold: style.Bold,
			},
		}

		fields := []string{"userEnteredFormat.textFormat.bold"}

		if style.FontSize > 0 {
			format.TextFormat.FontSize = int64(style.FontSize)
			fields = append(fields, "userEnteredFormat.textFormat.fontSize")
		}

		if style.Background != nil {
			format.BackgroundColor = &sheets.Color{
				Red:   style.Background.Red,
				Green: style.Background.Green,
				Blue:  style.Background.Blue,
			}
			fields = append(fields, "userEnteredFormat.backgroundColor")
		}

		if style.Align != "" {
			format.HorizontalAlignment = string(style.Align)
			fields = append(fields, "userEnteredFormat.horizontalAlignment")
		}

		requests = append(requests, &sheets.Request{
			RepeatCell: &sheets.RepeatCellRequest{
				Range:  g.gridRange(style.Row, 1, min(style.Columns, g.area.Columns())),
				Cell:   &sheets.CellData{UserEnteredFormat: &format},
				Fields: strings.Join(fields, ","),
			},
		})
	}

	requests = append(requests, &sheets.Request{
		AutoResizeDimensions: &sheets.AutoResizeDimensionsRequest{
			Dimensions: &sheets.DimensionRange{
				SheetId:    g.sheetID,
				Dimension:  "COLUMNS",
				StartIndex: int64(g.area.Left),
				EndIndex:   int64(g.area.Right + 1),
			},
		},
	})

	return requests
}

// gridRange returns the grid range for a block of cells relative to the top left of
// the region. A non-positive row count extends the range to the bottom of the sheet.
func (g *Region) gridRange(row, rows, columns int) *sheets.GridRange {
	r := sheets.GridRange{
		SheetId:          g.sheetID,
		StartRowIndex:    int64(g.area.Top + row),
		StartColumnIndex: int64(g.area.Left),
		EndColumnIndex:   int64(g.area.Left + columns),
	}

	if rows > 0 {
		r.EndRowIndex = int64(g.area.Top + row + rows)
	}

	return &r
}
