package report

import (
	"bytes"
	"fmt"

	"github.com/xonadon/xonadon-api/internal/domain/area"
	"github.com/xuri/excelize/v2"
)

// WorkbookContentType is the media type of RenderWorkbook output.
const WorkbookContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// RenderWorkbook builds an xlsx workbook for summary. The single sheet holds
// a header row, one row per room, a totals row and the weather details.
func RenderWorkbook(summary area.ApartmentSummary, locale Locale) ([]byte, error) {
	if !locale.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
	}
	p := newPrinter(locale)

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	sheet := p.Sprintf(msgSheet)
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "#000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	numberStyle, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return nil, fmt.Errorf("failed to create number style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, NumFmt: 2})
	if err != nil {
		return nil, fmt.Errorf("failed to create total style: %w", err)
	}

	headers := []string{
		p.Sprintf(msgColRoom),
		p.Sprintf(msgColGross),
		p.Sprintf(msgColCutouts),
		p.Sprintf(msgColNet),
		p.Sprintf(msgColMat),
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("failed to style header: %w", err)
		}
	}

	row := 2
	for _, room := range summary.Rooms {
		values := []any{
			displayName(room.Name, room.RoomID),
			room.Gross, room.Cutouts, room.Net, room.Material,
		}
		if err := writeRow(f, sheet, row, values, numberStyle); err != nil {
			return nil, err
		}
		row++
	}

	totals := []any{
		p.Sprintf(msgTotalLabel), nil, nil,
		summary.Totals.Room, summary.Totals.Material,
	}
	if err := writeRow(f, sheet, row, totals, totalStyle); err != nil {
		return nil, err
	}

	row += 2
	details := [][]any{
		{p.Sprintf(msgWeatherCol), weatherName(p, summary.Weather)},
		{p.Sprintf(msgLossCol), summary.LossPercent},
	}
	for _, values := range details {
		if err := writeRow(f, sheet, row, values, 0); err != nil {
			return nil, err
		}
		row++
	}
	percentStyle, err := f.NewStyle(&excelize.Style{NumFmt: 9})
	if err != nil {
		return nil, fmt.Errorf("failed to create percent style: %w", err)
	}
	lossCell, _ := excelize.CoordinatesToCellName(2, row-1)
	if err := f.SetCellStyle(sheet, lossCell, lossCell, percentStyle); err != nil {
		return nil, fmt.Errorf("failed to style loss: %w", err)
	}

	if err := f.SetColWidth(sheet, "A", "A", 24); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}
	if err := f.SetColWidth(sheet, "B", "E", 14); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("failed to freeze header: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// writeRow writes values from column A on. Nil values leave the cell empty;
// numeric cells get numberStyle when it is non-zero.
func writeRow(f *excelize.File, sheet string, row int, values []any, numberStyle int) error {
	for i, value := range values {
		if value == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("invalid cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("failed to write cell %s: %w", cell, err)
		}
		if _, isNumber := value.(float64); isNumber && numberStyle != 0 {
			if err := f.SetCellStyle(sheet, cell, cell, numberStyle); err != nil {
				return fmt.Errorf("failed to style cell %s: %w", cell, err)
			}
		}
	}
	return nil
}
