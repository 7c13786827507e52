// Package report renders a solved schedule to an .xlsx roster. It is a
// sibling of the core builder packages — "result decoding and
// reporting" is explicitly out of the builder's scope — and never
// imported by pkg/builder or pkg/rules/compile.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/kaigoshift/kaigoshift/pkg/model"
)

// AssignmentLookup returns the shift assigned to employeeID on the
// horizon date at dateIdx, decoded by the caller from a solved model.
type AssignmentLookup func(employeeID string, dateIdx int) model.ShiftCode

// WriteRoster renders one sheet: a row per employee, a column per
// horizon date, each cell holding the assigned shift code.
func WriteRoster(roster *model.Roster, horizon *model.Horizon, assigned AssignmentLookup) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Roster"
	f.NewSheet(sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	f.SetCellValue(sheet, "A1", "Employee")
	dates := horizon.Dates()
	for di, d := range dates {
		cell := cellRef(di+2, 1)
		f.SetCellValue(sheet, cell, fmt.Sprintf("%s (%s)", d.String(), d.Weekday().String()[:3]))
	}
	if headerStyle != 0 {
		lastCol := colLetter(len(dates) + 1)
		f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle)
	}

	for ei, e := range roster.Employees() {
		row := ei + 2
		f.SetCellValue(sheet, cellRef(1, row), e.ID)
		for di := range dates {
			shift := assigned(e.ID, di)
			f.SetCellValue(sheet, cellRef(di+2, row), string(shift))
		}
	}

	f.SetColWidth(sheet, "A", "A", 16)
	if len(dates) > 0 {
		f.SetColWidth(sheet, "B", colLetter(len(dates)+1), 12)
	}

	f.DeleteSheet("Sheet1")
	return f, nil
}

func cellRef(col, row int) string {
	return fmt.Sprintf("%s%d", colLetter(col), row)
}

func colLetter(col int) string {
	result := ""
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}
