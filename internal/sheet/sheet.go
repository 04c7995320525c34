// Package sheet builds the backlog spreadsheet.
package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/pthm/backlog/internal/backlog"
)

// Layout of the "Games Backlog" sheet.
const (
	SheetName   = "Games Backlog"
	TableName   = "SelectedGames"
	TableStyle  = "TableStyleMedium9"
	HeaderRow   = 3
	FirstRow    = HeaderRow + 1
	HeaderColor = "1F4E79"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Headers are the column titles, A through F.
var Headers = []string{"Game", "Owned", "Excitement", "Hours to Complete", "Completed? (Y/N)", "Notes"}

var widths = []float64{34, 10, 14, 18, 18, 28}

// Build renders games into an xlsx document. Hours come from MainExtra and
// are left blank when it is not a number.
func Build(games []backlog.ExportEntry) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("sheet: rename: %w", err)
	}

	n := len(games)
	last := FirstRow + n - 1
	if n == 0 {
		last = FirstRow
	}

	b := builder{f: f}
	b.summary(last)
	b.headers()
	for i, g := range games {
		b.row(FirstRow+i, g)
	}
	b.format(last)
	b.validation(last)
	if n > 0 {
		b.table(last)
	}
	if b.err != nil {
		return nil, fmt.Errorf("sheet: %w", b.err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("sheet: write: %w", err)
	}
	return buf.Bytes(), nil
}

// builder carries the first error so each step can be written flat.
type builder struct {
	f   *excelize.File
	err error
}

func (b *builder) do(err error) {
	if b.err == nil && err != nil {
		b.err = err
	}
}

func (b *builder) style(s *excelize.Style) int {
	if b.err != nil {
		return 0
	}
	id, err := b.f.NewStyle(s)
	b.do(err)
	return id
}

func (b *builder) summary(last int) {
	oneDecimal := "0.0"
	bold := b.style(&excelize.Style{Font: &excelize.Font{Bold: true}})
	total := b.style(&excelize.Style{Font: &excelize.Font{Bold: true}, CustomNumFmt: &oneDecimal})

	b.do(b.f.SetCellValue(SheetName, "A1", "Total Hours"))
	b.do(b.f.SetCellStyle(SheetName, "A1", "A1", bold))
	b.do(b.f.SetCellFormula(SheetName, "B1", fmt.Sprintf("SUM(D%d:D%d)", FirstRow, last)))
	b.do(b.f.SetCellStyle(SheetName, "B1", "B1", total))
}

func (b *builder) headers() {
	row := make([]any, len(Headers))
	for i, h := range Headers {
		row[i] = h
	}
	b.do(b.f.SetSheetRow(SheetName, cell("A", HeaderRow), &row))

	header := b.style(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{HeaderColor}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	b.do(b.f.SetCellStyle(SheetName, cell("A", HeaderRow), cell("F", HeaderRow), header))
}

func (b *builder) row(r int, g backlog.ExportEntry) {
	owned := "N"
	if g.Owned {
		owned = "Y"
	}

	var intrigue, hours any
	if g.Intrigue != 0 {
		intrigue = int(g.Intrigue)
	}
	if h, ok := g.MainExtra.Hours(); ok {
		hours = h
	}

	row := []any{g.Name, owned, intrigue, hours, "N", nil}
	b.do(b.f.SetSheetRow(SheetName, cell("A", r), &row))
}

func (b *builder) format(last int) {
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		b.do(err)
		b.do(b.f.SetColWidth(SheetName, col, col, w))
	}

	b.do(b.f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      HeaderRow,
		TopLeftCell: cell("A", FirstRow),
		ActivePane:  "bottomLeft",
	}))

	oneDecimal := "0.0"
	hours := b.style(&excelize.Style{CustomNumFmt: &oneDecimal})
	whole := b.style(&excelize.Style{NumFmt: 1})
	wrap := b.style(&excelize.Style{Alignment: &excelize.Alignment{WrapText: true}})

	b.do(b.f.SetCellStyle(SheetName, cell("D", FirstRow), cell("D", last), hours))
	b.do(b.f.SetCellStyle(SheetName, cell("C", FirstRow), cell("C", last), whole))
	b.do(b.f.SetCellStyle(SheetName, cell("F", FirstRow), cell("F", last), wrap))
}

func (b *builder) validation(last int) {
	dv := excelize.NewDataValidation(true)
	dv.Sqref = cell("E", FirstRow) + ":" + cell("E", last)
	b.do(dv.SetDropList([]string{"Y", "N"}))
	b.do(b.f.AddDataValidation(SheetName, dv))
}

func (b *builder) table(last int) {
	stripes := true
	b.do(b.f.AddTable(SheetName, &excelize.Table{
		Range:          cell("A", HeaderRow) + ":" + cell("F", last),
		Name:           TableName,
		StyleName:      TableStyle,
		ShowRowStripes: &stripes,
	}))
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
