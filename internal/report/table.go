package report

import (
	"fmt"

	"github.com/fadilmartias/interview-report/internal/model"
)

const (
	AlignLeft   = "L"
	AlignCenter = "C"

	tablePadding   = 6
	tableGridWidth = 0.5
	tableBoxWidth  = 1
)

type Column struct {
	Header string
	Width  float64
	Align  string
}

type Cell struct {
	Text  string
	Bold  bool
	Color RGB
}

// Table is a styled grid whose header row repeats on every page it spans.
type Table struct {
	Columns      []Column
	Rows         [][]Cell
	RepeatHeader bool
}

// BuildTable returns a Question | Analysis / Feedback | Score table, or nil when
// there are no records.
func BuildTable(records []model.Record) *Table {
	if len(records) == 0 {
		return nil
	}
	rows := make([][]Cell, len(records))
	for i, r := range records {
		rows[i] = []Cell{
			{Text: r.Question},
			{Text: r.Comment},
			{Text: fmt.Sprintf("%d/10", r.Score), Bold: true, Color: ColorFor(r.Score).TextColor()},
		}
	}
	return &Table{
		Columns: []Column{
			{Header: "Question", Width: 140, Align: AlignLeft},
			{Header: "Analysis / Feedback", Width: 286, Align: AlignLeft},
			{Header: "Score", Width: 70, Align: AlignCenter},
		},
		Rows:         rows,
		RepeatHeader: true,
	}
}

func (t *Table) Width() float64 {
	var w float64
	for _, c := range t.Columns {
		w += c.Width
	}
	return w
}

type cellFont struct {
	style   string
	size    float64
	leading float64
}

var (
	tableHeaderFont = cellFont{style: "B", size: 10, leading: 12}
	tableBodyFont   = cellFont{style: "", size: 9, leading: 11}
	tableBoldFont   = cellFont{style: "B", size: 9, leading: 11}
)

type tableRow struct {
	cells  []Cell
	fonts  []cellFont
	lines  [][][]byte
	height float64
	fill   *RGB
}

type tableFlowable struct {
	table *Table
}

func (f tableFlowable) Draw(l *Layout) error {
	t := f.table
	pdf := l.PDF()

	margin := pdf.GetCellMargin()
	pdf.SetCellMargin(0)
	defer pdf.SetCellMargin(margin)

	headerCells := make([]Cell, len(t.Columns))
	for i, c := range t.Columns {
		headerCells[i] = Cell{Text: c.Header, Bold: true, Color: white}
	}
	header := f.measure(l, headerCells, true)
	header.fill = &navy

	rows := make([]tableRow, len(t.Rows))
	for i, cells := range t.Rows {
		rows[i] = f.measure(l, cells, false)
	}

	first := header.height
	if len(rows) > 0 {
		first += rows[0].height
	}
	l.Reserve(first)

	segmentTop := pdf.GetY()
	f.drawRow(l, header)
	onPage := 0
	for _, row := range rows {
		for {
			if pdf.GetY()+row.height <= l.Frame().Bottom()+0.01 {
				f.drawRow(l, row)
				onPage++
				break
			}
			if onPage > 0 {
				f.drawBox(l, segmentTop, pdf.GetY())
				l.NewPage()
				segmentTop = pdf.GetY()
				if t.RepeatHeader {
					f.drawRow(l, header)
				}
				onPage = 0
				continue
			}
			// Nothing but the header is on this page and the row still does
			// not fit, so fill the page with its lines and carry the rest over.
			head, tail, ok := splitRow(row, l.Frame().Bottom()-pdf.GetY())
			if !ok {
				return &RenderError{Message: "table row does not fit in an empty frame"}
			}
			f.drawRow(l, head)
			onPage++
			row = tail
		}
	}
	f.drawBox(l, segmentTop, pdf.GetY())
	return nil
}

// splitRow cuts row after the lines that fit in height h. ok is false when
// not even one line of each non-empty cell fits.
func splitRow(row tableRow, h float64) (head, tail tableRow, ok bool) {
	head = tableRow{cells: row.cells, fonts: row.fonts, lines: make([][][]byte, len(row.lines)), fill: row.fill}
	tail = tableRow{cells: row.cells, fonts: row.fonts, lines: make([][][]byte, len(row.lines)), fill: row.fill}
	moved := false
	for i, lines := range row.lines {
		n := int((h - 2*tablePadding) / row.fonts[i].leading)
		if n < 1 && len(lines) > 0 {
			return tableRow{}, tableRow{}, false
		}
		n = min(n, len(lines))
		head.lines[i] = lines[:n]
		tail.lines[i] = lines[n:]
		if n < len(lines) {
			moved = true
		}
	}
	if !moved {
		return tableRow{}, tableRow{}, false
	}
	head.height = rowHeight(head)
	tail.height = rowHeight(tail)
	return head, tail, true
}

func rowHeight(row tableRow) float64 {
	var tallest float64
	for i, lines := range row.lines {
		if h := float64(len(lines)) * row.fonts[i].leading; h > tallest {
			tallest = h
		}
	}
	return tallest + 2*tablePadding
}

// left is the table's x position, centered in the frame.
func (f tableFlowable) left(l *Layout) float64 {
	return l.Frame().X + (l.Frame().Width-f.table.Width())/2
}

func (f tableFlowable) measure(l *Layout, cells []Cell, header bool) tableRow {
	pdf := l.PDF()
	row := tableRow{
		cells: cells,
		fonts: make([]cellFont, len(cells)),
		lines: make([][][]byte, len(cells)),
	}
	for i, cell := range cells {
		font := tableBodyFont
		switch {
		case header:
			font = tableHeaderFont
		case cell.Bold:
			font = tableBoldFont
		}
		pdf.SetFont("Helvetica", font.style, font.size)
		lines := pdf.SplitLines([]byte(l.Text(cell.Text)), f.table.Columns[i].Width-2*tablePadding)
		if len(lines) == 0 {
			lines = [][]byte{{}}
		}
		row.fonts[i] = font
		row.lines[i] = lines
	}
	row.height = rowHeight(row)
	return row
}

func (f tableFlowable) drawRow(l *Layout, row tableRow) {
	pdf := l.PDF()
	x, y := f.left(l), pdf.GetY()

	for i, col := range f.table.Columns {
		if row.fill != nil {
			setFill(pdf, *row.fill)
			pdf.Rect(x, y, col.Width, row.height, "F")
		}
		setDraw(pdf, lightGrey)
		pdf.SetLineWidth(tableGridWidth)
		pdf.Rect(x, y, col.Width, row.height, "D")

		font := row.fonts[i]
		pdf.SetFont("Helvetica", font.style, font.size)
		setText(pdf, row.cells[i].Color)
		baseline := y + tablePadding + font.size
		for n, line := range row.lines[i] {
			s := string(line)
			tx := x + tablePadding
			if col.Align == AlignCenter {
				tx = x + (col.Width-pdf.GetStringWidth(s))/2
			}
			pdf.Text(tx, baseline+float64(n)*font.leading, s)
		}
		x += col.Width
	}
	pdf.SetY(y + row.height)
}

func (f tableFlowable) drawBox(l *Layout, top, bottom float64) {
	if bottom <= top {
		return
	}
	pdf := l.PDF()
	setDraw(pdf, navy)
	pdf.SetLineWidth(tableBoxWidth)
	pdf.Rect(f.left(l), top, f.table.Width(), bottom-top, "D")
}
