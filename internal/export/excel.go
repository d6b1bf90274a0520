package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// maxSheetName is the longest sheet name Excel accepts.
const maxSheetName = 31

// column is a header cell and the width of its column.
type column struct {
	title string
	width float64
}

// table streams a single-sheet workbook: a bold, frozen header row followed
// by one row per record.
type table struct {
	file   *excelize.File
	stream *excelize.StreamWriter
	row    int
}

func newTable(sheet string, columns []column) (*table, error) {
	if len(sheet) > maxSheetName {
		sheet = sheet[:maxSheetName]
	}

	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("error al nombrar la hoja %s: %w", sheet, err)
	}

	stream, err := f.NewStreamWriter(sheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("error al abrir la hoja %s: %w", sheet, err)
	}

	t := &table{file: f, stream: stream, row: 1}
	if err := t.header(columns); err != nil {
		f.Close()
		return nil, err
	}
	return t, nil
}

// header must run before any row: the stream writer only accepts widths and
// panes ahead of cell data.
func (t *table) header(columns []column) error {
	titles := make([]any, len(columns))
	for i, c := range columns {
		if c.width > 0 {
			if err := t.stream.SetColWidth(i+1, i+1, c.width); err != nil {
				return fmt.Errorf("error al ajustar la columna %s: %w", c.title, err)
			}
		}
		titles[i] = c.title
	}

	if err := t.stream.SetPanes(&excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("error al fijar el encabezado: %w", err)
	}

	bold, err := t.file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("error al crear el estilo del encabezado: %w", err)
	}

	return t.append(titles, excelize.RowOpts{StyleID: bold})
}

func (t *table) append(values []any, opts ...excelize.RowOpts) error {
	cell, err := excelize.CoordinatesToCellName(1, t.row)
	if err != nil {
		return err
	}
	if err := t.stream.SetRow(cell, values, opts...); err != nil {
		return err
	}
	t.row++
	return nil
}

// writeTo flushes the sheet and writes the workbook to w.
func (t *table) writeTo(w io.Writer) error {
	if err := t.stream.Flush(); err != nil {
		return err
	}
	return t.file.Write(w)
}

func (t *table) close() error {
	return t.file.Close()
}
