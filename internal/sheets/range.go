package sheets

import (
	"strconv"
	"strings"
)

// Range addresses a rectangle of a worksheet. Rows and columns are 1-based.
// A zero EndRow leaves the rows unbounded, a zero StartRow addresses the
// whole worksheet and an empty Sheet addresses the first worksheet.
type Range struct {
	Sheet    string
	StartRow int
	StartCol int
	EndRow   int
	EndCol   int
}

// Cell addresses a single cell
func Cell(sheet string, row, col int) Range {
	return Range{Sheet: sheet, StartRow: row, StartCol: col, EndRow: row, EndCol: col}
}

// Row addresses columns startCol..endCol of one row
func Row(sheet string, row, startCol, endCol int) Range {
	return Range{Sheet: sheet, StartRow: row, StartCol: startCol, EndRow: row, EndCol: endCol}
}

// Column addresses a whole column
func Column(sheet string, col int) Range {
	return Range{Sheet: sheet, StartRow: 1, StartCol: col, EndCol: col}
}

// Block addresses a rectangle
func Block(sheet string, startRow, startCol, endRow, endCol int) Range {
	return Range{Sheet: sheet, StartRow: startRow, StartCol: startCol, EndRow: endRow, EndCol: endCol}
}

// Whole addresses every cell of a worksheet
func Whole(sheet string) Range {
	return Range{Sheet: sheet}
}

// IsWhole reports whether the range covers the entire worksheet
func (r Range) IsWhole() bool {
	return r.StartRow == 0 && r.StartCol == 0
}

// A1 renders the range in A1 notation, e.g. 'Game'!B6:D6
func (r Range) A1() string {
	sheet := ""
	if r.Sheet != "" {
		sheet = "'" + strings.ReplaceAll(r.Sheet, "'", "''") + "'"
	}
	if r.IsWhole() {
		return sheet
	}

	cells := ColumnLetter(r.StartCol) + strconv.Itoa(r.StartRow)
	if r.EndRow != r.StartRow || r.EndCol != r.StartCol {
		cells += ":" + ColumnLetter(r.EndCol)
		if r.EndRow > 0 {
			cells += strconv.Itoa(r.EndRow)
		}
	}

	if sheet == "" {
		return cells
	}
	return sheet + "!" + cells
}

// ColumnLetter converts a 1-based column number to its letter name
func ColumnLetter(col int) string {
	if col < 1 {
		return ""
	}
	var letters []byte
	for col > 0 {
		col--
		letters = append([]byte{byte('A' + col%26)}, letters...)
		col /= 26
	}
	return string(letters)
}
