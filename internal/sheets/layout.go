package sheets

// Alignments accepted by Style
const (
	AlignLeft   = "LEFT"
	AlignCenter = "CENTER"
	AlignRight  = "RIGHT"
	AlignTop    = "TOP"
	AlignMiddle = "MIDDLE"
	AlignBottom = "BOTTOM"
)

// Directive is a layout instruction applied with Client.ApplyLayout
type Directive interface {
	directive()
}

// Merge joins the cells of a range into one
type Merge struct {
	Range Range `json:"range"`
}

// Style is the text format of a cell
type Style struct {
	FontSize   int    `json:"font_size,omitempty"`
	Bold       bool   `json:"bold,omitempty"`
	Italic     bool   `json:"italic,omitempty"`
	Horizontal string `json:"horizontal,omitempty"`
	Vertical   string `json:"vertical,omitempty"`
}

// Format applies a style to every cell of a range
type Format struct {
	Range Range `json:"range"`
	Style Style `json:"style"`
}

// ColumnWidth sets the pixel width of columns [Start, End), 0-based
type ColumnWidth struct {
	Start  int `json:"start"`
	End    int `json:"end"`
	Pixels int `json:"pixels"`
}

func (Merge) directive()       {}
func (Format) directive()      {}
func (ColumnWidth) directive() {}
