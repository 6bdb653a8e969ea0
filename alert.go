package herald

import (
	"fmt"
	"html/template"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Kind classifies an alert and selects the banner color in the rendered
// email.
type Kind string

// Alert kinds.
const (
	KindSuccess Kind = "success"
	KindWarning Kind = "warning"
	KindDanger  Kind = "danger"
	KindInfo    Kind = "info"
)

// kindColors maps alert kinds to their canonical banner colors.
var kindColors = map[Kind]string{
	KindSuccess: "#28a745",
	KindWarning: "#ffc107",
	KindDanger:  "#dc3545",
	KindInfo:    "#17a2b8",
}

// defaultColor is used for unrecognized kinds.
const defaultColor = "#333333"

// Color returns the hex color associated with the kind.
// Unknown kinds map to a neutral gray rather than failing.
func (k Kind) Color() string {
	if c, ok := kindColors[k]; ok {
		return c
	}
	return defaultColor
}

// rgba converts a hex color to an rgba() expression with the given opacity.
// Used for the translucent banner background behind the alert heading.
func rgba(hexColor string, opacity float64) string {
	if len(hexColor) > 0 && hexColor[0] == '#' {
		hexColor = hexColor[1:]
	}
	if len(hexColor) != 6 {
		return fmt.Sprintf("rgba(51, 51, 51, %g)", opacity)
	}

	r, errR := strconv.ParseUint(hexColor[0:2], 16, 8)
	g, errG := strconv.ParseUint(hexColor[2:4], 16, 8)
	b, errB := strconv.ParseUint(hexColor[4:6], 16, 8)
	if errR != nil || errG != nil || errB != nil {
		return fmt.Sprintf("rgba(51, 51, 51, %g)", opacity)
	}

	return fmt.Sprintf("rgba(%d, %d, %d, %g)", r, g, b, opacity)
}

// Report is the envelope for an alert send: who it is from, who receives it,
// and the subject used when neither the params nor the template provide one.
type Report struct {
	From    string
	Subject string
	To      []string
	CC      []string
	BCC     []string
}

// Table holds ordered tabular report data. Rows must have exactly one cell
// per column; Footer, when present, follows the same rule.
type Table struct {
	Columns []string
	Rows    [][]any
	Footer  []any
}

// Stat is a single labeled summary value displayed above the table.
type Stat struct {
	Label string
	Value string
}

// FileStatus describes the processing outcome for one file.
type FileStatus struct {
	Name   string
	Status string
	Meta   string // optional detail, e.g. record count or error hint
}

// Action describes the call-to-action button at the bottom of the alert.
type Action struct {
	URL   string
	Label string
}

// AlertParams contains parameters for sending a templated alert email.
type AlertParams struct {
	Report  Report
	Kind    Kind
	Title   string
	Message string // markdown; rendered and sanitized before insertion

	// Optional report sections; each renders only when populated.
	Table        *Table
	Summary      []Stat
	Files        []FileStatus
	Action       *Action
	ErrorDetails string
	LogoURL      string
	Environment  string
	Timestamp    string
	TotalRecords int

	// Optional overrides
	Subject         string       // Override subject resolution chain
	Template        string       // Override default template file
	Layout          string       // Override default layout
	AttachmentPaths []string     // Files loaded through the configured FileSource
	Attachments     []Attachment // Pre-loaded attachments
	Tags            Tags
}

// renderedTable is the display form of a Table with all cells formatted.
type renderedTable struct {
	Columns []string
	Rows    [][]string
	Footer  []string
}

// alertContext is the data handed to the alert template.
type alertContext struct {
	Kind         Kind
	Title        string
	Message      template.HTML
	Color        template.CSS
	ColorSoft    template.CSS
	Table        *renderedTable
	Summary      []Stat
	Files        []FileStatus
	Action       *Action
	ErrorDetails string
	LogoURL      string
	Environment  string
	Timestamp    string
	TotalRecords int
}

// cssValue marks a color string as safe CSS. Only values built from the
// internal kind color map pass through here, never caller input.
func cssValue(s string) template.CSS {
	return template.CSS(s)
}

// cellPrinter renders numeric cells with thousands separators ("3,800").
var cellPrinter = message.NewPrinter(language.English)

// formatCell converts a table or footer cell to its display string.
func formatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return cellPrinter.Sprintf("%d", val)
	case int32:
		return cellPrinter.Sprintf("%d", val)
	case int64:
		return cellPrinter.Sprintf("%d", val)
	case uint:
		return cellPrinter.Sprintf("%d", val)
	case uint64:
		return cellPrinter.Sprintf("%d", val)
	case float32:
		return cellPrinter.Sprintf("%v", float64(val))
	case float64:
		return cellPrinter.Sprintf("%v", val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// renderTable validates the table shape and formats every cell.
// Returns nil for a nil or empty table so the template skips the block.
func renderTable(t *Table) (*renderedTable, error) {
	if t == nil || len(t.Rows) == 0 {
		return nil, nil
	}
	if len(t.Columns) == 0 {
		return nil, fmt.Errorf("%w: columns are required when rows are present", ErrInvalidTable)
	}

	rt := &renderedTable{
		Columns: t.Columns,
		Rows:    make([][]string, len(t.Rows)),
	}

	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidTable, i, len(row), len(t.Columns))
		}
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = formatCell(cell)
		}
		rt.Rows[i] = cells
	}

	if len(t.Footer) > 0 {
		if len(t.Footer) != len(t.Columns) {
			return nil, fmt.Errorf("%w: footer has %d cells, expected %d", ErrInvalidTable, len(t.Footer), len(t.Columns))
		}
		rt.Footer = make([]string, len(t.Footer))
		for j, cell := range t.Footer {
			rt.Footer[j] = formatCell(cell)
		}
	}

	return rt, nil
}
