package render

type Alignment string

const (
	Left   Alignment = "LEFT"
	Center Alignment = "CENTER"
	Right  Alignment = "RIGHT"
)

// RGB colour, each component in the range 0.0 to 1.0.
type Color struct {
	Red   float64
	Green float64
	Blue  float64
}

var HeaderBackground = Color{Red: 0.851, Green: 0.918, Blue: 0.827}

// Style is cell formatting for the first Columns cells of a rendered row.
// Row is relative to the top of the rendered region.
type Style struct {
	Row        int
	Columns    int
	Bold       bool
	FontSize   int
	Background *Color
	Align      Alignment
}
