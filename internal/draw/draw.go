// internal/draw/draw.go

// Package draw defines the abstract drawing-instruction stream produced by
// the layout engine. The SVG preview and the PDF export consume the same
// instruction list, so per-section positioning math lives in exactly one
// place.
package draw

// Color is an opaque hex color like "#0d4f4f". An 8-digit form carries an
// alpha suffix ("#0d4f4f25") for tinted fills derived from a base color.
type Color string

// WithAlpha appends a two-digit hex alpha suffix to the base color.
func (c Color) WithAlpha(suffix string) Color {
	return c + Color(suffix)
}

// Stop is one gradient color stop; Offset runs 0..1.
type Stop struct {
	Offset float64
	Color  Color
}

// Gradient is a linear gradient. Angle is in degrees: 90 runs left to right,
// 135 runs diagonally from the top-left corner.
type Gradient struct {
	Angle float64
	Stops []Stop
}

// Linear builds the common two-stop gradient.
func Linear(angle float64, from, to Color) *Gradient {
	return &Gradient{Angle: angle, Stops: []Stop{{Offset: 0, Color: from}, {Offset: 1, Color: to}}}
}

// Paint describes how a shape is filled. Gradient wins over Color when both
// are set; Opacity zero means fully opaque.
type Paint struct {
	Color    Color
	Gradient *Gradient
	Opacity  float64
}

func Solid(c Color) Paint {
	return Paint{Color: c}
}

// Anchor positions a text run relative to its X coordinate.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// Op is one drawing instruction. The set is closed; adapters type-switch
// over it.
type Op interface {
	place(dx, dy, s float64) Op
}

// Rect is an axis-aligned rectangle, optionally rounded.
type Rect struct {
	X, Y, W, H float64
	Radius     float64
	Fill       Paint
}

// Circle is a filled and/or stroked circle.
type Circle struct {
	CX, CY, R   float64
	Fill        Paint
	Stroke      Color
	StrokeWidth float64
}

// Line is a straight stroked segment.
type Line struct {
	X1, Y1, X2, Y2 float64
	Color          Color
	Width          float64
}

// Text is a single-line text run. Y is the baseline. Weight uses CSS numeric
// weights; 600 and up render bold in the PDF target.
type Text struct {
	X, Y          float64
	Content       string
	Size          float64
	Weight        int
	Color         Color
	Anchor        Anchor
	LetterSpacing float64
}

// Image places an external image fitted into a box. Invert asks the adapter
// for a color-inverted rendering (dark-background logo treatment).
type Image struct {
	X, Y, W, H float64
	URL        string
	Opacity    float64
	Invert     bool
}

// PathCmdKind enumerates path segment commands.
type PathCmdKind int

const (
	MoveTo PathCmdKind = iota
	LineTo
	ArcAround
	ClosePath
)

// PathCmd is one path segment. ArcAround sweeps a circular arc of radius R
// about (CX, CY) from StartDeg to EndDeg; angles are measured from 3 o'clock
// with positive angles toward 6 o'clock (page coordinates). The current
// point is assumed to sit at the StartDeg position.
type PathCmd struct {
	Kind             PathCmdKind
	X, Y             float64
	CX, CY, R        float64
	StartDeg, EndDeg float64
	Clockwise        bool
}

// Path is a closed or open vector path.
type Path struct {
	Cmds        []PathCmd
	Fill        Paint
	Stroke      Color
	StrokeWidth float64
}

// Drawing is a self-contained instruction list with its own coordinate
// space, W by H.
type Drawing struct {
	W, H float64
	Ops  []Op
}

// Place maps ops from a sub-drawing's space into the caller's space:
// translated by (dx, dy) and scaled uniformly by s.
func Place(ops []Op, dx, dy, s float64) []Op {
	placed := make([]Op, len(ops))
	for i, op := range ops {
		placed[i] = op.place(dx, dy, s)
	}
	return placed
}

func (r Rect) place(dx, dy, s float64) Op {
	r.X = r.X*s + dx
	r.Y = r.Y*s + dy
	r.W *= s
	r.H *= s
	r.Radius *= s
	return r
}

func (c Circle) place(dx, dy, s float64) Op {
	c.CX = c.CX*s + dx
	c.CY = c.CY*s + dy
	c.R *= s
	c.StrokeWidth *= s
	return c
}

func (l Line) place(dx, dy, s float64) Op {
	l.X1 = l.X1*s + dx
	l.Y1 = l.Y1*s + dy
	l.X2 = l.X2*s + dx
	l.Y2 = l.Y2*s + dy
	l.Width *= s
	return l
}

func (t Text) place(dx, dy, s float64) Op {
	t.X = t.X*s + dx
	t.Y = t.Y*s + dy
	t.Size *= s
	t.LetterSpacing *= s
	return t
}

func (img Image) place(dx, dy, s float64) Op {
	img.X = img.X*s + dx
	img.Y = img.Y*s + dy
	img.W *= s
	img.H *= s
	return img
}

func (p Path) place(dx, dy, s float64) Op {
	cmds := make([]PathCmd, len(p.Cmds))
	for i, cmd := range p.Cmds {
		cmd.X = cmd.X*s + dx
		cmd.Y = cmd.Y*s + dy
		cmd.CX = cmd.CX*s + dx
		cmd.CY = cmd.CY*s + dy
		cmd.R *= s
		cmds[i] = cmd
	}
	p.Cmds = cmds
	p.StrokeWidth *= s
	return p
}
