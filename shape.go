package bouncer

// Outline widths, in pixels.
const (
	RectOutlineWidth   = 3
	CircleOutlineWidth = 1
)

// Shape is something the Display can move, recolor, and draw. The only
// implementations are *Rectangle and *Circle.
type Shape interface {
	// Draw paints the shape, fill first and outline second.
	Draw(r Renderer)
	// Kind names the variant ("rectangle" or "circle").
	Kind() string

	body() *Body
}

// Body is the state shared by every shape: an axis-aligned box moving at a
// fixed per-axis speed, with a pen (outline) and fill color.
type Body struct {
	X, Y          int
	Width, Height int

	PenColor  Color
	FillColor Color

	DirX, DirY     Direction
	SpeedX, SpeedY int

	fade *colorFade
}

// ShapeOption configures a shape at construction.
type ShapeOption func(*Body)

// WithPen sets the initial outline color.
func WithPen(c Color) ShapeOption {
	return func(b *Body) { b.PenColor = c }
}

// WithFill sets the initial fill color.
func WithFill(c Color) ShapeOption {
	return func(b *Body) { b.FillColor = c }
}

// WithDirection sets the initial direction on each axis. Positive values
// mean Forward; zero and negative values mean Backward.
func WithDirection(dx, dy int) ShapeOption {
	return func(b *Body) {
		b.DirX = NewDirection(dx)
		b.DirY = NewDirection(dy)
	}
}

// WithSpeed sets the per-tick speed on each axis. Negative speeds are
// treated as zero.
func WithSpeed(sx, sy int) ShapeOption {
	return func(b *Body) {
		b.SpeedX = max(sx, 0)
		b.SpeedY = max(sy, 0)
	}
}

func newBody(x, y, width, height int, opts []ShapeOption) Body {
	palette := DefaultPalette()
	b := Body{
		X: x, Y: y,
		Width: width, Height: height,
		PenColor:  palette[0],
		FillColor: palette[1],
		DirX:      Forward,
		DirY:      Forward,
		SpeedX:    1,
		SpeedY:    1,
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func (b *Body) body() *Body { return b }

// SetPenColor replaces the outline color and returns b.
func (b *Body) SetPenColor(c Color) *Body {
	b.PenColor = c
	return b
}

// SetFillColor replaces the fill color and returns b.
func (b *Body) SetFillColor(c Color) *Body {
	b.FillColor = c
	return b
}

// Extent returns the shape's size along axis.
func (b *Body) Extent(axis Axis) int {
	if axis == AxisY {
		return b.Height
	}
	return b.Width
}

// Move proposes target as the new coordinate on axis and applies
// ReflectAndMove against bound, the window size on that axis. It reports
// whether the direction flipped.
func (b *Body) Move(axis Axis, target, bound int) bool {
	switch axis {
	case AxisY:
		prev := b.DirY
		b.Y, b.DirY = ReflectAndMove(b.Y, target, b.Height, bound, b.DirY)
		return b.DirY != prev
	default:
		prev := b.DirX
		b.X, b.DirX = ReflectAndMove(b.X, target, b.Width, bound, b.DirX)
		return b.DirX != prev
	}
}

// renderColors returns the pen and fill colors to paint with this frame.
// They differ from PenColor and FillColor only while a fade is running.
func (b *Body) renderColors() (pen, fill Color) {
	if b.fade != nil && !b.fade.Done {
		return b.fade.pen, b.fade.fill
	}
	return b.PenColor, b.FillColor
}

// Rectangle is an axis-aligned box drawn filled and outlined.
type Rectangle struct {
	Body
}

// NewRectangle creates a rectangle with its top-left corner at (x, y).
func NewRectangle(x, y, width, height int, opts ...ShapeOption) *Rectangle {
	return &Rectangle{Body: newBody(x, y, width, height, opts)}
}

func (r *Rectangle) Kind() string { return "rectangle" }

// SetPenColor replaces the outline color and returns r.
func (r *Rectangle) SetPenColor(c Color) *Rectangle {
	r.PenColor = c
	return r
}

// SetFillColor replaces the fill color and returns r.
func (r *Rectangle) SetFillColor(c Color) *Rectangle {
	r.FillColor = c
	return r
}

func (r *Rectangle) Draw(dst Renderer) {
	pen, fill := r.renderColors()
	x, y := float64(r.X), float64(r.Y)
	w, h := float64(r.Width), float64(r.Height)
	dst.FillRect(x, y, w, h, fill)
	dst.StrokeRect(x, y, w, h, RectOutlineWidth, pen)
}

// Circle is a disc whose bounding box is stored in Body. Width and Height
// both hold the diameter.
type Circle struct {
	Body
}

// NewCircle creates a circle whose bounding box has its top-left corner at
// (x, y).
func NewCircle(x, y, radius int, opts ...ShapeOption) *Circle {
	return &Circle{Body: newBody(x, y, radius*2, radius*2, opts)}
}

func (c *Circle) Kind() string { return "circle" }

// SetPenColor replaces the outline color and returns c.
func (c *Circle) SetPenColor(col Color) *Circle {
	c.PenColor = col
	return c
}

// SetFillColor replaces the fill color and returns c.
func (c *Circle) SetFillColor(col Color) *Circle {
	c.FillColor = col
	return c
}

// Radius returns half the stored width.
func (c *Circle) Radius() float64 {
	return float64(c.Width) / 2
}

// Center returns the circle's center, (X+radius, Y+radius).
func (c *Circle) Center() (cx, cy float64) {
	r := c.Radius()
	return float64(c.X) + r, float64(c.Y) + r
}

func (c *Circle) Draw(dst Renderer) {
	pen, fill := c.renderColors()
	cx, cy := c.Center()
	r := c.Radius()
	dst.FillCircle(cx, cy, r, fill)
	dst.StrokeCircle(cx, cy, r, CircleOutlineWidth, pen)
}
