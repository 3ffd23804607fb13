package core

// Op identifies a drawing primitive.
type Op int

const (
	OpClearRect Op = iota
	OpFillRect
	OpFillCircle
	OpFillText
)

// String returns the primitive name.
func (o Op) String() string {
	switch o {
	case OpClearRect:
		return "clearRect"
	case OpFillRect:
		return "fillRect"
	case OpFillCircle:
		return "fillCircle"
	case OpFillText:
		return "fillText"
	default:
		return "unknown"
	}
}

// Command is one recorded drawing call.
type Command struct {
	Op     Op
	X, Y   float64
	W, H   float64 // Rect ops
	Radius float64 // OpFillCircle
	Text   string  // OpFillText
	Style  TextStyle
	Color  Color
}

// Recorder is a Surface that records drawing calls instead of rasterizing them.
// Useful for asserting draw order and geometry in tests.
type Recorder struct {
	width    float64
	height   float64
	commands []Command
}

// NewRecorder creates a recorder presenting a w x h surface.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{width: w, height: h}
}

func (r *Recorder) Width() float64  { return r.width }
func (r *Recorder) Height() float64 { return r.height }

func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.commands = append(r.commands, Command{Op: OpClearRect, X: x, Y: y, W: w, H: h})
}

func (r *Recorder) FillRect(x, y, w, h float64, c Color) {
	r.commands = append(r.commands, Command{Op: OpFillRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c Color) {
	r.commands = append(r.commands, Command{Op: OpFillCircle, X: cx, Y: cy, Radius: radius, Color: c})
}

func (r *Recorder) FillText(text string, x, y float64, style TextStyle, c Color) {
	r.commands = append(r.commands, Command{Op: OpFillText, X: x, Y: y, Text: text, Style: style, Color: c})
}

// Commands returns the calls recorded since the last Reset.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Ops returns just the primitive sequence.
func (r *Recorder) Ops() []Op {
	ops := make([]Op, len(r.commands))
	for i, c := range r.commands {
		ops[i] = c.Op
	}
	return ops
}

// Texts returns the strings passed to FillText, in order.
func (r *Recorder) Texts() []string {
	var texts []string
	for _, c := range r.commands {
		if c.Op == OpFillText {
			texts = append(texts, c.Text)
		}
	}
	return texts
}

// Reset discards all recorded calls.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

var _ Surface = (*Recorder)(nil)
