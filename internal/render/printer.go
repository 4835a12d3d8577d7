package render

import "io"

// Printer writes text to w prefixed with the current color's escape code.
// The current color is a cursor: it stays selected until SetColor is
// called again. Printer is not safe for concurrent use.
type Printer struct {
	w       io.Writer
	current Color
	err     error
}

// NewPrinter creates a Printer writing to w with ColorDefault selected.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// SetColor selects the color used by subsequent writes.
func (p *Printer) SetColor(c Color) {
	p.current = c
}

// Color returns the currently selected color.
func (p *Printer) Color() Color {
	return p.current
}

// Err returns the first error returned by the underlying writer.
func (p *Printer) Err() error {
	return p.err
}

// Print writes text followed by a reset.
func (p *Printer) Print(text string) {
	p.Emit(text, true)
}

// Println writes text and a line separator, then a reset.
func (p *Printer) Println(text string) {
	p.EmitLine(text, true)
}

// Emit writes the current color's code and text. The reset is only
// written when reset is true; omitting it leaves the color open for
// whatever is written next. With ColorNone, text is written verbatim.
func (p *Printer) Emit(text string, reset bool) {
	p.emit(text, reset)
}

// EmitLine is Emit with LineSeparator appended to text. The reset, if
// any, follows the separator.
func (p *Printer) EmitLine(text string, reset bool) {
	p.emit(text+LineSeparator, reset)
}

func (p *Printer) emit(text string, reset bool) {
	if p.err != nil {
		return
	}
	code := p.current.Code()
	if code == "" {
		p.writeString(text)
		return
	}
	p.writeString(code + text)
	if reset {
		p.writeString(Reset)
	}
}

func (p *Printer) writeString(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}
