// Package output provides output formatting for admintok.
package output

import (
	"fmt"
	"io"
)

// TextRenderer lets a value control its human-readable rendering.
type TextRenderer interface {
	RenderText(w io.Writer) error
}

// TextFormatter renders data for humans.
type TextFormatter struct{}

// Format writes the value's own text rendering when it has one, and
// falls back to a plain print otherwise.
func (f *TextFormatter) Format(w io.Writer, data any) error {
	if r, ok := data.(TextRenderer); ok {
		return r.RenderText(w)
	}
	_, err := fmt.Fprintln(w, data)
	return err
}
