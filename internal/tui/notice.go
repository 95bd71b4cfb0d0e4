package tui

import (
	"fmt"
	"io"

	"github.com/vmunix/pdfimport/internal/importer"
)

// Notifier prints import notifications as single styled lines.
type Notifier struct {
	w io.Writer
}

// NewNotifier writes to w.
func NewNotifier(w io.Writer) *Notifier {
	return &Notifier{w: w}
}

func (n *Notifier) Notify(message string) {
	style := successStyle
	if message == importer.MsgFailure {
		style = errorStyle
	}
	fmt.Fprintln(n.w, style.Render(message))
}
