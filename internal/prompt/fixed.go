package prompt

import "context"

// Fixed answers every prompt without user interaction.
// A nil Name keeps the original filename.
type Fixed struct {
	Name   *string
	Cancel bool
}

// PromptFilename returns a request that is already resolved.
func (f Fixed) PromptFilename(_ context.Context, original string) *Request {
	r := New(original)
	switch {
	case f.Cancel:
		r.Cancel()
	case f.Name != nil:
		r.Confirm(*f.Name)
	default:
		r.Confirm(original)
	}
	return r
}
