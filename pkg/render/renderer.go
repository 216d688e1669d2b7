// Package render defines the contract between the layout model and the
// presentation layer. A renderer consumes the computed visible-and-ordered
// field list per section and produces bytes; it never mutates the layout.
package render

import (
	"context"

	"github.com/salesmock/crmkit/pkg/layout"
	"github.com/salesmock/crmkit/pkg/model"
)

// Page is the input to a renderer: one object's layout plus, optionally, a
// single record to show. Record may be nil for schema-only views.
type Page struct {
	Object      *model.Object
	Layout      *layout.Layout
	Record      model.Record
	RecordIndex int
}

// Renderer converts a page into a byte representation (HTML, prompt
// session transcript, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, page Page, options Options) ([]byte, error)
}

// Options tunes a single render call.
type Options struct {
	// Title overrides the page heading; defaults to the object label.
	Title string
	// IncludeHidden also renders hidden fields, marked as such. Used by
	// the layout editor surface, never by record detail views.
	IncludeHidden bool
}
