// Package crmkit re-exports the high-level entry points of the record
// browser toolkit: render a record detail page, export a layout, derive an
// object from an OpenAPI schema. Callers wanting finer control import the
// pkg/ packages directly.
package crmkit

import (
	"context"
	"io/fs"

	"github.com/salesmock/crmkit/pkg/layout"
	"github.com/salesmock/crmkit/pkg/model"
	pkgopenapi "github.com/salesmock/crmkit/pkg/openapi"
	"github.com/salesmock/crmkit/pkg/render"
	"github.com/salesmock/crmkit/pkg/renderers/html"
)

// Page aliases render.Page for callers configuring a render through the root
// package.
type Page = render.Page

// Options aliases render.Options.
type Options = render.Options

// Renderer aliases the renderer contract.
type Renderer = render.Renderer

// NewLayout wraps an object's sections for ordering and visibility edits.
func NewLayout(object *model.Object) *layout.Layout {
	return layout.New(object)
}

// RenderHTML renders one record of the object as an HTML detail page using
// the built-in templates. It is the simplest entry point for embedding.
func RenderHTML(ctx context.Context, object *model.Object, record model.Record, options Options) ([]byte, error) {
	page := Page{
		Object: object,
		Layout: layout.New(object),
		Record: record,
	}
	return html.New().Render(ctx, page, options)
}

// ExportLayout serialises the object's section layout as JSON.
func ExportLayout(object *model.Object) ([]byte, error) {
	return layout.New(object).Export()
}

// ObjectFromOpenAPI derives an object schema from an OpenAPI 3 document's
// named component schema.
func ObjectFromOpenAPI(ctx context.Context, document []byte, schemaName string) (*model.Object, error) {
	return pkgopenapi.ObjectFromDocument(ctx, document, schemaName)
}

// EmbeddedTemplates exposes the built-in HTML templates so callers can reuse
// or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}
