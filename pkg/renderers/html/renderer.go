// Package html renders a record detail page: section cards holding the
// visible-ordered fields with their formatted values. Labels and titles are
// sanitised before they reach the template, so schema text can never inject
// markup.
package html

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/salesmock/crmkit/pkg/format"
	"github.com/salesmock/crmkit/pkg/model"
	"github.com/salesmock/crmkit/pkg/render"
)

const recordTemplate = "templates/record.html"

// Renderer implements render.Renderer producing a standalone HTML document.
type Renderer struct {
	templates *pongo2.TemplateSet
	policy    *bluemonday.Policy
}

// Option configures the renderer before construction.
type Option func(*Renderer)

// WithTemplates swaps the embedded template bundle for a caller-provided
// one. The bundle must contain templates/record.html.
func WithTemplates(fsys fs.FS) Option {
	return func(r *Renderer) {
		if fsys != nil {
			r.templates = pongo2.NewSet("crmkit-html", pongo2.NewFSLoader(fsys))
		}
	}
}

// New constructs an HTML renderer backed by the embedded templates.
func New(options ...Option) *Renderer {
	r := &Renderer{
		templates: pongo2.NewSet("crmkit-html", pongo2.NewFSLoader(embeddedTemplates)),
		policy:    bluemonday.StrictPolicy(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "html"
}

// ContentType reports the serialisation format used by Render.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the record detail document for the page.
func (r *Renderer) Render(ctx context.Context, page render.Page, options render.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if page.Object == nil || page.Layout == nil {
		return nil, errors.New("html: page needs an object and a layout")
	}

	title := options.Title
	if title == "" {
		title = page.Object.Label
	}

	sections, err := r.buildSections(page, options)
	if err != nil {
		return nil, err
	}

	tmpl, err := r.templates.FromFile(recordTemplate)
	if err != nil {
		return nil, fmt.Errorf("html: load template: %w", err)
	}
	out, err := tmpl.ExecuteBytes(pongo2.Context{
		"title":    r.policy.Sanitize(title),
		"object":   r.policy.Sanitize(page.Object.Name),
		"sections": sections,
	})
	if err != nil {
		return nil, fmt.Errorf("html: execute template: %w", err)
	}
	return out, nil
}

type sectionView struct {
	Title    string
	Expanded bool
	Fields   []fieldView
}

type fieldView struct {
	Label    string
	Value    string
	Href     string
	Required bool
	Hidden   bool
}

func (r *Renderer) buildSections(page render.Page, options render.Options) ([]sectionView, error) {
	var sections []sectionView
	for _, section := range page.Layout.Sections() {
		if !section.Visible {
			continue
		}
		fields, err := page.Layout.VisibleOrdered(section.ID)
		if err != nil {
			return nil, fmt.Errorf("html: section %q: %w", section.ID, err)
		}
		if options.IncludeHidden {
			fields = allOrdered(section)
		}
		if len(fields) == 0 {
			continue
		}

		view := sectionView{
			Title:    r.policy.Sanitize(section.Title),
			Expanded: section.Expanded,
		}
		for _, field := range fields {
			view.Fields = append(view.Fields, r.buildField(field, page.Record))
		}
		sections = append(sections, view)
	}
	return sections, nil
}

func (r *Renderer) buildField(field model.Field, record model.Record) fieldView {
	var value any
	if record != nil {
		value = record[field.ID]
	}
	display := format.Value(value, field.Type)

	href := ""
	if s, ok := value.(string); ok {
		if link, linked := format.Href(s, field.Type); linked {
			href = link
		}
	}

	return fieldView{
		Label:    r.policy.Sanitize(field.Label),
		Value:    r.policy.Sanitize(display),
		Href:     href,
		Required: field.Required,
		Hidden:   !field.Visible,
	}
}

// allOrdered returns every field of the section sorted by order value,
// hidden ones included, for the layout editor view.
func allOrdered(section model.Section) []model.Field {
	fields := make([]model.Field, len(section.Fields))
	copy(fields, section.Fields)
	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].Order < fields[j].Order
	})
	return fields
}
