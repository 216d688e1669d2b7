package html_test

import (
	"context"
	"strings"
	"testing"

	"github.com/salesmock/crmkit/pkg/layout"
	"github.com/salesmock/crmkit/pkg/model"
	"github.com/salesmock/crmkit/pkg/render"
	"github.com/salesmock/crmkit/pkg/renderers/html"
)

func samplePage() render.Page {
	object := &model.Object{
		Name:  "Account",
		Label: "Account",
		Sections: []model.Section{{
			ID:       "info",
			Title:    "Account Information",
			Expanded: true,
			Visible:  true,
			Fields: []model.Field{
				{ID: "name", Label: "Account Name", Type: model.FieldTypeText, Visible: true, Required: true, Order: 1},
				{ID: "website", Label: "Website", Type: model.FieldTypeURL, Visible: true, Order: 2},
				{ID: "revenue", Label: "Annual Revenue", Type: model.FieldTypeCurrency, Visible: true, Order: 3},
				{ID: "secret", Label: "Secret Notes", Type: model.FieldTypeTextarea, Visible: false, Order: 4},
			},
		}},
	}
	return render.Page{
		Object: object,
		Layout: layout.New(object),
		Record: model.Record{
			"name":    "Acme",
			"website": "https://acme.example",
			"revenue": 1200000.0,
			"secret":  "do not show",
		},
	}
}

func TestRenderRecordPage(t *testing.T) {
	renderer := html.New()
	out, err := renderer.Render(context.Background(), samplePage(), render.Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	doc := string(out)

	for _, want := range []string{
		"Account Name",
		"Acme",
		`href="https://acme.example"`,
		"$1,200,000.00",
	} {
		if !strings.Contains(doc, want) {
			t.Fatalf("document missing %q:\n%s", want, doc)
		}
	}
	if strings.Contains(doc, "do not show") || strings.Contains(doc, "Secret Notes") {
		t.Fatal("hidden field leaked into record page")
	}
}

func TestRenderIncludeHidden(t *testing.T) {
	renderer := html.New()
	out, err := renderer.Render(context.Background(), samplePage(), render.Options{IncludeHidden: true})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(out), "Secret Notes") {
		t.Fatal("IncludeHidden did not render the hidden field")
	}
}

func TestRenderSanitisesLabels(t *testing.T) {
	page := samplePage()
	page.Object.Sections[0].Fields[0].Label = `<script>alert(1)</script>Name`

	renderer := html.New()
	out, err := renderer.Render(context.Background(), page, render.Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(string(out), "<script>") {
		t.Fatal("markup survived sanitisation")
	}
}

func TestRenderRequiresObject(t *testing.T) {
	renderer := html.New()
	if _, err := renderer.Render(context.Background(), render.Page{}, render.Options{}); err == nil {
		t.Fatal("expected error for empty page")
	}
}
