package crmkit_test

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/salesmock/crmkit"
	"github.com/salesmock/crmkit/pkg/model"
)

func rootObject() *model.Object {
	return &model.Object{
		Name:  "Account",
		Label: "Account",
		Sections: []model.Section{{
			ID:       "info",
			Title:    "Account Information",
			Expanded: true,
			Visible:  true,
			Fields: []model.Field{
				{ID: "name", Label: "Account Name", Type: model.FieldTypeText, Visible: true, Order: 1},
				{ID: "revenue", Label: "Annual Revenue", Type: model.FieldTypeCurrency, Visible: true, Order: 2},
			},
		}},
	}
}

func TestRenderHTML(t *testing.T) {
	record := model.Record{"name": "Acme", "revenue": 1250.0}

	out, err := crmkit.RenderHTML(context.Background(), rootObject(), record, crmkit.Options{})
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	page := string(out)
	if !strings.Contains(page, "Acme") || !strings.Contains(page, "$1,250.00") {
		t.Fatalf("rendered page missing formatted values:\n%s", page)
	}
}

func TestExportLayout(t *testing.T) {
	out, err := crmkit.ExportLayout(rootObject())
	if err != nil {
		t.Fatalf("ExportLayout: %v", err)
	}
	if !strings.Contains(string(out), `"name": "info"`) {
		t.Fatalf("export missing section:\n%s", out)
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	fsys := crmkit.EmbeddedTemplates()
	if _, err := fs.Stat(fsys, "templates/record.html"); err != nil {
		t.Fatalf("record template missing: %v", err)
	}
}
