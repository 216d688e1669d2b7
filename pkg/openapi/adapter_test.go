package openapi_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/salesmock/crmkit/pkg/model"
	"github.com/salesmock/crmkit/pkg/openapi"
)

const accountDocument = `{
  "openapi": "3.0.3",
  "info": {"title": "CRM", "version": "1.0.0"},
  "paths": {},
  "components": {
    "schemas": {
      "Account": {
        "type": "object",
        "title": "Account",
        "required": ["name"],
        "properties": {
          "name": {"type": "string", "title": "Account Name"},
          "annual_revenue": {"type": "number", "x-crm-type": "currency"},
          "website": {"type": "string", "format": "uri"},
          "email": {"type": "string", "format": "email"},
          "active": {"type": "boolean"},
          "type": {"type": "string", "enum": ["Customer", "Partner"]},
          "billing": {"type": "object", "properties": {"city": {"type": "string"}}},
          "tags": {"type": "array", "items": {"type": "string"}}
        }
      }
    }
  }
}`

func TestObjectFromDocument(t *testing.T) {
	object, err := openapi.ObjectFromDocument(context.Background(), []byte(accountDocument), "Account")
	if err != nil {
		t.Fatalf("ObjectFromDocument: %v", err)
	}

	if object.Name != "Account" || object.Label != "Account" {
		t.Fatalf("object identity wrong: %+v", object)
	}
	if len(object.Sections) != 1 || object.Sections[0].ID != "details" {
		t.Fatalf("expected single details section, got %+v", object.Sections)
	}

	types := map[string]model.FieldType{}
	for _, field := range object.Sections[0].Fields {
		types[field.ID] = field.Type
	}
	wantTypes := map[string]model.FieldType{
		"name":           model.FieldTypeText,
		"annual_revenue": model.FieldTypeCurrency,
		"website":        model.FieldTypeURL,
		"email":          model.FieldTypeEmail,
		"active":         model.FieldTypeCheckbox,
		"type":           model.FieldTypePicklist,
	}
	if diff := cmp.Diff(wantTypes, types); diff != "" {
		t.Fatalf("field types (-want +got):\n%s", diff)
	}

	for _, field := range object.Sections[0].Fields {
		switch field.ID {
		case "name":
			if !field.Required || field.Label != "Account Name" {
				t.Fatalf("name field wrong: %+v", field)
			}
		case "annual_revenue":
			if field.Label != "Annual Revenue" {
				t.Fatalf("humanized label wrong: %q", field.Label)
			}
		case "type":
			if diff := cmp.Diff([]string{"Customer", "Partner"}, field.Options); diff != "" {
				t.Fatalf("picklist options (-want +got):\n%s", diff)
			}
		}
	}
}

func TestObjectFromDocumentUnknownSchema(t *testing.T) {
	if _, err := openapi.ObjectFromDocument(context.Background(), []byte(accountDocument), "Contact"); err == nil {
		t.Fatal("expected unknown schema error")
	}
}

func TestObjectFromDocumentEmptyPayload(t *testing.T) {
	if _, err := openapi.ObjectFromDocument(context.Background(), nil, "Account"); err == nil {
		t.Fatal("expected empty payload error")
	}
}
