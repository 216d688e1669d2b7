package validation_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/salesmock/crmkit/pkg/layout"
	"github.com/salesmock/crmkit/pkg/model"
	"github.com/salesmock/crmkit/pkg/validation"
)

func validationObject() *model.Object {
	return &model.Object{
		Name: "Account",
		Sections: []model.Section{{
			ID:       "info",
			Title:    "Info",
			Expanded: true,
			Visible:  true,
			Fields: []model.Field{
				{ID: "name", Label: "Name", Type: model.FieldTypeText, Visible: true, Required: true, Order: 1},
				{ID: "type", Label: "Type", Type: model.FieldTypePicklist, Visible: true, Order: 2, Options: []string{"Customer", "Partner"}},
				{ID: "revenue", Label: "Revenue", Type: model.FieldTypeCurrency, Visible: true, Order: 3},
				{ID: "active", Label: "Active", Type: model.FieldTypeCheckbox, Visible: true, Order: 4},
				{ID: "secret", Label: "Secret", Type: model.FieldTypeText, Visible: false, Required: true, Order: 5},
			},
		}},
	}
}

func TestValidRecordPasses(t *testing.T) {
	lay := layout.New(validationObject())
	record := model.Record{
		"name": "Acme", "type": "Customer", "revenue": "1,200,000", "active": true,
	}

	result := validation.ValidateRecord(lay, record)
	if !result.Valid {
		t.Fatalf("valid record rejected: %+v", result.Issues)
	}
	if err := result.Err(); err != nil {
		t.Fatalf("Err on valid result: %v", err)
	}
}

func TestIssuesPerFieldType(t *testing.T) {
	lay := layout.New(validationObject())
	record := model.Record{
		"name": "  ", "type": "Vendor", "revenue": "lots", "active": "yes",
	}

	result := validation.ValidateRecord(lay, record)
	if result.Valid {
		t.Fatal("invalid record accepted")
	}

	want := []validation.Issue{
		{Field: "name", Message: "required value is missing"},
		{Field: "type", Message: `"Vendor" is not one of the allowed options`},
		{Field: "revenue", Message: "lots is not a number"},
		{Field: "active", Message: "checkbox value must be true or false"},
	}
	if diff := cmp.Diff(want, result.Issues); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}

	err := result.Err()
	if err == nil || !strings.Contains(err.Error(), "name: required value is missing") {
		t.Fatalf("Err missing detail: %v", err)
	}
}

func TestHiddenRequiredFieldIsSkipped(t *testing.T) {
	lay := layout.New(validationObject())
	record := model.Record{"name": "Acme"}

	result := validation.ValidateRecord(lay, record)
	if !result.Valid {
		t.Fatalf("hidden required field should not be enforced: %+v", result.Issues)
	}
}

func TestOptionalEmptyValuesPass(t *testing.T) {
	lay := layout.New(validationObject())
	record := model.Record{"name": "Acme", "revenue": ""}

	result := validation.ValidateRecord(lay, record)
	if !result.Valid {
		t.Fatalf("empty optional values rejected: %+v", result.Issues)
	}
}
