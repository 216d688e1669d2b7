// Package validation checks a record against its object's field layout
// before a save: required fields, picklist membership, and value kinds per
// field type. Validation never mutates the record.
package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/salesmock/crmkit/pkg/layout"
	"github.com/salesmock/crmkit/pkg/model"
)

// Issue is one validation failure with the field it concerns.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result captures the outcome of validating one record.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// Err converts a failed result into a single error listing every issue, or
// nil when the result is valid.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	parts := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Errorf("validation: %s", strings.Join(parts, "; "))
}

// ValidateRecord checks record against every visible field of the layout.
// Hidden fields are skipped: the editor never prompts for them, so stale
// values under hidden ids are not the record's fault.
func ValidateRecord(lay *layout.Layout, record model.Record) Result {
	result := Result{Valid: true}

	for _, section := range lay.Sections() {
		if !section.Visible {
			continue
		}
		fields, err := lay.VisibleOrdered(section.ID)
		if err != nil {
			continue
		}
		for _, field := range fields {
			result.Issues = append(result.Issues, checkField(field, record[field.ID])...)
		}
	}

	result.Valid = len(result.Issues) == 0
	return result
}

func checkField(field model.Field, value any) []Issue {
	if isEmpty(value) {
		if field.Required {
			return []Issue{{Field: field.ID, Message: "required value is missing"}}
		}
		return nil
	}

	switch field.Type {
	case model.FieldTypePicklist:
		text, ok := value.(string)
		if !ok {
			return []Issue{{Field: field.ID, Message: "picklist value must be text"}}
		}
		for _, option := range field.Options {
			if option == text {
				return nil
			}
		}
		return []Issue{{Field: field.ID, Message: fmt.Sprintf("%q is not one of the allowed options", text)}}
	case model.FieldTypeCheckbox:
		if _, ok := value.(bool); !ok {
			return []Issue{{Field: field.ID, Message: "checkbox value must be true or false"}}
		}
	case model.FieldTypeNumber, model.FieldTypeCurrency, model.FieldTypePercentage:
		if !isNumeric(value) {
			return []Issue{{Field: field.ID, Message: fmt.Sprintf("%v is not a number", value)}}
		}
	}
	return nil
}

func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	text, ok := value.(string)
	return ok && strings.TrimSpace(text) == ""
}

func isNumeric(value any) bool {
	switch v := value.(type) {
	case float64, float32, int, int64:
		return true
	case string:
		cleaned := strings.ReplaceAll(strings.TrimSpace(v), ",", "")
		_, err := strconv.ParseFloat(cleaned, 64)
		return err == nil
	}
	return false
}
