// Package openapi builds object schemas from OpenAPI 3 documents so a page
// layout can be bootstrapped from an existing API definition instead of
// being typed out by hand.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/salesmock/crmkit/pkg/model"
)

// Extension keys honoured on property schemas.
const (
	// typeExtensionKey overrides the derived field type with one of the
	// FieldType enum values, e.g. currency or percentage.
	typeExtensionKey = "x-crm-type"
	// orderExtensionKey pins a field's order value. Properties without it
	// are ordered alphabetically after the pinned ones.
	orderExtensionKey = "x-crm-order"
	// sectionExtensionKey names the section a field belongs to. Properties
	// without it land in the default details section.
	sectionExtensionKey = "x-crm-section"
)

const defaultSectionID = "details"

// ObjectFromDocument parses an OpenAPI document and converts the named
// component schema into an object with a sectioned field layout. Scalar
// properties become fields; object and array properties are skipped, since
// record values are scalars.
func ObjectFromDocument(ctx context.Context, data []byte, schemaName string) (*model.Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return nil, errors.New("openapi: document has no component schemas")
	}
	ref, ok := doc.Components.Schemas[schemaName]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("openapi: schema %q not found", schemaName)
	}

	return objectFromSchema(schemaName, ref.Value)
}

func objectFromSchema(name string, schema *openapi3.Schema) (*model.Object, error) {
	if len(schema.Properties) == 0 {
		return nil, fmt.Errorf("openapi: schema %q has no properties", name)
	}

	required := make(map[string]bool, len(schema.Required))
	for _, property := range schema.Required {
		required[property] = true
	}

	names := make([]string, 0, len(schema.Properties))
	for property := range schema.Properties {
		names = append(names, property)
	}
	sort.Strings(names)

	label := strings.TrimSpace(schema.Title)
	if label == "" {
		label = humanize(name)
	}

	sections := map[string]*model.Section{}
	var sectionOrder []string

	order := 0
	for _, property := range names {
		ref := schema.Properties[property]
		if ref == nil || ref.Value == nil {
			continue
		}
		field, ok := fieldFromProperty(property, ref.Value, required[property])
		if !ok {
			continue
		}
		field.Order = order
		if pinned, ok := intExtension(ref.Value.Extensions, orderExtensionKey); ok {
			field.Order = pinned
		}
		order++

		sectionID := defaultSectionID
		if custom, ok := stringExtension(ref.Value.Extensions, sectionExtensionKey); ok {
			sectionID = custom
		}
		section, exists := sections[sectionID]
		if !exists {
			section = &model.Section{
				ID:       sectionID,
				Title:    humanize(sectionID),
				Expanded: true,
				Visible:  true,
			}
			sections[sectionID] = section
			sectionOrder = append(sectionOrder, sectionID)
		}
		section.Fields = append(section.Fields, field)
	}

	object := &model.Object{Name: name, Label: label}
	for _, sectionID := range sectionOrder {
		object.Sections = append(object.Sections, *sections[sectionID])
	}
	if len(object.Sections) == 0 {
		return nil, fmt.Errorf("openapi: schema %q has no scalar properties", name)
	}
	return object, nil
}

func fieldFromProperty(name string, schema *openapi3.Schema, required bool) (model.Field, bool) {
	fieldType, ok := deriveType(schema)
	if !ok {
		return model.Field{}, false
	}

	label := strings.TrimSpace(schema.Title)
	if label == "" {
		label = humanize(name)
	}

	field := model.Field{
		ID:       name,
		Label:    label,
		Type:     fieldType,
		Visible:  true,
		Required: required,
	}
	if fieldType == model.FieldTypePicklist {
		for _, value := range schema.Enum {
			if s, ok := value.(string); ok {
				field.Options = append(field.Options, s)
			} else {
				field.Options = append(field.Options, fmt.Sprint(value))
			}
		}
	}
	return field, true
}

func deriveType(schema *openapi3.Schema) (model.FieldType, bool) {
	if override, ok := stringExtension(schema.Extensions, typeExtensionKey); ok {
		fieldType := model.FieldType(override)
		if fieldType.Valid() {
			return fieldType, true
		}
	}

	var primary string
	if schema.Type != nil {
		if values := schema.Type.Slice(); len(values) > 0 {
			primary = values[0]
		}
	}

	switch primary {
	case "string":
		if len(schema.Enum) > 0 {
			return model.FieldTypePicklist, true
		}
		switch strings.ToLower(schema.Format) {
		case "email":
			return model.FieldTypeEmail, true
		case "date", "date-time":
			return model.FieldTypeDate, true
		case "uri", "url":
			return model.FieldTypeURL, true
		case "tel", "phone":
			return model.FieldTypePhone, true
		}
		return model.FieldTypeText, true
	case "number", "integer":
		if len(schema.Enum) > 0 {
			return model.FieldTypePicklist, true
		}
		return model.FieldTypeNumber, true
	case "boolean":
		return model.FieldTypeCheckbox, true
	default:
		return "", false
	}
}

func stringExtension(extensions map[string]any, key string) (string, bool) {
	raw, ok := extensions[key]
	if !ok {
		return "", false
	}
	value, ok := raw.(string)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

func intExtension(extensions map[string]any, key string) (int, bool) {
	raw, ok := extensions[key]
	if !ok {
		return 0, false
	}
	switch value := raw.(type) {
	case int:
		return value, true
	case int64:
		return int(value), true
	case float64:
		return int(value), true
	default:
		return 0, false
	}
}

// humanize turns snake_case or camelCase identifiers into title-cased
// labels: "annual_revenue" and "annualRevenue" both become "Annual Revenue".
func humanize(identifier string) string {
	if identifier == "" {
		return ""
	}
	var words []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}
	for _, r := range identifier {
		switch {
		case r == '_' || r == '-' || r == ' ':
			flush()
		case unicode.IsUpper(r) && current.Len() > 0:
			flush()
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	flush()

	for idx, word := range words {
		if word == "" {
			continue
		}
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[idx] = string(runes)
	}
	return strings.Join(words, " ")
}
