// Package tui drives a terminal create/edit form for one record: each field
// of the visible-ordered layout maps to the prompt kind matching its
// semantic type.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/salesmock/crmkit/pkg/layout"
	"github.com/salesmock/crmkit/pkg/model"
)

// Form prompts through the visible fields of an object's layout and returns
// the edited record snapshot. The caller decides whether to merge it back.
type Form struct {
	driver PromptDriver
}

// Option configures the form before use.
type Option func(*Form)

// WithDriver swaps the survey-backed prompt driver, primarily for tests.
func WithDriver(driver PromptDriver) Option {
	return func(f *Form) {
		if driver != nil {
			f.driver = driver
		}
	}
}

// New constructs a form with the default survey driver.
func New(options ...Option) *Form {
	f := &Form{driver: newSurveyDriver()}
	for _, opt := range options {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

// Edit walks every visible section and field in display order, prompting
// with the current value as default. base may be nil for a new record; it
// is never mutated.
func (f *Form) Edit(ctx context.Context, lay *layout.Layout, base model.Record) (model.Record, error) {
	record := base.Clone()
	if record == nil {
		record = model.Record{}
	}

	for _, section := range lay.Sections() {
		if !section.Visible {
			continue
		}
		fields, err := lay.VisibleOrdered(section.ID)
		if err != nil {
			return nil, err
		}
		if len(fields) == 0 {
			continue
		}
		if err := f.driver.Info(ctx, "== "+section.Title); err != nil {
			return nil, err
		}
		for _, field := range fields {
			value, err := f.prompt(ctx, field, record[field.ID])
			if err != nil {
				return nil, err
			}
			record[field.ID] = value
		}
	}
	return record, nil
}

// prompt matches the field's semantic type exhaustively; adding a FieldType
// without a prompt rule is a compile-visible gap here.
func (f *Form) prompt(ctx context.Context, field model.Field, current any) (any, error) {
	label := field.Label
	if field.Required {
		label += " (required)"
	}

	switch field.Type {
	case model.FieldTypeTextarea:
		return f.driver.TextArea(ctx, TextAreaConfig{
			Message: label,
			Default: asDefault(current),
		})
	case model.FieldTypeCheckbox:
		enabled, _ := current.(bool)
		return f.driver.Confirm(ctx, ConfirmConfig{
			Message: label,
			Default: enabled,
		})
	case model.FieldTypePicklist:
		if len(field.Options) == 0 {
			return f.input(ctx, field, label, current)
		}
		defaultIndex := 0
		if selected, ok := current.(string); ok {
			for idx, option := range field.Options {
				if option == selected {
					defaultIndex = idx
					break
				}
			}
		}
		idx, err := f.driver.Select(ctx, SelectConfig{
			Message:      label,
			Options:      field.Options,
			DefaultIndex: defaultIndex,
		})
		if err != nil {
			return nil, err
		}
		return field.Options[idx], nil
	case model.FieldTypeNumber, model.FieldTypeCurrency, model.FieldTypePercentage:
		text, err := f.input(ctx, field, label, current)
		if err != nil {
			return nil, err
		}
		return coerceNumeric(text), nil
	case model.FieldTypeText, model.FieldTypeEmail, model.FieldTypePhone,
		model.FieldTypeURL, model.FieldTypeDate:
		return f.input(ctx, field, label, current)
	}
	return f.input(ctx, field, label, current)
}

func (f *Form) input(ctx context.Context, field model.Field, label string, current any) (string, error) {
	cfg := InputConfig{
		Message: label,
		Default: asDefault(current),
	}
	if field.Required {
		cfg.Validator = func(text string) error {
			if strings.TrimSpace(text) == "" {
				return fmt.Errorf("%s is required", field.Label)
			}
			return nil
		}
	}
	if field.Type == model.FieldTypeDate {
		cfg.Help = "YYYY-MM-DD"
	}
	return f.driver.Input(ctx, cfg)
}

func asDefault(value any) string {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// coerceNumeric stores parseable numbers as float64 and keeps everything
// else verbatim, mirroring the display layer's raw fallback.
func coerceNumeric(text string) any {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}
	if parsed, err := strconv.ParseFloat(strings.ReplaceAll(trimmed, ",", ""), 64); err == nil {
		return parsed
	}
	return trimmed
}
