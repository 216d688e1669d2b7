// Package format renders record values for display. Formatting degrades
// gracefully: an unparseable numeric or date value falls back to the raw
// input string rather than failing.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/salesmock/crmkit/pkg/model"
)

// Empty is the placeholder shown for absent values.
const Empty = "--"

// Value formats a scalar record value according to the field's semantic
// type. The switch is exhaustive over the FieldType enum so a new type
// cannot ship without a formatting rule.
func Value(value any, fieldType model.FieldType) string {
	if value == nil {
		return Empty
	}
	if s, ok := value.(string); ok && s == "" {
		return Empty
	}

	switch fieldType {
	case model.FieldTypeCurrency:
		if amount, ok := toFloat(value); ok {
			return "$" + groupThousands(strconv.FormatFloat(amount, 'f', 2, 64))
		}
		return asString(value)
	case model.FieldTypeNumber:
		if amount, ok := toFloat(value); ok {
			return groupThousands(strconv.FormatFloat(amount, 'f', -1, 64))
		}
		return asString(value)
	case model.FieldTypePercentage:
		s := asString(value)
		if strings.HasSuffix(s, "%") {
			return s
		}
		return s + "%"
	case model.FieldTypeCheckbox:
		if b, ok := toBool(value); ok && b {
			return "Yes"
		}
		return "No"
	case model.FieldTypeText, model.FieldTypeTextarea, model.FieldTypeEmail,
		model.FieldTypePhone, model.FieldTypeURL, model.FieldTypePicklist,
		model.FieldTypeDate:
		return asString(value)
	}
	return asString(value)
}

// Href returns the link target for field types that render as anchors and
// reports whether the type links at all.
func Href(value string, fieldType model.FieldType) (string, bool) {
	if value == "" {
		return "", false
	}
	switch fieldType {
	case model.FieldTypeEmail:
		return "mailto:" + value, true
	case model.FieldTypePhone:
		return "tel:" + value, true
	case model.FieldTypeURL:
		return value, true
	case model.FieldTypeText, model.FieldTypeTextarea, model.FieldTypePicklist,
		model.FieldTypeDate, model.FieldTypeNumber, model.FieldTypeCurrency,
		model.FieldTypePercentage, model.FieldTypeCheckbox:
		return "", false
	}
	return "", false
}

func asString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprint(v)
	}
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		parsed, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func toBool(value any) (bool, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case string:
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return false, false
		}
		return parsed, true
	default:
		return false, false
	}
}

// groupThousands inserts commas into the integer part of a decimal string.
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	intPart := s
	fracPart := ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, fracPart = s[:dot], s[dot:]
	}
	if len(intPart) <= 3 {
		return sign + intPart + fracPart
	}
	var builder strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		builder.WriteString(intPart[:lead])
	}
	for idx := lead; idx < len(intPart); idx += 3 {
		if builder.Len() > 0 {
			builder.WriteByte(',')
		}
		builder.WriteString(intPart[idx : idx+3])
	}
	return sign + builder.String() + fracPart
}
