package model

// FieldType is the closed enum of semantic field kinds. Every place that
// formats a value or picks an input widget switches exhaustively over it.
type FieldType string

const (
	FieldTypeText       FieldType = "text"
	FieldTypeTextarea   FieldType = "textarea"
	FieldTypeEmail      FieldType = "email"
	FieldTypePhone      FieldType = "phone"
	FieldTypeURL        FieldType = "url"
	FieldTypePicklist   FieldType = "picklist"
	FieldTypeDate       FieldType = "date"
	FieldTypeNumber     FieldType = "number"
	FieldTypeCurrency   FieldType = "currency"
	FieldTypePercentage FieldType = "percentage"
	FieldTypeCheckbox   FieldType = "checkbox"
)

// Valid reports whether t is one of the known field types.
func (t FieldType) Valid() bool {
	switch t {
	case FieldTypeText, FieldTypeTextarea, FieldTypeEmail, FieldTypePhone,
		FieldTypeURL, FieldTypePicklist, FieldTypeDate, FieldTypeNumber,
		FieldTypeCurrency, FieldTypePercentage, FieldTypeCheckbox:
		return true
	}
	return false
}

// Field is one schema-defined attribute of an object. Order is the sole
// source of display order; slice position only breaks ties between equal
// order values. Options is meaningful for picklist fields only.
type Field struct {
	ID       string    `json:"id"`
	Label    string    `json:"label"`
	Type     FieldType `json:"field_type"`
	Visible  bool      `json:"visible"`
	Required bool      `json:"required"`
	Order    int       `json:"position"`
	Options  []string  `json:"options,omitempty"`
}

// Section is a named, ordered grouping of fields within an object's page
// layout. The fields slice defines the total order for equal order values.
type Section struct {
	ID       string  `json:"name"`
	Title    string  `json:"title"`
	Fields   []Field `json:"fields"`
	Expanded bool    `json:"expanded"`
	Visible  bool    `json:"visible"`
}

// Record is one instance of data for an object, keyed by field id. Values
// are scalars: string, float64, or bool. A missing key means the record has
// no value for that field.
type Record map[string]any

// Object is an entity type such as Account, combining a sectioned field
// schema with its in-memory record list. Schema and data are independent:
// hiding or removing a field never deletes data stored under its id.
type Object struct {
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Sections []Section `json:"sections"`
	Records  []Record  `json:"records,omitempty"`
}

// Fields returns all field definitions across sections in slice order.
func (o *Object) Fields() []Field {
	var out []Field
	for _, section := range o.Sections {
		out = append(out, section.Fields...)
	}
	return out
}
