package model

// Clone returns a deep copy of the record. Edits operate on a clone and are
// merged back only on explicit save.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for key, value := range r {
		out[key] = value
	}
	return out
}

// Clone returns a deep copy of the field, including its options slice.
func (f Field) Clone() Field {
	out := f
	if len(f.Options) > 0 {
		out.Options = append([]string(nil), f.Options...)
	}
	return out
}

// Clone returns a deep copy of the section and its fields.
func (s Section) Clone() Section {
	out := s
	if len(s.Fields) > 0 {
		out.Fields = make([]Field, len(s.Fields))
		for idx, field := range s.Fields {
			out.Fields[idx] = field.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the object: schema and records. Sessions use
// it so no two sessions ever share mutable state.
func (o *Object) Clone() *Object {
	if o == nil {
		return nil
	}
	out := &Object{Name: o.Name, Label: o.Label}
	if len(o.Sections) > 0 {
		out.Sections = make([]Section, len(o.Sections))
		for idx, section := range o.Sections {
			out.Sections[idx] = section.Clone()
		}
	}
	if len(o.Records) > 0 {
		out.Records = make([]Record, len(o.Records))
		for idx, record := range o.Records {
			out.Records[idx] = record.Clone()
		}
	}
	return out
}
