package layout

import (
	"encoding/json"
	"fmt"

	"github.com/salesmock/crmkit/pkg/model"
)

// Export serialises the current section list as an indented JSON document:
// an array of sections, each carrying its visible-flagged, position-ordered
// fields. The shape matches what the download action offers users.
func (l *Layout) Export() ([]byte, error) {
	payload, err := json.MarshalIndent(l.object.Sections, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("layout: export sections: %w", err)
	}
	return payload, nil
}

// ParseExport parses a previously exported layout document. Parsing is
// permissive: unknown keys are ignored and absent keys zero-value, so
// documents produced by older exports still load.
func ParseExport(data []byte) ([]model.Section, error) {
	var sections []model.Section
	if err := json.Unmarshal(data, &sections); err != nil {
		return nil, fmt.Errorf("layout: parse export: %w", err)
	}
	return sections, nil
}
