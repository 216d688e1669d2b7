package layout_test

import (
	"testing"

	"github.com/salesmock/crmkit/pkg/layout"
)

func TestFindField(t *testing.T) {
	l := layout.New(detailObject())

	tests := []struct {
		name   string
		query  string
		wantID string
		found  bool
	}{
		{"exact label", "Name", "name", true},
		{"substring", "cit", "city", true},
		{"near miss typo", "Secrit", "secret", true},
		{"blank", "   ", "", false},
		{"nothing close", "opportunity pipeline", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			field, ok := l.FindField(tc.query)
			if ok != tc.found {
				t.Fatalf("FindField(%q) found=%v, want %v", tc.query, ok, tc.found)
			}
			if ok && field.ID != tc.wantID {
				t.Fatalf("FindField(%q) = %q, want %q", tc.query, field.ID, tc.wantID)
			}
		})
	}
}
