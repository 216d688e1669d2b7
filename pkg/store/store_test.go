package store_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/salesmock/crmkit/pkg/model"
	"github.com/salesmock/crmkit/pkg/store"
)

func seedStore() *store.Store {
	s := store.New()
	s.Add(&model.Object{
		Name:  "Account",
		Label: "Account",
		Sections: []model.Section{{
			ID:      "info",
			Visible: true,
			Fields: []model.Field{
				{ID: "name", Label: "Name", Type: model.FieldTypeText, Visible: true, Order: 1},
			},
		}},
		Records: []model.Record{
			{"name": "Acme"},
			{"name": "Globex"},
			{"name": "Initech"},
		},
	})
	return s
}

func recordNames(t *testing.T, s *store.Store, object string) []string {
	t.Helper()
	obj, err := s.Object(object)
	if err != nil {
		t.Fatalf("Object(%q): %v", object, err)
	}
	names := make([]string, 0, len(obj.Records))
	for _, record := range obj.Records {
		names = append(names, record["name"].(string))
	}
	return names
}

func TestDeleteRecord(t *testing.T) {
	s := seedStore()

	if err := s.Delete("Account", 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got := recordNames(t, s, "Account")
	want := []string{"Acme", "Initech"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("after delete (-want +got):\n%s", diff)
	}

	if err := s.Delete("Account", 5); !errors.Is(err, store.ErrOutOfRange) {
		t.Fatalf("delete index 5 got %v, want ErrOutOfRange", err)
	}
	if err := s.Delete("Account", -1); !errors.Is(err, store.ErrOutOfRange) {
		t.Fatalf("delete index -1 got %v, want ErrOutOfRange", err)
	}
	if err := s.Delete("Missing", 0); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("delete on unknown object got %v, want ErrNotFound", err)
	}
}

func TestSnapshotEditReplace(t *testing.T) {
	s := seedStore()

	snapshot, err := s.Snapshot("Account", 0)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	snapshot["name"] = "Acme Corp"

	// Editing the snapshot must not leak into the stored record.
	if got := recordNames(t, s, "Account")[0]; got != "Acme" {
		t.Fatalf("snapshot edit leaked: stored name %q", got)
	}

	if err := s.Replace("Account", 0, snapshot); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if got := recordNames(t, s, "Account")[0]; got != "Acme Corp" {
		t.Fatalf("after save stored name %q, want %q", got, "Acme Corp")
	}

	if err := s.Replace("Account", 9, snapshot); !errors.Is(err, store.ErrOutOfRange) {
		t.Fatalf("replace out of range got %v, want ErrOutOfRange", err)
	}
}

func TestAppendRecord(t *testing.T) {
	s := seedStore()
	if err := s.Append("Account", model.Record{"name": "Umbrella"}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	got := recordNames(t, s, "Account")
	want := []string{"Acme", "Globex", "Initech", "Umbrella"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("after append (-want +got):\n%s", diff)
	}
}

func TestSessionIsolation(t *testing.T) {
	seed := seedStore()
	a := store.NewSession(seed)
	b := store.NewSession(seed)

	if err := a.Delete("Account", 0); err != nil {
		t.Fatalf("Delete in session a: %v", err)
	}
	objA, _ := a.Object("Account")
	objA.Sections[0].Fields[0].Visible = false

	// Session b and the seed are untouched.
	if got := recordNames(t, b.Store, "Account"); len(got) != 3 {
		t.Fatalf("session b record count = %d, want 3", len(got))
	}
	if got := recordNames(t, seed, "Account"); len(got) != 3 {
		t.Fatalf("seed record count = %d, want 3", len(got))
	}
	seedObj, _ := seed.Object("Account")
	if !seedObj.Sections[0].Fields[0].Visible {
		t.Fatal("schema mutation leaked from session to seed")
	}
}
