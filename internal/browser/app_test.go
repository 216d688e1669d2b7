package browser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/salesmock/crmkit/internal/config"
	"github.com/salesmock/crmkit/internal/sample"
	"github.com/salesmock/crmkit/pkg/store"
)

func testConfig() config.Config {
	return config.Config{
		UI:     config.UIConfig{StartObject: "Account", RecordsPerPage: 10},
		Export: config.ExportConfig{Path: "crm_layout.json"},
	}
}

func testApp(cfg config.Config) App {
	return New(cfg, store.NewSession(sample.Objects()))
}

func press(app App, keys ...tea.KeyMsg) App {
	for _, key := range keys {
		next, _ := app.Update(key)
		app = next.(App)
	}
	return app
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestTabCyclesObjects(t *testing.T) {
	app := testApp(testConfig())
	if app.object != "Account" {
		t.Fatalf("start object = %q, want Account", app.object)
	}

	app = press(app, tea.KeyMsg{Type: tea.KeyTab})
	if app.object != "Contact" {
		t.Fatalf("after tab object = %q, want Contact", app.object)
	}

	app = press(app, tea.KeyMsg{Type: tea.KeyTab})
	if app.object != "Account" {
		t.Fatalf("cycle did not wrap, object = %q", app.object)
	}
}

func TestDeleteRecordMovesCursor(t *testing.T) {
	app := testApp(testConfig())
	app = press(app, keyRune('j'), keyRune('j'))
	if app.recordCursor != 2 {
		t.Fatalf("cursor = %d, want 2", app.recordCursor)
	}

	app = press(app, keyRune('x'))
	object, err := app.session.Object("Account")
	if err != nil {
		t.Fatalf("Object: %v", err)
	}
	if len(object.Records) != 2 {
		t.Fatalf("records = %d, want 2", len(object.Records))
	}
	if app.recordCursor != 1 {
		t.Fatalf("cursor after deleting last = %d, want 1", app.recordCursor)
	}
}

func TestToggleVisibilityFromLayoutPane(t *testing.T) {
	app := testApp(testConfig())
	// l enters the layout pane; the first row is a section header, the
	// second is account_name.
	app = press(app, keyRune('l'), keyRune('j'), keyRune('v'))

	lay, err := app.layout()
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	field, err := lay.Field("account_name")
	if err != nil {
		t.Fatalf("Field: %v", err)
	}
	if field.Visible {
		t.Fatal("account_name still visible after toggle")
	}
	if app.statusErr {
		t.Fatalf("unexpected error status %q", app.status)
	}
}

func TestSwapExchangesOrderValues(t *testing.T) {
	app := testApp(testConfig())
	// Mark account_name, move to account_number, complete the swap.
	app = press(app, keyRune('l'), keyRune('j'), keyRune('s'))
	if app.swapPending != "account_name" {
		t.Fatalf("swapPending = %q, want account_name", app.swapPending)
	}
	app = press(app, keyRune('j'), keyRune('s'))

	lay, _ := app.layout()
	name, _ := lay.Field("account_name")
	number, _ := lay.Field("account_number")
	if name.Order != 2 || number.Order != 1 {
		t.Fatalf("orders after swap = %d/%d, want 2/1", name.Order, number.Order)
	}
	if app.swapPending != "" {
		t.Fatalf("swapPending not cleared: %q", app.swapPending)
	}
}

func TestSwapOnSameFieldCancels(t *testing.T) {
	app := testApp(testConfig())
	app = press(app, keyRune('l'), keyRune('j'), keyRune('s'), keyRune('s'))
	if app.swapPending != "" {
		t.Fatalf("swapPending = %q, want cancelled", app.swapPending)
	}
}

func TestSearchJumpsToBestMatch(t *testing.T) {
	app := testApp(testConfig())
	app = press(app, keyRune('l'), keyRune('/'))
	if !app.searching {
		t.Fatal("slash did not enter search mode")
	}

	// "Websit" is a typo for the Website label in contact_details.
	for _, r := range "Websit" {
		app = press(app, keyRune(r))
	}
	app = press(app, tea.KeyMsg{Type: tea.KeyEnter})

	if app.searching {
		t.Fatal("enter did not leave search mode")
	}
	row, ok := app.fieldRow()
	if !ok || row.fieldID != "website" {
		t.Fatalf("cursor row = %+v, want website field", row)
	}
}

func TestExportWritesLayoutFile(t *testing.T) {
	cfg := testConfig()
	cfg.Export.Path = filepath.Join(t.TempDir(), "layout.json")

	app := testApp(cfg)
	app = press(app, keyRune('e'))
	if app.statusErr {
		t.Fatalf("export failed: %s", app.status)
	}

	payload, err := os.ReadFile(cfg.Export.Path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(payload), `"account_information"`) {
		t.Fatalf("export missing section name:\n%s", payload)
	}
}

func TestViewShowsRecordsAndHelp(t *testing.T) {
	app := testApp(testConfig())
	out := app.View()
	if !strings.Contains(out, "Acme Freight Lines") {
		t.Fatalf("view missing first record:\n%s", out)
	}
	if !strings.Contains(out, "q: quit") {
		t.Fatal("view missing help line")
	}

	app = press(app, keyRune('l'))
	out = app.View()
	if !strings.Contains(out, "Account Name") {
		t.Fatalf("layout view missing field label:\n%s", out)
	}
}
