package browser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/salesmock/crmkit/pkg/format"
	"github.com/salesmock/crmkit/pkg/model"
)

// View implements tea.Model.
func (a App) View() string {
	if a.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(a.renderTabs())
	b.WriteString("\n\n")

	switch a.pane {
	case paneRecords:
		b.WriteString(a.renderRecords())
	case paneLayout:
		b.WriteString(a.renderLayout())
	}

	b.WriteString("\n")
	b.WriteString(a.renderStatus())
	b.WriteString("\n")
	b.WriteString(a.renderHelp())
	return b.String()
}

func (a App) renderTabs() string {
	tabs := make([]string, 0, len(a.objects))
	for _, name := range a.objects {
		style := objectTabStyle
		if name == a.object {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render("crmkit"), "  ", strings.Join(tabs, " "))
}

func (a App) renderRecords() string {
	object, err := a.session.Object(a.object)
	if err != nil {
		return statusErrStyle.Render(err.Error())
	}
	if len(object.Records) == 0 {
		return helpStyle.Render("No records.")
	}

	lay, err := a.layout()
	if err != nil {
		return statusErrStyle.Render(err.Error())
	}

	perPage := a.cfg.UI.RecordsPerPage
	start := (a.recordCursor / perPage) * perPage
	end := start + perPage
	if end > len(object.Records) {
		end = len(object.Records)
	}

	cards := make([]string, 0, end-start)
	for idx := start; idx < end; idx++ {
		record := object.Records[idx]
		var card strings.Builder
		card.WriteString(titleStyle.Render(recordTitle(object, record, idx)))
		for _, section := range lay.Sections() {
			if !section.Visible {
				continue
			}
			fields, err := lay.VisibleOrdered(section.ID)
			if err != nil || len(fields) == 0 {
				continue
			}
			card.WriteString("\n" + sectionHeaderStyle.Render(section.Title))
			if !section.Expanded {
				card.WriteString(helpStyle.Render(" (collapsed)"))
				continue
			}
			for _, field := range fields {
				value := format.Value(record[field.ID], field.Type)
				card.WriteString(fmt.Sprintf("\n  %s %s",
					fieldLabelStyle.Render(field.Label+":"), value))
			}
		}
		style := cardStyle
		if idx == a.recordCursor {
			style = selectedCardStyle
		}
		cards = append(cards, style.Width(a.width-4).Render(card.String()))
	}

	header := helpStyle.Render(fmt.Sprintf("Record %d of %d",
		a.recordCursor+1, len(object.Records)))
	return header + "\n" + strings.Join(cards, "\n")
}

func (a App) renderLayout() string {
	object, err := a.session.Object(a.object)
	if err != nil {
		return statusErrStyle.Render(err.Error())
	}

	lines := make([]string, 0, len(a.rows))
	for idx, row := range a.rows {
		cursor := "  "
		if idx == a.layoutCursor {
			cursor = cursorStyle.Render("> ")
		}
		if row.header {
			section := findSection(object, row.sectionID)
			title := row.sectionID
			marker := ""
			if section != nil {
				title = section.Title
				if !section.Expanded {
					marker = helpStyle.Render(" (collapsed)")
				}
			}
			lines = append(lines, cursor+sectionHeaderStyle.Render(title)+marker)
			continue
		}
		field := findField(object, row.sectionID, row.fieldID)
		if field == nil {
			continue
		}
		mark := "[x]"
		style := lipgloss.NewStyle()
		if !field.Visible {
			mark = "[ ]"
			style = hiddenFieldStyle
		}
		label := fmt.Sprintf("%s %s  (%s, order %d)", mark, field.Label, field.Type, field.Order)
		if field.ID == a.swapPending {
			label += " " + swapMarkStyle.Render("<swap>")
		}
		lines = append(lines, cursor+"  "+style.Render(label))
	}
	return strings.Join(lines, "\n")
}

func (a App) renderStatus() string {
	if a.searching {
		return cursorStyle.Render("/" + a.searchQuery)
	}
	if a.statusErr {
		return statusErrStyle.Render(a.status)
	}
	return statusStyle.Render(a.status)
}

func (a App) renderHelp() string {
	common := "tab: object  l: records/layout  e: export  q: quit"
	if a.pane == paneLayout {
		return helpStyle.Render("j/k: move  v: toggle  c: collapse  u/d: reorder  s: swap  /: find  " + common)
	}
	return helpStyle.Render("j/k: move  x: delete  " + common)
}

// recordTitle picks the lowest-ordered visible text field as the card
// heading, falling back to a positional label.
func recordTitle(object *model.Object, record model.Record, idx int) string {
	fields := object.Fields()
	sort.SliceStable(fields, func(i, j int) bool { return fields[i].Order < fields[j].Order })
	for _, field := range fields {
		if !field.Visible || field.Type != model.FieldTypeText {
			continue
		}
		if value, ok := record[field.ID].(string); ok && value != "" {
			return value
		}
	}
	return fmt.Sprintf("%s #%d", object.Label, idx+1)
}

func findSection(object *model.Object, sectionID string) *model.Section {
	for idx := range object.Sections {
		if object.Sections[idx].ID == sectionID {
			return &object.Sections[idx]
		}
	}
	return nil
}

func findField(object *model.Object, sectionID, fieldID string) *model.Field {
	section := findSection(object, sectionID)
	if section == nil {
		return nil
	}
	for idx := range section.Fields {
		if section.Fields[idx].ID == fieldID {
			return &section.Fields[idx]
		}
	}
	return nil
}
