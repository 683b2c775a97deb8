package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/puzzletools/puzzgen/pkg/config"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{}
}

func TestPresetListNavigation(t *testing.T) {
	m := NewPresetListModel(config.Builtin())
	if m.Cursor != 0 {
		t.Fatalf("initial cursor = %d", m.Cursor)
	}

	next, _ := m.Update(keyMsg("down"))
	m = next.(PresetListModel)
	if m.Cursor != 1 {
		t.Errorf("cursor after down = %d, want 1", m.Cursor)
	}

	next, _ = m.Update(keyMsg("up"))
	m = next.(PresetListModel)
	if m.Cursor != 0 {
		t.Errorf("cursor after up = %d, want 0", m.Cursor)
	}

	// Up at the top stays put.
	next, _ = m.Update(keyMsg("up"))
	m = next.(PresetListModel)
	if m.Cursor != 0 {
		t.Errorf("cursor should not go negative, got %d", m.Cursor)
	}
}

func TestPresetListSelect(t *testing.T) {
	presets := config.Builtin()
	m := NewPresetListModel(presets)

	next, cmd := m.Update(keyMsg("enter"))
	m = next.(PresetListModel)
	if m.Selected != presets.Names()[0] {
		t.Errorf("Selected = %q, want %q", m.Selected, presets.Names()[0])
	}
	if cmd == nil {
		t.Error("selecting should quit the program")
	}
}

func TestPresetListView(t *testing.T) {
	m := NewPresetListModel(config.Builtin())
	view := m.View()
	for _, name := range m.Names {
		if !strings.Contains(view, name) {
			t.Errorf("view should list preset %q", name)
		}
	}
}
