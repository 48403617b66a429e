package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mbeaupre/climplot/array"
)

func testDataset() *array.Dataset {
	ds := array.NewDataset()
	ds.AddVar(array.MustNew("tas", []string{"time"}, []int{4}, []float64{1, 2, 3, 4}))
	ds.AddVar(array.MustNew("pr", []string{"time"}, []int{4}, []float64{0, 1, 0, 1}))
	return ds
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBrowserNavigation(t *testing.T) {
	m := NewBrowser(testDataset(), "default")

	next, _ := m.Update(key("j"))
	m = next.(model)
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}
	next, _ = m.Update(key("j"))
	m = next.(model)
	if m.cursor != 1 {
		t.Errorf("cursor should stop at the last variable, got %d", m.cursor)
	}
	next, _ = m.Update(key("k"))
	m = next.(model)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
}

func TestBrowserView(t *testing.T) {
	m := NewBrowser(testDataset(), "ocean")
	out := m.View()
	if !strings.Contains(out, "tas") || !strings.Contains(out, "pr") {
		t.Errorf("variable list missing:\n%s", out)
	}
}

func TestBrowserQuit(t *testing.T) {
	m := NewBrowser(testDataset(), "default")
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
}
