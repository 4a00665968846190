package ui

import (
	"strings"
	"testing"
)

func pickerItems() []PickItem {
	return []PickItem{
		{Branch: "feature-auth", Path: "/wt/feature-auth"},
		{Branch: "feature-billing", Path: "/wt/feature-billing", Dirty: true},
		{Branch: "bugfix-login", Path: "/wt/bugfix-login", Unpushed: true},
	}
}

func updatePicker(m pickerModel, keys ...string) pickerModel {
	for _, key := range keys {
		updated, _ := m.Update(keyPress(key))
		m = updated.(pickerModel)
	}
	return m
}

func TestPickerToggleSelection(t *testing.T) {
	t.Parallel()

	m := newPickerModel(pickerItems())

	m = updatePicker(m, " ", "down", "down", " ")
	if !m.selected[0] || m.selected[1] || !m.selected[2] {
		t.Errorf("selected = %v, want items 0 and 2", m.selected)
	}

	// Toggling again deselects.
	m = updatePicker(m, " ")
	if m.selected[2] {
		t.Error("item 2 still selected after second toggle")
	}
}

func TestPickerCursorBounds(t *testing.T) {
	t.Parallel()

	m := newPickerModel(pickerItems())

	m = updatePicker(m, "up")
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up at top, want 0", m.cursor)
	}

	m = updatePicker(m, "down", "down", "down", "down")
	if m.cursor != 2 {
		t.Errorf("cursor = %d after overshooting down, want 2", m.cursor)
	}
}

func TestPickerFilterPreservesOrder(t *testing.T) {
	t.Parallel()

	m := newPickerModel(pickerItems())

	m = updatePicker(m, "f", "e", "a", "t")
	if len(m.filtered) != 2 {
		t.Fatalf("filtered = %v, want 2 matches", m.filtered)
	}
	if m.filtered[0] != 0 || m.filtered[1] != 1 {
		t.Errorf("filtered = %v, want [0 1] in listing order", m.filtered)
	}
}

func TestPickerEscCancels(t *testing.T) {
	t.Parallel()

	m := updatePicker(newPickerModel(pickerItems()), "esc")
	if !m.cancelled || !m.done {
		t.Errorf("cancelled = %v, done = %v, want both true", m.cancelled, m.done)
	}
}

func TestPickerEnterConfirms(t *testing.T) {
	t.Parallel()

	m := updatePicker(newPickerModel(pickerItems()), " ", "enter")
	if m.cancelled || !m.done {
		t.Errorf("cancelled = %v, done = %v, want done without cancel", m.cancelled, m.done)
	}
	if !m.selected[0] {
		t.Error("item 0 not selected")
	}
}

func TestIndicatorPrecedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		item PickItem
		want string
	}{
		{"clean", PickItem{}, "✓"},
		{"unpushed", PickItem{Unpushed: true}, "↑"},
		{"dirty", PickItem{Dirty: true}, "!"},
		{"dirty wins over unpushed", PickItem{Dirty: true, Unpushed: true}, "!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.item.indicator(); !strings.Contains(got, tt.want) {
				t.Errorf("indicator() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestPickerViewShowsLegend(t *testing.T) {
	t.Parallel()

	m := newPickerModel(pickerItems())
	view := m.View()
	for _, marker := range []string{"✓", "!", "↑"} {
		if !strings.Contains(view, marker) {
			t.Errorf("View() missing %q legend", marker)
		}
	}
}
