// SPDX-License-Identifier: MPL-2.0

package prompt

import (
	"errors"
	"strings"
	"testing"
)

func TestMenu_SelectsByIndex(t *testing.T) {
	t.Parallel()

	p, rec := newTestPrompt(NewScript("2"))
	got, err := p.Menu("Pick one", []string{"alpha", "beta", "gamma"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1 {
		t.Errorf("expected index 1, got %d", got)
	}
	if !strings.Contains(rec.String(), "alpha") || !strings.Contains(rec.String(), "gamma") {
		t.Errorf("expected all items rendered, got %q", rec.String())
	}
}

func TestMenu_RepromptsOnInvalid(t *testing.T) {
	t.Parallel()

	p, _ := newTestPrompt(NewScript("0", "9", "x", "3"))
	got, err := p.Menu("Pick one", []string{"alpha", "beta", "gamma"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 2 {
		t.Errorf("expected index 2, got %d", got)
	}
}

func TestMenu_Abort(t *testing.T) {
	t.Parallel()

	p, _ := newTestPrompt(NewScript("b"))
	_, err := p.Menu("Pick one", []string{"alpha"})
	if !errors.Is(err, ErrAbort) {
		t.Errorf("expected ErrAbort, got %v", err)
	}
}

func TestMultiSelectMenu(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		inputs   []string
		expected []int
	}{
		{"toggle and confirm", []string{"1", "3", "c"}, []int{0, 2}},
		{"toggle twice removes", []string{"1", "1", "2", "c"}, []int{1}},
		{"range toggles", []string{"2-4", "c"}, []int{1, 2, 3}},
		{"select all", []string{"a", "c"}, []int{0, 1, 2, 3}},
		{"select none clears", []string{"a", "n", "2", "c"}, []int{1}},
		{"confirm empty", []string{"c"}, []int{}},
	}

	values := []string{"one", "two", "three", "four"}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, _ := newTestPrompt(NewScript(tt.inputs...))
			got, err := p.MultiSelectMenu("Pick any", values)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %v, got %v", tt.expected, got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("expected %v, got %v", tt.expected, got)
					break
				}
			}
		})
	}
}

func TestMultiSelectMenu_Abort(t *testing.T) {
	t.Parallel()

	p, _ := newTestPrompt(NewScript("1", "b"))
	_, err := p.MultiSelectMenu("Pick any", []string{"one", "two"})
	if !errors.Is(err, ErrAbort) {
		t.Errorf("expected ErrAbort, got %v", err)
	}
}

func TestMultiSelectMenu_HelpListsCommands(t *testing.T) {
	t.Parallel()

	p, rec := newTestPrompt(NewScript("?", "c"))
	if _, err := p.MultiSelectMenu("Pick any", []string{"one"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(rec.String(), "toggle the selection of a range") {
		t.Errorf("expected help output, got %q", rec.String())
	}
}

func TestSectionedMultiSelectMenu(t *testing.T) {
	t.Parallel()

	sections := []MenuSection{
		{Name: "Section 1", Items: []string{"Item 1.1", "Item 1.2"}},
		{Name: "Section 2", Items: []string{"Item 2.1"}},
	}

	// Items are numbered consecutively: 1, 2 in section 1 and 3 in section 2.
	p, _ := newTestPrompt(NewScript("2", "3", "c"))
	got, err := p.SectionedMultiSelectMenu("Pick any", sections, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got["Section 1"]) != 1 || got["Section 1"][0] != 1 {
		t.Errorf("unexpected section 1 selections: %v", got["Section 1"])
	}
	if len(got["Section 2"]) != 1 || got["Section 2"][0] != 0 {
		t.Errorf("unexpected section 2 selections: %v", got["Section 2"])
	}
}

func TestSectionedMultiSelectMenu_EmptySectionsPresent(t *testing.T) {
	t.Parallel()

	sections := []MenuSection{
		{Name: "A", Items: []string{"one"}},
		{Name: "B", Items: []string{"two"}},
	}

	p, _ := newTestPrompt(NewScript("1", "c"))
	got, err := p.SectionedMultiSelectMenu("Pick any", sections, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got["A"]) != 1 {
		t.Errorf("expected a selection in A, got %v", got["A"])
	}
	if selections, ok := got["B"]; !ok || len(selections) != 0 {
		t.Errorf("expected empty selection list for B, got %v (present=%v)", selections, ok)
	}
}
