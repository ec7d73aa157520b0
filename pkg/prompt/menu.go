// SPDX-License-Identifier: MPL-2.0

package prompt

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// MenuSection is one named group of items in a sectioned multi-select menu.
type MenuSection struct {
	Name  string
	Items []string
}

// Menu displays a list of items and lets the user select a single one.
// The zero-based index of the selection is returned; entering 'b' (or
// interrupting the read) returns ErrAbort.
func (p *Prompt) Menu(question string, values []string, opts ...ReadOption) (int, error) {
	p.Write(question)
	for i, v := range values {
		p.Writef("  %-2d - %s", i+1, v)
	}

	q := fmt.Sprintf("Enter value (1-%d) or 'b' to abort: ", len(values))
	for {
		selection, err := p.Ask(q, opts...)
		if err != nil {
			return 0, err
		}
		if selection == "b" {
			return 0, ErrAbort
		}
		if n, err := strconv.Atoi(selection); err == nil && n >= 1 && n <= len(values) {
			return n - 1, nil
		}
	}
}

// MultiSelectMenu displays a list of items and lets the user toggle any
// number of them before confirming. The zero-based indices of the selected
// items are returned in toggle order. Aborting returns ErrAbort.
//
// Accepted inputs: an item number toggles one item, "x-y" toggles a range,
// 'a' selects all, 'n' selects none, 'c' confirms, 'b' aborts, 'l' clears
// the screen, and '?' prints this command list.
func (p *Prompt) MultiSelectMenu(question string, values []string, opts ...ReadOption) ([]int, error) {
	selected := []int{}
	q := fmt.Sprintf("Enter value (1-%d) to toggle selection, 'c' to confirm selections, or '?' for more commands: ", len(values))

	for {
		p.Write(question)
		for i, v := range values {
			mark := "-"
			if slices.Contains(selected, i) {
				mark = "x"
			}
			p.Writef("  %s  %-2d: %s", mark, i+1, v)
		}

		selection, err := p.Ask(q, opts...)
		if err != nil {
			return nil, err
		}
		p.Write("")

		switch {
		case selection == "?":
			p.writeMultiSelectHelp(len(values))
		case selection == "c":
			return selected, nil
		case selection == "a":
			selected = selected[:0]
			for i := range values {
				selected = append(selected, i)
			}
		case selection == "n":
			selected = selected[:0]
		case selection == "b":
			return nil, ErrAbort
		case selection == "l":
			p.Clear()
		default:
			if low, high, ok := parseRange(selection, len(values)); ok {
				for i := low; i <= high; i++ {
					selected = toggleInt(selected, i)
				}
			} else if n, err := strconv.Atoi(selection); err == nil && n >= 1 && n <= len(values) {
				selected = toggleInt(selected, n-1)
			}
		}
	}
}

// SectionedMultiSelectMenu displays a multi-select menu broken up by
// section, numbering the items consecutively across sections. The returned
// map holds, per section name, the zero-based indices selected within that
// section's item list; sections with no selections map to an empty list.
func (p *Prompt) SectionedMultiSelectMenu(question string, sections []MenuSection, sectionPostText string, opts ...ReadOption) (map[string][]int, error) {
	selected := make(map[string][]int, len(sections))
	total := 0
	for _, s := range sections {
		selected[s.Name] = []int{}
		total += len(s.Items)
	}

	q := fmt.Sprintf("Enter value (1-%d) to toggle selection, 'c' to confirm selections, or '?' for more commands: ", total)

	// Maps the consecutive display number back to (section, index).
	type ref struct {
		section string
		index   int
	}

	for {
		p.Write(question)

		var mapper []ref
		counter := 1
		for _, s := range sections {
			p.Writef("  %s", s.Name)
			for i, item := range s.Items {
				mark := "-"
				if slices.Contains(selected[s.Name], i) {
					mark = "x"
				}
				p.Writef("    %s  %-2d: %s", mark, counter, item)
				mapper = append(mapper, ref{section: s.Name, index: i})
				counter++
			}
			if sectionPostText != "" {
				p.Write(sectionPostText)
			}
		}

		selection, err := p.Ask(q, opts...)
		if err != nil {
			return nil, err
		}
		p.Write("")

		switch {
		case selection == "?":
			p.writeMultiSelectHelp(total)
		case selection == "c":
			return selected, nil
		case selection == "a":
			for _, s := range sections {
				all := make([]int, len(s.Items))
				for i := range all {
					all[i] = i
				}
				selected[s.Name] = all
			}
		case selection == "n":
			for _, s := range sections {
				selected[s.Name] = []int{}
			}
		case selection == "b":
			return nil, ErrAbort
		case selection == "l":
			p.Clear()
		default:
			if low, high, ok := parseRange(selection, total); ok {
				for i := low; i <= high; i++ {
					r := mapper[i]
					selected[r.section] = toggleInt(selected[r.section], r.index)
				}
			} else if n, err := strconv.Atoi(selection); err == nil && n >= 1 && n <= total {
				r := mapper[n-1]
				selected[r.section] = toggleInt(selected[r.section], r.index)
			}
		}
	}
}

func (p *Prompt) writeMultiSelectHelp(count int) {
	p.Writef("  <num> : toggles selection, valid values between 1 and %d", count)
	p.Write("  x-y   : toggle the selection of a range of items (example: \"2-5\" toggles items 2 through 5)")
	p.Write("  a     : select all items")
	p.Write("  n     : select no items")
	p.Write("  c     : confirm the currently selected items")
	p.Write("  b     : abort the item selection")
	p.Write("  l     : clears the screen and redraws the menu")
	p.Write("")
}

// parseRange interprets input of the form "x-y" as a one-based inclusive
// range, returning zero-based bounds.
func parseRange(input string, count int) (int, int, bool) {
	parts := strings.SplitN(input, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	low, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	high, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	if low < 1 || high > count || low >= high {
		return 0, 0, false
	}
	return low - 1, high - 1, true
}

func toggleInt(values []int, v int) []int {
	if i := slices.Index(values, v); i >= 0 {
		return slices.Delete(values, i, i+1)
	}
	return append(values, v)
}
