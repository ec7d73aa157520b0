// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"errors"
	"reflect"
	"strconv"
	"testing"
)

func newParserCommand(t *testing.T) *Command {
	t.Helper()
	cmd := NewCommand("create", "creates a thing", func(*Arguments) error { return nil })

	id, err := cmd.CreateOption("--id", "identifier")
	if err != nil {
		t.Fatal(err)
	}
	id.Aliases = []string{"-i"}

	note, err := cmd.CreateOption("--note", "free text notes")
	if err != nil {
		t.Fatal(err)
	}
	note.Required = false
	note.AllowMultiple = true

	if _, err := cmd.CreateFlag("--force", "skip confirmation"); err != nil {
		t.Fatal(err)
	}
	return cmd
}

func TestDefaultParserValues(t *testing.T) {
	t.Parallel()

	cmd := newParserCommand(t)
	args, err := DefaultParser{}.Parse(cmd, []string{"--id", "abc", "--force", "leftover"})
	if err != nil {
		t.Fatal(err)
	}

	if got := args.String("id"); got != "abc" {
		t.Fatalf("id = %q, want %q", got, "abc")
	}
	if !args.Flag("force") {
		t.Fatal("force flag not set")
	}
	if got := args.Positional; len(got) != 1 || got[0] != "leftover" {
		t.Fatalf("positional = %v, want [leftover]", got)
	}
}

func TestDefaultParserInlineValue(t *testing.T) {
	t.Parallel()

	cmd := newParserCommand(t)
	args, err := DefaultParser{}.Parse(cmd, []string{"--id=abc"})
	if err != nil {
		t.Fatal(err)
	}
	if got := args.String("id"); got != "abc" {
		t.Fatalf("id = %q, want %q", got, "abc")
	}
}

func TestDefaultParserFlagRejectsInlineValue(t *testing.T) {
	t.Parallel()

	cmd := newParserCommand(t)
	_, err := DefaultParser{}.Parse(cmd, []string{"--id", "abc", "--force=yes"})

	var usageErr *UsageError
	if !errors.As(err, &usageErr) {
		t.Fatalf("expected a usage error, got %v", err)
	}
	if got := usageErr.Unexpected; len(got) != 1 || got[0] != "--force=yes" {
		t.Fatalf("unexpected = %v, want [--force=yes]", got)
	}
}

func TestDefaultParserAlias(t *testing.T) {
	t.Parallel()

	cmd := newParserCommand(t)
	args, err := DefaultParser{}.Parse(cmd, []string{"-i", "abc"})
	if err != nil {
		t.Fatal(err)
	}
	if got := args.String("id"); got != "abc" {
		t.Fatalf("alias value stored under %q, want keyword id: %v", got, args.Keywords())
	}
}

func TestDefaultParserMultipleArrivalOrder(t *testing.T) {
	t.Parallel()

	cmd := newParserCommand(t)
	args, err := DefaultParser{}.Parse(cmd, []string{"--id", "x", "--note", "first", "--note", "second", "--note", "third"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"first", "second", "third"}
	if got := args.Strings("note"); !reflect.DeepEqual(got, want) {
		t.Fatalf("note = %v, want %v", got, want)
	}
}

func TestDefaultParserSingleRepeatLastWins(t *testing.T) {
	t.Parallel()

	cmd := newParserCommand(t)
	args, err := DefaultParser{}.Parse(cmd, []string{"--id", "first", "--id", "second"})
	if err != nil {
		t.Fatal(err)
	}
	if got := args.String("id"); got != "second" {
		t.Fatalf("id = %q, want %q", got, "second")
	}
}

func TestDefaultParserAbsentOptional(t *testing.T) {
	t.Parallel()

	cmd := newParserCommand(t)
	args, err := DefaultParser{}.Parse(cmd, []string{"--id", "x"})
	if err != nil {
		t.Fatal(err)
	}

	// Unspecified options stay absent; unspecified flags are present as
	// false.
	if args.Has("note") {
		t.Fatal("absent optional option appeared in the keyword map")
	}
	if !args.Has("force") || args.Flag("force") {
		t.Fatal("absent flag should be present and false")
	}
}

func TestDefaultParserDefaultValue(t *testing.T) {
	t.Parallel()

	cmd := NewCommand("list", "lists", func(*Arguments) error { return nil })
	limit, err := cmd.CreateOption("--limit", "page size")
	if err != nil {
		t.Fatal(err)
	}
	limit.Required = false
	limit.Default = "10"

	args, err := DefaultParser{}.Parse(cmd, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := args.String("limit"); got != "10" {
		t.Fatalf("limit = %q, want %q", got, "10")
	}
}

func TestDefaultParserParseFuncPerValue(t *testing.T) {
	t.Parallel()

	cmd := NewCommand("tag", "tags a thing", func(*Arguments) error { return nil })
	ids, err := cmd.CreateOption("--id", "numeric identifier")
	if err != nil {
		t.Fatal(err)
	}
	ids.AllowMultiple = true
	ids.ParseFunc = func(value string) (any, error) {
		return strconv.Atoi(value)
	}

	args, err := DefaultParser{}.Parse(cmd, []string{"--id", "1", "--id", "2"})
	if err != nil {
		t.Fatal(err)
	}
	got, _ := args.Get("id")
	if want := []any{1, 2}; !reflect.DeepEqual(got, want) {
		t.Fatalf("id = %v, want %v", got, want)
	}

	if _, err := (DefaultParser{}).Parse(cmd, []string{"--id", "x"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("parse failure error = %v, want ErrValidation", err)
	}
}

func TestDefaultParserMissingValue(t *testing.T) {
	t.Parallel()

	cmd := newParserCommand(t)
	_, err := DefaultParser{}.Parse(cmd, []string{"--id"})

	var usage *UsageError
	if !errors.As(err, &usage) {
		t.Fatalf("error = %v, want UsageError", err)
	}
	if len(usage.Missing) != 1 || usage.Missing[0] != "--id" {
		t.Fatalf("missing = %v, want [--id]", usage.Missing)
	}
}

func TestUntypedParser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want map[string]any
	}{
		{
			name: "value pair",
			args: []string{"--name", "widget"},
			want: map[string]any{"name": "widget"},
		},
		{
			name: "flag at end of args",
			args: []string{"--name", "widget", "--force"},
			want: map[string]any{"name": "widget", "force": true},
		},
		{
			name: "flag when next token is an option",
			args: []string{"--force", "--name", "widget"},
			want: map[string]any{"force": true, "name": "widget"},
		},
		{
			name: "repeats become a list in order",
			args: []string{"--tag", "a", "--tag", "b", "--tag", "c"},
			want: map[string]any{"tag": []string{"a", "b", "c"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			args, err := (&UntypedParser{}).Parse(nil, tt.args)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(args.Keywords(), tt.want) {
				t.Fatalf("keywords = %v, want %v", args.Keywords(), tt.want)
			}
		})
	}
}

func TestUntypedParserRejectsPositional(t *testing.T) {
	t.Parallel()

	_, err := (&UntypedParser{}).Parse(nil, []string{"widget"})
	if !errors.Is(err, ErrUsage) {
		t.Fatalf("error = %v, want ErrUsage", err)
	}
}

func TestUntypedParserRequired(t *testing.T) {
	t.Parallel()

	p := &UntypedParser{Required: []string{"--name"}}

	if _, err := p.Parse(nil, []string{"--other", "x"}); !errors.Is(err, ErrUsage) {
		t.Fatalf("error = %v, want ErrUsage", err)
	}
	if _, err := p.Parse(nil, []string{"--name", "widget"}); err != nil {
		t.Fatalf("required option satisfied but Parse returned %v", err)
	}
}

func TestUntypedParserHelp(t *testing.T) {
	t.Parallel()

	if _, err := (&UntypedParser{}).Parse(nil, []string{"--help"}); !errors.Is(err, ErrHelp) {
		t.Fatalf("error = %v, want ErrHelp", err)
	}
}

func TestPassThroughParser(t *testing.T) {
	t.Parallel()

	args, err := PassThroughParser{}.Parse(nil, []string{"a", "--b", "c"})
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"a", "--b", "c"}; !reflect.DeepEqual(args.Positional, want) {
		t.Fatalf("positional = %v, want %v", args.Positional, want)
	}
	if len(args.Keywords()) != 0 {
		t.Fatalf("keywords = %v, want empty", args.Keywords())
	}
}
