// SPDX-License-Identifier: MPL-2.0

package parsers

import (
	"reflect"
	"regexp"
	"testing"
)

func TestBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value   string
		want    any
		wantErr bool
	}{
		{value: "true", want: true},
		{value: "false", want: false},
		{value: " TRUE ", want: true},
		{value: "yes", wantErr: true},
		{value: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := Bool(tt.value)
		if (err != nil) != tt.wantErr {
			t.Fatalf("Bool(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
		}
		if err == nil && got != tt.want {
			t.Fatalf("Bool(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestIntVariants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		parse   func(string) (any, error)
		value   string
		want    any
		wantErr bool
	}{
		{name: "int", parse: Int, value: "-3", want: -3},
		{name: "int junk", parse: Int, value: "x", wantErr: true},
		{name: "non-negative zero", parse: NonNegativeInt, value: "0", want: 0},
		{name: "non-negative rejects negative", parse: NonNegativeInt, value: "-1", wantErr: true},
		{name: "positive one", parse: PositiveInt, value: "1", want: 1},
		{name: "positive rejects zero", parse: PositiveInt, value: "0", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.parse(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCSV(t *testing.T) {
	t.Parallel()

	got, err := CSV(`a,b,"c,d"`)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"a", "b", "c,d"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("CSV = %v, want %v", got, want)
	}
}

func TestOptionalVariants(t *testing.T) {
	t.Parallel()

	// Empty and blank values parse to nil instead of an error.
	for name, parse := range map[string]func(string) (any, error){
		"bool": OptionalBool, "int": OptionalInt,
		"non-negative": OptionalNonNegativeInt, "positive": OptionalPositiveInt,
		"csv": OptionalCSV,
	} {
		got, err := parse("  ")
		if err != nil || got != nil {
			t.Fatalf("Optional %s(blank) = %v, %v; want nil, nil", name, got, err)
		}
	}

	got, err := OptionalInt("4")
	if err != nil || got != 4 {
		t.Fatalf("OptionalInt(4) = %v, %v", got, err)
	}
}

func TestRegex(t *testing.T) {
	t.Parallel()

	validate := Regex(regexp.MustCompile(`^[a-z]+$`))
	if err := validate("abc"); err != nil {
		t.Fatalf("matching value rejected: %v", err)
	}
	if err := validate("ABC"); err == nil {
		t.Fatal("non-matching value accepted")
	}
}
