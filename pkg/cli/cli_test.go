// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"errors"
	"strings"
	"testing"

	"conch/pkg/prompt"
)

func newTestCli(t *testing.T) (*Cli, *prompt.Recorder) {
	t.Helper()
	rec := &prompt.Recorder{}
	p := prompt.New(prompt.WithOutput(rec), prompt.WithColor(false))
	return New(p), rec
}

// captureHandler returns a handler that records each invocation's
// arguments.
func captureHandler(calls *[]*Arguments) Handler {
	return func(args *Arguments) error {
		*calls = append(*calls, args)
		return nil
	}
}

func TestRunResolvesNestedCommand(t *testing.T) {
	t.Parallel()

	c, _ := newTestCli(t)
	var calls []*Arguments

	repo, err := c.CreateSection("repo", "repository commands")
	if err != nil {
		t.Fatal(err)
	}
	sync, err := repo.CreateSection("sync", "sync commands")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := sync.CreateCommand("run", "runs a sync", captureHandler(&calls)); err != nil {
		t.Fatal(err)
	}

	if code := c.Run([]string{"repo", "sync", "run"}); code != ExOk {
		t.Fatalf("exit code = %d, want %d", code, ExOk)
	}
	if len(calls) != 1 {
		t.Fatalf("handler invoked %d times, want 1", len(calls))
	}
}

func TestRunCommandWinsOverDescent(t *testing.T) {
	t.Parallel()

	c, _ := newTestCli(t)
	var calls []*Arguments

	if _, err := c.CreateCommand("status", "top level status", captureHandler(&calls)); err != nil {
		t.Fatal(err)
	}

	// Tokens after the command become its arguments, not a deeper path.
	if code := c.Run([]string{"status", "extra"}); code != ExOk {
		t.Fatalf("exit code = %d, want %d", code, ExOk)
	}
	if got := calls[0].Positional; len(got) != 1 || got[0] != "extra" {
		t.Fatalf("positional = %v, want [extra]", got)
	}
}

func TestRunUnknownPathPrintsClosestSection(t *testing.T) {
	t.Parallel()

	c, rec := newTestCli(t)

	repo, err := c.CreateSection("repo", "repository commands")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := repo.CreateCommand("list", "lists repositories", func(*Arguments) error { return nil }); err != nil {
		t.Fatal(err)
	}

	if code := c.Run([]string{"repo", "bogus"}); code != ExUsage {
		t.Fatalf("exit code = %d, want %d", code, ExUsage)
	}

	out := rec.String()
	if !strings.Contains(out, "repo [SUB_SECTION, ..] COMMAND") {
		t.Fatalf("usage is not for the deepest section reached: %q", out)
	}
	if !strings.Contains(out, "list") {
		t.Fatalf("section usage does not list its commands: %q", out)
	}
}

func TestRunEmptyArgsPrintsRootUsage(t *testing.T) {
	t.Parallel()

	c, rec := newTestCli(t)
	if _, err := c.CreateSection("repo", "repository commands"); err != nil {
		t.Fatal(err)
	}

	if code := c.Run(nil); code != ExUsage {
		t.Fatalf("exit code = %d, want %d", code, ExUsage)
	}
	if !strings.Contains(rec.String(), "Available Sections:") {
		t.Fatalf("root usage missing: %q", rec.String())
	}
}

func TestRunStopsDescentAtOption(t *testing.T) {
	t.Parallel()

	c, rec := newTestCli(t)
	if _, err := c.CreateSection("repo", "repository commands"); err != nil {
		t.Fatal(err)
	}

	// The option token must not be consumed as a path element.
	if code := c.Run([]string{"repo", "--detail"}); code != ExUsage {
		t.Fatalf("exit code = %d, want %d", code, ExUsage)
	}
	if !strings.Contains(rec.String(), "repo [SUB_SECTION, ..] COMMAND") {
		t.Fatalf("usage is not for the repo section: %q", rec.String())
	}
}

func TestRunMissingRequiredOption(t *testing.T) {
	t.Parallel()

	c, rec := newTestCli(t)
	var calls []*Arguments

	cmd, err := c.CreateCommand("create", "creates a thing", captureHandler(&calls))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cmd.CreateOption("--id", "identifier"); err != nil {
		t.Fatal(err)
	}

	if code := c.Run([]string{"create"}); code != ExUsage {
		t.Fatalf("exit code = %d, want %d", code, ExUsage)
	}
	if len(calls) != 0 {
		t.Fatal("handler was invoked despite a missing required option")
	}
	out := rec.String()
	if !strings.Contains(out, "required but were not specified") || !strings.Contains(out, "--id") {
		t.Fatalf("missing option callout absent: %q", out)
	}
}

func TestRunUnknownOption(t *testing.T) {
	t.Parallel()

	c, rec := newTestCli(t)
	var calls []*Arguments

	if _, err := c.CreateCommand("list", "lists things", captureHandler(&calls)); err != nil {
		t.Fatal(err)
	}

	if code := c.Run([]string{"list", "--bogus"}); code != ExUsage {
		t.Fatalf("exit code = %d, want %d", code, ExUsage)
	}
	if len(calls) != 0 {
		t.Fatal("handler was invoked despite an unknown option")
	}
	if !strings.Contains(rec.String(), "--bogus") {
		t.Fatalf("unexpected option callout absent: %q", rec.String())
	}
}

func TestRunHelpShortCircuits(t *testing.T) {
	t.Parallel()

	c, rec := newTestCli(t)
	var calls []*Arguments

	cmd, err := c.CreateCommand("create", "creates a thing", captureHandler(&calls))
	if err != nil {
		t.Fatal(err)
	}
	opt, err := cmd.CreateOption("--id", "identifier")
	if err != nil {
		t.Fatal(err)
	}
	opt.Aliases = []string{"-i"}

	if code := c.Run([]string{"create", "--help"}); code != ExOk {
		t.Fatalf("exit code = %d, want %d", code, ExOk)
	}
	if len(calls) != 0 {
		t.Fatal("handler was invoked on a help request")
	}
	out := rec.String()
	if !strings.Contains(out, "Command: create") || !strings.Contains(out, "--id, -i") {
		t.Fatalf("command usage missing triggers: %q", out)
	}
	if !strings.Contains(out, "(required)") {
		t.Fatalf("required marker missing: %q", out)
	}
}

func TestRunValidationFailure(t *testing.T) {
	t.Parallel()

	c, rec := newTestCli(t)
	var calls []*Arguments

	cmd, err := c.CreateCommand("create", "creates a thing", captureHandler(&calls))
	if err != nil {
		t.Fatal(err)
	}
	opt, err := cmd.CreateOption("--count", "how many")
	if err != nil {
		t.Fatal(err)
	}
	opt.ValidateFunc = func(value string) error {
		return errors.New("not a number")
	}

	if code := c.Run([]string{"create", "--count", "x"}); code != ExDataErr {
		t.Fatalf("exit code = %d, want %d", code, ExDataErr)
	}
	if len(calls) != 0 {
		t.Fatal("handler was invoked despite a validation failure")
	}
	if !strings.Contains(rec.String(), "not a number") {
		t.Fatalf("validation message absent: %q", rec.String())
	}
}

func TestRunHandlerExitCode(t *testing.T) {
	t.Parallel()

	c, _ := newTestCli(t)
	if _, err := c.CreateCommand("fail", "always fails", func(*Arguments) error {
		return Exit(3)
	}); err != nil {
		t.Fatal(err)
	}

	if code := c.Run([]string{"fail"}); code != 3 {
		t.Fatalf("exit code = %d, want 3", code)
	}
}

func TestRunHandlerError(t *testing.T) {
	t.Parallel()

	c, rec := newTestCli(t)
	if _, err := c.CreateCommand("fail", "always fails", func(*Arguments) error {
		return errors.New("backend unreachable")
	}); err != nil {
		t.Fatal(err)
	}

	if code := c.Run([]string{"fail"}); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(rec.String(), "backend unreachable") {
		t.Fatalf("handler error not reported: %q", rec.String())
	}
}

func TestDuplicateNamesRejected(t *testing.T) {
	t.Parallel()

	c, _ := newTestCli(t)
	if _, err := c.CreateSection("repo", "first"); err != nil {
		t.Fatal(err)
	}

	// Sections and commands share their parent's namespace.
	if _, err := c.CreateSection("repo", "second"); !errors.Is(err, ErrInvalidStructure) {
		t.Fatalf("duplicate section error = %v, want ErrInvalidStructure", err)
	}
	if _, err := c.CreateCommand("repo", "collides", func(*Arguments) error { return nil }); !errors.Is(err, ErrInvalidStructure) {
		t.Fatalf("command/section collision error = %v, want ErrInvalidStructure", err)
	}
}

func TestDuplicateOptionTriggerRejected(t *testing.T) {
	t.Parallel()

	c, _ := newTestCli(t)
	cmd, err := c.CreateCommand("create", "creates a thing", func(*Arguments) error { return nil })
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cmd.CreateOption("--id", "identifier"); err != nil {
		t.Fatal(err)
	}
	if _, err := cmd.CreateOption("--id", "again"); !errors.Is(err, ErrInvalidStructure) {
		t.Fatalf("duplicate option error = %v, want ErrInvalidStructure", err)
	}
	if _, err := cmd.CreateOption("bad", "no dashes"); !errors.Is(err, ErrInvalidStructure) {
		t.Fatalf("malformed trigger error = %v, want ErrInvalidStructure", err)
	}
}

func TestRemoveAndFind(t *testing.T) {
	t.Parallel()

	c, _ := newTestCli(t)
	sec, err := c.CreateSection("repo", "repository commands")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := sec.CreateCommand("list", "lists", func(*Arguments) error { return nil }); err != nil {
		t.Fatal(err)
	}

	if c.FindSection("repo") != sec {
		t.Fatal("FindSection did not return the added section")
	}
	if sec.FindCommand("list") == nil {
		t.Fatal("FindCommand did not return the added command")
	}
	if sec.RemoveCommand("list") == nil || sec.FindCommand("list") != nil {
		t.Fatal("RemoveCommand did not remove the command")
	}
	if c.RemoveSection("repo") != sec || c.FindSection("repo") != nil {
		t.Fatal("RemoveSection did not remove the section")
	}
	if c.RemoveSection("repo") != nil {
		t.Fatal("removing a missing section should return nil")
	}
}

func TestPrintMap(t *testing.T) {
	t.Parallel()

	c, rec := newTestCli(t)
	sec, err := c.CreateSection("repo", "repository commands")
	if err != nil {
		t.Fatal(err)
	}
	cmd, err := sec.CreateCommand("list", "lists repositories", func(*Arguments) error { return nil })
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cmd.CreateFlag("--all", "include hidden"); err != nil {
		t.Fatal(err)
	}

	c.PrintMap(WithMapOptions())

	out := rec.String()
	for _, want := range []string{"repo: repository commands", "list:", "--all: include hidden"} {
		if !strings.Contains(out, want) {
			t.Fatalf("map output missing %q: %q", want, out)
		}
	}
}
