// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"
	"fmt"
	"strings"

	"conch/pkg/cli"
	"conch/pkg/parsers"
	"conch/pkg/prompt"
	"conch/pkg/shell"
	"conch/pkg/table"
)

// sampleTask is one row in the demo task store.
type sampleTask struct {
	id       int
	title    string
	priority int
	done     bool
	tags     []string
}

// sampleTasks seeds the demo commands and shell screens.
var sampleTasks = []sampleTask{
	{1, "write release notes", 2, false, []string{"docs"}},
	{2, "fix prompt wrapping on narrow terminals", 3, true, []string{"bug", "prompt"}},
	{3, "archive stale branches", 1, false, nil},
}

// buildSampleCli assembles the dispatcher used by demo cli, map, and the
// shell's command items.
func buildSampleCli(p *prompt.Prompt) (*cli.Cli, error) {
	c := cli.New(p)

	if _, err := c.CreateCommand("version", "print the toolkit version", func(*cli.Arguments) error {
		p.Write("conch " + getVersionString())
		return nil
	}); err != nil {
		return nil, err
	}

	task, err := c.CreateSection("task", "create and inspect tasks")
	if err != nil {
		return nil, err
	}

	addCmd := cli.NewCommand("add", "add a task", func(args *cli.Arguments) error {
		title, _ := args.Get("title")
		priority, _ := args.Get("priority")
		p.Writef("added %q with priority %v", title, priority)
		for _, tag := range args.Strings("tag") {
			p.Writef("  tagged %s", tag)
		}
		return nil
	})

	titleOpt := cli.NewOption("--title", "short task title")
	titleOpt.Aliases = []string{"-t"}

	priorityOpt := cli.NewOption("--priority", "urgency from 1 (low) to 3 (high)")
	priorityOpt.Required = false
	priorityOpt.Default = 2
	priorityOpt.ParseFunc = parsers.PositiveInt

	tagOpt := cli.NewOption("--tag", "label for the task, may be used multiple times")
	tagOpt.Required = false
	tagOpt.AllowMultiple = true

	for _, opt := range []*cli.Option{titleOpt, priorityOpt, tagOpt} {
		if err := addCmd.AddOption(opt); err != nil {
			return nil, err
		}
	}
	if err := task.AddCommand(addCmd); err != nil {
		return nil, err
	}

	listCmd := cli.NewCommand("list", "list tasks in a table", func(args *cli.Arguments) error {
		return renderTaskTable(p, args.Flag("all"))
	})
	if _, err := listCmd.CreateFlag("--all", "include completed tasks"); err != nil {
		return nil, err
	}
	if err := task.AddCommand(listCmd); err != nil {
		return nil, err
	}

	doneCmd := cli.NewCommand("done", "mark a task as completed", func(args *cli.Arguments) error {
		id, _ := args.Get("id")
		for _, t := range sampleTasks {
			if t.id == id {
				p.Writef("completed #%d %s", t.id, t.title)
				return nil
			}
		}
		return fmt.Errorf("no task with id %v", id)
	})
	idOpt := cli.NewOption("--id", "task identifier")
	idOpt.Aliases = []string{"-i"}
	idOpt.ParseFunc = parsers.PositiveInt
	if err := doneCmd.AddOption(idOpt); err != nil {
		return nil, err
	}
	if err := task.AddCommand(doneCmd); err != nil {
		return nil, err
	}

	return c, nil
}

// renderTaskTable writes the sample tasks through the table widget.
func renderTaskTable(p *prompt.Prompt, includeDone bool) error {
	t := table.New(p, 4)
	t.TableWidth = 80
	t.ColWidths = []int{4, 40, 10, 12}
	t.ColSeparator = " | "
	t.HeaderStyle = &TitleStyle

	rows := [][]string{}
	for _, task := range sampleTasks {
		if task.done && !includeDone {
			continue
		}
		state := "open"
		if task.done {
			state = "done"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", task.id),
			task.title,
			state,
			strings.Join(task.tags, ","),
		})
	}
	return t.Render(rows, []string{"id", "title", "state", "tags"})
}

// buildSampleShell assembles the interactive shell used by the shell and
// serve commands.
func buildSampleShell(p *prompt.Prompt) (*shell.Shell, error) {
	sh := shell.New(p, shell.WithLogger(logger))
	sh.PromptPrefix = cfg.Shell.PromptPrefix
	sh.AutoRenderMenu = cfg.Shell.AutoRenderMenu

	main, err := shell.NewScreen("main")
	if err != nil {
		return nil, err
	}
	main.AddMenuItem(shell.NewMenuItem([]string{"g", "greet"}, "ask for a name and greet", func([]string) error {
		name, err := p.Read("What is your name?")
		if errors.Is(err, prompt.ErrAbort) {
			return nil
		}
		if err != nil {
			return err
		}
		p.Write("Hello, " + p.Color(name, SuccessStyle) + "!")
		return nil
	}))
	main.AddMenuItem(shell.NewMenuItem([]string{"t", "tasks"}, "switch to the task screen", func([]string) error {
		sh.Transition("tasks")
		return nil
	}))

	tasks, err := shell.NewScreen("tasks")
	if err != nil {
		return nil, err
	}
	tasks.AddMenuItem(shell.NewMenuItem([]string{"l", "list"}, "list tasks", func(args []string) error {
		includeDone := len(args) > 0 && args[0] == "all"
		return renderTaskTable(p, includeDone)
	}))
	tasks.AddMenuItem(shell.NewMenuItem([]string{"d", "done"}, "pick a task to complete", func([]string) error {
		titles := make([]string, len(sampleTasks))
		for i, t := range sampleTasks {
			titles[i] = t.title
		}
		idx, err := p.Menu("Which task is finished?", titles)
		if errors.Is(err, prompt.ErrAbort) {
			return nil
		}
		if err != nil {
			return err
		}
		p.Writef("completed #%d %s", sampleTasks[idx].id, sampleTasks[idx].title)
		return nil
	}))

	sh.AddScreen(main, true)
	sh.AddScreen(tasks, false)
	return sh, nil
}
