// SPDX-License-Identifier: MPL-2.0

// Package prompt wraps reading from and writing to a terminal-like stream.
// A Prompt owns an input line source and an output writer and layers
// colorizing (lipgloss), wrapping, centering, cursor movement, and tag
// recording on top of them. All higher-level widgets in this module
// (progress bars, tables, the CLI dispatcher, the interactive shell) render
// through a Prompt so that their output can be redirected and inspected in
// tests.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/ansi"
	"golang.org/x/term"
)

const (
	// WidthTerminal configures wrapping to the live terminal width,
	// re-measured on every write.
	WidthTerminal = -1

	// Fallback dimensions when the output is not a terminal.
	defaultWidth  = 80
	defaultHeight = 24
)

// ErrAbort is returned by read operations when the user interrupts the
// input (ctrl+c, ctrl+d, or end of the input stream).
var ErrAbort = errors.New("input aborted")

// ErrInterrupt signals a simulated keyboard interrupt from a LineReader.
// Read converts it to ErrAbort unless the read is marked uninterruptable.
var ErrInterrupt = errors.New("keyboard interrupt")

// TagDirection distinguishes recorded read tags from write tags.
type TagDirection string

const (
	// TagRead marks a tag recorded by a read operation.
	TagRead TagDirection = "read"
	// TagWrite marks a tag recorded by a write operation.
	TagWrite TagDirection = "write"
)

// All type declarations consolidated in a single block.
type (
	// LineReader is the input side of a Prompt. Implementations return one
	// line per call, without the trailing newline.
	LineReader interface {
		ReadLine() (string, error)
	}

	// Tag is a single recorded read or write tag.
	Tag struct {
		Direction TagDirection
		Value     string
	}

	// Prompt communicates between the application and the user.
	Prompt struct {
		in         LineReader
		stdinIn    bool
		out        io.Writer
		enableCol  bool
		wrapWidth  int
		recordTags bool
		tags       []Tag

		// fixed size override, used by tests and non-tty outputs
		sizeW, sizeH int
	}

	// Option configures a Prompt.
	Option func(*Prompt)

	// readConfig collects per-read settings.
	readConfig struct {
		tag           string
		uninterruptab bool
		allowEmpty    bool
	}

	// ReadOption configures a single read operation.
	ReadOption func(*readConfig)

	// writeConfig collects per-write settings.
	writeConfig struct {
		noNewline bool
		center    bool
		style     *lipgloss.Style
		tag       string
		skipWrap  bool
	}

	// WriteOption configures a single write operation.
	WriteOption func(*writeConfig)

	// bufioLineReader adapts an io.Reader into a LineReader.
	bufioLineReader struct {
		r *bufio.Reader
	}
)

// WithInput sets the input stream. The reader is consumed line by line.
func WithInput(r io.Reader) Option {
	return func(p *Prompt) {
		p.in = &bufioLineReader{r: bufio.NewReader(r)}
		p.stdinIn = false
	}
}

// WithLineReader sets the input line source directly. Use this to plug in a
// Script or another custom source that needs to signal interrupts.
func WithLineReader(lr LineReader) Option {
	return func(p *Prompt) {
		p.in = lr
		p.stdinIn = false
	}
}

// WithOutput sets the output writer.
func WithOutput(w io.Writer) Option {
	return func(p *Prompt) { p.out = w }
}

// WithColor enables or disables color output. When disabled, Color returns
// its input unchanged and no ANSI color sequences are emitted.
func WithColor(enabled bool) Option {
	return func(p *Prompt) { p.enableCol = enabled }
}

// WithWrapWidth sets the automatic wrap width applied by Write. Zero
// disables wrapping; WidthTerminal tracks the terminal width.
func WithWrapWidth(width int) Option {
	return func(p *Prompt) { p.wrapWidth = width }
}

// WithTagRecording makes the prompt keep track of tags passed to read and
// write calls. Intended for tests that assert on what was rendered.
func WithTagRecording() Option {
	return func(p *Prompt) { p.recordTags = true }
}

// WithTerminalSize fixes the reported terminal size instead of querying the
// output stream. Useful in tests and for non-terminal outputs.
func WithTerminalSize(width, height int) Option {
	return func(p *Prompt) { p.sizeW, p.sizeH = width, height }
}

// New creates a Prompt reading from stdin and writing to stdout unless
// overridden by options. Color is enabled by default.
func New(opts ...Option) *Prompt {
	p := &Prompt{
		in:        &bufioLineReader{r: bufio.NewReader(os.Stdin)},
		stdinIn:   true,
		out:       os.Stdout,
		enableCol: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Output returns the prompt's output writer. Widgets that bypass the prompt
// (the SSH shell, the bang escape) write to the same destination.
func (p *Prompt) Output() io.Writer {
	return p.out
}

// ReadTag records the given tag for this read operation.
func ReadTag(tag string) ReadOption {
	return func(c *readConfig) { c.tag = tag }
}

// Uninterruptable makes the read propagate interrupt errors instead of
// converting them to ErrAbort.
func Uninterruptable() ReadOption {
	return func(c *readConfig) { c.uninterruptab = true }
}

// AllowEmpty accepts a blank line as valid input in Ask.
func AllowEmpty() ReadOption {
	return func(c *readConfig) { c.allowEmpty = true }
}

// Read writes the question without a trailing newline and reads one line of
// input. Interrupts and end-of-input return ErrAbort (after emitting a line
// break) unless the read is uninterruptable.
func (p *Prompt) Read(question string, opts ...ReadOption) (string, error) {
	cfg := readConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	p.recordTag(TagRead, cfg.tag)
	p.Write(question, NoNewline())

	line, err := p.in.ReadLine()
	if err != nil {
		if cfg.uninterruptab {
			return "", err
		}
		// A ^C or ^D does not produce a line break on its own.
		p.Write("")
		return "", ErrAbort
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// NoNewline suppresses the trailing newline appended by Write.
func NoNewline() WriteOption {
	return func(c *writeConfig) { c.noNewline = true }
}

// Centered centers the written content.
func Centered() WriteOption {
	return func(c *writeConfig) { c.center = true }
}

// Styled renders the content with the given style before writing.
func Styled(style lipgloss.Style) WriteOption {
	return func(c *writeConfig) { c.style = &style }
}

// WriteTag records the given tag for this write operation.
func WriteTag(tag string) WriteOption {
	return func(c *writeConfig) { c.tag = tag }
}

// SkipWrap bypasses the prompt's automatic wrapping for this write.
func SkipWrap() WriteOption {
	return func(c *writeConfig) { c.skipWrap = true }
}

// Write writes content to the output stream, applying wrapping, centering,
// and styling as configured. A trailing newline is appended unless
// suppressed with NoNewline.
func (p *Prompt) Write(content string, opts ...WriteOption) {
	cfg := writeConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	p.recordTag(TagWrite, cfg.tag)

	if !cfg.skipWrap {
		content = p.Wrap(content, p.wrapWidth, 0)
	}
	if cfg.center {
		content = p.Center(content, 0)
	}
	if cfg.style != nil {
		content = p.Color(content, *cfg.style)
	}
	if !cfg.noNewline {
		content += "\n"
	}

	fmt.Fprint(p.out, content)
}

// Writef formats according to a format specifier and writes the result with
// a trailing newline.
func (p *Prompt) Writef(format string, args ...any) {
	p.Write(fmt.Sprintf(format, args...))
}

// Color renders the given text with the given style. When color is disabled
// on this prompt the text is returned unchanged, so callers can style
// unconditionally.
func (p *Prompt) Color(text string, style lipgloss.Style) string {
	if !p.enableCol {
		return text
	}
	return style.Render(text)
}

// ColorEnabled reports whether this prompt emits styled output.
func (p *Prompt) ColorEnabled() bool {
	return p.enableCol
}

// WrapWidth returns the configured wrap width. It is zero when auto-wrap is
// disabled and may be WidthTerminal.
func (p *Prompt) WrapWidth() int {
	return p.wrapWidth
}

// Center pads the text on the left so it is centered. The width used is the
// first configured value of: the width argument, the prompt's wrap width,
// the terminal width.
func (p *Prompt) Center(text string, width int) string {
	if width <= 0 {
		if p.wrapWidth > 0 {
			width = p.wrapWidth
		} else {
			width, _ = p.TerminalSize()
		}
	}

	printable := ansi.PrintableRuneWidth(text)
	if printable >= width {
		return text
	}
	return strings.Repeat(" ", (width-printable)/2) + text
}

// Wrap introduces line breaks to keep content within the given width,
// breaking at the rightmost space of each overlong line. Continuation lines
// are indented by remainingLineIndent. A width of zero disables wrapping;
// WidthTerminal resolves to the live terminal width.
func (p *Prompt) Wrap(content string, width, remainingLineIndent int) string {
	if width == 0 {
		return content
	}
	if width == WidthTerminal {
		width, _ = p.TerminalSize()
	}

	var lines []string
	firstPass := true

	for len(content) > 0 {
		if !firstPass {
			content = strings.Repeat(" ", remainingLineIndent) + strings.TrimLeft(content, " ")
		}
		firstPass = false

		if len(content) <= width {
			lines = append(lines, content)
			break
		}

		end := width
		chunk := content[:end]

		// Lucky case: the break lands exactly on a space.
		if content[end] == ' ' {
			lines = append(lines, chunk)
			content = content[end:]
			continue
		}

		// Backtrack to the rightmost space, but never into the indent or
		// the loop would not make progress.
		if idx := strings.LastIndexByte(chunk, ' '); idx > remainingLineIndent {
			end = idx
			chunk = content[:end]
		}

		lines = append(lines, chunk)
		content = content[end:]
	}

	return strings.Join(lines, "\n")
}

// TerminalSize returns the width and height of the terminal attached to the
// output, a fixed override if one was configured, or 80x24 when neither is
// available.
func (p *Prompt) TerminalSize() (int, int) {
	if p.sizeW > 0 {
		return p.sizeW, p.sizeH
	}
	if f, ok := p.out.(*os.File); ok {
		if w, h, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w, h
		}
	}
	return defaultWidth, defaultHeight
}

// -- cursor control ----------------------------------------------------------

// MoveUp moves the cursor up the given number of lines.
func (p *Prompt) MoveUp(lines int) { p.esc("%dA", lines) }

// MoveDown moves the cursor down the given number of lines.
func (p *Prompt) MoveDown(lines int) { p.esc("%dB", lines) }

// MoveForward moves the cursor forward the given number of characters.
func (p *Prompt) MoveForward(chars int) { p.esc("%dC", chars) }

// MoveBackward moves the cursor backward the given number of characters.
func (p *Prompt) MoveBackward(chars int) { p.esc("%dD", chars) }

// Clear clears the entire screen.
func (p *Prompt) Clear() { p.esc("2J") }

// ClearEOL clears from the cursor to the end of the line.
func (p *Prompt) ClearEOL() { p.esc("K") }

// ClearRemainder clears from the cursor to the end of the screen.
func (p *Prompt) ClearRemainder() { p.esc("J") }

// SavePosition saves the current cursor location; ResetPosition returns to it.
func (p *Prompt) SavePosition() { p.esc("s") }

// ResetPosition moves the cursor back to the last saved location.
func (p *Prompt) ResetPosition() { p.esc("u") }

func (p *Prompt) esc(format string, args ...any) {
	p.Write("\033["+fmt.Sprintf(format, args...), NoNewline(), SkipWrap())
}

// -- tags --------------------------------------------------------------------

// Tags returns every recorded tag in order, reads and writes interleaved.
// Empty unless the prompt was created with WithTagRecording.
func (p *Prompt) Tags() []Tag {
	return p.tags
}

// ReadTags returns the values of tags recorded by read operations.
func (p *Prompt) ReadTags() []string {
	return p.tagValues(TagRead)
}

// WriteTags returns the values of tags recorded by write operations.
func (p *Prompt) WriteTags() []string {
	return p.tagValues(TagWrite)
}

func (p *Prompt) tagValues(dir TagDirection) []string {
	var out []string
	for _, t := range p.tags {
		if t.Direction == dir {
			out = append(out, t.Value)
		}
	}
	return out
}

func (p *Prompt) recordTag(dir TagDirection, tag string) {
	if !p.recordTags || tag == "" {
		return
	}
	p.tags = append(p.tags, Tag{Direction: dir, Value: tag})
}

// ReadLine implements LineReader over a buffered reader.
func (b *bufioLineReader) ReadLine() (string, error) {
	line, err := b.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			// Final unterminated line still counts.
			return line, nil
		}
		return "", err
	}
	return line, nil
}
