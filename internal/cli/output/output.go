// Package output renders CLI results for humans and for scripts.
//
// A Renderer writes styled text when attached to a terminal and plain
// Markdown otherwise. JSON and YAML modes emit machine-readable documents
// only, with no decoration.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// OutputMode selects how results are rendered.
type OutputMode string

// Mode is shorthand for OutputMode.
type Mode = OutputMode

// Output modes.
const (
	ModeAuto     OutputMode = "auto"     // text on a terminal, markdown otherwise
	ModeText     OutputMode = "text"     // styled terminal output
	ModeMarkdown OutputMode = "markdown" // plain markdown for agents and scripts
	ModeJSON     OutputMode = "json"
	ModeYAML     OutputMode = "yaml"
)

// Renderer writes command output in the selected mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   OutputMode
	isTTY  bool
	styles *Styles
}

// NewRenderer creates a renderer, detecting whether out is a terminal.
func NewRenderer(out, errOut io.Writer, mode OutputMode) *Renderer {
	return NewRendererWithTTY(out, errOut, isTerminal(out), mode)
}

// NewRendererWithTTY creates a renderer with an explicit terminal state.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode OutputMode) *Renderer {
	if mode == "" {
		mode = ModeAuto
	}

	lg := lipgloss.NewRenderer(out)
	if !isTTY {
		lg.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		isTTY:  isTTY,
		styles: NewStyles(lg),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}

// Mode returns the configured mode.
func (r *Renderer) Mode() OutputMode {
	return r.mode
}

// EffectiveMode resolves ModeAuto against the terminal state.
func (r *Renderer) EffectiveMode() OutputMode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if r.isTTY {
		return ModeText
	}
	return ModeMarkdown
}

// IsTTY reports whether output goes to a terminal.
func (r *Renderer) IsTTY() bool {
	return r.isTTY
}

// Styles returns the renderer's styles.
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Writer returns the primary output writer.
func (r *Renderer) Writer() io.Writer {
	return r.out
}

// Println writes a line to the primary output.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}

// Printf writes formatted output to the primary output.
func (r *Renderer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.out, format, a...)
}

// Header writes a heading. Markdown mode uses # markers.
func (r *Renderer) Header(level int, text string) {
	if r.EffectiveMode() == ModeMarkdown {
		r.Println(FormatHeader(level, text))
		r.Println("")
		return
	}
	style := r.styles.Header
	if level > 1 {
		style = r.styles.Subheader
	}
	r.Println(style.Render(text))
}

// Success writes a success message.
func (r *Renderer) Success(msg string) {
	r.Println(r.styles.Success.Render("✓ " + msg))
}

// Warning writes a warning to the error output.
func (r *Renderer) Warning(msg string) {
	_, _ = fmt.Fprintln(r.errOut, r.styles.Warning.Render("! "+msg))
}

// Error writes an error to the error output.
func (r *Renderer) Error(msg string) {
	_, _ = fmt.Fprintln(r.errOut, r.styles.Error.Render("✗ "+msg))
}

// Muted renders text in the muted style.
func (r *Renderer) Muted(text string) string {
	return r.styles.Muted.Render(text)
}

// JSON writes v as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// YAML writes v as YAML.
func (r *Renderer) YAML(v any) error {
	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// Data writes v in the structured format of the effective mode.
// It returns false when the mode is not structured.
func (r *Renderer) Data(v any) (bool, error) {
	switch r.EffectiveMode() {
	case ModeJSON:
		return true, r.JSON(v)
	case ModeYAML:
		return true, r.YAML(v)
	}
	return false, nil
}
