package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/clash-verge-rev/clash-verge-rev-i18n-cli/internal/model"
)

// Renderer writes per-file results and the run summary to an output stream.
type Renderer interface {
	Render(res model.Result) error
	Summary(sum model.Summary) error
}

// New returns the renderer for the given output format.
func New(format string) Renderer {
	switch format {
	case "json":
		return NewJSONRenderer()
	default:
		return NewTextRenderer()
	}
}

// ---------------------------------------------------------------------------
// Text Renderer (colorized terminal output)
// ---------------------------------------------------------------------------

var (
	styleOK      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))  // green
	styleFinding = lipgloss.NewStyle().Foreground(lipgloss.Color("220")) // yellow
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true) // red bold
	stylePath    = lipgloss.NewStyle().Foreground(lipgloss.Color("39")) // cyan
	styleKey     = lipgloss.NewStyle().Faint(true)
)

// TextRenderer prints results to the terminal with severity-based colors.
type TextRenderer struct {
	w io.Writer
}

// NewTextRenderer returns a Renderer that writes colorized text to stdout.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{w: os.Stdout}
}

func (r *TextRenderer) Render(res model.Result) error {
	path := stylePath.Render(res.Path)

	switch res.Status {
	case model.StatusOK:
		_, err := fmt.Fprintf(r.w, "%s: %s\n", path, styleOK.Render("OK"))
		return err
	case model.StatusSorted:
		_, err := fmt.Fprintf(r.w, "Sorted %s\n", path)
		return err
	case model.StatusDuplicates:
		if _, err := fmt.Fprintf(r.w, "%s: %s\n", path, styleFinding.Render("DUPLICATES:")); err != nil {
			return err
		}
		for _, d := range res.Duplicates {
			if _, err := fmt.Fprintf(r.w, "  %s  (%d times)\n", styleKey.Render(d.Key), d.Count); err != nil {
				return err
			}
		}
		return nil
	case model.StatusMissing:
		if _, err := fmt.Fprintf(r.w, "%s: %s\n", path, styleFinding.Render("MISSING:")); err != nil {
			return err
		}
		for _, k := range res.Missing {
			if _, err := fmt.Fprintf(r.w, "  %s\n", styleKey.Render(k)); err != nil {
				return err
			}
		}
		return nil
	case model.StatusError:
		_, err := fmt.Fprintf(r.w, "%s: %s %s\n", path, styleError.Render("ERROR:"), res.Error)
		return err
	default:
		_, err := fmt.Fprintf(r.w, "%s: %s\n", path, res.Status)
		return err
	}
}

func (r *TextRenderer) Summary(sum model.Summary) error {
	line := fmt.Sprintf("%d file(s) checked, %d with findings, %d error(s)",
		sum.FilesChecked, sum.Findings, sum.Errors)
	switch {
	case sum.Errors > 0:
		line = styleError.Render(line)
	case sum.Findings > 0:
		line = styleFinding.Render(line)
	default:
		line = styleOK.Render(line)
	}
	_, err := fmt.Fprintln(r.w, line)
	return err
}

// ---------------------------------------------------------------------------
// JSON Renderer (structured output for piping)
// ---------------------------------------------------------------------------

// JSONRenderer prints each result as a single JSON object per line.
type JSONRenderer struct {
	enc *json.Encoder
}

// NewJSONRenderer returns a Renderer that writes JSON lines to stdout.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{enc: json.NewEncoder(os.Stdout)}
}

func (r *JSONRenderer) Render(res model.Result) error {
	return r.enc.Encode(res)
}

func (r *JSONRenderer) Summary(sum model.Summary) error {
	return r.enc.Encode(struct {
		Summary model.Summary `json:"summary"`
	}{sum})
}
