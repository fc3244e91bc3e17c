// SPDX-License-Identifier: MIT

// Package render prints worksheet reports.
//
// Two renderers are provided:
//   - Plain: a header line per step followed by the value, exactly as the
//     vector and matrix String methods print it. Suitable for piping and for
//     golden comparisons.
//   - Styled: the same content laid out with lipgloss (bold title, dimmed step
//     headers, rounded boxes around matrices).
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/linalg/internal/worksheet"
)

// Renderer writes a report, or the error that prevented one, to w.
type Renderer interface {
	Report(w io.Writer, rep *worksheet.Report) error
	Failure(w io.Writer, name string, err error) error
}

// New returns the styled renderer when styled is true and the plain one otherwise.
func New(styled bool) Renderer {
	if styled {
		return NewStyled()
	}

	return Plain{}
}

// ---------- plain ----------

// Plain renders reports as unstyled text.
type Plain struct{}

// Report writes
//
//	== name ==
//	[0] mul -> C
//	( 19, 22 )
//	( 43, 50 )
//
// Scalars and vectors are followed by a newline; matrices already end with one.
func (Plain) Report(w io.Writer, rep *worksheet.Report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "== %s ==\n", rep.Name)
	for _, o := range rep.Outputs {
		b.WriteString(o.Header())
		b.WriteByte('\n')
		b.WriteString(terminated(o.Value.String()))
	}
	_, err := io.WriteString(w, b.String())

	return err
}

// Failure writes "== name ==" followed by "error: <err>".
func (Plain) Failure(w io.Writer, name string, err error) error {
	_, werr := fmt.Fprintf(w, "== %s ==\nerror: %v\n", name, err)

	return werr
}

// terminated appends a newline unless s already ends with one.
func terminated(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}

	return s + "\n"
}

// ---------- styled ----------

// Styled renders reports with lipgloss.
type Styled struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Scalar lipgloss.Style
	Box    lipgloss.Style
	Error  lipgloss.Style
}

// NewStyled returns the default palette.
func NewStyled() *Styled {
	return &Styled{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ffff")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#444466")),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899")),
		Scalar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff4444")),
	}
}

// Report writes the title and one block per output. Matrices are boxed;
// scalars, booleans and vectors are printed on one highlighted line.
func (s *Styled) Report(w io.Writer, rep *worksheet.Report) error {
	blocks := make([]string, 0, len(rep.Outputs)+1)
	blocks = append(blocks, s.Title.Render(rep.Name))
	for _, o := range rep.Outputs {
		var body string
		if o.Value.Kind == worksheet.KindMatrix {
			body = s.Box.Render(strings.TrimSuffix(o.Value.String(), "\n"))
		} else {
			body = s.Scalar.Render(o.Value.String())
		}
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left, s.Header.Render(o.Header()), body))
	}
	_, err := io.WriteString(w, lipgloss.JoinVertical(lipgloss.Left, blocks...)+"\n")

	return err
}

// Failure writes the title and the error in the error style.
func (s *Styled) Failure(w io.Writer, name string, err error) error {
	out := lipgloss.JoinVertical(lipgloss.Left, s.Title.Render(name), s.Error.Render("error: "+err.Error()))
	_, werr := io.WriteString(w, out+"\n")

	return werr
}
