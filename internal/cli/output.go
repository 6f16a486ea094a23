package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// Printer writes operator-facing diagnostics with severity prefixes:
// [+] success, [*] info, [!] warning, [-] error. Errors are printed even
// when quiet.
type Printer struct {
	out   io.Writer
	quiet bool

	success lipgloss.Style
	info    lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	header  lipgloss.Style
	muted   lipgloss.Style
}

// Semantic palette.
var (
	colorSuccess = lipgloss.Color("#00E676")
	colorInfo    = lipgloss.Color("#00BFFF")
	colorWarning = lipgloss.Color("#FFD700")
	colorDanger  = lipgloss.Color("#FF5252")
	colorMuted   = lipgloss.Color("#8C8C8C")
)

// NewPrinter creates a Printer writing to out. Color is applied only when
// color is true and out is a terminal that supports it.
func NewPrinter(out io.Writer, color, quiet bool) *Printer {
	p := &Printer{out: out, quiet: quiet}
	if !color {
		plain := lipgloss.NewStyle()
		p.success, p.info, p.warning, p.failure, p.header, p.muted = plain, plain, plain, plain, plain, plain
		return p
	}

	r := lipgloss.NewRenderer(out)
	p.success = r.NewStyle().Foreground(colorSuccess)
	p.info = r.NewStyle().Foreground(colorInfo)
	p.warning = r.NewStyle().Foreground(colorWarning)
	p.failure = r.NewStyle().Foreground(colorDanger)
	p.header = r.NewStyle().Foreground(colorInfo).Bold(true)
	p.muted = r.NewStyle().Foreground(colorMuted)
	return p
}

// Success prints a success message.
func (p *Printer) Success(msg string) {
	p.line(false, p.success.Render("[+] "+msg))
}

// Info prints an informational message.
func (p *Printer) Info(msg string) {
	p.line(false, p.info.Render("[*] "+msg))
}

// Warning prints a warning message.
func (p *Printer) Warning(msg string) {
	p.line(false, p.warning.Render("[!] "+msg))
}

// Error prints an error message.
func (p *Printer) Error(msg string) {
	p.line(true, p.failure.Render("[-] "+msg))
}

// Header prints a section header.
func (p *Printer) Header(title string) {
	p.line(false, "")
	p.line(false, p.header.Render("=== "+title+" ==="))
}

// Plain prints an unprefixed line.
func (p *Printer) Plain(msg string) {
	p.line(false, msg)
}

// Muted prints a de-emphasized line.
func (p *Printer) Muted(msg string) {
	p.line(false, p.muted.Render(msg))
}

func (p *Printer) line(always bool, s string) {
	if p.quiet && !always {
		return
	}
	fmt.Fprintln(p.out, s)
}

// formatBytes formats bytes as human-readable string
func formatBytes(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.IBytes(uint64(n))
}
