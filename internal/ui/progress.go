package ui

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ProgressBar tracks a bounded emission run. Events can arrive hundreds
// of times per second, so renders are throttled to keep the terminal
// readable.
type ProgressBar struct {
	ui       *UI
	bar      progress.Model
	label    string
	total    int64
	current  int64
	lastDraw time.Time
	mu       sync.Mutex
	rendered bool
}

const drawInterval = 100 * time.Millisecond

// NewProgressBar creates a progress bar for an operation with a known
// event count.
func (u *UI) NewProgressBar(label string, total int64) *ProgressBar {
	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(30),
		progress.WithoutPercentage(),
	)

	return &ProgressBar{
		ui:    u,
		bar:   bar,
		label: label,
		total: total,
	}
}

// Update sets the current progress value and redraws if the throttle
// interval has passed.
func (p *ProgressBar) Update(current int64) {
	p.mu.Lock()
	p.current = current
	if time.Since(p.lastDraw) < drawInterval {
		p.mu.Unlock()
		return
	}
	p.lastDraw = time.Now()
	p.mu.Unlock()

	p.render()
}

func (p *ProgressBar) render() {
	p.mu.Lock()
	current := p.current
	total := p.total
	p.mu.Unlock()

	if !p.ui.shouldStyle() {
		if !p.rendered {
			fmt.Printf("%s: ", p.label)
			p.rendered = true
		}
		return
	}

	pct := float64(current) / float64(total)
	if pct > 1 {
		pct = 1
	}

	labelStyle := lipgloss.NewStyle().Width(18)
	countStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	fmt.Fprintf(os.Stdout, "\r\033[K  %s %s %s",
		labelStyle.Render(p.label),
		p.bar.ViewAs(pct),
		countStyle.Render(fmt.Sprintf("%d/%d", current, total)),
	)
}

// Complete finishes the progress bar with a success indicator.
func (p *ProgressBar) Complete() {
	p.mu.Lock()
	current := p.current
	total := p.total
	p.mu.Unlock()

	if !p.ui.shouldStyle() {
		fmt.Printf("%d/%d done\n", current, total)
		return
	}

	labelStyle := lipgloss.NewStyle().Width(18)

	fmt.Fprintf(os.Stdout, "\r\033[K  %s %s %s\n",
		StyleSuccess.Render(SymbolSuccess),
		labelStyle.Render(p.label),
		StyleSuccess.Render(fmt.Sprintf("%d/%d complete", total, total)),
	)
}

// Fail finishes the progress bar with an error indicator.
func (p *ProgressBar) Fail(err error) {
	if !p.ui.shouldStyle() {
		fmt.Printf("FAILED: %v\n", err)
		return
	}

	labelStyle := lipgloss.NewStyle().Width(18)

	fmt.Fprintf(os.Stdout, "\r\033[K  %s %s %s\n",
		StyleError.Render(SymbolError),
		labelStyle.Render(p.label),
		StyleError.Render(err.Error()),
	)
}
