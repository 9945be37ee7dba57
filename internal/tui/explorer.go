// Package tui is an interactive explorer for the memory relation:
// adjust the model parameters live and watch the strain curve move
// against the detector threshold.
package tui

import (
	"context"
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akathpalia/kmrsim/internal/analysis"
	"github.com/akathpalia/kmrsim/internal/config"
	"github.com/akathpalia/kmrsim/internal/sweep"
	"github.com/akathpalia/kmrsim/internal/viz"
)

// field is one adjustable config entry: inc/dec mutate a copy, which is
// validated before it replaces the live config.
type field struct {
	name string
	show func(*config.Config) string
	inc  func(*config.Config)
	dec  func(*config.Config)
}

var fields = []field{
	{
		name: "epsilon",
		show: func(c *config.Config) string { return fmt.Sprintf("%.4f", c.Epsilon) },
		inc:  func(c *config.Config) { c.Epsilon = math.Min(c.Epsilon*1.25, 1.0) },
		dec:  func(c *config.Config) { c.Epsilon /= 1.25 },
	},
	{
		name: "delta_m [g]",
		show: func(c *config.Config) string { return fmt.Sprintf("%.3e", c.DeltaM) },
		inc:  func(c *config.Config) { c.DeltaM *= 2 },
		dec:  func(c *config.Config) { c.DeltaM /= 2 },
	},
	{
		name: "distance [cm]",
		show: func(c *config.Config) string { return fmt.Sprintf("%.3e", c.Distance) },
		inc:  func(c *config.Config) { c.Distance *= 2 },
		dec:  func(c *config.Config) { c.Distance /= 2 },
	},
	{
		name: "v_ej [cm/s]",
		show: func(c *config.Config) string { return fmt.Sprintf("%.3e", c.VEj) },
		inc:  func(c *config.Config) { c.VEj = math.Min(c.VEj*1.25, 0.99*2.9979e10) },
		dec:  func(c *config.Config) { c.VEj /= 1.25 },
	},
	{
		name: "mass decades",
		show: func(c *config.Config) string {
			return fmt.Sprintf("10^%.0f – 10^%.0f", c.MassLowExp, c.MassHighExp)
		},
		inc: func(c *config.Config) { c.MassHighExp++ },
		dec: func(c *config.Config) { c.MassHighExp-- },
	},
}

type Model struct {
	cfg    *config.Config
	cursor int
	result *sweep.Result
	plot   *viz.LogLogPlot
	err    error
}

func NewModel(cfg *config.Config) Model {
	m := Model{
		cfg:  cfg,
		plot: viz.NewLogLogPlot(cfg.Threshold),
	}
	m.resweep()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(fields)-1 {
			m.cursor++
		}
	case "right", "l", "+":
		m.adjust(fields[m.cursor].inc)
	case "left", "h", "-":
		m.adjust(fields[m.cursor].dec)
	case "r":
		m.cfg = config.DefaultConfig()
		m.resweep()
	}
	return m, nil
}

// adjust applies a mutation to a copy and keeps it only if it survives
// validation; invalid edits are silently dropped.
func (m *Model) adjust(mutate func(*config.Config)) {
	next := *m.cfg
	mutate(&next)
	if err := next.Validate(); err != nil {
		return
	}
	m.cfg = &next
	m.resweep()
}

func (m *Model) resweep() {
	m.result, m.err = sweep.Run(context.Background(), m.cfg.Params(), m.cfg.Grid())
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(viz.Title.Render("kmrsim — GW memory strain vs PBH mass"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(fmt.Sprintf("error: %v\n", m.err))
		return b.String()
	}

	b.WriteString(viz.Curve.Render(m.plot.Render(m.result.Masses, m.result.Strains)))
	b.WriteString("\n")

	b.WriteString("  " + viz.Subtle.Render(m.result.Range()))
	if lo, hi, ok := analysis.DetectableBand(m.result.Masses, m.result.Strains, m.cfg.Threshold); ok {
		b.WriteString(viz.Threshold.Render(fmt.Sprintf("   detectable above Δh=%.0e for M in [%.2e, %.2e] g", m.cfg.Threshold, lo, hi)))
	} else {
		b.WriteString(viz.Threshold.Render(fmt.Sprintf("   below Δh=%.0e everywhere", m.cfg.Threshold)))
	}
	b.WriteString("\n\n")

	for i, f := range fields {
		marker := "  "
		if i == m.cursor {
			marker = viz.Value.Render("> ")
		}
		b.WriteString(fmt.Sprintf("  %s%-14s %s\n", marker, f.name, viz.Value.Render(f.show(m.cfg))))
	}

	b.WriteString("\n  " + viz.KeyHint.Render("↑/↓ select  ←/→ adjust  r reset  q quit") + "\n")
	return b.String()
}

// Run launches the explorer with the given starting configuration.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(NewModel(cfg))
	_, err := p.Run()
	return err
}
