package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cellmorph/utils/rng"
	"github.com/cellmorph/utils/sampling"
	"github.com/cellmorph/utils/stats"
)

// BenchCmd measures generator throughput, serially and with split workers.
type BenchCmd struct {
	Draws   int  `help:"Draws per repetition" default:"5000000"`
	Reps    int  `help:"Repetitions per generator" default:"5"`
	Workers int  `help:"Workers for the parallel pass" default:"4"`
	Plain   bool `help:"Print plain text instead of the progress UI"`
}

// benchResult is one generator's throughput summary in millions of draws
// per second.
type benchResult struct {
	name             string
	serial, parallel stats.Accumulator
}

func (c *BenchCmd) Run(cli *CLI) error {
	if c.Draws < 1 || c.Reps < 1 {
		return fmt.Errorf("draws and reps must be positive")
	}

	if c.Plain {
		logger := setupLogger(cli.Debug)
		results := c.measure(func(done, total int, name string) {
			logger.Debug("Benchmark progress", "generator", name, "step", done, "of", total)
		})
		fmt.Println(renderResults(results))
		return nil
	}

	m := newBenchModel()
	p := tea.NewProgram(m)
	go func() {
		results := c.measure(func(done, total int, name string) {
			p.Send(progressMsg{pct: float64(done) / float64(total), label: name})
		})
		p.Send(doneMsg{results: results})
	}()
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(benchModel); ok && fm.results != nil {
		fmt.Println(renderResults(fm.results))
	}
	return nil
}

// measure runs the benchmark matrix, reporting progress after every
// generator/repetition step.
func (c *BenchCmd) measure(report func(done, total int, name string)) []benchResult {
	names := rng.Names()
	total := len(names) * c.Reps
	done := 0

	var results []benchResult
	for _, name := range names {
		res := benchResult{name: name}
		for rep := 0; rep < c.Reps; rep++ {
			parent, _ := rng.NewFromName(name, uint64(rep))

			start := time.Now()
			var sink float64
			for i := 0; i < c.Draws; i++ {
				sink += parent.Float64()
			}
			res.serial.Add(rate(c.Draws, time.Since(start)))
			_ = sink

			start = time.Now()
			sampling.ParallelFloat64s(parent, c.Draws, c.Workers)
			res.parallel.Add(rate(c.Draws, time.Since(start)))

			done++
			report(done, total, name)
		}
		results = append(results, res)
	}
	return results
}

// rate converts a draw count and duration to millions of draws per second.
func rate(draws int, d time.Duration) float64 {
	return float64(draws) / d.Seconds() / 1e6
}

var (
	benchTitleStyle = lipgloss.NewStyle().Bold(true)
	benchCellStyle  = lipgloss.NewStyle().PaddingRight(2)
	benchNameStyle  = lipgloss.NewStyle().PaddingRight(2).Foreground(lipgloss.Color("86"))
)

func renderResults(results []benchResult) string {
	out := benchTitleStyle.Render("Throughput (million draws/sec, mean ± stderr)") + "\n"
	for _, r := range results {
		out += benchNameStyle.Render(fmt.Sprintf("%-16s", r.name))
		out += benchCellStyle.Render(fmt.Sprintf("serial %7.1f ± %.1f", r.serial.Mean(), r.serial.StdError()))
		out += benchCellStyle.Render(fmt.Sprintf("parallel %7.1f ± %.1f", r.parallel.Mean(), r.parallel.StdError()))
		out += "\n"
	}
	return out
}

// benchModel is the Bubble Tea model showing benchmark progress.
type benchModel struct {
	bar     progress.Model
	pct     float64
	label   string
	results []benchResult
}

type progressMsg struct {
	pct   float64
	label string
}

type doneMsg struct {
	results []benchResult
}

func newBenchModel() benchModel {
	return benchModel{bar: progress.New(progress.WithDefaultGradient())}
}

func (m benchModel) Init() tea.Cmd { return nil }

func (m benchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		m.pct = msg.pct
		m.label = msg.label
		return m, nil
	case doneMsg:
		m.results = msg.results
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.bar.Width = msg.Width - 20
		return m, nil
	}
	return m, nil
}

func (m benchModel) View() string {
	if m.results != nil {
		return ""
	}
	return fmt.Sprintf("\n  Benchmarking %s\n\n  %s\n", m.label, m.bar.ViewAs(m.pct))
}
