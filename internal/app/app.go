package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/snakequiz/internal/catalog"
	"github.com/abhisek/snakequiz/internal/router"
	"github.com/abhisek/snakequiz/internal/screen"
	"github.com/abhisek/snakequiz/internal/screens/menu"
	"github.com/abhisek/snakequiz/internal/screens/quiz"
	"github.com/abhisek/snakequiz/internal/session"
	"github.com/abhisek/snakequiz/internal/ui/layout"
)

// Options holds the dependencies for the TUI.
type Options struct {
	Machine    *session.Machine
	Categories []catalog.Category

	// StartCategory, when set, skips the menu and opens that category.
	StartCategory string

	Logger *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router     *router.Router
	machine    *session.Machine
	categories int
	width      int
	height     int
}

// newAppModel creates the model with the category menu at the bottom of the
// stack, and the quiz on top of it when a start category is given.
func newAppModel(opts Options) (AppModel, error) {
	r := router.New(menu.New(opts.Machine, opts.Categories))

	if opts.StartCategory != "" {
		if _, err := opts.Machine.Start(opts.StartCategory); err != nil {
			return AppModel{}, fmt.Errorf("start %s: %w", opts.StartCategory, err)
		}
		r.Push(quiz.New(opts.Machine))
	}

	return AppModel{
		router:     r,
		machine:    opts.Machine,
		categories: len(opts.Categories),
	}, nil
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the frame around the active screen for the current size.
func (m AppModel) render() string {
	led := m.machine.Ledger()
	frame := layout.Frame{
		Title: m.router.Breadcrumb(),
		Stats: layout.HeaderStats{
			TotalPoints: led.Total(),
			Completed:   led.CompletedCount(),
			Categories:  m.categories,
		},
		Hints: []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}},
	}
	if hp, ok := m.router.Active().(screen.KeyHintProvider); ok {
		frame.Hints = hp.KeyHints()
	}
	return frame.Render(m.width, m.height, m.router.View)
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	model, err := newAppModel(opts)
	if err != nil {
		return err
	}

	log.Info("tui starting", zap.String("start_category", opts.StartCategory))
	p := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		log.Error("tui exited with error", zap.Error(err))
		return fmt.Errorf("run program: %w", err)
	}
	log.Info("tui stopped")
	return nil
}
