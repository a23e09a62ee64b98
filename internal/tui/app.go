package tui

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Iron-Ham/onboard/internal/catalog"
	"github.com/Iron-Ham/onboard/internal/event"
	"github.com/Iron-Ham/onboard/internal/onboard"
	"github.com/Iron-Ham/onboard/internal/tui/msg"
	tea "github.com/charmbracelet/bubbletea"
)

// errDisplayTime is how long an error stays in the status line.
const errDisplayTime = 5 * time.Second

// App wraps the Bubbletea program
type App struct {
	program   *tea.Program
	model     Model
	watcher   *catalog.Watcher
	altScreen bool
}

// New creates a new TUI application
func New(opts Options) *App {
	return &App{
		model:     NewModel(opts),
		altScreen: true,
	}
}

// SetAltScreen selects whether the program takes over the full terminal.
func (a *App) SetAltScreen(on bool) {
	a.altScreen = on
}

// WatchCatalog reloads features from w while the program runs. The app
// starts and stops the watcher.
func (a *App) WatchCatalog(w *catalog.Watcher) {
	a.watcher = w
}

// Run starts the TUI application
func (a *App) Run() error {
	var opts []tea.ProgramOption
	if a.altScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	a.program = tea.NewProgram(a.model, opts...)

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		if _, ok := <-sigChan; ok && a.program != nil {
			a.program.Send(tea.Quit())
		}
	}()

	if a.watcher != nil {
		a.watcher.SetCallbacks(
			func(features []onboard.Feature) {
				a.program.Send(msg.FeaturesChangedMsg{Features: features})
			},
			func(err error) {
				a.program.Send(msg.ErrMsg{Err: err})
			},
		)
		a.watcher.Start()
		defer a.watcher.Stop()
	}

	_, err := a.program.Run()

	// Clean up signal handler
	signal.Stop(sigChan)
	close(sigChan)

	return err
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return m.panel.SetProps(m.props())
}

// Update handles messages and updates the model
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		return m.handleKeypress(message)

	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		m.ready = true
		return m, nil

	case msg.FrameMsg:
		_, cmd := m.panel.Update(message)
		return m, cmd

	case msg.FeaturesChangedMsg:
		m.features = message.Features
		m.events.Publish(event.NewCatalogReloadedEvent(len(message.Features)))
		m.infoMessage = m.tr.T("Feature catalog reloaded")
		return m, m.panel.SetProps(m.props())

	case msg.ErrMsg:
		m.logger.Error("host error", "error", message.Err.Error())
		m.errorMessage = message.Err.Error()
		return m, msg.ClearErrAfter(errDisplayTime)

	case msg.ClearErrMsg:
		m.errorMessage = ""
		return m, nil
	}

	return m, nil
}
