package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"hoarder/internal/adapters/tui/views"
	"hoarder/internal/application/commands"
)

// ViewState represents the current view
type ViewState int

const (
	ViewLoading ViewState = iota
	ViewGraph
	ViewHelp
)

// Runner performs a full run, reporting each expansion step to progress
type Runner func(ctx context.Context, progress func(commands.ExpandProgress)) (*commands.RunResult, error)

// App is the main TUI application model
type App struct {
	run    Runner
	send   func(tea.Msg)
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	stopped bool
	running sync.WaitGroup

	state   ViewState
	loading *views.LoadingModel
	graph   *views.GraphModel
	help    *views.HelpModel
	result  *commands.RunResult

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(run Runner) *App {
	ctx, cancel := context.WithCancel(context.Background())
	return &App{
		run:     run,
		ctx:     ctx,
		cancel:  cancel,
		state:   ViewLoading,
		loading: views.NewLoadingModel(),
		graph:   views.NewGraphModel(),
		help:    views.NewHelpModel(),
	}
}

// SetSender sets where progress messages are delivered, normally
// (*tea.Program).Send. It must be called before the program starts.
func (a *App) SetSender(send func(tea.Msg)) {
	a.send = send
}

// Result returns the finished run, or nil while loading
func (a *App) Result() *commands.RunResult {
	return a.result
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loading.Init(), a.start)
}

type runFinishedMsg struct {
	result *commands.RunResult
	err    error
}

// Stop cancels the run and waits for it to return. Call it before closing
// anything the run writes to. A run not yet started will not start.
func (a *App) Stop() {
	a.mu.Lock()
	a.stopped = true
	a.mu.Unlock()
	a.cancel()
	a.running.Wait()
}

func (a *App) start() tea.Msg {
	a.mu.Lock()
	if a.stopped {
		a.mu.Unlock()
		return runFinishedMsg{err: context.Canceled}
	}
	a.running.Add(1)
	a.mu.Unlock()
	defer a.running.Done()

	result, err := a.run(a.ctx, func(p commands.ExpandProgress) {
		if a.send != nil {
			a.send(views.ProgressMsg(p))
		}
	})
	return runFinishedMsg{result: result, err: err}
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.loading.SetSize(msg.Width, msg.Height)
		a.graph.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case runFinishedMsg:
		if msg.err != nil {
			a.loading.SetMessage(msg.err.Error(), true)
			return a, nil
		}
		a.result = msg.result
		a.graph.SetGraph(msg.result.Graph)
		a.state = ViewGraph
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToGraphMsg:
		a.state = ViewGraph
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || (a.state == ViewLoading && msg.String() == "q") {
			a.cancel()
			return a, tea.Quit
		}
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewLoading:
		_, cmd = a.loading.Update(msg)
	case ViewGraph:
		_, cmd = a.graph.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewGraph:
		return a.graph.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.loading.View()
	}
}
