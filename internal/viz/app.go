package viz

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/sortviz/internal/loop"
)

type TickMsg time.Time

var keyCommands = map[string]loop.Command{
	"r":      loop.CmdReset,
	" ":      loop.CmdStart,
	"space":  loop.CmdStart,
	"a":      loop.CmdAscending,
	"d":      loop.CmdDescending,
	"b":      loop.CmdBubble,
	"i":      loop.CmdInsertion,
	"q":      loop.CmdQuit,
	"esc":    loop.CmdQuit,
	"ctrl+c": loop.CmdQuit,
}

// KeyCommand maps a Bubble Tea key string to a loop command.
func KeyCommand(key string) loop.Command {
	if cmd, ok := keyCommands[strings.ToLower(key)]; ok {
		return cmd
	}
	return loop.CmdNone
}

// App is the Bubble Tea model driving a Loop at a fixed frame rate.
type App struct {
	loop     *loop.Loop
	renderer *Renderer
	fps      int
	quitting bool
}

func NewApp(l *loop.Loop, r *Renderer, fps int) App {
	if fps <= 0 {
		fps = 60
	}
	return App{loop: l, renderer: r, fps: fps}
}

func (a App) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(a.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (a App) Init() tea.Cmd {
	return a.tick()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if a.loop.Handle(KeyCommand(msg.String())) {
			a.quitting = true
			return a, tea.Quit
		}
	case tea.WindowSizeMsg:
		a.renderer.Resize(msg.Width, msg.Height)
	case TickMsg:
		a.loop.Tick()
		return a, a.tick()
	}
	return a, nil
}

func (a App) View() string {
	if a.quitting {
		return ""
	}
	return a.renderer.View()
}
