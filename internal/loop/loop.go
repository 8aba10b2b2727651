package loop

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/sorter"
	"github.com/sirupsen/logrus"
)

type Command int

const (
	CmdNone Command = iota
	CmdReset
	CmdStart
	CmdAscending
	CmdDescending
	CmdBubble
	CmdInsertion
	CmdQuit
)

var commandNames = map[Command]string{
	CmdNone:       "none",
	CmdReset:      "reset",
	CmdStart:      "start",
	CmdAscending:  "ascending",
	CmdDescending: "descending",
	CmdBubble:     "bubble",
	CmdInsertion:  "insertion",
	CmdQuit:       "quit",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseCommand is the inverse of Command.String.
func ParseCommand(name string) (Command, error) {
	for c, n := range commandNames {
		if n == strings.ToLower(name) {
			return c, nil
		}
	}
	return CmdNone, fmt.Errorf("unknown command: %s", name)
}

// Frame is everything a renderer needs for one tick. Values is a copy.
type Frame struct {
	Values      []int
	Min, Max    int
	Highlight   map[int]sorter.Role
	FullRedraw  bool
	Algorithm   string
	Direction   sorter.Direction
	Sorting     bool
	Metrics     map[string]float64
	MetricNames []string
	History     []float64
}

type Renderer interface {
	Draw(f Frame)
}

type Config struct {
	Size      int
	Min, Max  int
	Algorithm string
	Direction sorter.Direction
	Seed      int64
}

// Loop is the interaction state machine. It is Idle when no sorter is
// active and Sorting otherwise.
type Loop struct {
	rng       *rand.Rand
	arr       *array.Model
	registry  *sorter.Registry
	renderer  Renderer
	log       logrus.FieldLogger
	algorithm string
	dir       sorter.Direction
	active    sorter.Sorter
	metrics   *metrics.Set
}

func New(cfg Config, r Renderer, log logrus.FieldLogger) (*Loop, error) {
	registry := sorter.NewRegistry()
	if cfg.Algorithm == "" {
		cfg.Algorithm = "bubble"
	}
	if _, err := registry.Get(cfg.Algorithm, nil, cfg.Direction); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	arr, err := array.New(rng, cfg.Size, cfg.Min, cfg.Max)
	if err != nil {
		return nil, err
	}

	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}

	l := &Loop{
		rng:       rng,
		arr:       arr,
		registry:  registry,
		renderer:  r,
		log:       log,
		algorithm: cfg.Algorithm,
		dir:       cfg.Direction,
	}
	l.resetMetrics()
	return l, nil
}

func (l *Loop) Sorting() bool { return l.active != nil }

func (l *Loop) Direction() sorter.Direction { return l.dir }

// Algorithm returns the registry name of the selected algorithm.
func (l *Loop) Algorithm() string { return l.algorithm }

func (l *Loop) Array() *array.Model { return l.arr }

func (l *Loop) Metrics() *metrics.Set { return l.metrics }

// Active returns the running sorter, or nil when idle.
func (l *Loop) Active() sorter.Sorter { return l.active }

// Handle applies cmd and reports whether the loop should terminate.
// Commands that are not valid in the current state are ignored.
func (l *Loop) Handle(cmd Command) bool {
	switch cmd {
	case CmdQuit:
		l.log.Info("quit")
		return true
	case CmdReset:
		l.reset()
		return false
	}

	if l.Sorting() {
		if cmd != CmdNone {
			l.log.WithField("command", cmd.String()).Debug("ignored while sorting")
		}
		return false
	}

	switch cmd {
	case CmdStart:
		l.start()
	case CmdAscending:
		l.dir = sorter.Ascending
		l.resetMetrics()
	case CmdDescending:
		l.dir = sorter.Descending
		l.resetMetrics()
	case CmdBubble:
		l.algorithm = "bubble"
	case CmdInsertion:
		l.algorithm = "insertion"
	default:
		return false
	}
	l.log.WithFields(logrus.Fields{
		"command":   cmd.String(),
		"algorithm": l.algorithm,
		"direction": l.dir.String(),
	}).Debug("command")
	return false
}

func (l *Loop) start() {
	s, err := l.registry.Get(l.algorithm, l.arr.Values(), l.dir)
	if err != nil {
		l.log.WithError(err).Error("start failed")
		return
	}
	l.active = s
	l.resetMetrics()
	l.log.WithFields(logrus.Fields{
		"algorithm": l.algorithm,
		"direction": l.dir.String(),
		"size":      l.arr.Len(),
	}).Info("sort started")
}

func (l *Loop) reset() {
	if l.active != nil {
		l.log.WithField("steps", l.metrics.Values()["steps"]).Info("sort canceled")
	}
	l.active = nil
	err := l.arr.Regenerate(l.rng)
	l.resetMetrics()
	if err != nil {
		l.log.WithError(err).Error("regenerate failed")
		return
	}
	l.log.WithField("size", l.arr.Len()).Debug("array regenerated")
}

// resetMetrics starts a fresh metric set primed with the current array, so
// the idle screen shows the disorder of what is about to be sorted.
func (l *Loop) resetMetrics() {
	l.metrics = metrics.NewSet(l.dir)
	l.metrics.Begin(l.arr.Values())
}

// Tick advances the active sorter by one step and draws the result, or
// draws the full idle screen when no sort is running.
func (l *Loop) Tick() {
	if l.active == nil {
		l.draw(nil, true)
		return
	}

	r := l.active.Step()
	l.metrics.Observe(l.arr.Values(), r)
	l.draw(r.Highlight, false)

	if r.Done {
		l.log.WithFields(logrus.Fields{
			"algorithm": l.algorithm,
			"steps":     l.metrics.Values()["steps"],
		}).Info("sort completed")
		l.active = nil
	}
}

func (l *Loop) draw(highlight map[int]sorter.Role, full bool) {
	if l.renderer == nil {
		return
	}
	l.renderer.Draw(Frame{
		Values:      l.arr.Snapshot(),
		Min:         l.arr.Min,
		Max:         l.arr.Max,
		Highlight:   highlight,
		FullRedraw:  full,
		Algorithm:   l.registry.DisplayName(l.algorithm),
		Direction:   l.dir,
		Sorting:     l.active != nil,
		Metrics:     l.metrics.Values(),
		MetricNames: l.metrics.Names(),
		History:     l.metrics.History(),
	})
}
