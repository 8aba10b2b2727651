package automation

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/loop"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/sorter"
	"gopkg.in/yaml.v3"
)

// maxTicks bounds an until_idle step. Bubble sort on the largest array the
// config accepts finishes far below it.
const maxTicks = 1 << 20

var ErrTickLimit = errors.New("tick limit exceeded")

// Scenario is a scripted sequence of loop commands.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep sends Command (if set), then ticks the loop Ticks times or,
// with UntilIdle, until the running sort finishes.
type ScenarioStep struct {
	Command   string `yaml:"command"`
	Ticks     int    `yaml:"ticks"`
	UntilIdle bool   `yaml:"until_idle"`
}

type StepReport struct {
	Command string
	Ticks   int
	Sorting bool
}

type Report struct {
	Name       string
	Steps      []StepReport
	TotalTicks int
	Quit       bool
	Values     []int
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	for i, step := range scenario.Steps {
		if step.Command != "" {
			if _, err := loop.ParseCommand(step.Command); err != nil {
				return nil, fmt.Errorf("step %d: %w", i+1, err)
			}
		}
		if step.Ticks < 0 {
			return nil, fmt.Errorf("step %d: negative ticks", i+1)
		}
	}
	return &scenario, nil
}

// RunScenario drives l through every step. A quit command ends the run early.
func RunScenario(ctx context.Context, scenario *Scenario, l *loop.Loop) (*Report, error) {
	report := &Report{Name: scenario.Name}

	for i, step := range scenario.Steps {
		sr := StepReport{Command: step.Command}
		if step.Command != "" {
			cmd, err := loop.ParseCommand(step.Command)
			if err != nil {
				return report, fmt.Errorf("step %d: %w", i+1, err)
			}
			if l.Handle(cmd) {
				report.Quit = true
				report.Steps = append(report.Steps, sr)
				break
			}
		}

		for t := 0; t < step.Ticks; t++ {
			if err := ctx.Err(); err != nil {
				return report, err
			}
			l.Tick()
			sr.Ticks++
		}

		if step.UntilIdle {
			for l.Sorting() {
				if err := ctx.Err(); err != nil {
					return report, err
				}
				if sr.Ticks >= maxTicks {
					return report, fmt.Errorf("step %d: %w", i+1, ErrTickLimit)
				}
				l.Tick()
				sr.Ticks++
			}
		}

		sr.Sorting = l.Sorting()
		report.TotalTicks += sr.Ticks
		report.Steps = append(report.Steps, sr)
	}

	report.Values = l.Array().Snapshot()
	return report, nil
}

// SizeSweep sorts Trials random arrays at each of NumSteps sizes spread
// evenly over [MinSize, MaxSize].
type SizeSweep struct {
	Algorithm string
	Direction sorter.Direction
	MinSize   int
	MaxSize   int
	NumSteps  int
	Trials    int
	Min, Max  int
	Seed      int64
}

type SweepResult struct {
	Size        int
	Steps       float64
	Comparisons float64
	Writes      float64
}

func RunSweep(ctx context.Context, sweep *SizeSweep, registry *sorter.Registry) ([]SweepResult, error) {
	if !registry.Has(sweep.Algorithm) {
		return nil, fmt.Errorf("unknown algorithm: %s", sweep.Algorithm)
	}
	if sweep.MinSize <= 0 || sweep.MaxSize < sweep.MinSize {
		return nil, fmt.Errorf("invalid size range [%d, %d]", sweep.MinSize, sweep.MaxSize)
	}
	numSteps := sweep.NumSteps
	if numSteps < 1 {
		numSteps = 1
	}
	if sweep.MinSize == sweep.MaxSize {
		numSteps = 1
	}
	trials := sweep.Trials
	if trials < 1 {
		trials = 1
	}

	seed := sweep.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	results := make([]SweepResult, 0, numSteps)
	for i := 0; i < numSteps; i++ {
		size := sweep.MinSize
		if numSteps > 1 {
			size += i * (sweep.MaxSize - sweep.MinSize) / (numSteps - 1)
		}

		res := SweepResult{Size: size}
		for trial := 0; trial < trials; trial++ {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			values, err := array.Generate(rng, size, sweep.Min, sweep.Max)
			if err != nil {
				return results, err
			}
			set, err := sortValues(registry, sweep.Algorithm, values, sweep.Direction)
			if err != nil {
				return results, err
			}
			v := set.Values()
			res.Steps += v["steps"]
			res.Comparisons += v["comparisons"]
			res.Writes += v["writes"]
		}
		res.Steps /= float64(trials)
		res.Comparisons /= float64(trials)
		res.Writes /= float64(trials)
		results = append(results, res)
	}

	return results, nil
}

func sortValues(registry *sorter.Registry, name string, values []int, dir sorter.Direction) (*metrics.Set, error) {
	s, err := registry.Get(name, values, dir)
	if err != nil {
		return nil, err
	}
	set := metrics.NewSet(dir)
	set.Begin(values)
	for !s.IsDone() {
		set.Observe(values, s.Step())
	}
	return set, nil
}
