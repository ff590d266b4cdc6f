package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/enginegen/pkg/core"
	"github.com/leapstack-labs/enginegen/pkg/format"
	"github.com/leapstack-labs/enginegen/pkg/fuel"
	"github.com/spf13/cobra"
)

// errPromptAborted is returned when the user interrupts the session.
var errPromptAborted = errors.New("prompt aborted")

// Prompter asks one question at a time. An empty answer takes def.
type Prompter interface {
	Prompt(label, def string) (string, error)
	Close() error
}

// readlinePrompter is a Prompter backed by a readline instance.
type readlinePrompter struct {
	rl *readline.Instance
}

func newReadlinePrompter(in io.ReadCloser, out, errOut io.Writer) (*readlinePrompter, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdin:           in,
		Stdout:          out,
		Stderr:          errOut,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readline: %w", err)
	}
	return &readlinePrompter{rl: rl}, nil
}

func (p *readlinePrompter) Prompt(label, def string) (string, error) {
	p.rl.SetPrompt(fmt.Sprintf("%s [%s]: ", label, def))
	line, err := p.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
		return "", errPromptAborted
	}
	if err != nil {
		return "", err
	}
	if line = strings.TrimSpace(line); line == "" {
		return def, nil
	}
	return line, nil
}

func (p *readlinePrompter) Close() error {
	return p.rl.Close()
}

// promptAnswers is what an interactive session collects.
type promptAnswers struct {
	Params    core.Params
	Cylinders int
	Style     core.Style
	Fuel      string
}

// NewPromptCommand creates the prompt command.
func NewPromptCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Build an engine interactively",
		Long: `Ask for the engine name, starter torque, crank mass, bore, stroke,
chamber volume, rod length, simulation frequency, solver steps, idle
throttle position, cylinder count, layout style and fuel, then generate
the simulator script.

Press Enter to accept the value in brackets. Ctrl-C or Ctrl-D aborts.`,
		Example: `  enginegen prompt --out custom.mr`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := NewCommandContext(cmd)
			p, err := newReadlinePrompter(io.NopCloser(cmd.InOrStdin()), cmd.ErrOrStderr(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = p.Close() }()

			return runPrompt(cc, p, out)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "O", "", "Output file (default: stdout)")

	return cmd
}

func runPrompt(cc *CommandContext, p Prompter, out string) error {
	ans, err := askEngine(cc, p)
	if err != nil {
		return err
	}

	pr, err := planPreset(ans.Cylinders, ans.Style, cc.Cfg.TieBreak, nil)
	if err != nil {
		return err
	}
	e, err := buildEngine(pr, cc.Cfg, ans.Params)
	if err != nil {
		return err
	}
	cc.Logger.Debug("prompt complete", "name", e.Params().Name, "cylinders", e.CylinderCount(), "fuel", ans.Fuel)

	return emit(cc, e, &GenerateOptions{Fuel: ans.Fuel, Out: out})
}

// askEngine runs the question sequence. Defaults come from the project
// configuration layered on the built-in parameter defaults.
func askEngine(cc *CommandContext, p Prompter) (*promptAnswers, error) {
	def := core.DefaultParams().Merge(cc.Cfg.Params())
	ans := &promptAnswers{Params: cc.Cfg.Params()}

	var err error
	if ans.Params.Name, err = p.Prompt("Engine name", def.Name); err != nil {
		return nil, err
	}

	floats := []struct {
		label string
		dst   *float64
		def   float64
	}{
		{"Starter torque (lb-ft)", &ans.Params.StarterTorque, def.StarterTorque},
		{"Crank mass (kg)", &ans.Params.CrankMass, def.CrankMass},
		{"Bore (mm)", &ans.Params.Bore, def.Bore},
		{"Stroke (mm)", &ans.Params.Stroke, def.Stroke},
		{"Chamber volume (cc)", &ans.Params.ChamberVolume, def.ChamberVolume},
		{"Rod length (mm)", &ans.Params.RodLength, def.RodLength},
	}
	for _, q := range floats {
		if *q.dst, err = askFloat(cc, p, q.label, q.def); err != nil {
			return nil, err
		}
	}

	if ans.Params.SimulationFrequency, err = askInt(cc, p, "Simulation frequency", def.SimulationFrequency, 1); err != nil {
		return nil, err
	}
	if ans.Params.MaxSLESolverSteps, err = askInt(cc, p, "Max solver steps", def.MaxSLESolverSteps, 1); err != nil {
		return nil, err
	}
	idle, err := askFloat(cc, p, "Idle throttle position (0-1)", def.IdleThrottle())
	if err != nil {
		return nil, err
	}
	ans.Params.IdleThrottlePlatePosition = core.Float64(idle)

	for {
		styleName, err := p.Prompt("Layout style (inline|v)", core.StyleInline.String())
		if err != nil {
			return nil, err
		}
		if ans.Style, err = core.ParseStyle(styleName); err == nil {
			break
		}
		cc.Renderer.Warning(err.Error())
	}

	if ans.Cylinders, err = askInt(cc, p, "Cylinders", 4, ans.Style.MinCylinders()); err != nil {
		return nil, err
	}

	for {
		if ans.Fuel, err = p.Prompt("Fuel ("+strings.Join(fuel.Names(), ", ")+")", cc.Cfg.Fuel); err != nil {
			return nil, err
		}
		_, lookupErr := fuel.Lookup(ans.Fuel)
		if lookupErr == nil {
			break
		}
		cc.Renderer.Warning(lookupErr.Error())
	}

	return ans, nil
}

func askFloat(cc *CommandContext, p Prompter, label string, def float64) (float64, error) {
	for {
		s, err := p.Prompt(label, format.Number(def))
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err == nil && v >= 0 {
			return v, nil
		}
		cc.Renderer.Warning(fmt.Sprintf("%q is not a non-negative number", s))
	}
}

func askInt(cc *CommandContext, p Prompter, label string, def, minVal int) (int, error) {
	for {
		s, err := p.Prompt(label, strconv.Itoa(def))
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(s)
		if err == nil && v >= minVal {
			return v, nil
		}
		cc.Renderer.Warning(fmt.Sprintf("%q is not a whole number of at least %d", s, minVal))
	}
}
