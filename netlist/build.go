package netlist

import (
	"github.com/nodewave/circsim/circuit"
	"github.com/nodewave/circsim/component"
	"github.com/nodewave/circsim/siunit"
	"github.com/nodewave/circsim/solver"
)

// Option customizes Build. Option constructors here do not validate
// their arguments; they pass them on unchanged.
type Option func(*buildConfig)

type buildConfig struct {
	solverOpts []solver.Option
}

// WithSolverOptions forwards BiCGSTAB tuning options to the assembled
// circuit's solver.
func WithSolverOptions(opts ...solver.Option) Option {
	return func(cfg *buildConfig) {
		cfg.solverOpts = append(cfg.solverOpts, opts...)
	}
}

func newBuildConfig(opts ...Option) *buildConfig {
	cfg := &buildConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// Build places every parsed command into a fresh circuit.Circuit,
// resolving symbolic terminal names to node indices in first-seen
// order. Returns the assembled circuit and the node index it used, so
// a caller can translate its own node names into probe coordinates.
func Build(cmds []Command, opts ...Option) (*circuit.Circuit, *NodeIndex, error) {
	cfg := newBuildConfig(opts...)

	circ := circuit.New(cfg.solverOpts...)
	nodes := newNodeIndex()

	for _, cmd := range cmds {
		terminals := make([]int, len(cmd.Terminals))
		for i, name := range cmd.Terminals {
			terminals[i] = nodes.indexOf(name)
		}

		if err := placeComponent(circ, cmd, terminals); err != nil {
			return nil, nil, err
		}
	}

	return circ, nodes, nil
}

func placeComponent(circ *circuit.Circuit, cmd Command, terminals []int) error {
	switch cmd.Kind {
	case "resistor":
		r, err := requireParam(cmd, "R")
		if err != nil {
			return err
		}

		return wrapPlace(cmd, circuit.Place[component.Resistor, struct{}](
			circ, component.Resistor{ResistanceOhm: r}, terminals, cmd.Name))

	case "capacitor":
		c, err := requireParam(cmd, "C")
		if err != nil {
			return err
		}

		return wrapPlace(cmd, circuit.Place[component.Capacitor, component.CapacitorState](
			circ, component.Capacitor{CapacitanceF: c}, terminals, cmd.Name))

	case "inductor":
		l, err := requireParam(cmd, "L")
		if err != nil {
			return err
		}

		return wrapPlace(cmd, circuit.Place[component.Inductor, component.InductorState](
			circ, component.Inductor{InductanceH: l}, terminals, cmd.Name))

	case "dc-source-1-terminal":
		v, err := requireParam(cmd, "V")
		if err != nil {
			return err
		}

		return wrapPlace(cmd, circuit.Place[component.DCSource, struct{}](
			circ, component.DCSource{VoltageVolt: v}, terminals, cmd.Name))

	case "ac-source-1-terminal":
		amplitude, err := requireParam(cmd, "A")
		if err != nil {
			return err
		}

		frequency, err := requireParam(cmd, "f")
		if err != nil {
			return err
		}

		phase, err := requireParam(cmd, "phi")
		if err != nil {
			return err
		}

		return wrapPlace(cmd, circuit.Place[component.ACSource, float64](
			circ, component.ACSource{AmplitudeVolt: amplitude, FrequencyHz: frequency, PhaseRad: phase}, terminals, cmd.Name))

	case "ground":
		return wrapPlace(cmd, circuit.Place[component.Ground, struct{}](
			circ, component.Ground{}, terminals, cmd.Name))

	default:
		return netlistErrorf("Build", cmd.Line, ErrUnknownComponentKind)
	}
}

func requireParam(cmd Command, key string) (float64, error) {
	raw, ok := cmd.Parameters[key]
	if !ok {
		return 0, netlistErrorf("Build", cmd.Line, ErrMissingParameter)
	}

	value, err := siunit.ParseLiteral(raw)
	if err != nil {
		return 0, netlistErrorf("Build", cmd.Line, err)
	}

	return value, nil
}

// wrapPlace adds line context to an error circuit.Place already
// reports (terminal count / duplicate name), without losing the
// original sentinel for errors.Is checks.
func wrapPlace(cmd Command, err error) error {
	if err == nil {
		return nil
	}

	return netlistErrorf("Build", cmd.Line, err)
}
