// Command circsim loads a netlist file, runs it for a fixed number of
// timesteps, and prints a results table of probed component
// parameters. It is a thin driver over the simulation core: the core
// packages (circuit, component, solver) never import this one.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/nodewave/circsim/netlist"
	"github.com/nodewave/circsim/siunit"
)

// probeFlags collects repeated -probe flags into an ordered list.
type probeFlags []string

func (p *probeFlags) String() string { return strings.Join(*p, ",") }

func (p *probeFlags) Set(value string) error {
	*p = append(*p, value)

	return nil
}

func main() {
	var (
		netlistPath string
		steps       int
		dt          float64
		probes      probeFlags
	)

	flag.StringVar(&netlistPath, "netlist", "", "path to the netlist file")
	flag.IntVar(&steps, "steps", 1000, "number of timesteps to run")
	flag.Float64Var(&dt, "dt", 0.01, "timestep in seconds")
	flag.Var(&probes, "probe", "component.parameter to report (repeatable)")
	flag.Parse()

	if netlistPath == "" {
		fmt.Fprintln(os.Stderr, "circsim: -netlist is required")
		os.Exit(1)
	}

	source, err := os.ReadFile(netlistPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "circsim: cant read netlist %s: %s\n", netlistPath, err)
		os.Exit(1)
	}

	cmds, err := netlist.Parse(string(source))
	if err != nil {
		fmt.Fprintf(os.Stderr, "circsim: parse error: %s\n", err)
		os.Exit(1)
	}

	circ, _, err := netlist.Build(cmds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "circsim: build error: %s\n", err)
		os.Exit(1)
	}

	for n := 0; n < steps; n++ {
		circ.Step(dt)
	}

	table := siunit.NewTable()
	for _, p := range probes {
		name, param, ok := strings.Cut(p, ".")
		if !ok {
			fmt.Fprintf(os.Stderr, "circsim: malformed -probe %q, want name.param\n", p)
			os.Exit(1)
		}

		value, ok := circ.Probe(name, param)
		if !ok {
			fmt.Fprintf(os.Stderr, "circsim: no such probe %q\n", p)
			os.Exit(1)
		}

		unit, _ := siunit.VarUnit(param)
		table.Add(p, value, unit)
	}

	fmt.Print(table.String())
}
