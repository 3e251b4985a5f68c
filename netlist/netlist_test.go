package netlist_test

import (
	"testing"

	"github.com/nodewave/circsim/circuit"
	"github.com/nodewave/circsim/netlist"
	"github.com/stretchr/testify/require"
)

func TestParse_CommentsAndBlankLinesIgnored(t *testing.T) {
	t.Parallel()

	src := "-- this is a comment\n\nresistor a gnd R=1k\n"
	cmds, err := netlist.Parse(src)
	require.NoError(t, err)
	require.Len(t, cmds, 1)
	require.Equal(t, "resistor", cmds[0].Kind)
	require.Equal(t, []string{"a", "gnd"}, cmds[0].Terminals)
	require.Equal(t, "1k", cmds[0].Parameters["R"])
}

func TestParse_NamedComponent(t *testing.T) {
	t.Parallel()

	cmds, err := netlist.Parse(`resistor "r1" a gnd R=500`)
	require.NoError(t, err)
	require.Len(t, cmds, 1)
	require.Equal(t, "r1", cmds[0].Name)
}

func TestParse_TerminalAfterParamIsMalformed(t *testing.T) {
	t.Parallel()

	_, err := netlist.Parse(`resistor R=500 a gnd`)
	require.ErrorIs(t, err, netlist.ErrMalformedLine)
}

func TestParse_MissingKindIsMalformed(t *testing.T) {
	t.Parallel()

	_, err := netlist.Parse(`"r1" a gnd R=500`)
	require.ErrorIs(t, err, netlist.ErrMalformedLine)
}

func TestBuild_UnknownKind(t *testing.T) {
	t.Parallel()

	cmds, err := netlist.Parse(`capacitator a gnd C=1u`)
	require.NoError(t, err)

	_, _, err = netlist.Build(cmds)
	require.ErrorIs(t, err, netlist.ErrUnknownComponentKind)
}

func TestBuild_MissingRequiredParameter(t *testing.T) {
	t.Parallel()

	cmds, err := netlist.Parse(`resistor a gnd`)
	require.NoError(t, err)

	_, _, err = netlist.Build(cmds)
	require.ErrorIs(t, err, netlist.ErrMissingParameter)
}

func TestBuild_DuplicateName(t *testing.T) {
	t.Parallel()

	src := `
ground "g" gnd
dc-source-1-terminal "g" a V=5
`
	cmds, err := netlist.Parse(src)
	require.NoError(t, err)

	_, _, err = netlist.Build(cmds)
	require.ErrorIs(t, err, circuit.ErrDuplicateComponentName)
}

func TestBuild_ParallelResistorsScenario(t *testing.T) {
	t.Parallel()

	src := `
ground gnd
dc-source-1-terminal "src" a V=5
resistor "r500" a gnd R=500
resistor "r1000" a gnd R=1000
`
	cmds, err := netlist.Parse(src)
	require.NoError(t, err)

	circ, nodes, err := netlist.Build(cmds)
	require.NoError(t, err)
	require.Equal(t, 2, nodes.Len())

	circ.Step(0.01)

	i500, ok := circ.Probe("r500", "I")
	require.True(t, ok)
	require.InDelta(t, 0.01, i500.Re, 1e-4)
}

func TestBuild_ACSourceRequiresAllThreeParameters(t *testing.T) {
	t.Parallel()

	cmds, err := netlist.Parse(`ac-source-1-terminal a A=1 f=50`)
	require.NoError(t, err)

	_, _, err = netlist.Build(cmds)
	require.ErrorIs(t, err, netlist.ErrMissingParameter)
}
