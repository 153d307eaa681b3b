package exprfile_test

import (
	"bytes"
	"context"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgrad/exprfile"
	"github.com/katalvlaran/lvgrad/internal/ctxlog"
	"github.com/katalvlaran/lvgrad/topo"
	"github.com/katalvlaran/lvgrad/value"
)

// mustLookup fails the test if name is not bound.
func mustLookup(t *testing.T, p *exprfile.Program, name string) value.Node {
	t.Helper()
	n, err := p.Lookup(name)
	require.NoError(t, err)

	return n
}

// TestLoadFile_Example loads the reference expression and checks values,
// names and the linearized order.
func TestLoadFile_Example(t *testing.T) {
	var buf bytes.Buffer
	ctx := ctxlog.WithLogger(context.Background(),
		slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	p, err := exprfile.LoadFile(ctx, filepath.Join("testdata", "example.hcl"))
	require.NoError(t, err)

	assert.Equal(t, []string{"v1", "v2", "v3", "v4", "v5", "v6"}, p.Names())
	assert.Equal(t, 6, p.Len())
	assert.Equal(t, 6, p.Graph().Len())

	assert.InDelta(t, 0.8, mustLookup(t, p, "v3").Data(), 1e-12)
	assert.InDelta(t, 0.5, mustLookup(t, p, "v4").Data(), 1e-12)
	assert.InDelta(t, 0.15, mustLookup(t, p, "v5").Data(), 1e-12)
	v6 := mustLookup(t, p, "v6")
	assert.Equal(t, value.OpTanh, v6.Kind())

	var names []string
	for _, n := range topo.Linearize(v6) {
		name, ok := p.NameOf(n.ID())
		require.True(t, ok)
		names = append(names, name)
	}
	assert.Equal(t, []string{"v1", "v2", "v3", "v4", "v5", "v6"}, names)

	assert.Contains(t, buf.String(), "Loading expression file")
	assert.Contains(t, buf.String(), "Loaded expression file")
}

// TestLoadFile_ForwardReferences loads a neuron declared output first.
func TestLoadFile_ForwardReferences(t *testing.T) {
	p, err := exprfile.LoadFile(context.Background(), filepath.Join("testdata", "neuron.hcl"))
	require.NoError(t, err)

	o := mustLookup(t, p, "o")
	n := mustLookup(t, p, "n")
	assert.InDelta(t, 0.8813735870195432, n.Data(), 1e-12)
	assert.InDelta(t, math.Tanh(n.Data()), o.Data(), 1e-15)
	assert.InDelta(t, 0.7071067811865476, o.Data(), 1e-9)

	// operands are always built before the nodes that use them
	for _, name := range p.Names() {
		node := mustLookup(t, p, name)
		for _, op := range node.Operands() {
			assert.Less(t, op.ID(), node.ID())
		}
	}
	assert.Len(t, topo.Linearize(o), 10)
	assert.Len(t, p.NameMap(), 10)
}

// TestParse_Errors covers every sentinel the loader can return.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"syntax", `leaf "x" { value = `, exprfile.ErrParse},
		{"unknown block", `edge "x" {}`, exprfile.ErrParse},
		{"missing value", `leaf "x" {}`, exprfile.ErrParse},
		{"missing operands", `node "y" { op = "tanh" }`, exprfile.ErrParse},
		{"missing op", `
leaf "x" { value = 1 }
node "y" { operands = [x] }`, exprfile.ErrParse},
		{"extra attribute", `leaf "x" {
  value = 1
  grad  = 0
}`, exprfile.ErrParse},
		{"string value", `leaf "x" { value = "one" }`, exprfile.ErrInvalidValue},
		{"null value", `leaf "x" { value = null }`, exprfile.ErrInvalidValue},
		{"unknown op", `
leaf "x" { value = 1 }
node "y" {
  op       = "pow"
  operands = [x, x]
}`, exprfile.ErrUnknownOp},
		{"arity", `
leaf "x" { value = 1 }
node "y" {
  op       = "tanh"
  operands = [x, x]
}`, exprfile.ErrOperandCount},
		{"attribute operand", `
leaf "x" { value = 1 }
node "y" {
  op       = "tanh"
  operands = [x.data]
}`, exprfile.ErrParse},
		{"undefined", `
node "y" {
  op       = "tanh"
  operands = [ghost]
}`, exprfile.ErrUndefinedOperand},
		{"duplicate", `
leaf "x" { value = 1 }
leaf "x" { value = 2 }`, exprfile.ErrDuplicateName},
		{"self cycle", `
node "y" {
  op       = "tanh"
  operands = [y]
}`, exprfile.ErrCycleDetected},
		{"cycle", `
leaf "x" { value = 1 }
node "a" {
  op       = "add"
  operands = [x, b]
}
node "b" {
  op       = "mul"
  operands = [a, x]
}`, exprfile.ErrCycleDetected},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := exprfile.Parse([]byte(tc.src), "case.hcl")
			assert.Nil(t, p)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestParse_MissingAttribute checks that absent attributes are reported as
// missing rather than as bad values.
func TestParse_MissingAttribute(t *testing.T) {
	for _, src := range []string{`leaf "x" {}`, `node "y" { op = "tanh" }`} {
		_, err := exprfile.Parse([]byte(src), "case.hcl")
		require.ErrorIs(t, err, exprfile.ErrParse)
		assert.NotErrorIs(t, err, exprfile.ErrInvalidValue)
		assert.Contains(t, err.Error(), "Missing required argument")
	}
}

// TestParse_NegativeAndEmpty covers unary minus literals and an empty file.
func TestParse_NegativeAndEmpty(t *testing.T) {
	p, err := exprfile.Parse([]byte(`leaf "w" { value = -3.5 }`), "neg.hcl")
	require.NoError(t, err)
	assert.Equal(t, -3.5, mustLookup(t, p, "w").Data())

	p, err = exprfile.Parse(nil, "empty.hcl")
	require.NoError(t, err)
	assert.Equal(t, 0, p.Len())
	_, err = p.Lookup("anything")
	assert.ErrorIs(t, err, exprfile.ErrUnknownName)
}

// TestLoadFile_Missing ensures filesystem errors keep their identity.
func TestLoadFile_Missing(t *testing.T) {
	_, err := exprfile.LoadFile(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

// TestLoadFile_TempFile round-trips a file written at test time.
func TestLoadFile_TempFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sq.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
leaf "x" { value = 3 }
node "sq" {
  op       = "x"
  operands = [x, x]
}`), 0o600))

	p, err := exprfile.LoadFile(context.Background(), path)
	require.NoError(t, err)
	sq := mustLookup(t, p, "sq")
	assert.Equal(t, 9.0, sq.Data())
	assert.Len(t, topo.Linearize(sq), 2)
}

// TestParseOp covers accepted spellings.
func TestParseOp(t *testing.T) {
	for in, want := range map[string]value.OpKind{
		"add": value.OpAdd, "+": value.OpAdd, " ADD ": value.OpAdd,
		"sub": value.OpSub, "-": value.OpSub,
		"mul": value.OpMul, "x": value.OpMul, "*": value.OpMul,
		"tanh": value.OpTanh, "Tanh": value.OpTanh,
	} {
		got, err := exprfile.ParseOp(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := exprfile.ParseOp("none")
	assert.ErrorIs(t, err, exprfile.ErrUnknownOp)
}
