// SPDX-License-Identifier: MIT

package exprfile

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/lvgrad/internal/ctxlog"
	"github.com/katalvlaran/lvgrad/value"
)

const (
	blockLeaf = "leaf"
	blockNode = "node"
)

// fileSchema is the top-level structure of an expression file.
var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: blockLeaf, LabelNames: []string{"name"}},
		{Type: blockNode, LabelNames: []string{"name"}},
	},
}

const (
	attrValue    = "value"
	attrOp       = "op"
	attrOperands = "operands"
)

// leafSchema is the body of a leaf block.
var leafSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: attrValue, Required: true},
	},
}

// nodeSchema is the body of a node block.
var nodeSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: attrOp, Required: true},
		{Name: attrOperands, Required: true},
	},
}

// decl is one decoded block.
type decl struct {
	name     string
	leaf     bool
	value    float64      // leaf only
	op       value.OpKind // node only
	operands []string     // node only
	rng      hcl.Range
}

// LoadFile reads and loads the expression file at path.
func LoadFile(ctx context.Context, path string) (*Program, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading expression file", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile(%s): %w", path, err)
	}
	prog, err := Parse(src, path)
	if err != nil {
		return nil, err
	}

	logger.Info("Loaded expression file", "path", path, "names", prog.Len(), "nodes", prog.Graph().Len())

	return prog, nil
}

// Parse loads an expression file from src. filename is used in diagnostics.
func Parse(src []byte, filename string) (*Program, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrParse, diags)
	}

	decls, err := decodeFile(file.Body)
	if err != nil {
		return nil, err
	}

	return link(decls)
}

// decodeFile turns the top-level body into declarations in file order.
func decodeFile(body hcl.Body) ([]*decl, error) {
	content, diags := body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrParse, diags)
	}

	decls := make([]*decl, 0, len(content.Blocks))
	seen := make(map[string]hcl.Range, len(content.Blocks))
	for _, block := range content.Blocks {
		name := block.Labels[0]
		if prev, dup := seen[name]; dup {
			return nil, fmt.Errorf("%s: %q already declared at %s: %w", block.DefRange, name, prev, ErrDuplicateName)
		}
		seen[name] = block.DefRange

		var (
			d   *decl
			err error
		)
		switch block.Type {
		case blockLeaf:
			d, err = decodeLeaf(name, block)
		case blockNode:
			d, err = decodeNode(name, block)
		}
		if err != nil {
			return nil, err
		}
		decls = append(decls, d)
	}

	return decls, nil
}

// decodeLeaf evaluates the literal value of a leaf block.
func decodeLeaf(name string, block *hcl.Block) (*decl, error) {
	content, diags := block.Body.Content(leafSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: leaf %q: %w", ErrParse, name, diags)
	}

	v, diags := content.Attributes[attrValue].Expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%s: leaf %q: %w: %w", block.DefRange, name, ErrInvalidValue, diags)
	}
	if v.IsNull() || !v.IsKnown() || v.Type() != cty.Number {
		return nil, fmt.Errorf("%s: leaf %q: value must be a number, got %s: %w",
			block.DefRange, name, v.Type().FriendlyName(), ErrInvalidValue)
	}
	f, _ := v.AsBigFloat().Float64()

	return &decl{name: name, leaf: true, value: f, rng: block.DefRange}, nil
}

// decodeNode reads the op and the operand references of a node block.
func decodeNode(name string, block *hcl.Block) (*decl, error) {
	content, diags := block.Body.Content(nodeSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: node %q: %w", ErrParse, name, diags)
	}

	var op string
	if diags := gohcl.DecodeExpression(content.Attributes[attrOp].Expr, nil, &op); diags.HasErrors() {
		return nil, fmt.Errorf("%w: node %q: %w", ErrParse, name, diags)
	}
	kind, err := ParseOp(op)
	if err != nil {
		return nil, fmt.Errorf("%s: node %q: %w", block.DefRange, name, err)
	}

	exprs, diags := hcl.ExprList(content.Attributes[attrOperands].Expr)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: node %q: %w", ErrParse, name, diags)
	}
	if len(exprs) != kind.Arity() {
		return nil, fmt.Errorf("%s: node %q: %s takes %d operands, got %d: %w",
			block.DefRange, name, kind, kind.Arity(), len(exprs), ErrOperandCount)
	}

	operands := make([]string, len(exprs))
	for i, expr := range exprs {
		trav, diags := hcl.AbsTraversalForExpr(expr)
		if diags.HasErrors() {
			return nil, fmt.Errorf("%w: node %q operand %d: %w", ErrParse, name, i, diags)
		}
		if len(trav) != 1 {
			return nil, fmt.Errorf("%s: node %q operand %d must be a bare name: %w",
				expr.Range(), name, i, ErrParse)
		}
		operands[i] = trav.RootName()
	}

	return &decl{name: name, op: kind, operands: operands, rng: block.DefRange}, nil
}
