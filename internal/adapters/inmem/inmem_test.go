package inmem_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nodal/internal/adapters/inmem"
	"go.trai.ch/nodal/internal/core/domain"
)

func TestNative_EvaluateAdd(t *testing.T) {
	n := inmem.NewNative()
	a, b, sum := domain.NewNodeName("a"), domain.NewNodeName("b"), domain.NewNodeName("sum")

	require.NoError(t, n.CreateNode("Number", a))
	require.NoError(t, n.CreateNode("Number", b))
	require.NoError(t, n.CreateNode("Add", sum))
	require.NoError(t, n.SetParam(a, "value", 2))
	require.NoError(t, n.SetParam(b, "value", 3.5))
	require.NoError(t, n.SetInput(sum, "b", domain.NewOutputRef("b", "out")))
	require.NoError(t, n.SetInput(sum, "a", domain.NewOutputRef("a", "out")))

	reqs, err := n.Requirements(sum)
	require.NoError(t, err)
	assert.Equal(t, []domain.OutputRef{domain.NewOutputRef("a", "out"), domain.NewOutputRef("b", "out")}, reqs,
		"requirements follow input key order")

	ctx := context.Background()
	require.NoError(t, n.Evaluate(ctx, a))
	require.NoError(t, n.Evaluate(ctx, b))
	require.NoError(t, n.Evaluate(ctx, sum))

	obj, err := n.GetObject(domain.NewOutputRef("sum", "out"))
	require.NoError(t, err)
	assert.Equal(t, []byte("5.5"), obj)
}

func TestNative_MissingInputObject(t *testing.T) {
	n := inmem.NewNative()
	sum := domain.NewNodeName("sum")
	require.NoError(t, n.CreateNode("Multiply", sum))
	require.NoError(t, n.SetInput(sum, "a", domain.NewOutputRef("x", "out")))
	require.NoError(t, n.SetInput(sum, "b", domain.NewOutputRef("y", "out")))

	err := n.Evaluate(context.Background(), sum)
	assert.True(t, errors.Is(err, domain.ErrObjectNotFound))
}

func TestNative_UnconnectedInput(t *testing.T) {
	n := inmem.NewNative()
	sum := domain.NewNodeName("sum")
	require.NoError(t, n.CreateNode("Add", sum))
	require.NoError(t, n.SetInput(sum, "a", domain.NewOutputRef("x", "out")))

	err := n.Evaluate(context.Background(), sum)
	assert.True(t, errors.Is(err, domain.ErrObjectNotFound))
	assert.Contains(t, err.Error(), "input not connected")
}

func TestNative_SetObjectRequiresEncoding(t *testing.T) {
	n := inmem.NewNative()
	ref := domain.NewOutputRef("x", "out")

	require.Error(t, n.SetObject(ref, 3.0))
	require.NoError(t, n.SetObject(ref, []byte("3")))

	obj, err := n.GetObject(ref)
	require.NoError(t, err)
	assert.Equal(t, []byte("3"), obj)
}

func TestManaged_EvaluateUsesRequirer(t *testing.T) {
	m := inmem.NewManaged()
	scale := domain.NewNodeName("scale")
	src := domain.NewOutputRef("sum", "out")

	require.NoError(t, m.CreateNode("ScriptScale", scale))
	require.NoError(t, m.SetInput(scale, "in", src))
	require.NoError(t, m.SetParam(scale, "factor", 2))

	var required []domain.OutputRef
	m.SetRequirer(func(_ context.Context, ref domain.OutputRef) error {
		required = append(required, ref)
		return m.SetObject(ref, 4.0)
	})

	require.NoError(t, m.Evaluate(context.Background(), scale))
	assert.Equal(t, []domain.OutputRef{src}, required)

	obj, err := m.GetObject(domain.NewOutputRef("scale", "out"))
	require.NoError(t, err)
	assert.Equal(t, 8.0, obj)
}

func TestManaged_RequirerErrorStopsEvaluation(t *testing.T) {
	m := inmem.NewManaged()
	f := domain.NewNodeName("fmt")
	require.NoError(t, m.CreateNode("ScriptFormat", f))
	require.NoError(t, m.SetInput(f, "in", domain.NewOutputRef("x", "out")))

	boom := errors.New("upstream failed")
	m.SetRequirer(func(context.Context, domain.OutputRef) error { return boom })

	err := m.Evaluate(context.Background(), f)
	assert.True(t, errors.Is(err, boom))

	_, err = m.GetObject(domain.NewOutputRef("fmt", "out"))
	assert.True(t, errors.Is(err, domain.ErrObjectNotFound))
}

func TestManaged_PullerFillsMissingInput(t *testing.T) {
	m := inmem.NewManaged()
	scale := domain.NewNodeName("scale")
	src := domain.NewOutputRef("seed", "out")

	require.NoError(t, m.CreateNode("ScriptScale", scale))
	require.NoError(t, m.SetInput(scale, "in", src))
	require.NoError(t, m.SetParam(scale, "factor", 2))

	// The requirer resolves nothing, as when src was visited earlier in the epoch.
	m.SetRequirer(func(context.Context, domain.OutputRef) error { return nil })

	var pulled []domain.OutputRef
	m.SetPuller(func(_ context.Context, ref domain.OutputRef) error {
		pulled = append(pulled, ref)
		return m.SetObject(ref, 21.0)
	})

	require.NoError(t, m.Evaluate(context.Background(), scale))
	assert.Equal(t, []domain.OutputRef{src}, pulled)

	obj, err := m.GetObject(domain.NewOutputRef("scale", "out"))
	require.NoError(t, err)
	assert.Equal(t, 42.0, obj)

	require.NoError(t, m.Evaluate(context.Background(), scale))
	assert.Len(t, pulled, 1, "present inputs are not pulled again")
}

func TestManaged_PullerError(t *testing.T) {
	m := inmem.NewManaged()
	scale := domain.NewNodeName("scale")
	require.NoError(t, m.CreateNode("ScriptScale", scale))
	require.NoError(t, m.SetInput(scale, "in", domain.NewOutputRef("seed", "out")))

	boom := errors.New("bridge down")
	m.SetPuller(func(context.Context, domain.OutputRef) error { return boom })

	err := m.Evaluate(context.Background(), scale)
	assert.True(t, errors.Is(err, boom))
}

func TestManaged_ScriptFormat(t *testing.T) {
	m := inmem.NewManaged()
	v, f := domain.NewNodeName("v"), domain.NewNodeName("fmt")

	require.NoError(t, m.CreateNode("ScriptValue", v))
	require.NoError(t, m.SetParam(v, "value", 7))
	require.NoError(t, m.CreateNode("ScriptFormat", f))
	require.NoError(t, m.SetParam(f, "format", "value=%v"))
	require.NoError(t, m.SetInput(f, "in", domain.NewOutputRef("v", "out")))

	ctx := context.Background()
	require.NoError(t, m.Evaluate(ctx, v))
	require.NoError(t, m.Evaluate(ctx, f))

	obj, err := m.GetObject(domain.NewOutputRef("fmt", "out"))
	require.NoError(t, err)
	assert.Equal(t, "value=7", obj)
}

func TestTable_Errors(t *testing.T) {
	m := inmem.NewManaged()
	name := domain.NewNodeName("v")

	assert.True(t, errors.Is(m.CreateNode("Add", name), domain.ErrUnknownNodeType))
	require.NoError(t, m.CreateNode("ScriptValue", name))
	assert.True(t, errors.Is(m.CreateNode("ScriptValue", name), domain.ErrNodeAlreadyExists))
	assert.True(t, errors.Is(m.SetParam(name, "nope", 1), domain.ErrUnknownSocket))
	assert.True(t, errors.Is(m.SetInput(name, "in", domain.NewOutputRef("a", "out")), domain.ErrUnknownSocket))
	assert.True(t, errors.Is(m.InitNode(domain.NewNodeName("ghost")), domain.ErrUnknownNode))

	assert.True(t, m.OwnsNode(name))
	assert.False(t, m.OwnsNode(domain.NewNodeName("ghost")))
	assert.True(t, m.OwnsType("ScriptValue"))
	assert.False(t, m.OwnsType("Add"))
}

func TestInitNode_DropsStaleOutputs(t *testing.T) {
	n := inmem.NewNative()
	name := domain.NewNodeName("x")
	require.NoError(t, n.CreateNode("Number", name))
	require.NoError(t, n.Evaluate(context.Background(), name))

	require.NoError(t, n.InitNode(name))

	_, err := n.GetObject(domain.NewOutputRef("x", "out"))
	assert.True(t, errors.Is(err, domain.ErrObjectNotFound))
}

func TestDescriptors(t *testing.T) {
	extra := inmem.Type{
		Descriptor: domain.Descriptor{Type: "Negate", Inputs: []string{"a"}, Outputs: []string{"out"}},
		Run: func(inputs, _ map[string]any) (map[string]any, error) {
			return map[string]any{"out": -inputs["a"].(float64)}, nil
		},
	}
	n := inmem.NewNative(extra)

	var types []string
	for _, d := range n.Descriptors() {
		assert.Equal(t, "native", d.Domain)
		types = append(types, d.Type)
	}
	assert.Equal(t, []string{"Add", "Multiply", "Negate", "Number"}, types)

	managed := inmem.NewManaged().Descriptors()
	require.Len(t, managed, 3)
	assert.Equal(t, "ScriptFormat", managed[0].Type)
	assert.Equal(t, "managed", managed[0].Domain)
}
