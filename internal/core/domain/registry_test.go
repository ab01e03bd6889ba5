package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nodal/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestRegistry_Add(t *testing.T) {
	r := domain.NewRegistry()
	name := domain.NewNodeName("seed")

	require.NoError(t, r.Add(name, domain.DomainNative))

	err := r.Add(name, domain.DomainManaged)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNodeAlreadyExists))

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	meta := zErr.Metadata()
	assert.Equal(t, "seed", meta["node"])
	assert.Equal(t, "native", meta["domain"])

	d, ok := r.Lookup(name)
	require.True(t, ok)
	assert.Equal(t, domain.DomainNative, d, "first registration wins")
}

func TestRegistry_LookupUnknown(t *testing.T) {
	r := domain.NewRegistry()

	d, ok := r.Lookup(domain.NewNodeName("missing"))
	assert.False(t, ok)
	assert.Equal(t, domain.DomainUnknown, d)
}

func TestRegistry_Walk(t *testing.T) {
	r := domain.NewRegistry()
	require.NoError(t, r.Add(domain.NewNodeName("c"), domain.DomainNative))
	require.NoError(t, r.Add(domain.NewNodeName("a"), domain.DomainManaged))
	require.NoError(t, r.Add(domain.NewNodeName("b"), domain.DomainNative))

	var names []string
	for name, d := range r.Walk() {
		names = append(names, name.String()+"@"+d.String())
	}

	assert.Equal(t, []string{"c@native", "a@managed", "b@native"}, names)
	assert.Equal(t, 3, r.Len())
}

func TestRegistry_WalkStopsEarly(t *testing.T) {
	r := domain.NewRegistry()
	require.NoError(t, r.Add(domain.NewNodeName("a"), domain.DomainNative))
	require.NoError(t, r.Add(domain.NewNodeName("b"), domain.DomainNative))

	count := 0
	for range r.Walk() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}
