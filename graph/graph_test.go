package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fslgroup/ppodgraph/graph"
)

func TestAddDeduplicates(t *testing.T) {
	g := graph.New()

	g.AddLiteral("s", "p", "o")
	g.AddLiteral("s", "p", "o")
	g.AddLiteral("s", "p", "o")

	assert.Equal(t, 1, g.Len())
}

func TestLiteralAndIRIAreDistinct(t *testing.T) {
	g := graph.New()

	g.AddLiteral("s", "p", "http://example.org/x")
	g.AddIRI("s", "p", "http://example.org/x")

	// Same value but different term kinds: two distinct triples.
	assert.Equal(t, 2, g.Len())
}

func TestAllPreservesInsertionOrder(t *testing.T) {
	g := graph.New()

	g.AddLiteral("s1", "p", "a")
	g.AddLiteral("s2", "p", "b")
	g.AddLiteral("s1", "p", "a") // duplicate, must not reorder
	g.AddLiteral("s3", "p", "c")

	all := g.All()
	require.Len(t, all, 3)
	assert.Equal(t, "s1", all[0].Subject)
	assert.Equal(t, "s2", all[1].Subject)
	assert.Equal(t, "s3", all[2].Subject)
}

func TestHas(t *testing.T) {
	g := graph.New()
	g.AddIRI("s", "p", "o")

	assert.True(t, g.Has(graph.Triple{Subject: "s", Predicate: "p", Object: graph.IRITerm("o")}))
	assert.False(t, g.Has(graph.Triple{Subject: "s", Predicate: "p", Object: graph.LiteralTerm("o")}))
}
