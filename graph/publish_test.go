package graph_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fslgroup/ppodgraph/graph"
)

func TestMessagesGroupsBySubject(t *testing.T) {
	g := graph.New()
	g.AddIRI("https://x.test/a", "https://x.test/p1", "https://x.test/b")
	g.AddLiteral("https://x.test/b", "https://x.test/p2", "label b")
	g.AddLiteral("https://x.test/a", "https://x.test/p2", "label a")

	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	msgs := graph.Messages(g, "ppodgraph", now)

	require.Len(t, msgs, 2)
	assert.Equal(t, "https://x.test/a", msgs[0].ID, "subject order follows first appearance")
	assert.Equal(t, "https://x.test/b", msgs[1].ID)
	require.Len(t, msgs[0].Triples, 2)
	assert.Equal(t, "https://x.test/b", msgs[0].Triples[0].Object)
	assert.Equal(t, "label a", msgs[0].Triples[1].Object)
	assert.Equal(t, "ppodgraph", msgs[0].Triples[0].Source)
	assert.Equal(t, now, msgs[0].UpdatedAt)
	assert.InEpsilon(t, 1.0, msgs[0].Triples[0].Confidence, 1e-9)
}

func TestPublishWithoutConnectionIsNoOp(t *testing.T) {
	g := graph.New()
	g.AddLiteral("https://x.test/a", "https://x.test/p", "v")

	assert.NoError(t, graph.NewPublisher(nil, "ppodgraph").Publish(context.Background(), g))

	var p *graph.Publisher
	assert.NoError(t, p.Publish(context.Background(), g))
}
