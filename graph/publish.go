package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/c360studio/semstreams/message"
	"github.com/nats-io/nats.go"
)

// GraphIngestSubject is the NATS subject downstream graph ingestion
// listens on.
const GraphIngestSubject = "graph.ingest.entity"

// EntityIngestMessage carries one subject's triples to the ingestion
// stream. The shape matches what the semstreams graph components
// consume.
type EntityIngestMessage struct {
	ID        string           `json:"id"`
	Triples   []message.Triple `json:"triples"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// Publisher pushes a converted graph to the ingestion stream, one
// message per subject.
type Publisher struct {
	nc      *nats.Conn
	source  string
	subject string
}

// NewPublisher wraps a NATS connection. source tags every published
// triple with its producing system.
func NewPublisher(nc *nats.Conn, source string) *Publisher {
	return &Publisher{nc: nc, source: source, subject: GraphIngestSubject}
}

// Messages batches the graph into per-subject ingest messages in the
// graph's subject order.
func Messages(g *Graph, source string, now time.Time) []EntityIngestMessage {
	var order []string
	groups := make(map[string][]message.Triple)
	for _, t := range g.All() {
		if _, seen := groups[t.Subject]; !seen {
			order = append(order, t.Subject)
		}
		groups[t.Subject] = append(groups[t.Subject], message.Triple{
			Subject:    t.Subject,
			Predicate:  t.Predicate,
			Object:     t.Object.Value,
			Source:     source,
			Timestamp:  now,
			Confidence: 1.0,
		})
	}

	msgs := make([]EntityIngestMessage, 0, len(order))
	for _, id := range order {
		msgs = append(msgs, EntityIngestMessage{ID: id, Triples: groups[id], UpdatedAt: now})
	}
	return msgs
}

// Publish sends every subject's triples to the ingestion subject. A nil
// publisher or connection is a no-op so conversion-only runs need no
// broker.
func (p *Publisher) Publish(ctx context.Context, g *Graph) error {
	if p == nil || p.nc == nil {
		return nil
	}

	for _, msg := range Messages(g, p.source, time.Now().UTC()) {
		if err := ctx.Err(); err != nil {
			return err
		}
		data, err := json.Marshal(msg)
		if err != nil {
			return fmt.Errorf("marshal entity %s: %w", msg.ID, err)
		}
		if err := p.nc.Publish(p.subject, data); err != nil {
			return fmt.Errorf("publish entity %s: %w", msg.ID, err)
		}
	}
	return p.nc.FlushWithContext(ctx)
}
