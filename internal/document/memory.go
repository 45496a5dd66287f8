// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package document

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Memory is an in-memory API implementation. It backs unit tests for the
// stores, views, and handlers, mirroring the PostgreSQL client's semantics:
// equality filters compare the string form of the field, updates merge
// field-wise, and the default order is newest first.
type Memory struct {
	mu     sync.Mutex
	seq    int
	byColl map[string][]Document

	// FailList, FailWrite simulate upstream collaborator failures.
	// FailCollections limits the simulated list failure to named
	// collections.
	FailList        bool
	FailWrite       bool
	FailCollections map[string]bool
}

// NewMemory creates an empty in-memory document store.
func NewMemory() *Memory {
	return &Memory{byColl: map[string][]Document{}}
}

// errUpstream stands in for a network or service failure.
var errUpstream = fmt.Errorf("upstream unavailable")

func (m *Memory) List(ctx context.Context, collection string, opts ...Option) ([]Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailList || m.FailCollections[collection] {
		return nil, fmt.Errorf("list %s: %w", collection, errUpstream)
	}

	var q query
	for _, opt := range opts {
		opt(&q)
	}

	var out []Document
	for _, doc := range m.byColl[collection] {
		match := true
		for _, eq := range q.equals {
			if fmt.Sprint(doc.Data[eq.field]) != fmt.Sprint(eq.value) {
				match = false
				break
			}
		}
		if match {
			out = append(out, cloneDoc(doc))
		}
	}

	if q.orderField != "" {
		field, desc := q.orderField, q.orderDesc
		sort.SliceStable(out, func(i, j int) bool {
			a := fmt.Sprint(out[i].Data[field])
			b := fmt.Sprint(out[j].Data[field])
			if desc {
				return a > b
			}
			return a < b
		})
	} else {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}

	if q.limit > 0 && len(out) > q.limit {
		out = out[:q.limit]
	}
	return out, nil
}

func (m *Memory) Get(ctx context.Context, collection, id string) (*Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, doc := range m.byColl[collection] {
		if doc.ID == id {
			d := cloneDoc(doc)
			return &d, nil
		}
	}
	return nil, fmt.Errorf("get %s/%s: %w", collection, id, ErrNotFound)
}

func (m *Memory) Create(ctx context.Context, collection, id string, data map[string]any) (*Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWrite {
		return nil, fmt.Errorf("create %s: %w", collection, errUpstream)
	}

	if id == "" {
		id = uuid.NewString()
	}
	m.seq++
	doc := Document{
		ID: id,
		// Monotonic timestamps keep "newest first" deterministic in tests.
		CreatedAt: time.Unix(int64(m.seq), 0),
		UpdatedAt: time.Unix(int64(m.seq), 0),
		Data:      cloneData(data),
	}
	m.byColl[collection] = append(m.byColl[collection], doc)
	out := cloneDoc(doc)
	return &out, nil
}

func (m *Memory) Update(ctx context.Context, collection, id string, data map[string]any) (*Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWrite {
		return nil, fmt.Errorf("update %s/%s: %w", collection, id, errUpstream)
	}

	docs := m.byColl[collection]
	for i := range docs {
		if docs[i].ID == id {
			for k, v := range data {
				docs[i].Data[k] = v
			}
			m.seq++
			docs[i].UpdatedAt = time.Unix(int64(m.seq), 0)
			out := cloneDoc(docs[i])
			return &out, nil
		}
	}
	return nil, fmt.Errorf("update %s/%s: %w", collection, id, ErrNotFound)
}

func (m *Memory) Delete(ctx context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWrite {
		return fmt.Errorf("delete %s/%s: %w", collection, id, errUpstream)
	}

	docs := m.byColl[collection]
	for i := range docs {
		if docs[i].ID == id {
			m.byColl[collection] = append(docs[:i:i], docs[i+1:]...)
			return nil
		}
	}
	return nil
}

func cloneDoc(d Document) Document {
	d.Data = cloneData(d.Data)
	return d
}

func cloneData(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out
}
