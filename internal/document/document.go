// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package document implements a schemaless document store on top of
// PostgreSQL. Each entity collection is a set of jsonb documents keyed by
// (collection, id). The store exposes exactly five operation shapes:
// list (equality filters, ordering, limit), get by id, create, partial
// update, and delete. Typed mapping of document payloads into domain
// entities is the models package's concern, not this one's.
package document

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a requested document does not exist.
// Callers decide whether absence is an error or an empty result.
var ErrNotFound = errors.New("document not found")

// Document is a raw stored record. Data carries the schemaless payload;
// ID, CreatedAt, and UpdatedAt are store metadata and never appear in Data.
type Document struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
	Data      map[string]any
}

// API is the surface consumed by the typed stores. *Client implements it;
// tests substitute an in-memory fake.
type API interface {
	List(ctx context.Context, collection string, opts ...Option) ([]Document, error)
	Get(ctx context.Context, collection, id string) (*Document, error)
	Create(ctx context.Context, collection, id string, data map[string]any) (*Document, error)
	Update(ctx context.Context, collection, id string, data map[string]any) (*Document, error)
	Delete(ctx context.Context, collection, id string) error
}

// Client is the PostgreSQL-backed document store.
type Client struct {
	db *sql.DB
}

// NewClient creates a document store over the given database connection.
func NewClient(db *sql.DB) *Client {
	return &Client{db: db}
}

// query accumulates list constraints built from Options.
type query struct {
	equals     []equal
	orderField string
	orderDesc  bool
	limit      int
}

type equal struct {
	field string
	value any
}

// Option narrows or orders a List call.
type Option func(*query)

// Equal restricts results to documents whose payload field equals value.
func Equal(field string, value any) Option {
	return func(q *query) { q.equals = append(q.equals, equal{field: field, value: value}) }
}

// OrderAsc orders results ascending by a payload field (text collation).
func OrderAsc(field string) Option {
	return func(q *query) { q.orderField = field }
}

// OrderDesc orders results descending by a payload field (text collation).
func OrderDesc(field string) Option {
	return func(q *query) { q.orderField = field; q.orderDesc = true }
}

// Limit caps the number of returned documents.
func Limit(n int) Option {
	return func(q *query) { q.limit = n }
}

const documentColumns = `id, data, created_at, updated_at`

// buildList renders the SQL for a List call and its argument slice.
// Field names are interpolated via to_jsonb path operators with the field
// passed as a bound argument, never concatenated into the statement.
func buildList(collection string, opts []Option) (string, []any) {
	var q query
	for _, opt := range opts {
		opt(&q)
	}

	var sb strings.Builder
	args := []any{collection}
	sb.WriteString(`SELECT ` + documentColumns + ` FROM documents WHERE collection = $1`)

	for _, eq := range q.equals {
		args = append(args, eq.field)
		fieldArg := "$" + strconv.Itoa(len(args))
		args = append(args, fmt.Sprint(eq.value))
		valueArg := "$" + strconv.Itoa(len(args))
		sb.WriteString(` AND data->>` + fieldArg + ` = ` + valueArg)
	}

	if q.orderField != "" {
		args = append(args, q.orderField)
		sb.WriteString(` ORDER BY data->>$` + strconv.Itoa(len(args)))
		if q.orderDesc {
			sb.WriteString(` DESC`)
		}
		sb.WriteString(`, created_at`)
	} else {
		sb.WriteString(` ORDER BY created_at DESC`)
	}

	if q.limit > 0 {
		args = append(args, q.limit)
		sb.WriteString(` LIMIT $` + strconv.Itoa(len(args)))
	}

	return sb.String(), args
}

// List returns the documents of a collection, optionally filtered by
// payload-field equality, ordered, and limited. Without an explicit order
// the newest documents come first.
func (c *Client) List(ctx context.Context, collection string, opts ...Option) ([]Document, error) {
	stmt, args := buildList(collection, opts)

	rows, err := c.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", collection, err)
		}
		docs = append(docs, *doc)
	}
	return docs, rows.Err()
}

// Get retrieves a single document by id. Returns ErrNotFound if absent.
func (c *Client) Get(ctx context.Context, collection, id string) (*Document, error) {
	row := c.db.QueryRowContext(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE collection = $1 AND id = $2`,
		collection, id,
	)
	doc, err := scanDocument(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return doc, nil
}

// Create inserts a new document. An empty id asks the store to assign one.
func (c *Client) Create(ctx context.Context, collection, id string, data map[string]any) (*Document, error) {
	if id == "" {
		id = uuid.NewString()
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("create %s: encode: %w", collection, err)
	}

	row := c.db.QueryRowContext(ctx, `
		INSERT INTO documents (collection, id, data)
		VALUES ($1, $2, $3)
		RETURNING `+documentColumns,
		collection, id, payload,
	)
	doc, err := scanDocument(row)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", collection, err)
	}
	return doc, nil
}

// Update merges the given fields into an existing document's payload and
// bumps updated_at. Fields not present in data are left untouched.
// Returns ErrNotFound if the document does not exist.
func (c *Client) Update(ctx context.Context, collection, id string, data map[string]any) (*Document, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("update %s/%s: encode: %w", collection, id, err)
	}

	row := c.db.QueryRowContext(ctx, `
		UPDATE documents
		SET data = data || $3::jsonb, updated_at = now()
		WHERE collection = $1 AND id = $2
		RETURNING `+documentColumns,
		collection, id, payload,
	)
	doc, err := scanDocument(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("update %s/%s: %w", collection, id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	return doc, nil
}

// Delete removes a document. Deleting an already-absent document is not an
// error; references held by other documents are left dangling on purpose
// (resolvers substitute fallback labels for them).
func (c *Client) Delete(ctx context.Context, collection, id string) error {
	_, err := c.db.ExecContext(ctx,
		`DELETE FROM documents WHERE collection = $1 AND id = $2`,
		collection, id,
	)
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	return nil
}

// scanDocument scans a row into a Document, decoding the jsonb payload.
func scanDocument(scanner interface{ Scan(...any) error }) (*Document, error) {
	var (
		doc Document
		raw []byte
	)
	if err := scanner.Scan(&doc.ID, &raw, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
		return nil, err
	}
	doc.Data = map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &doc.Data); err != nil {
			return nil, fmt.Errorf("decode payload: %w", err)
		}
	}
	return &doc, nil
}
