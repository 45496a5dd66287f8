// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"fmt"

	"folio/internal/document"
	"folio/internal/models"
)

// CategoryStore manages category documents.
type CategoryStore struct {
	docs document.API
}

// NewCategoryStore returns a new CategoryStore.
func NewCategoryStore(docs document.API) *CategoryStore {
	return &CategoryStore{docs: docs}
}

// List returns all categories ordered by name.
func (s *CategoryStore) List(ctx context.Context) ([]models.Category, error) {
	docs, err := s.docs.List(ctx, collCategories, document.OrderAsc("name"))
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	items := make([]models.Category, len(docs))
	for i, d := range docs {
		items[i] = models.CategoryFromDoc(d)
	}
	return items, nil
}

// FindByID retrieves a category. Absence surfaces as document.ErrNotFound.
func (s *CategoryStore) FindByID(ctx context.Context, id string) (*models.Category, error) {
	d, err := s.docs.Get(ctx, collCategories, id)
	if err != nil {
		return nil, err
	}
	c := models.CategoryFromDoc(*d)
	return &c, nil
}

// Create inserts a new category and returns it.
func (s *CategoryStore) Create(ctx context.Context, c models.Category) (*models.Category, error) {
	d, err := s.docs.Create(ctx, collCategories, "", c.Payload())
	if err != nil {
		return nil, err
	}
	out := models.CategoryFromDoc(*d)
	return &out, nil
}

// Update modifies an existing category.
func (s *CategoryStore) Update(ctx context.Context, c models.Category) (*models.Category, error) {
	d, err := s.docs.Update(ctx, collCategories, c.ID, c.Payload())
	if err != nil {
		return nil, err
	}
	out := models.CategoryFromDoc(*d)
	return &out, nil
}

// Delete removes a category. Entities referencing it keep their dangling
// identifier and resolve to fallback labels — deletion never cascades.
func (s *CategoryStore) Delete(ctx context.Context, id string) error {
	return s.docs.Delete(ctx, collCategories, id)
}

// Tree returns categories as a nested tree. A category whose parent no
// longer exists renders at the top level.
func (s *CategoryStore) Tree(ctx context.Context) ([]CategoryNode, error) {
	flat, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return buildTree(flat), nil
}

// CategoryNode is a category with its resolved children.
type CategoryNode struct {
	models.Category
	Children []CategoryNode `json:"children,omitempty"`
	Depth    int            `json:"depth"`
}

// buildTree assembles the parent/child tree from a flat list. Nodes are
// addressed by id with parent pointers, never by structural ownership, so
// a cyclic parent chain cannot recurse forever: a node is emitted at most
// once.
func buildTree(flat []models.Category) []CategoryNode {
	known := make(map[string]bool, len(flat))
	for _, c := range flat {
		known[c.ID] = true
	}

	seen := make(map[string]bool, len(flat))
	var attach func(parentID string, depth int) []CategoryNode
	attach = func(parentID string, depth int) []CategoryNode {
		var nodes []CategoryNode
		for _, c := range flat {
			effectiveParent := c.ParentID
			if !known[effectiveParent] {
				effectiveParent = ""
			}
			if effectiveParent != parentID || seen[c.ID] {
				continue
			}
			seen[c.ID] = true
			node := CategoryNode{Category: c, Depth: depth}
			node.Children = attach(c.ID, depth+1)
			nodes = append(nodes, node)
		}
		return nodes
	}
	return attach("", 0)
}
