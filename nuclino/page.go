package nuclino

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// PageKind is the wire discriminator of a page: "item" or "collection".
type PageKind string

const (
	KindItem       PageKind = "item"
	KindCollection PageKind = "collection"
)

// ContentMeta lists the items and files an item's content references.
type ContentMeta struct {
	ItemIDs []uuid.UUID `json:"itemIds"`
	FileIDs []uuid.UUID `json:"fileIds"`
}

// Item is a regular wiki page with markdown content.
type Item struct {
	ID                uuid.UUID      `json:"id"`
	WorkspaceID       uuid.UUID      `json:"workspaceId"`
	URL               string         `json:"url"`
	Title             string         `json:"title"`
	CreatedAt         string         `json:"createdAt"`
	CreatedUserID     uuid.UUID      `json:"createdUserId"`
	LastUpdatedAt     string         `json:"lastUpdatedAt"`
	LastUpdatedUserID uuid.UUID      `json:"lastUpdatedUserId"`
	Fields            map[string]any `json:"fields"`
	Content           *string        `json:"content,omitempty"`
	ContentMeta       ContentMeta    `json:"contentMeta"`
	Highlight         *string        `json:"highlight,omitempty"`
}

// FieldValue returns the value of the named field as text.
func (i *Item) FieldValue(name string) (string, bool) {
	v, ok := i.Fields[name]
	if !ok || v == nil {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	return fmt.Sprint(v), true
}

// Collection is a page that only lists other pages.
type Collection struct {
	ID                uuid.UUID   `json:"id"`
	WorkspaceID       uuid.UUID   `json:"workspaceId"`
	URL               string      `json:"url"`
	Title             string      `json:"title"`
	CreatedAt         string      `json:"createdAt"`
	CreatedUserID     uuid.UUID   `json:"createdUserId"`
	LastUpdatedAt     string      `json:"lastUpdatedAt"`
	LastUpdatedUserID uuid.UUID   `json:"lastUpdatedUserId"`
	ChildIDs          []uuid.UUID `json:"childIds"`
}

// Children returns the ids of the collection's pages in order.
func (c *Collection) Children() []uuid.UUID {
	return c.ChildIDs
}

// Page is either an Item or a Collection. Exactly one of the two is set on
// any page decoded from a response. The accessors dispatch on the variant;
// variant-specific data needs Item() or Collection().
type Page struct {
	item       *Item
	collection *Collection
}

// NewItemPage wraps an item as a page.
func NewItemPage(i *Item) Page { return Page{item: i} }

// NewCollectionPage wraps a collection as a page.
func NewCollectionPage(c *Collection) Page { return Page{collection: c} }

// Kind returns the page's discriminator, or "" for the zero Page.
func (p Page) Kind() PageKind {
	switch {
	case p.item != nil:
		return KindItem
	case p.collection != nil:
		return KindCollection
	}
	return ""
}

// Item returns the item variant, or nil when the page is a collection.
func (p Page) Item() *Item { return p.item }

// Collection returns the collection variant, or nil when the page is an item.
func (p Page) Collection() *Collection { return p.collection }

// IsItem reports whether the page is an item.
func (p Page) IsItem() bool { return p.item != nil }

// IsCollection reports whether the page is a collection.
func (p Page) IsCollection() bool { return p.collection != nil }

// ID returns the page id.
func (p Page) ID() uuid.UUID {
	switch {
	case p.item != nil:
		return p.item.ID
	case p.collection != nil:
		return p.collection.ID
	}
	return uuid.Nil
}

// Workspace returns the id of the workspace containing the page.
func (p Page) Workspace() uuid.UUID {
	switch {
	case p.item != nil:
		return p.item.WorkspaceID
	case p.collection != nil:
		return p.collection.WorkspaceID
	}
	return uuid.Nil
}

// URL returns the page's web URL.
func (p Page) URL() string {
	switch {
	case p.item != nil:
		return p.item.URL
	case p.collection != nil:
		return p.collection.URL
	}
	return ""
}

// Title returns the page title.
func (p Page) Title() string {
	switch {
	case p.item != nil:
		return p.item.Title
	case p.collection != nil:
		return p.collection.Title
	}
	return ""
}

// Created returns the creation timestamp.
func (p Page) Created() string {
	switch {
	case p.item != nil:
		return p.item.CreatedAt
	case p.collection != nil:
		return p.collection.CreatedAt
	}
	return ""
}

// CreatedBy returns the id of the user who created the page.
func (p Page) CreatedBy() uuid.UUID {
	switch {
	case p.item != nil:
		return p.item.CreatedUserID
	case p.collection != nil:
		return p.collection.CreatedUserID
	}
	return uuid.Nil
}

// Modified returns the last-update timestamp.
func (p Page) Modified() string {
	switch {
	case p.item != nil:
		return p.item.LastUpdatedAt
	case p.collection != nil:
		return p.collection.LastUpdatedAt
	}
	return ""
}

// ModifiedBy returns the id of the user who last updated the page.
func (p Page) ModifiedBy() uuid.UUID {
	switch {
	case p.item != nil:
		return p.item.LastUpdatedUserID
	case p.collection != nil:
		return p.collection.LastUpdatedUserID
	}
	return uuid.Nil
}

// UnmarshalJSON dispatches on the "object" discriminator.
func (p *Page) UnmarshalJSON(data []byte) error {
	var probe struct {
		Object PageKind `json:"object"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}

	switch probe.Object {
	case KindItem:
		var i Item
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*p = Page{item: &i}
	case KindCollection:
		var c Collection
		if err := json.Unmarshal(data, &c); err != nil {
			return err
		}
		*p = Page{collection: &c}
	default:
		return fmt.Errorf("unknown page object %q", probe.Object)
	}
	return nil
}

// MarshalJSON writes the active variant with its discriminator.
func (p Page) MarshalJSON() ([]byte, error) {
	switch {
	case p.item != nil:
		return json.Marshal(struct {
			Object PageKind `json:"object"`
			*Item
		}{KindItem, p.item})
	case p.collection != nil:
		return json.Marshal(struct {
			Object PageKind `json:"object"`
			*Collection
		}{KindCollection, p.collection})
	}
	return nil, fmt.Errorf("marshal empty page: %w", ErrProgrammer)
}
