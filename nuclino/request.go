package nuclino

import "github.com/google/uuid"

// NewPage is the body of a page create request. Build one with NewItem or
// NewCollection. Absent optional fields are omitted from the JSON body.
type NewPage struct {
	WorkspaceID *uuid.UUID `json:"workspaceId,omitempty"`
	ParentID    *uuid.UUID `json:"parentId,omitempty"`
	Title       *string    `json:"title,omitempty"`
	Index       *int       `json:"index,omitempty"`
	Object      PageKind   `json:"object"`
	Content     *string    `json:"content,omitempty"`
}

// NewPageBuilder stages a NewPage. Exactly one of workspace or parent should
// be set before Build; Build does not check this, the service will reject it.
type NewPageBuilder struct {
	workspaceID *uuid.UUID
	parentID    *uuid.UUID
	title       *string
	index       *int
	kind        PageKind
	content     *string
}

// NewItem starts building an item.
func NewItem() *NewPageBuilder {
	return &NewPageBuilder{kind: KindItem}
}

// NewCollection starts building a collection.
func NewCollection() *NewPageBuilder {
	return &NewPageBuilder{kind: KindCollection}
}

// Title sets the page title.
func (b *NewPageBuilder) Title(title string) *NewPageBuilder {
	b.title = &title
	return b
}

// Index sets the zero-based position among siblings. Unset appends.
func (b *NewPageBuilder) Index(index int) *NewPageBuilder {
	b.index = &index
	return b
}

// Workspace places the page at the top level of a workspace and clears any parent.
func (b *NewPageBuilder) Workspace(id uuid.UUID) *NewPageBuilder {
	b.workspaceID = &id
	b.parentID = nil
	return b
}

// Parent places the page inside a collection and clears any workspace.
func (b *NewPageBuilder) Parent(id uuid.UUID) *NewPageBuilder {
	b.parentID = &id
	b.workspaceID = nil
	return b
}

// Content sets the markdown body. It is dropped for collections.
func (b *NewPageBuilder) Content(content string) *NewPageBuilder {
	b.content = &content
	return b
}

// Build returns the staged page.
func (b *NewPageBuilder) Build() NewPage {
	p := NewPage{
		WorkspaceID: cloneUUID(b.workspaceID),
		ParentID:    cloneUUID(b.parentID),
		Title:       cloneString(b.title),
		Index:       cloneInt(b.index),
		Object:      b.kind,
	}
	if b.kind == KindItem {
		p.Content = cloneString(b.content)
	}
	return p
}

// ModifyItem is the body of a page update. Nil fields are left unchanged
// by the service because they are omitted from the request.
type ModifyItem struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// SetTitle sets the new title.
func (m ModifyItem) SetTitle(title string) ModifyItem {
	m.Title = &title
	return m
}

// SetContent sets the new markdown content.
func (m ModifyItem) SetContent(content string) ModifyItem {
	m.Content = &content
	return m
}

// IsEmpty reports whether the update changes nothing.
func (m ModifyItem) IsEmpty() bool {
	return m.Title == nil && m.Content == nil
}

func cloneUUID(v *uuid.UUID) *uuid.UUID {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
