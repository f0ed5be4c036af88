package nuclino

import (
	"slices"

	"github.com/google/uuid"
)

// Timestamps are kept as the ISO-8601 strings the service returns,
// e.g. "2021-12-15T15:54:23.598Z".

// IDOnly is the stub returned by delete endpoints.
type IDOnly struct {
	ID uuid.UUID `json:"id"`
}

// User is a Nuclino user account.
type User struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	AvatarURL *string   `json:"avatarUrl,omitempty"`
}

// FullName joins first and last name.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// Team is the top-level account grouping workspaces.
type Team struct {
	ID            uuid.UUID `json:"id"`
	URL           string    `json:"url"`
	Name          string    `json:"name"`
	CreatedAt     string    `json:"createdAt"`
	CreatedUserID uuid.UUID `json:"createdUserId"`
}

// Workspace owns pages and the field definitions shared by its items.
type Workspace struct {
	ID            uuid.UUID   `json:"id"`
	TeamID        uuid.UUID   `json:"teamId"`
	Name          string      `json:"name"`
	CreatedAt     string      `json:"createdAt"`
	CreatedUserID uuid.UUID   `json:"createdUserId"`
	Fields        []Field     `json:"fields"`
	ChildIDs      []uuid.UUID `json:"childIds"`
}

// Children returns the ids of the workspace's top-level pages in order.
func (w *Workspace) Children() []uuid.UUID {
	return w.ChildIDs
}

// HasChild reports whether id is a top-level page of the workspace.
func (w *Workspace) HasChild(id uuid.UUID) bool {
	return slices.Contains(w.ChildIDs, id)
}

// Field returns the field definition with the given name.
func (w *Workspace) Field(name string) (Field, bool) {
	for _, f := range w.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// File is an attachment referenced from an item.
type File struct {
	ID            uuid.UUID    `json:"id"`
	ItemID        uuid.UUID    `json:"itemId"`
	FileName      string       `json:"fileName"`
	CreatedAt     string       `json:"createdAt"`
	CreatedUserID uuid.UUID    `json:"createdUserId"`
	Download      DownloadInfo `json:"download"`
}

// DownloadInfo holds a short-lived signed URL for a file.
type DownloadInfo struct {
	URL       string `json:"url"`
	ExpiresAt string `json:"expiresAt"`
}
