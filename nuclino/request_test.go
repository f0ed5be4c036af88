package nuclino

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewPageBuilder_ItemRoundTrip(t *testing.T) {
	page := NewItem().
		Title("Test page").
		Content("# Hello\n\nBody text").
		Workspace(workspaceID).
		Build()

	data, err := json.Marshal(page)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(string(data), "parentId") {
		t.Errorf("parentId must be omitted, got %s", data)
	}
	if strings.Contains(string(data), "null") {
		t.Errorf("absent fields must not be sent as null, got %s", data)
	}
	if strings.Contains(string(data), "index") {
		t.Errorf("unset index must be omitted, got %s", data)
	}

	var decoded NewPage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded.Title == nil || *decoded.Title != "Test page" {
		t.Errorf("Title = %v, want Test page", decoded.Title)
	}
	if decoded.Content == nil || *decoded.Content != "# Hello\n\nBody text" {
		t.Errorf("Content = %v", decoded.Content)
	}
	if decoded.WorkspaceID == nil || *decoded.WorkspaceID != workspaceID {
		t.Errorf("WorkspaceID = %v, want %v", decoded.WorkspaceID, workspaceID)
	}
	if decoded.ParentID != nil {
		t.Errorf("ParentID = %v, want nil", decoded.ParentID)
	}
	if decoded.Object != KindItem {
		t.Errorf("Object = %q, want %q", decoded.Object, KindItem)
	}
}

func TestNewPageBuilder_CollectionDropsContent(t *testing.T) {
	page := NewCollection().
		Title("A collection").
		Content("ignored").
		Parent(collectionID).
		Build()

	if page.Content != nil {
		t.Errorf("Content = %q, want nil for collection", *page.Content)
	}
	if page.Object != KindCollection {
		t.Errorf("Object = %q, want %q", page.Object, KindCollection)
	}

	data, err := json.Marshal(page)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(string(data), "content") {
		t.Errorf("content must be omitted for collections, got %s", data)
	}
}

func TestNewPageBuilder_WorkspaceParentExclusive(t *testing.T) {
	other := uuid.MustParse("66be346f-44e2-49da-888b-a2e381d4d92a")

	tests := []struct {
		name          string
		build         func() NewPage
		wantWorkspace *uuid.UUID
		wantParent    *uuid.UUID
	}{
		{
			name:          "workspace after parent clears parent",
			build:         func() NewPage { return NewItem().Parent(collectionID).Workspace(workspaceID).Build() },
			wantWorkspace: &workspaceID,
		},
		{
			name:       "parent after workspace clears workspace",
			build:      func() NewPage { return NewItem().Workspace(workspaceID).Parent(collectionID).Build() },
			wantParent: &collectionID,
		},
		{
			name:          "last workspace wins",
			build:         func() NewPage { return NewCollection().Workspace(workspaceID).Workspace(other).Build() },
			wantWorkspace: &other,
		},
		{
			name:  "neither set is allowed",
			build: func() NewPage { return NewItem().Title("orphan").Build() },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.build()
			if p.WorkspaceID != nil && p.ParentID != nil {
				t.Fatal("workspace and parent are both set")
			}
			if !equalUUIDPtr(p.WorkspaceID, tt.wantWorkspace) {
				t.Errorf("WorkspaceID = %v, want %v", p.WorkspaceID, tt.wantWorkspace)
			}
			if !equalUUIDPtr(p.ParentID, tt.wantParent) {
				t.Errorf("ParentID = %v, want %v", p.ParentID, tt.wantParent)
			}
		})
	}
}

func TestNewPageBuilder_Index(t *testing.T) {
	page := NewItem().Workspace(workspaceID).Index(0).Build()

	data, err := json.Marshal(page)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), `"index":0`) {
		t.Errorf("index 0 must be sent, got %s", data)
	}
}

func TestNewPageBuilder_BuildIsSnapshot(t *testing.T) {
	b := NewItem().Title("first").Workspace(workspaceID)
	first := b.Build()
	b.Title("second")

	if *first.Title != "first" {
		t.Errorf("built page changed after builder mutation: %q", *first.Title)
	}
}

func TestModifyItem_OmitsAbsentFields(t *testing.T) {
	tests := []struct {
		name   string
		update ModifyItem
		want   string
	}{
		{"empty", ModifyItem{}, `{}`},
		{"title only", ModifyItem{}.SetTitle("New title"), `{"title":"New title"}`},
		{"content only", ModifyItem{}.SetContent("body"), `{"content":"body"}`},
		{"both", ModifyItem{}.SetTitle("T").SetContent("C"), `{"title":"T","content":"C"}`},
		{"empty string is sent", ModifyItem{Title: strPtr("")}, `{"title":""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.update)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal() = %s, want %s", data, tt.want)
			}
		})
	}

	if !(ModifyItem{}).IsEmpty() {
		t.Error("IsEmpty() should be true for zero value")
	}
	if (ModifyItem{}).SetTitle("x").IsEmpty() {
		t.Error("IsEmpty() should be false when title is set")
	}
}

func equalUUIDPtr(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
