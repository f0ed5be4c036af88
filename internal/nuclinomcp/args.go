package nuclinomcp

// GetUserArgs contains parameters for fetching a user
type GetUserArgs struct {
	UserID string `json:"user_id" jsonschema:"UUID of the user (e.g. a page's created_by)"`
}

// GetUserResult is the result of fetching a user
type GetUserResult struct {
	User UserSummary `json:"user"`
}

// UserSummary is a user as shown to MCP clients
type UserSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// ListTeamsArgs contains parameters for listing teams
type ListTeamsArgs struct {
	Limit int    `json:"limit,omitempty" jsonschema:"Max results, 1-100 (default 100)"`
	After string `json:"after,omitempty" jsonschema:"ID of the last team from the previous call, for the next batch"`
}

// ListTeamsResult is the result of listing teams
type ListTeamsResult struct {
	Teams []TeamSummary `json:"teams"`
	Next  string        `json:"next,omitempty"` // pass as after to continue
}

// GetTeamArgs contains parameters for fetching a team
type GetTeamArgs struct {
	TeamID string `json:"team_id" jsonschema:"UUID of the team"`
}

// GetTeamResult is the result of fetching a team
type GetTeamResult struct {
	Team TeamSummary `json:"team"`
}

// TeamSummary is a team as shown to MCP clients
type TeamSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	URL       string `json:"url,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	CreatedBy string `json:"created_by,omitempty"`
}

// ListWorkspacesArgs contains parameters for listing workspaces
type ListWorkspacesArgs struct {
	Limit int    `json:"limit,omitempty" jsonschema:"Max results, 1-100 (default 100)"`
	After string `json:"after,omitempty" jsonschema:"ID of the last workspace from the previous call, for the next batch"`
}

// ListWorkspacesResult is the result of listing workspaces
type ListWorkspacesResult struct {
	Workspaces []WorkspaceSummary `json:"workspaces"`
	Next       string             `json:"next,omitempty"`
}

// GetWorkspaceArgs contains parameters for fetching a workspace
type GetWorkspaceArgs struct {
	WorkspaceID string `json:"workspace_id" jsonschema:"UUID of the workspace"`
}

// GetWorkspaceResult is the result of fetching a workspace
type GetWorkspaceResult struct {
	Workspace WorkspaceSummary `json:"workspace"`
}

// FindWorkspaceArgs contains parameters for looking up a workspace by name
type FindWorkspaceArgs struct {
	Name string `json:"name" jsonschema:"Exact workspace name, case-insensitive"`
}

// FindWorkspaceResult is the result of a workspace lookup
type FindWorkspaceResult struct {
	Workspace WorkspaceSummary `json:"workspace"`
	Scanned   int              `json:"scanned"` // workspaces inspected before the match
}

// WorkspaceSummary is a workspace as shown to MCP clients
type WorkspaceSummary struct {
	ID        string         `json:"id"`
	TeamID    string         `json:"team_id"`
	Name      string         `json:"name"`
	CreatedAt string         `json:"created_at,omitempty"`
	CreatedBy string         `json:"created_by,omitempty"`
	Fields    []FieldSummary `json:"fields,omitempty"`
	ChildIDs  []string       `json:"child_ids,omitempty"`
}

// FieldSummary describes a workspace field definition
type FieldSummary struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Currency string   `json:"currency,omitempty"`
	Options  []string `json:"options,omitempty"` // select / multiSelect labels
}

// GetPageArgs contains parameters for fetching a page
type GetPageArgs struct {
	PageID         string `json:"page_id" jsonschema:"UUID of the item or collection"`
	IncludeContent *bool  `json:"include_content,omitempty" jsonschema:"Return the markdown body of items (default true)"`
}

// GetPageResult is the result of fetching a page
type GetPageResult struct {
	Page PageSummary `json:"page"`
}

// PageSummary is an item or collection as shown to MCP clients
type PageSummary struct {
	ID          string            `json:"id"`
	Kind        string            `json:"kind"` // item, collection
	Title       string            `json:"title"`
	URL         string            `json:"url,omitempty"`
	WorkspaceID string            `json:"workspace_id"`
	CreatedAt   string            `json:"created_at,omitempty"`
	CreatedBy   string            `json:"created_by,omitempty"`
	UpdatedAt   string            `json:"updated_at,omitempty"`
	UpdatedBy   string            `json:"updated_by,omitempty"`
	Content     *string           `json:"content,omitempty"`
	Highlight   string            `json:"highlight,omitempty"`
	Fields      map[string]string `json:"fields,omitempty"`
	ChildIDs    []string          `json:"child_ids,omitempty"`
	LinkedItems []string          `json:"linked_items,omitempty"`
	FileIDs     []string          `json:"file_ids,omitempty"`
}

// ListPagesArgs contains parameters for listing pages
type ListPagesArgs struct {
	TeamID      string `json:"team_id,omitempty" jsonschema:"UUID of the team (exactly one of team_id, workspace_id)"`
	WorkspaceID string `json:"workspace_id,omitempty" jsonschema:"UUID of the workspace (exactly one of team_id, workspace_id)"`
	Limit       int    `json:"limit,omitempty" jsonschema:"Max results, 1-100 (default 100)"`
	After       string `json:"after,omitempty" jsonschema:"ID of the last page from the previous call, for the next batch"`
}

// ListPagesResult is the result of listing pages
type ListPagesResult struct {
	Pages []PageSummary `json:"pages"`
	Next  string        `json:"next,omitempty"`
}

// SearchPagesArgs contains parameters for a full-text page search
type SearchPagesArgs struct {
	Query       string `json:"query" jsonschema:"Text to search for"`
	TeamID      string `json:"team_id,omitempty" jsonschema:"UUID of the team (exactly one of team_id, workspace_id)"`
	WorkspaceID string `json:"workspace_id,omitempty" jsonschema:"UUID of the workspace (exactly one of team_id, workspace_id)"`
	Limit       int    `json:"limit,omitempty" jsonschema:"Max results, 1-100 (default 100)"`
}

// SearchPagesResult is the result of a page search
type SearchPagesResult struct {
	Query string        `json:"query"`
	Pages []PageSummary `json:"pages"`
}

// CreatePageArgs contains parameters for creating a page
type CreatePageArgs struct {
	Kind        string  `json:"kind,omitempty" jsonschema:"item or collection (default item)"`
	Title       string  `json:"title,omitempty" jsonschema:"Page title"`
	WorkspaceID string  `json:"workspace_id,omitempty" jsonschema:"UUID of the workspace to create the page in (exactly one of workspace_id, parent_id)"`
	ParentID    string  `json:"parent_id,omitempty" jsonschema:"UUID of the parent collection (exactly one of workspace_id, parent_id)"`
	Content     *string `json:"content,omitempty" jsonschema:"Markdown body, items only"`
	Index       *int    `json:"index,omitempty" jsonschema:"Position among the parent's children (default last)"`
}

// CreatePageResult is the result of creating a page
type CreatePageResult struct {
	Page PageSummary `json:"page"`
}

// UpdatePageArgs contains parameters for editing an item
type UpdatePageArgs struct {
	PageID  string  `json:"page_id" jsonschema:"UUID of the item to edit"`
	Title   *string `json:"title,omitempty" jsonschema:"New title"`
	Content *string `json:"content,omitempty" jsonschema:"New markdown body, replaces the old one"`
}

// UpdatePageResult is the result of editing an item
type UpdatePageResult struct {
	Page PageSummary `json:"page"`
}

// DeletePageArgs contains parameters for trashing a page
type DeletePageArgs struct {
	PageID string `json:"page_id" jsonschema:"UUID of the item or collection to move to trash"`
}

// DeletePageResult is the result of trashing a page
type DeletePageResult struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// GetFileArgs contains parameters for fetching file metadata
type GetFileArgs struct {
	FileID string `json:"file_id" jsonschema:"UUID of the file (see a page's file_ids)"`
}

// GetFileResult is the result of fetching file metadata
type GetFileResult struct {
	File FileSummary `json:"file"`
}

// FileSummary is a file as shown to MCP clients
type FileSummary struct {
	ID          string `json:"id"`
	ItemID      string `json:"item_id"`
	FileName    string `json:"file_name"`
	CreatedAt   string `json:"created_at,omitempty"`
	CreatedBy   string `json:"created_by,omitempty"`
	DownloadURL string `json:"download_url,omitempty"`
	ExpiresAt   string `json:"expires_at,omitempty"`
}

// DownloadFileArgs contains parameters for downloading a file
type DownloadFileArgs struct {
	FileID   string `json:"file_id" jsonschema:"UUID of the file"`
	MaxBytes int    `json:"max_bytes,omitempty" jsonschema:"Truncate the returned data to this many bytes (default 1048576)"`
}

// DownloadFileResult is the result of downloading a file
type DownloadFileResult struct {
	FileName  string `json:"file_name"`
	Size      int    `json:"size"`
	Encoding  string `json:"encoding"` // text, base64
	Data      string `json:"data"`
	Truncated bool   `json:"truncated,omitempty"`
}
