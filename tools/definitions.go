package tools

// AllTools contains all tool specifications for the Nuclino MCP server.
// Tools are organized by category for easier maintenance.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	// ==========================================================================
	// DIRECTORY TOOLS
	// ==========================================================================
	{
		Name:     "nuclino_list_teams",
		Method:   "ListTeams",
		Title:    "List Teams",
		Category: "read",
		Resource: "team",
		Description: `List the Nuclino teams the API key can access.

USE WHEN: User asks "which teams do I have", or a team_id is needed for nuclino_list_pages or nuclino_search_pages.

NOT FOR: Listing workspaces (use nuclino_list_workspaces).

PARAMETERS:
- limit: Max results, 1-100 (default 100)
- after: Cursor from a previous call's next field

RETURNS: Team ids, names and URLs. next is set when more teams may follow.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "nuclino_get_team",
		Method:   "GetTeam",
		Title:    "Get Team",
		Category: "read",
		Resource: "team",
		Description: `Get a single team by id.

USE WHEN: You have a team_id and need its name or URL.

NOT FOR: Discovering team ids (use nuclino_list_teams).

PARAMETERS:
- team_id: Team UUID (required)

RETURNS: Team id, name, URL and creation details.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "nuclino_list_workspaces",
		Method:   "ListWorkspaces",
		Title:    "List Workspaces",
		Category: "read",
		Resource: "workspace",
		Description: `List workspaces across all accessible teams.

USE WHEN: User asks "what workspaces exist", or a workspace_id is needed.

NOT FOR: Looking up one workspace by name (use nuclino_find_workspace).

PARAMETERS:
- limit: Max results, 1-100 (default 100)
- after: Cursor from a previous call's next field

RETURNS: Workspaces with field definitions and top-level page ids. next is set when more may follow.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "nuclino_get_workspace",
		Method:   "GetWorkspace",
		Title:    "Get Workspace",
		Category: "read",
		Resource: "workspace",
		Description: `Get a workspace by id, including its fields and top-level pages.

USE WHEN: You know the workspace_id and need its structure or field definitions.

NOT FOR: Finding a workspace by name (use nuclino_find_workspace).

PARAMETERS:
- workspace_id: Workspace UUID (required)

RETURNS: Name, team, field definitions (type, currency, select options) and child page ids in order.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "nuclino_find_workspace",
		Method:   "FindWorkspace",
		Title:    "Find Workspace by Name",
		Category: "read",
		Resource: "workspace",
		Description: `Find a workspace by its name.

USE WHEN: User names a workspace ("the Engineering workspace") and you need its id.

NOT FOR: Searching page content (use nuclino_search_pages).

PARAMETERS:
- name: Workspace name, case-insensitive exact match (required)

RETURNS: The matching workspace, or a not-found error.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "nuclino_get_user",
		Method:   "GetUser",
		Title:    "Get User",
		Category: "read",
		Resource: "user",
		Description: `Get a user by id.

USE WHEN: A page's created_by or updated_by needs a human name or email.

PARAMETERS:
- user_id: User UUID (required)

RETURNS: Full name, email and avatar URL.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// PAGE TOOLS
	// ==========================================================================
	{
		Name:     "nuclino_get_page",
		Method:   "GetPage",
		Title:    "Get Page",
		Category: "read",
		Resource: "page",
		Description: `Get an item or collection by id.

USE WHEN: User asks to read, summarize or quote a specific page.

NOT FOR: Finding pages by text (use nuclino_search_pages).

PARAMETERS:
- page_id: Item or collection UUID (required)
- include_content: Return the markdown body (default true)

RETURNS: Title, URL, field values, markdown content and attached file ids for items; ordered child ids for collections.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "nuclino_list_pages",
		Method:   "ListPages",
		Title:    "List Pages",
		Category: "read",
		Resource: "page",
		Description: `List pages of a team or a workspace, most recent first.

USE WHEN: User asks "what pages are in X" or wants to browse.

NOT FOR: Text search (use nuclino_search_pages). Not for reading content (use nuclino_get_page).

PARAMETERS:
- team_id or workspace_id: Exactly one (required)
- limit: Max results, 1-100 (default 100)
- after: Cursor from a previous call's next field

RETURNS: Page summaries without content. next is set when more pages may follow.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "nuclino_search_pages",
		Method:   "SearchPages",
		Title:    "Search Pages",
		Category: "search",
		Resource: "page",
		Description: `Full-text search over pages of a team or a workspace.

USE WHEN: User asks "find pages about X", "where is X documented".

NOT FOR: Browsing without a query (use nuclino_list_pages).

PARAMETERS:
- query: Search text (required)
- team_id or workspace_id: Exactly one (required)
- limit: Max results, 1-100 (default 100)

RETURNS: Matching pages with highlighted snippets.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// WRITE TOOLS
	// ==========================================================================
	{
		Name:     "nuclino_create_page",
		Method:   "CreatePage",
		Title:    "Create Page",
		Category: "write",
		Resource: "page",
		Description: `Create a new item or collection.

USE WHEN: User says "create a page", "add a note to the Docs collection", "make a new collection".

NOT FOR: Changing an existing page (use nuclino_update_page).

PARAMETERS:
- kind: item or collection (default item)
- workspace_id or parent_id: Exactly one (required)
- title: Page title
- content: Markdown body, items only
- index: Position among siblings (default last)

RETURNS: The created page.`,
		ReadOnly:   false,
		Idempotent: false,
		OpenWorld:  true,
	},
	{
		Name:     "nuclino_update_page",
		Method:   "UpdatePage",
		Title:    "Update Page",
		Category: "write",
		Resource: "page",
		Description: `Change the title or content of an existing item.

USE WHEN: User says "rename the page", "rewrite the Roadmap page", "update the content".

NOT FOR: Creating pages (use nuclino_create_page).

PARAMETERS:
- page_id: Item UUID (required)
- title: New title (optional)
- content: New markdown body (optional, replaces the old body)

WARNING: content overwrites the entire page body.`,
		ReadOnly:    false,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:     "nuclino_delete_page",
		Method:   "DeletePage",
		Title:    "Delete Page",
		Category: "write",
		Resource: "page",
		Description: `Move an item or collection to the trash.

USE WHEN: User explicitly asks to delete or trash a page.

PARAMETERS:
- page_id: Item or collection UUID (required)

RETURNS: The id of the trashed page.`,
		ReadOnly:    false,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},

	// ==========================================================================
	// FILE TOOLS
	// ==========================================================================
	{
		Name:     "nuclino_get_file",
		Method:   "GetFile",
		Title:    "Get File",
		Category: "read",
		Resource: "file",
		Description: `Get metadata of a file attached to an item.

USE WHEN: A page lists file_ids and the user asks about an attachment.

NOT FOR: Reading the file data (use nuclino_download_file).

PARAMETERS:
- file_id: File UUID (required)

RETURNS: File name, owning item and a short-lived download URL.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "nuclino_download_file",
		Method:   "DownloadFile",
		Title:    "Download File",
		Category: "read",
		Resource: "file",
		Description: `Download the data of an attached file.

USE WHEN: User asks to read or summarize an attachment.

PARAMETERS:
- file_id: File UUID (required)
- max_bytes: Truncate data to this size (default 1 MiB)

RETURNS: UTF-8 text as-is, anything else base64-encoded.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
}

// ToolsByResource returns the tools acting on the given resource.
func ToolsByResource(resource string) []ToolSpec {
	var out []ToolSpec
	for _, spec := range AllTools {
		if spec.Resource == resource {
			out = append(out, spec)
		}
	}
	return out
}

// ToolsByCategory returns the tools in the given category.
func ToolsByCategory(category string) []ToolSpec {
	var out []ToolSpec
	for _, spec := range AllTools {
		if spec.Category == category {
			out = append(out, spec)
		}
	}
	return out
}
