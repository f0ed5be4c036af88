// Package nuclinomcp adapts the nuclino client to MCP tools: it validates
// tool arguments and reduces API entities to compact JSON summaries.
package nuclinomcp

import (
	"context"
	"encoding/base64"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/olgasafonova/nuclino-mcp-server/internal/errors"
	"github.com/olgasafonova/nuclino-mcp-server/nuclino"
	"github.com/olgasafonova/nuclino-mcp-server/tracing"
)

// Service exposes nuclino operations with Args/Result types for MCP integration.
type Service struct {
	client *nuclino.Client
	logger *slog.Logger
}

// NewService wraps a nuclino client.
func NewService(client *nuclino.Client, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{client: client, logger: logger}
}

// GetUserMCP is the MCP wrapper for User
func (s *Service) GetUserMCP(ctx context.Context, args GetUserArgs) (GetUserResult, error) {
	id, err := ParseID("user_id", args.UserID)
	if err != nil {
		return GetUserResult{}, err
	}
	user, err := s.client.User(ctx, id)
	if err != nil {
		return GetUserResult{}, err
	}
	return GetUserResult{User: toUserSummary(user)}, nil
}

// ListTeamsMCP is the MCP wrapper for TeamList
func (s *Service) ListTeamsMCP(ctx context.Context, args ListTeamsArgs) (ListTeamsResult, error) {
	opts, err := listOptions(args.Limit, args.After)
	if err != nil {
		return ListTeamsResult{}, err
	}
	teams, err := s.client.TeamList(ctx, opts)
	if err != nil {
		return ListTeamsResult{}, err
	}

	result := ListTeamsResult{Teams: make([]TeamSummary, 0, len(teams))}
	for _, t := range teams {
		result.Teams = append(result.Teams, toTeamSummary(t))
	}
	if len(teams) > 0 && len(teams) == effectiveLimit(args.Limit) {
		result.Next = teams[len(teams)-1].ID.String()
	}
	return result, nil
}

// GetTeamMCP is the MCP wrapper for Team
func (s *Service) GetTeamMCP(ctx context.Context, args GetTeamArgs) (GetTeamResult, error) {
	id, err := ParseID("team_id", args.TeamID)
	if err != nil {
		return GetTeamResult{}, err
	}
	team, err := s.client.Team(ctx, id.String())
	if err != nil {
		return GetTeamResult{}, err
	}
	return GetTeamResult{Team: toTeamSummary(team)}, nil
}

// ListWorkspacesMCP is the MCP wrapper for WorkspaceList
func (s *Service) ListWorkspacesMCP(ctx context.Context, args ListWorkspacesArgs) (ListWorkspacesResult, error) {
	opts, err := listOptions(args.Limit, args.After)
	if err != nil {
		return ListWorkspacesResult{}, err
	}
	workspaces, err := s.client.WorkspaceList(ctx, opts)
	if err != nil {
		return ListWorkspacesResult{}, err
	}

	result := ListWorkspacesResult{Workspaces: make([]WorkspaceSummary, 0, len(workspaces))}
	for i := range workspaces {
		result.Workspaces = append(result.Workspaces, toWorkspaceSummary(&workspaces[i]))
	}
	if len(workspaces) > 0 && len(workspaces) == effectiveLimit(args.Limit) {
		result.Next = workspaces[len(workspaces)-1].ID.String()
	}
	return result, nil
}

// GetWorkspaceMCP is the MCP wrapper for Workspace
func (s *Service) GetWorkspaceMCP(ctx context.Context, args GetWorkspaceArgs) (GetWorkspaceResult, error) {
	id, err := ParseID("workspace_id", args.WorkspaceID)
	if err != nil {
		return GetWorkspaceResult{}, err
	}
	ws, err := s.client.Workspace(ctx, id)
	if err != nil {
		return GetWorkspaceResult{}, err
	}
	return GetWorkspaceResult{Workspace: toWorkspaceSummary(&ws)}, nil
}

// FindWorkspaceMCP walks the workspace list with the after cursor until a
// workspace with the given name turns up.
func (s *Service) FindWorkspaceMCP(ctx context.Context, args FindWorkspaceArgs) (FindWorkspaceResult, error) {
	name := strings.TrimSpace(args.Name)
	if name == "" {
		return FindWorkspaceResult{}, apperrors.NewValidationError("name", "", "is required")
	}

	opts := &nuclino.ListOptions{Limit: MaxLimit}
	scanned := 0
	for {
		batch, err := s.client.WorkspaceList(ctx, opts)
		if err != nil {
			return FindWorkspaceResult{}, err
		}
		for i := range batch {
			scanned++
			if strings.EqualFold(batch[i].Name, name) {
				return FindWorkspaceResult{Workspace: toWorkspaceSummary(&batch[i]), Scanned: scanned}, nil
			}
		}
		if len(batch) < opts.Limit {
			break
		}
		next := batch[len(batch)-1].ID.String()
		if next == opts.After {
			s.logger.Warn("Workspace cursor did not advance", "after", next)
			break
		}
		opts.After = next
	}
	return FindWorkspaceResult{}, apperrors.NewNotFoundError("workspace", name)
}

// GetPageMCP is the MCP wrapper for Page
func (s *Service) GetPageMCP(ctx context.Context, args GetPageArgs) (GetPageResult, error) {
	id, err := ParseID("page_id", args.PageID)
	if err != nil {
		return GetPageResult{}, err
	}
	page, err := s.client.Page(ctx, id)
	if err != nil {
		return GetPageResult{}, err
	}
	includeContent := args.IncludeContent == nil || *args.IncludeContent
	tagPage(ctx, page)
	return GetPageResult{Page: toPageSummary(page, includeContent)}, nil
}

// ListPagesMCP is the MCP wrapper for AllPagesForTeam and AllPagesForWorkspace
func (s *Service) ListPagesMCP(ctx context.Context, args ListPagesArgs) (ListPagesResult, error) {
	scope, scopeID, err := parseScope(args.TeamID, args.WorkspaceID)
	if err != nil {
		return ListPagesResult{}, err
	}
	opts, err := listOptions(args.Limit, args.After)
	if err != nil {
		return ListPagesResult{}, err
	}

	var list *nuclino.List[nuclino.Page]
	if scope == scopeTeam {
		list, err = s.client.AllPagesForTeam(ctx, scopeID, opts)
	} else {
		list, err = s.client.AllPagesForWorkspace(ctx, scopeID, opts)
	}
	if err != nil {
		return ListPagesResult{}, err
	}

	result := ListPagesResult{Pages: toPageSummaries(list.Results, false)}
	if last, ok := list.Last(); ok && list.Len() == effectiveLimit(args.Limit) {
		result.Next = last.ID().String()
	}
	return result, nil
}

// SearchPagesMCP is the MCP wrapper for SearchTeam and SearchWorkspace
func (s *Service) SearchPagesMCP(ctx context.Context, args SearchPagesArgs) (SearchPagesResult, error) {
	if err := ValidateQuery(args.Query); err != nil {
		return SearchPagesResult{}, err
	}
	if err := ValidateLimit(args.Limit); err != nil {
		return SearchPagesResult{}, err
	}
	scope, scopeID, err := parseScope(args.TeamID, args.WorkspaceID)
	if err != nil {
		return SearchPagesResult{}, err
	}

	query := strings.TrimSpace(args.Query)
	var opts *nuclino.SearchOptions
	if args.Limit > 0 {
		opts = &nuclino.SearchOptions{Limit: args.Limit}
	}

	var pages []nuclino.Page
	if scope == scopeTeam {
		pages, err = s.client.SearchTeam(ctx, scopeID, query, opts)
	} else {
		pages, err = s.client.SearchWorkspace(ctx, scopeID, query, opts)
	}
	if err != nil {
		return SearchPagesResult{}, err
	}
	return SearchPagesResult{Query: query, Pages: toPageSummaries(pages, false)}, nil
}

// CreatePageMCP is the MCP wrapper for PageCreate
func (s *Service) CreatePageMCP(ctx context.Context, args CreatePageArgs) (CreatePageResult, error) {
	if err := args.validate(); err != nil {
		return CreatePageResult{}, err
	}

	builder := nuclino.NewItem()
	if args.Kind == string(nuclino.KindCollection) {
		builder = nuclino.NewCollection()
	}
	if args.WorkspaceID != "" {
		id, err := ParseID("workspace_id", args.WorkspaceID)
		if err != nil {
			return CreatePageResult{}, err
		}
		builder.Workspace(id)
	} else {
		id, err := ParseID("parent_id", args.ParentID)
		if err != nil {
			return CreatePageResult{}, err
		}
		builder.Parent(id)
	}
	if args.Title != "" {
		builder.Title(args.Title)
	}
	if args.Content != nil {
		builder.Content(*args.Content)
	}
	if args.Index != nil {
		builder.Index(*args.Index)
	}

	page, err := s.client.PageCreate(ctx, builder.Build())
	if err != nil {
		return CreatePageResult{}, err
	}
	tagPage(ctx, page)
	return CreatePageResult{Page: toPageSummary(page, true)}, nil
}

// UpdatePageMCP is the MCP wrapper for PageUpdate
func (s *Service) UpdatePageMCP(ctx context.Context, args UpdatePageArgs) (UpdatePageResult, error) {
	id, err := ParseID("page_id", args.PageID)
	if err != nil {
		return UpdatePageResult{}, err
	}
	if err := args.validate(); err != nil {
		return UpdatePageResult{}, err
	}

	var update nuclino.ModifyItem
	if args.Title != nil {
		update = update.SetTitle(*args.Title)
	}
	if args.Content != nil {
		update = update.SetContent(*args.Content)
	}

	page, err := s.client.PageUpdate(ctx, id, update)
	if err != nil {
		return UpdatePageResult{}, err
	}
	tagPage(ctx, page)
	return UpdatePageResult{Page: toPageSummary(page, true)}, nil
}

// DeletePageMCP is the MCP wrapper for PageDelete
func (s *Service) DeletePageMCP(ctx context.Context, args DeletePageArgs) (DeletePageResult, error) {
	id, err := ParseID("page_id", args.PageID)
	if err != nil {
		return DeletePageResult{}, err
	}
	deleted, err := s.client.PageDelete(ctx, id)
	if err != nil {
		return DeletePageResult{}, err
	}
	return DeletePageResult{ID: deleted.ID.String(), Deleted: true}, nil
}

// GetFileMCP is the MCP wrapper for File
func (s *Service) GetFileMCP(ctx context.Context, args GetFileArgs) (GetFileResult, error) {
	id, err := ParseID("file_id", args.FileID)
	if err != nil {
		return GetFileResult{}, err
	}
	file, err := s.client.File(ctx, id)
	if err != nil {
		return GetFileResult{}, err
	}
	return GetFileResult{File: toFileSummary(file)}, nil
}

// DownloadFileMCP fetches file metadata, then the file itself from its signed URL.
func (s *Service) DownloadFileMCP(ctx context.Context, args DownloadFileArgs) (DownloadFileResult, error) {
	id, err := ParseID("file_id", args.FileID)
	if err != nil {
		return DownloadFileResult{}, err
	}
	if args.MaxBytes < 0 {
		return DownloadFileResult{}, apperrors.NewValidationError("max_bytes", "", "cannot be negative")
	}
	maxBytes := args.MaxBytes
	if maxBytes == 0 {
		maxBytes = DefaultMaxBytes
	}

	file, err := s.client.File(ctx, id)
	if err != nil {
		return DownloadFileResult{}, err
	}
	if file.Download.URL == "" {
		return DownloadFileResult{}, apperrors.NewNotFoundError("download url", id.String())
	}
	data, err := s.client.DownloadFile(ctx, file.Download.URL)
	if err != nil {
		return DownloadFileResult{}, err
	}

	result := DownloadFileResult{FileName: file.FileName, Size: len(data)}
	if len(data) > maxBytes {
		data = data[:runeBoundary(data, maxBytes)]
		result.Truncated = true
	}
	if utf8.Valid(data) {
		result.Encoding = "text"
		result.Data = string(data)
	} else {
		result.Encoding = "base64"
		result.Data = base64.StdEncoding.EncodeToString(data)
	}
	return result, nil
}

// runeBoundary backs n off so data[:n] does not split a UTF-8 sequence.
// Binary data with no rune start nearby is cut at n.
func runeBoundary(data []byte, n int) int {
	for i := n; i >= 0 && i > n-utf8.UTFMax; i-- {
		if utf8.RuneStart(data[i]) {
			return i
		}
	}
	return n
}

// tagPage annotates the caller's span with the page it resolved to.
func tagPage(ctx context.Context, page nuclino.Page) {
	tracing.AddPageAttributes(trace.SpanFromContext(ctx), page.ID().String(), string(page.Kind()))
}

func listOptions(limit int, after string) (*nuclino.ListOptions, error) {
	if err := ValidateLimit(limit); err != nil {
		return nil, err
	}
	if err := ValidateAfter(after); err != nil {
		return nil, err
	}
	if limit == 0 && after == "" {
		return nil, nil
	}
	return &nuclino.ListOptions{Limit: limit, After: after}, nil
}

func effectiveLimit(limit int) int {
	if limit == 0 {
		return MaxLimit
	}
	return limit
}

func toUserSummary(u nuclino.User) UserSummary {
	summary := UserSummary{
		ID:    u.ID.String(),
		Name:  u.FullName(),
		Email: u.Email,
	}
	if u.AvatarURL != nil {
		summary.AvatarURL = *u.AvatarURL
	}
	return summary
}

func toTeamSummary(t nuclino.Team) TeamSummary {
	return TeamSummary{
		ID:        t.ID.String(),
		Name:      t.Name,
		URL:       t.URL,
		CreatedAt: t.CreatedAt,
		CreatedBy: idString(t.CreatedUserID),
	}
}

func toWorkspaceSummary(w *nuclino.Workspace) WorkspaceSummary {
	summary := WorkspaceSummary{
		ID:        w.ID.String(),
		TeamID:    w.TeamID.String(),
		Name:      w.Name,
		CreatedAt: w.CreatedAt,
		CreatedBy: idString(w.CreatedUserID),
		ChildIDs:  idStrings(w.Children()),
	}
	for _, f := range w.Fields {
		fs := FieldSummary{
			ID:       f.ID.String(),
			Name:     f.Name,
			Type:     string(f.Type),
			Currency: f.Config.Currency,
		}
		for _, opt := range f.Config.Options {
			fs.Options = append(fs.Options, opt.Name)
		}
		summary.Fields = append(summary.Fields, fs)
	}
	return summary
}

func toPageSummaries(pages []nuclino.Page, includeContent bool) []PageSummary {
	out := make([]PageSummary, 0, len(pages))
	for _, p := range pages {
		out = append(out, toPageSummary(p, includeContent))
	}
	return out
}

func toPageSummary(p nuclino.Page, includeContent bool) PageSummary {
	summary := PageSummary{
		ID:          p.ID().String(),
		Kind:        string(p.Kind()),
		Title:       p.Title(),
		URL:         p.URL(),
		WorkspaceID: p.Workspace().String(),
		CreatedAt:   p.Created(),
		CreatedBy:   idString(p.CreatedBy()),
		UpdatedAt:   p.Modified(),
		UpdatedBy:   idString(p.ModifiedBy()),
	}

	if item := p.Item(); item != nil {
		if includeContent {
			summary.Content = item.Content
		}
		if item.Highlight != nil {
			summary.Highlight = *item.Highlight
		}
		if len(item.Fields) > 0 {
			summary.Fields = make(map[string]string, len(item.Fields))
			for name := range item.Fields {
				if v, ok := item.FieldValue(name); ok {
					summary.Fields[name] = v
				}
			}
		}
		summary.LinkedItems = idStrings(item.ContentMeta.ItemIDs)
		summary.FileIDs = idStrings(item.ContentMeta.FileIDs)
	}
	if coll := p.Collection(); coll != nil {
		summary.ChildIDs = idStrings(coll.Children())
	}
	return summary
}

func toFileSummary(f nuclino.File) FileSummary {
	return FileSummary{
		ID:          f.ID.String(),
		ItemID:      f.ItemID.String(),
		FileName:    f.FileName,
		CreatedAt:   f.CreatedAt,
		CreatedBy:   idString(f.CreatedUserID),
		DownloadURL: f.Download.URL,
		ExpiresAt:   f.Download.ExpiresAt,
	}
}

func idString(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}

func idStrings(ids []uuid.UUID) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
