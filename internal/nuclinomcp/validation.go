package nuclinomcp

import (
	"errors"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	apperrors "github.com/olgasafonova/nuclino-mcp-server/internal/errors"
	"github.com/olgasafonova/nuclino-mcp-server/nuclino"
)

// MaxLimit is the largest page size the service accepts.
const MaxLimit = 100

// DefaultMaxBytes bounds downloaded file data returned to MCP clients.
const DefaultMaxBytes = 1 << 20

// ParseID parses a required UUID argument.
func ParseID(field, value string) (uuid.UUID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return uuid.Nil, apperrors.NewValidationError(field, "", "is required")
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, apperrors.NewValidationError(field, value, "must be a UUID")
	}
	return id, nil
}

// ValidateLimit checks a page size argument. Zero means the service default.
func ValidateLimit(limit int) error {
	if err := validation.Validate(limit, validation.Min(0), validation.Max(MaxLimit)); err != nil {
		return apperrors.NewValidationError("limit", strconv.Itoa(limit), err.Error())
	}
	return nil
}

// ValidateQuery checks a search text argument.
func ValidateQuery(query string) error {
	if err := validation.Validate(strings.TrimSpace(query), validation.Required); err != nil {
		return apperrors.NewValidationError("query", "", err.Error())
	}
	return nil
}

// ValidateAfter checks an optional pagination cursor.
func ValidateAfter(after string) error {
	if after == "" {
		return nil
	}
	if _, err := uuid.Parse(after); err != nil {
		return apperrors.NewValidationError("after", after, "must be the UUID of the last result seen")
	}
	return nil
}

type scopeKind int

const (
	scopeTeam scopeKind = iota
	scopeWorkspace
)

// parseScope resolves the exactly-one-of team_id / workspace_id pair.
func parseScope(teamID, workspaceID string) (scopeKind, uuid.UUID, error) {
	teamID = strings.TrimSpace(teamID)
	workspaceID = strings.TrimSpace(workspaceID)

	switch {
	case teamID != "" && workspaceID != "":
		return 0, uuid.Nil, apperrors.NewValidationError("team_id", "", "cannot be combined with workspace_id")
	case teamID != "":
		id, err := ParseID("team_id", teamID)
		return scopeTeam, id, err
	case workspaceID != "":
		id, err := ParseID("workspace_id", workspaceID)
		return scopeWorkspace, id, err
	default:
		return 0, uuid.Nil, apperrors.NewValidationError("", "", "one of team_id or workspace_id is required")
	}
}

func (a CreatePageArgs) validate() error {
	isCollection := a.Kind == string(nuclino.KindCollection)
	err := validation.ValidateStruct(&a,
		validation.Field(&a.Kind, validation.In(string(nuclino.KindItem), string(nuclino.KindCollection))),
		validation.Field(&a.WorkspaceID,
			validation.Required.When(a.ParentID == "").Error("is required when parent_id is not set"),
			validation.Empty.When(a.ParentID != "").Error("cannot be combined with parent_id"),
		),
		validation.Field(&a.Content, validation.Nil.When(isCollection).Error("is only allowed for items")),
		validation.Field(&a.Index, validation.Min(0)),
	)
	return toValidationError(err)
}

func (a UpdatePageArgs) validate() error {
	if a.Title == nil && a.Content == nil {
		return apperrors.NewValidationError("", "", "one of title or content is required")
	}
	return nil
}

// toValidationError flattens ozzo field errors into the first ValidationError.
func toValidationError(err error) error {
	if err == nil {
		return nil
	}
	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return apperrors.NewValidationError("", "", err.Error())
	}
	for _, field := range []string{"kind", "workspace_id", "parent_id", "content", "index"} {
		if fe, ok := fieldErrs[field]; ok {
			return apperrors.NewValidationError(field, "", fe.Error())
		}
	}
	return apperrors.NewValidationError("", "", fieldErrs.Error())
}
