// Package nuclino is a client for the Nuclino wiki API
// (https://help.nuclino.com/d3a29686-api).
//
// Every method performs exactly one HTTP round trip: there are no retries,
// no caching and no automatic pagination. Paginated endpoints accept an
// "after" cursor, the id of the last result of the previous call.
//
// Every API request carries the key verbatim in the Authorization header.
// DownloadFile is the exception: file download URLs are pre-signed and usually
// point at a storage host, so the key is only attached when the URL is on the
// API host itself.
//
// A Client is safe for concurrent use.
package nuclino

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/olgasafonova/nuclino-mcp-server/internal/base"
	"github.com/olgasafonova/nuclino-mcp-server/metrics"
)

const (
	// DefaultBaseURL is the Nuclino API root
	DefaultBaseURL = "https://api.nuclino.com"

	// DefaultTimeout for API requests
	DefaultTimeout = base.DefaultTimeout

	// DefaultUserAgent identifies this client to the service
	DefaultUserAgent = "nuclino-mcp-server/1.0 (+https://github.com/olgasafonova/nuclino-mcp-server)"
)

const (
	routeUser       = "/v0/users/{id}"
	routeTeams      = "/v0/teams"
	routeTeam       = "/v0/teams/{id}"
	routeWorkspaces = "/v0/workspaces"
	routeWorkspace  = "/v0/workspaces/{id}"
	routeItems      = "/v0/items"
	routeItem       = "/v0/items/{id}"
	routeFile       = "/v0/files/{id}"
	routeDownload   = "download"
)

// Client provides access to the Nuclino API
type Client struct {
	*base.Client
	apiKey string
}

// ClientOption configures the Client (re-export base.ClientOption)
type ClientOption = base.ClientOption

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(c *http.Client) ClientOption {
	return base.WithHTTPClient(c)
}

// WithLogger sets a custom logger
func WithLogger(l *slog.Logger) ClientOption {
	return base.WithLogger(l)
}

// WithBaseURL overrides the API root, e.g. for a test server
func WithBaseURL(u string) ClientOption {
	return base.WithBaseURL(u)
}

// WithUserAgent sets the User-Agent header
func WithUserAgent(ua string) ClientOption {
	return base.WithUserAgent(ua)
}

// NewClient creates a client that authenticates with apiKey.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	all := make([]ClientOption, 0, len(opts)+2)
	all = append(all, base.WithBaseURL(DefaultBaseURL), base.WithUserAgent(DefaultUserAgent))
	all = append(all, opts...)
	return &Client{Client: base.NewClient(all...), apiKey: apiKey}
}

// NewClientFromEnv creates a client with the key in NUCLINO_API_KEY.
// It returns ErrAPIKeyNotFound when the variable is unset or empty.
func NewClientFromEnv(opts ...ClientOption) (*Client, error) {
	key := os.Getenv(EnvAPIKey)
	if key == "" {
		return nil, ErrAPIKeyNotFound
	}
	return NewClient(key, opts...), nil
}

// NewClientFromConfig creates a client from a loaded Config. Options are
// applied after the config, so they take precedence.
func NewClientFromConfig(cfg *Config, opts ...ClientOption) (*Client, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	all := []ClientOption{
		base.WithBaseURL(cfg.BaseURL),
		base.WithHTTPClient(base.NewHTTPClient(cfg.Timeout)),
	}
	if cfg.UserAgent != "" {
		all = append(all, base.WithUserAgent(cfg.UserAgent))
	}
	return NewClient(cfg.APIKey, append(all, opts...)...), nil
}

// ListOptions paginates list endpoints. Zero values are not sent.
type ListOptions struct {
	// Limit caps the number of results; the service defaults to 100.
	Limit int

	// After is the id of the last result already seen.
	After string
}

func (o *ListOptions) apply(params url.Values) {
	if o == nil {
		return
	}
	if o.Limit > 0 {
		params.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.After != "" {
		params.Set("after", o.After)
	}
}

// SearchOptions configures search endpoints.
type SearchOptions struct {
	// Limit caps the number of results; the service defaults to 100.
	Limit int
}

// User fetches a user by id.
func (c *Client) User(ctx context.Context, id uuid.UUID) (User, error) {
	return call[User](ctx, c, http.MethodGet, routeUser, "/v0/users/"+id.String(), nil, nil)
}

// TeamList fetches the teams the key can access.
func (c *Client) TeamList(ctx context.Context, opts *ListOptions) ([]Team, error) {
	params := url.Values{}
	opts.apply(params)
	list, err := call[List[Team]](ctx, c, http.MethodGet, routeTeams, "/v0/teams", params, nil)
	if err != nil {
		return nil, err
	}
	return list.Results, nil
}

// Team fetches a team by id.
func (c *Client) Team(ctx context.Context, id string) (Team, error) {
	return call[Team](ctx, c, http.MethodGet, routeTeam, "/v0/teams/"+url.PathEscape(id), nil, nil)
}

// WorkspaceList fetches the workspaces the key can access.
func (c *Client) WorkspaceList(ctx context.Context, opts *ListOptions) ([]Workspace, error) {
	params := url.Values{}
	opts.apply(params)
	list, err := call[List[Workspace]](ctx, c, http.MethodGet, routeWorkspaces, "/v0/workspaces", params, nil)
	if err != nil {
		return nil, err
	}
	return list.Results, nil
}

// Workspace fetches a workspace by id.
func (c *Client) Workspace(ctx context.Context, id uuid.UUID) (Workspace, error) {
	return call[Workspace](ctx, c, http.MethodGet, routeWorkspace, "/v0/workspaces/"+id.String(), nil, nil)
}

// PageCreate creates an item or collection.
func (c *Client) PageCreate(ctx context.Context, page NewPage) (Page, error) {
	p, err := call[Page](ctx, c, http.MethodPost, routeItems, "/v0/items", nil, page)
	metrics.RecordPageWrite("create", err == nil)
	return p, err
}

// Page fetches an item or collection by id. Items include their content.
func (c *Client) Page(ctx context.Context, id uuid.UUID) (Page, error) {
	return call[Page](ctx, c, http.MethodGet, routeItem, "/v0/items/"+id.String(), nil, nil)
}

// PageUpdate changes the title and/or content of a page.
func (c *Client) PageUpdate(ctx context.Context, id uuid.UUID, update ModifyItem) (Page, error) {
	p, err := call[Page](ctx, c, http.MethodPut, routeItem, "/v0/items/"+id.String(), nil, update)
	metrics.RecordPageWrite("update", err == nil)
	return p, err
}

// PageDelete moves a page to the trash.
func (c *Client) PageDelete(ctx context.Context, id uuid.UUID) (IDOnly, error) {
	stub, err := call[IDOnly](ctx, c, http.MethodDelete, routeItem, "/v0/items/"+id.String(), nil, nil)
	metrics.RecordPageWrite("delete", err == nil)
	return stub, err
}

// AllPagesForTeam lists a team's pages without content. The list envelope is
// returned so List.Last can supply the next cursor.
func (c *Client) AllPagesForTeam(ctx context.Context, teamID uuid.UUID, opts *ListOptions) (*List[Page], error) {
	params := url.Values{}
	params.Set("teamId", teamID.String())
	opts.apply(params)
	return c.pageList(ctx, params)
}

// AllPagesForWorkspace lists a workspace's pages without content.
func (c *Client) AllPagesForWorkspace(ctx context.Context, workspaceID uuid.UUID, opts *ListOptions) (*List[Page], error) {
	params := url.Values{}
	params.Set("workspaceId", workspaceID.String())
	opts.apply(params)
	return c.pageList(ctx, params)
}

func (c *Client) pageList(ctx context.Context, params url.Values) (*List[Page], error) {
	list, err := call[List[Page]](ctx, c, http.MethodGet, routeItems, "/v0/items", params, nil)
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// SearchTeam searches a team's pages for text. Results carry highlights but no content.
func (c *Client) SearchTeam(ctx context.Context, teamID uuid.UUID, text string, opts *SearchOptions) ([]Page, error) {
	params := url.Values{}
	params.Set("teamId", teamID.String())
	return c.search(ctx, params, text, opts)
}

// SearchWorkspace searches a workspace's pages for text.
func (c *Client) SearchWorkspace(ctx context.Context, workspaceID uuid.UUID, text string, opts *SearchOptions) ([]Page, error) {
	params := url.Values{}
	params.Set("workspaceId", workspaceID.String())
	return c.search(ctx, params, text, opts)
}

func (c *Client) search(ctx context.Context, params url.Values, text string, opts *SearchOptions) ([]Page, error) {
	params.Set("search", text)
	if opts != nil && opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}
	list, err := call[List[Page]](ctx, c, http.MethodGet, routeItems, "/v0/items", params, nil)
	if err != nil {
		return nil, err
	}
	return list.Results, nil
}

// File fetches file metadata, including a short-lived download URL.
func (c *Client) File(ctx context.Context, id uuid.UUID) (File, error) {
	return call[File](ctx, c, http.MethodGet, routeFile, "/v0/files/"+id.String(), nil, nil)
}

// DownloadFile fetches the raw bytes at a file's download URL. The API key is
// only attached when the URL points at the API host itself.
func (c *Client) DownloadFile(ctx context.Context, downloadURL string) ([]byte, error) {
	header := http.Header{}
	header.Set("Accept", "*/*")
	if c.sameHost(downloadURL) {
		header.Set("Authorization", c.apiKey)
	}

	resp, err := c.roundTrip(ctx, base.Request{
		Method: http.MethodGet,
		URL:    downloadURL,
		Route:  routeDownload,
		Header: header,
	})
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := newStatusError(resp.StatusCode, string(resp.Body))
		metrics.RecordAPIError(routeDownload, ErrorKind(err))
		return nil, err
	}
	return resp.Body, nil
}

func (c *Client) sameHost(raw string) bool {
	target, err := url.Parse(raw)
	if err != nil {
		return false
	}
	api, err := url.Parse(c.BaseURL)
	if err != nil {
		return false
	}
	return target.Host == api.Host
}

// call sends one request and decodes the envelope. Methods cannot take type
// parameters, so this is a function over the client.
func call[T any](ctx context.Context, c *Client, method, route, path string, params url.Values, payload any) (T, error) {
	var zero T

	var body []byte
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return zero, &JSONError{Err: err}
		}
		body = b
	}

	u := c.BaseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	header := http.Header{}
	header.Set("Authorization", c.apiKey)

	resp, err := c.roundTrip(ctx, base.Request{
		Method: method,
		URL:    u,
		Route:  route,
		Header: header,
		Body:   body,
	})
	if err != nil {
		return zero, err
	}

	v, err := decodeEnvelope[T](resp.StatusCode, resp.Body)
	if err != nil {
		metrics.RecordAPIError(route, ErrorKind(err))
		c.Logger.Debug("Nuclino API call failed",
			"method", method,
			"route", route,
			"status", resp.StatusCode,
			"error", err)
		return zero, err
	}
	return v, nil
}

// roundTrip maps transport failures onto RequestError and IOError.
func (c *Client) roundTrip(ctx context.Context, req base.Request) (*base.Response, error) {
	start := time.Now()
	resp, err := c.Do(ctx, req)
	if err == nil {
		return resp, nil
	}

	var mapped error
	switch e := err.(type) {
	case *base.TransportError:
		mapped = &RequestError{Method: e.Method, URL: e.URL, Message: e.Err.Error(), Err: e.Err}
	case *base.BodyError:
		mapped = &IOError{Err: e.Err}
	default:
		mapped = &RequestError{Method: req.Method, URL: req.URL, Message: err.Error(), Err: err}
	}
	metrics.RecordAPIError(req.Route, ErrorKind(mapped))
	c.Logger.Debug("Nuclino round trip failed",
		"method", req.Method,
		"route", req.Route,
		"elapsed", time.Since(start),
		"error", mapped)
	return nil, mapped
}
