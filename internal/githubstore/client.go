package githubstore

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	githubAPIBase = "https://api.github.com"
	githubRawBase = "https://raw.githubusercontent.com"
)

// Client is the resty-backed Store implementation. It is constructed once at
// process start and is safe for concurrent use; it holds no mutable state.
type Client struct {
	http   *resty.Client
	token  string
	repo   string
	branch string

	apiBase string
	rawBase string
}

var _ Store = (*Client)(nil)

// NewClient creates a store client for the given repository ("owner/name")
// and branch. An empty token yields an unconfigured client whose operations
// fail with ErrNotConfigured.
func NewClient(token, repo, branch string) *Client {
	client := resty.New().
		SetTimeout(15 * time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second)

	return &Client{
		http:    client,
		token:   token,
		repo:    repo,
		branch:  branch,
		apiBase: githubAPIBase,
		rawBase: githubRawBase,
	}
}

// Configured reports whether a token was provided.
func (c *Client) Configured() bool {
	return c.token != ""
}

// contentsResponse is the subset of the contents API payload the client uses.
// Encoding is "none" when the file is too large to inline.
type contentsResponse struct {
	Path        string `json:"path"`
	SHA         string `json:"sha"`
	Size        int    `json:"size"`
	Content     string `json:"content"`
	Encoding    string `json:"encoding"`
	DownloadURL string `json:"download_url"`
}

// GetFile fetches a file at the configured branch via the contents API.
// Files the API reports as too large to inline are fetched through their
// download URL, falling back to the raw-content host when the API returns
// no usable reference at all.
func (c *Client) GetFile(ctx context.Context, path string) (*File, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	var contents contentsResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(c.token).
		SetQueryParam("ref", c.branch).
		SetResult(&contents).
		Get(fmt.Sprintf("%s/repos/%s/contents/%s", c.apiBase, c.repo, path))

	if err != nil {
		return nil, &StoreError{Op: "get", Path: path, Message: "request failed", Err: err}
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, &StoreError{Op: "get", Path: path, Err: ErrFileNotFound}
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, &StoreError{
			Op:      "get",
			Path:    path,
			Message: fmt.Sprintf("unexpected status %d", resp.StatusCode()),
		}
	}

	content, err := c.resolveContent(ctx, path, &contents)
	if err != nil {
		return nil, err
	}

	return &File{Path: path, Content: content, SHA: contents.SHA}, nil
}

// resolveContent extracts the file body from a contents response, following
// the large-file download path when the API declined to inline it.
func (c *Client) resolveContent(ctx context.Context, path string, contents *contentsResponse) (string, error) {
	if contents.Encoding != "none" && contents.Content != "" {
		// The API wraps base64 at 60 columns.
		raw := strings.Map(dropWhitespace, contents.Content)
		decoded, err := base64.StdEncoding.DecodeString(raw)
		if err != nil {
			return "", &StoreError{Op: "get", Path: path, Message: "content decode failed", Err: err}
		}
		return string(decoded), nil
	}

	url := contents.DownloadURL
	if url == "" {
		// The API gave us neither inline content nor a download reference;
		// construct the raw-content URL directly.
		url = fmt.Sprintf("%s/%s/%s/%s", c.rawBase, c.repo, c.branch, path)
		slog.Warn("contents API returned no download URL, using raw URL", "path", path, "url", url)
	} else {
		slog.Info("file too large for inline content, using download URL", "path", path, "size", contents.Size)
	}

	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", &StoreError{Op: "download", Path: path, Message: "request failed", Err: err}
	}
	if resp.StatusCode() != http.StatusOK {
		return "", &StoreError{
			Op:      "download",
			Path:    path,
			Message: fmt.Sprintf("unexpected status %d", resp.StatusCode()),
		}
	}
	return resp.String(), nil
}

// updateRequest is the contents API commit payload.
type updateRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	SHA     string `json:"sha"`
	Branch  string `json:"branch"`
}

// UpdateFile commits a full replacement of the file at path. The write is
// last-writer-wins guarded by sha: GitHub rejects the commit when the blob
// has moved on since the read that produced sha, surfaced as
// ErrWriteConflict.
func (c *Client) UpdateFile(ctx context.Context, path, message, content, sha string) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	body := updateRequest{
		Message: message,
		Content: base64.StdEncoding.EncodeToString([]byte(content)),
		SHA:     sha,
		Branch:  c.branch,
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(c.token).
		SetBody(body).
		Put(fmt.Sprintf("%s/repos/%s/contents/%s", c.apiBase, c.repo, path))

	if err != nil {
		return &StoreError{Op: "update", Path: path, Message: "request failed", Err: err}
	}

	switch resp.StatusCode() {
	case http.StatusOK, http.StatusCreated:
		return nil
	case http.StatusConflict:
		return &StoreError{Op: "update", Path: path, Err: ErrWriteConflict}
	default:
		return &StoreError{
			Op:      "update",
			Path:    path,
			Message: fmt.Sprintf("unexpected status %d: %s", resp.StatusCode(), resp.String()),
		}
	}
}

func dropWhitespace(r rune) rune {
	switch r {
	case '\n', '\r', ' ', '\t':
		return -1
	}
	return r
}
