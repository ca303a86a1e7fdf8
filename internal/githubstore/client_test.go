package githubstore

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wrap64 encodes content the way the contents API does, with line breaks.
func wrap64(content string) string {
	encoded := base64.StdEncoding.EncodeToString([]byte(content))
	wrapped := ""
	for len(encoded) > 60 {
		wrapped += encoded[:60] + "\n"
		encoded = encoded[60:]
	}
	return wrapped + encoded + "\n"
}

func newTestClient(apiBase, rawBase string) *Client {
	c := NewClient("test-token", "owner/sheets-db", "main")
	c.apiBase = apiBase
	c.rawBase = rawBase
	return c
}

func TestClient_GetFile_InlineContent(t *testing.T) {
	const body = `[{"title":"Clair de Lune","url":"songs/clair-de-lune"}]`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/owner/sheets-db/contents/sheets/piano_sheets.json", r.URL.Path)
		assert.Equal(t, "main", r.URL.Query().Get("ref"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"path":     "sheets/piano_sheets.json",
			"sha":      "abc123",
			"size":     len(body),
			"content":  wrap64(body),
			"encoding": "base64",
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")

	file, err := client.GetFile(context.Background(), "sheets/piano_sheets.json")
	require.NoError(t, err)
	assert.Equal(t, body, file.Content)
	assert.Equal(t, "abc123", file.SHA)
	assert.Equal(t, "sheets/piano_sheets.json", file.Path)
}

func TestClient_GetFile_LargeFileUsesDownloadURL(t *testing.T) {
	const body = `[{"title":"big"}]`

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/repos/owner/sheets-db/contents/sheets/piano_sheets.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"sha":          "big456",
			"size":         2_000_000,
			"content":      "",
			"encoding":     "none",
			"download_url": server.URL + "/media/sheets/piano_sheets.json",
		})
	})
	mux.HandleFunc("/media/sheets/piano_sheets.json", func(w http.ResponseWriter, r *http.Request) {
		// The secondary fetch is a plain GET, no bearer token.
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(body))
	})

	client := newTestClient(server.URL, "")

	file, err := client.GetFile(context.Background(), "sheets/piano_sheets.json")
	require.NoError(t, err)
	assert.Equal(t, body, file.Content)
	assert.Equal(t, "big456", file.SHA)
}

func TestClient_GetFile_RawURLFallback(t *testing.T) {
	const body = `[{"title":"raw"}]`

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"sha":      "raw789",
			"encoding": "none",
		})
	}))
	defer api.Close()

	raw := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/owner/sheets-db/main/sheets/piano_sheets.json", r.URL.Path)
		w.Write([]byte(body))
	}))
	defer raw.Close()

	client := newTestClient(api.URL, raw.URL)

	file, err := client.GetFile(context.Background(), "sheets/piano_sheets.json")
	require.NoError(t, err)
	assert.Equal(t, body, file.Content)
	assert.Equal(t, "raw789", file.SHA)
}

func TestClient_GetFile_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")

	_, err := client.GetFile(context.Background(), "users/data.js")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileNotFound)

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "get", storeErr.Op)
	assert.Equal(t, "users/data.js", storeErr.Path)
}

func TestClient_NotConfigured(t *testing.T) {
	client := NewClient("", "owner/sheets-db", "main")

	assert.False(t, client.Configured())

	_, err := client.GetFile(context.Background(), "sheets/piano_sheets.json")
	assert.ErrorIs(t, err, ErrNotConfigured)

	err = client.UpdateFile(context.Background(), "users/data.js", "msg", "content", "sha")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestClient_UpdateFile(t *testing.T) {
	var got updateRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/repos/owner/sheets-db/contents/users/data.js", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")

	err := client.UpdateFile(context.Background(), "users/data.js",
		"Update favorites for user alice", "export const favorites = {};\n", "prev-sha")
	require.NoError(t, err)

	assert.Equal(t, "Update favorites for user alice", got.Message)
	assert.Equal(t, "prev-sha", got.SHA)
	assert.Equal(t, "main", got.Branch)

	decoded, err := base64.StdEncoding.DecodeString(got.Content)
	require.NoError(t, err)
	assert.Equal(t, "export const favorites = {};\n", string(decoded))
}

func TestClient_UpdateFile_StaleSHAConflict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")

	err := client.UpdateFile(context.Background(), "users/data.js", "msg", "content", "stale-sha")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWriteConflict)
}

func TestStoreError_Message(t *testing.T) {
	err := &StoreError{Op: "get", Path: "users/data.js", Message: "unexpected status 503", Err: errors.New("boom")}
	assert.Equal(t, "github get failed for users/data.js: unexpected status 503 - boom", err.Error())
}
