package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// completionReply wraps content in a minimal chat-completion envelope.
func completionReply(content string) string {
	payload := map[string]any{
		"choices": []any{
			map[string]any{
				"message": map[string]any{"content": content},
			},
		},
	}
	data, _ := json.Marshal(payload)
	return string(data)
}

// createTestClient points a Client at a stub server returning the given
// response body.
func createTestClient(t *testing.T, status int, body string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "test-model", "", WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func TestSuggest_ParsesPairs(t *testing.T) {
	content := `[{"key":"theme","value":"dark"},{"key":"lang","value":"en"}]`
	c := createTestClient(t, http.StatusOK, completionReply(content))

	pairs, err := c.Suggest(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, Pair{Key: "theme", Value: "dark"}, pairs[0])
	assert.Equal(t, Pair{Key: "lang", Value: "en"}, pairs[1])
}

func TestSuggest_ToleratesCodeFence(t *testing.T) {
	content := "```json\n[{\"key\":\"a\",\"value\":\"1\"}]\n```"
	c := createTestClient(t, http.StatusOK, completionReply(content))

	pairs, err := c.Suggest(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, "a", pairs[0].Key)
}

func TestSuggest_MalformedContentYieldsEmpty(t *testing.T) {
	c := createTestClient(t, http.StatusOK, completionReply("sure! here are some pairs:"))

	pairs, err := c.Suggest(context.Background(), 3)
	require.NoError(t, err)
	assert.Empty(t, pairs)
	assert.NotNil(t, pairs)
}

func TestSuggest_MalformedEnvelopeYieldsEmpty(t *testing.T) {
	c := createTestClient(t, http.StatusOK, "{not json")

	pairs, err := c.Suggest(context.Background(), 3)
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestSuggest_NoChoicesYieldsEmpty(t *testing.T) {
	c := createTestClient(t, http.StatusOK, `{"choices":[]}`)

	pairs, err := c.Suggest(context.Background(), 3)
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestSuggest_HTTPErrorReturnsError(t *testing.T) {
	c := createTestClient(t, http.StatusInternalServerError, "boom")

	_, err := c.Suggest(context.Background(), 3)
	assert.Error(t, err)
}

func TestSuggest_SendsAuthAndCount(t *testing.T) {
	var gotAuth string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)
		fmt.Fprint(w, completionReply("[]"))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, "test-model", "secret-key")
	_, err := c.Suggest(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret-key", gotAuth)

	var req chatRequest
	require.NoError(t, json.Unmarshal(gotBody, &req))
	assert.Equal(t, "test-model", req.Model)
	require.Len(t, req.Messages, 1)
	assert.Contains(t, req.Messages[0].Content, "5 sample key/value pairs")
}
