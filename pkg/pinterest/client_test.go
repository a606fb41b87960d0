package pinterest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	pindomain "pinflow-backend/internal/pinterest/domain"
	postdomain "pinflow-backend/internal/post/domain"
	"pinflow-backend/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRecorder collects audit rows in memory
type memoryRecorder struct {
	entries []*pindomain.APICallLog
}

func (r *memoryRecorder) Append(entry *pindomain.APICallLog) error {
	r.entries = append(r.entries, entry)
	return nil
}

func newTestClient(serverURL string) (*Client, *memoryRecorder) {
	recorder := &memoryRecorder{}
	cfg := &config.Config{
		PinterestClientID:     "client-id",
		PinterestClientSecret: "client-secret",
		PinterestRedirectURI:  "https://app.example.com/api/pinterest/auth/callback",
		PinterestAPIBaseURL:   serverURL,
		PinterestOAuthURL:     "https://www.pinterest.com/oauth/",
	}
	return NewClient(cfg, recorder), recorder
}

func TestAuthCodeURL(t *testing.T) {
	client, _ := newTestClient("https://api.pinterest.com/v5")

	raw := client.AuthCodeURL("user-42")
	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	query := parsed.Query()
	assert.Equal(t, "client-id", query.Get("client_id"))
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "user-42", query.Get("state"))
	assert.Equal(t, "boards:read,pins:read,pins:write", query.Get("scope"))
	assert.Equal(t, "https://app.example.com/api/pinterest/auth/callback", query.Get("redirect_uri"))
}

func TestExchangeCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, pindomain.EndpointToken, r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "client-id", user)
		assert.Equal(t, "client-secret", pass)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "the-code", r.PostForm.Get("code"))
		assert.Equal(t, "https://app.example.com/api/pinterest/auth/callback", r.PostForm.Get("redirect_uri"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token":  "access",
			"refresh_token": "refresh",
			"expires_in":    2592000,
			"token_type":    "bearer",
		})
	}))
	defer server.Close()

	client, recorder := newTestClient(server.URL)

	tokens, err := client.ExchangeCode(context.Background(), "u1", "the-code")
	require.NoError(t, err)
	assert.Equal(t, "access", tokens.AccessToken)
	assert.Equal(t, "refresh", tokens.RefreshToken)
	assert.Equal(t, 2592000, tokens.ExpiresIn)

	require.Len(t, recorder.entries, 1)
	assert.Equal(t, "u1", recorder.entries[0].UserID)
	assert.Equal(t, pindomain.EndpointToken, recorder.entries[0].Endpoint)
	assert.Equal(t, http.StatusOK, recorder.entries[0].StatusCode)
	assert.Empty(t, recorder.entries[0].ErrorMessage)
}

func TestExchangeCode_RejectedCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer server.Close()

	client, recorder := newTestClient(server.URL)

	_, err := client.ExchangeCode(context.Background(), "u1", "stale-code")
	require.Error(t, err)
	assert.ErrorIs(t, err, pindomain.ErrOAuthExchange)

	var apiErr *pindomain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "invalid_grant")

	require.Len(t, recorder.entries, 1)
	assert.Equal(t, http.StatusBadRequest, recorder.entries[0].StatusCode)
	assert.NotEmpty(t, recorder.entries[0].ErrorMessage)
}

func TestRefreshAccessToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "old-refresh", r.PostForm.Get("refresh_token"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token":  "new-access",
			"refresh_token": "new-refresh",
			"expires_in":    3600,
		})
	}))
	defer server.Close()

	client, _ := newTestClient(server.URL)

	tokens, err := client.RefreshAccessToken(context.Background(), "u1", "old-refresh")
	require.NoError(t, err)
	assert.Equal(t, "new-access", tokens.AccessToken)
	assert.Equal(t, "new-refresh", tokens.RefreshToken)
}

func TestRefreshAccessToken_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid_token"}`))
	}))
	defer server.Close()

	client, _ := newTestClient(server.URL)

	_, err := client.RefreshAccessToken(context.Background(), "u1", "revoked")
	assert.ErrorIs(t, err, pindomain.ErrTokenRefresh)
}

func TestFetchUserAccount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, pindomain.EndpointUserAccount, r.URL.Path)
		assert.Equal(t, "Bearer access", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]string{"username": "pinner", "account_type": "BUSINESS"})
	}))
	defer server.Close()

	client, _ := newTestClient(server.URL)

	account, err := client.FetchUserAccount(context.Background(), "u1", "access")
	require.NoError(t, err)
	assert.Equal(t, "pinner", account.Username)
}

func TestListBoards(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, pindomain.EndpointBoards, r.URL.Path)
		require.Equal(t, http.MethodGet, r.Method)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"items": []map[string]string{
				{"id": "B1", "name": "Recipes"},
				{"id": "B2", "name": "Travel"},
			},
		})
	}))
	defer server.Close()

	client, _ := newTestClient(server.URL)

	boards, err := client.ListBoards(context.Background(), "u1", "access")
	require.NoError(t, err)
	require.Len(t, boards, 2)
	assert.Equal(t, "B1", boards[0].ID)
	assert.Equal(t, "Recipes", boards[0].Name)
}

func TestCreateBoard(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, pindomain.EndpointBoards, r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "My Scheduled Pins", payload["name"])

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"id": "B9", "name": payload["name"]})
	}))
	defer server.Close()

	client, _ := newTestClient(server.URL)

	board, err := client.CreateBoard(context.Background(), "u1", "access", "My Scheduled Pins", "Pins published by my post scheduler")
	require.NoError(t, err)
	assert.Equal(t, "B9", board.ID)
}

func TestCreatePin(t *testing.T) {
	var payload map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, pindomain.EndpointPins, r.URL.Path)
		assert.Equal(t, "Bearer access", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"id": "pin-1"})
	}))
	defer server.Close()

	client, recorder := newTestClient(server.URL)

	post := &postdomain.Post{
		ID:          "p1",
		Title:       "Autumn soup",
		Description: "Warm and easy",
		Link:        "https://example.com/soup",
		Hashtags:    []string{"soup", "#autumn"},
		ImageData:   "data:image/jpeg;base64,aGVsbG8=",
	}

	pinID, err := client.CreatePin(context.Background(), "u1", "access", "B1", post)
	require.NoError(t, err)
	assert.Equal(t, "pin-1", pinID)

	assert.Equal(t, "B1", payload["board_id"])
	assert.Equal(t, "Autumn soup", payload["title"])
	assert.Equal(t, "Warm and easy\n\n#soup #autumn", payload["description"])

	media := payload["media_source"].(map[string]interface{})
	assert.Equal(t, "image_base64", media["source_type"])
	assert.Equal(t, "image/jpeg", media["content_type"])
	assert.Equal(t, "aGVsbG8=", media["data"])

	require.Len(t, recorder.entries, 1)
	assert.Equal(t, "p1", recorder.entries[0].PostID)
	assert.Equal(t, pindomain.EndpointPins, recorder.entries[0].Endpoint)
}

func TestCreatePin_APIFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"Not authorized"}`))
	}))
	defer server.Close()

	client, recorder := newTestClient(server.URL)

	post := &postdomain.Post{ID: "p1", Title: "Test", ImageData: "aGVsbG8="}
	_, err := client.CreatePin(context.Background(), "u1", "access", "B1", post)
	require.Error(t, err)
	assert.ErrorIs(t, err, pindomain.ErrPinCreation)

	var apiErr *pindomain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "Not authorized")

	require.Len(t, recorder.entries, 1)
	assert.Equal(t, http.StatusForbidden, recorder.entries[0].StatusCode)
}

func TestCreatePin_TransportFailureStillAudited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // force a connection error

	client, recorder := newTestClient(server.URL)

	post := &postdomain.Post{ID: "p1", Title: "Test", ImageData: "aGVsbG8="}
	_, err := client.CreatePin(context.Background(), "u1", "access", "B1", post)
	require.Error(t, err)
	assert.ErrorIs(t, err, pindomain.ErrPinCreation)

	require.Len(t, recorder.entries, 1)
	assert.Equal(t, 0, recorder.entries[0].StatusCode)
	assert.NotEmpty(t, recorder.entries[0].ErrorMessage)
}

func TestNormalizeImageData(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		contentType string
		data        string
	}{
		{"bare base64 defaults to png", "aGVsbG8=", "image/png", "aGVsbG8="},
		{"jpeg data uri", "data:image/jpeg;base64,aGVsbG8=", "image/jpeg", "aGVsbG8="},
		{"png data uri", "data:image/png;base64,aGVsbG8=", "image/png", "aGVsbG8="},
		{"data uri without media type", "data:;base64,aGVsbG8=", "image/png", "aGVsbG8="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contentType, data := normalizeImageData(tt.input)
			assert.Equal(t, tt.contentType, contentType)
			assert.Equal(t, tt.data, data)
		})
	}
}
