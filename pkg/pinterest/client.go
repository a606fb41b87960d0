package pinterest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	pindomain "pinflow-backend/internal/pinterest/domain"
	postdomain "pinflow-backend/internal/post/domain"
	"pinflow-backend/pkg/config"

	"golang.org/x/oauth2"
)

// Scopes required for publishing pins
var Scopes = []string{"boards:read", "pins:read", "pins:write"}

// CallRecorder receives one audit row per outbound API call
type CallRecorder interface {
	Append(entry *pindomain.APICallLog) error
}

// Client wraps the Pinterest v5 REST API. Every call appends exactly one
// audit row through the recorder, success or failure, before the result
// is returned.
type Client struct {
	apiBaseURL string
	oauthCfg   *oauth2.Config
	httpClient *http.Client
	recorder   CallRecorder
}

// NewClient creates a Pinterest API client
func NewClient(cfg *config.Config, recorder CallRecorder) *Client {
	return &Client{
		apiBaseURL: strings.TrimRight(cfg.PinterestAPIBaseURL, "/"),
		oauthCfg: &oauth2.Config{
			ClientID:     cfg.PinterestClientID,
			ClientSecret: cfg.PinterestClientSecret,
			RedirectURL:  cfg.PinterestRedirectURI,
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.PinterestOAuthURL,
				TokenURL: strings.TrimRight(cfg.PinterestAPIBaseURL, "/") + pindomain.EndpointToken,
			},
		},
		httpClient: &http.Client{Timeout: 30 * time.Second},
		recorder:   recorder,
	}
}

// AuthCodeURL builds the authorization redirect URL with the fixed scope
// set and the given anti-forgery state. Pinterest expects scopes joined
// by commas rather than spaces.
func (c *Client) AuthCodeURL(state string) string {
	return c.oauthCfg.AuthCodeURL(state,
		oauth2.SetAuthURLParam("scope", strings.Join(Scopes, ",")))
}

// tokenResponse is the token endpoint's shape for both grants
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

// ExchangeCode exchanges an authorization code for a token pair
func (c *Client) ExchangeCode(ctx context.Context, userID, code string) (pindomain.TokenPair, error) {
	form := url.Values{
		"grant_type":   {"authorization_code"},
		"code":         {code},
		"redirect_uri": {c.oauthCfg.RedirectURL},
	}
	return c.requestToken(ctx, userID, form, pindomain.ErrOAuthExchange)
}

// RefreshAccessToken renews an expired access token
func (c *Client) RefreshAccessToken(ctx context.Context, userID, refreshToken string) (pindomain.TokenPair, error) {
	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {refreshToken},
	}
	return c.requestToken(ctx, userID, form, pindomain.ErrTokenRefresh)
}

func (c *Client) requestToken(ctx context.Context, userID string, form url.Values, kind error) (pindomain.TokenPair, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.oauthCfg.Endpoint.TokenURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return pindomain.TokenPair{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.oauthCfg.ClientID, c.oauthCfg.ClientSecret)

	status, body, err := c.do(req, userID, "", pindomain.EndpointToken)
	if err != nil {
		return pindomain.TokenPair{}, fmt.Errorf("%w: %v", kind, err)
	}
	if status < 200 || status > 299 {
		return pindomain.TokenPair{}, &pindomain.APIError{
			Kind:       kind,
			Endpoint:   pindomain.EndpointToken,
			StatusCode: status,
			Body:       string(body),
		}
	}

	var tok tokenResponse
	if err := json.Unmarshal(body, &tok); err != nil || tok.AccessToken == "" {
		return pindomain.TokenPair{}, fmt.Errorf("%w: token endpoint", pindomain.ErrUnexpectedResponse)
	}

	return pindomain.TokenPair{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresIn:    tok.ExpiresIn,
	}, nil
}

// FetchUserAccount returns the authenticated Pinterest account profile
func (c *Client) FetchUserAccount(ctx context.Context, userID, accessToken string) (*pindomain.UserAccount, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.apiBaseURL+pindomain.EndpointUserAccount, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	status, body, err := c.do(req, userID, "", pindomain.EndpointUserAccount)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, &pindomain.APIError{
			Kind:       pindomain.ErrUnexpectedResponse,
			Endpoint:   pindomain.EndpointUserAccount,
			StatusCode: status,
			Body:       string(body),
		}
	}

	var account pindomain.UserAccount
	if err := json.Unmarshal(body, &account); err != nil {
		return nil, fmt.Errorf("%w: user account", pindomain.ErrUnexpectedResponse)
	}
	return &account, nil
}

// boardsListResponse is the paged boards list shape; only the first page
// is consulted because the resolver needs any one board
type boardsListResponse struct {
	Items []pindomain.BoardSummary `json:"items"`
}

// ListBoards returns the user's boards in API order
func (c *Client) ListBoards(ctx context.Context, userID, accessToken string) ([]pindomain.BoardSummary, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.apiBaseURL+pindomain.EndpointBoards, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	status, body, err := c.do(req, userID, "", pindomain.EndpointBoards)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pindomain.ErrBoardAPI, err)
	}
	if status < 200 || status > 299 {
		return nil, &pindomain.APIError{
			Kind:       pindomain.ErrBoardAPI,
			Endpoint:   pindomain.EndpointBoards,
			StatusCode: status,
			Body:       string(body),
		}
	}

	var boards boardsListResponse
	if err := json.Unmarshal(body, &boards); err != nil {
		return nil, fmt.Errorf("%w: boards list", pindomain.ErrUnexpectedResponse)
	}
	return boards.Items, nil
}

// CreateBoard creates a new board
func (c *Client) CreateBoard(ctx context.Context, userID, accessToken, name, description string) (*pindomain.BoardSummary, error) {
	payload, _ := json.Marshal(map[string]string{
		"name":        name,
		"description": description,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.apiBaseURL+pindomain.EndpointBoards, strings.NewReader(string(payload)))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	status, body, err := c.do(req, userID, "", pindomain.EndpointBoards)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pindomain.ErrBoardAPI, err)
	}
	if status < 200 || status > 299 {
		return nil, &pindomain.APIError{
			Kind:       pindomain.ErrBoardAPI,
			Endpoint:   pindomain.EndpointBoards,
			StatusCode: status,
			Body:       string(body),
		}
	}

	var board pindomain.BoardSummary
	if err := json.Unmarshal(body, &board); err != nil || board.ID == "" {
		return nil, fmt.Errorf("%w: create board", pindomain.ErrUnexpectedResponse)
	}
	return &board, nil
}

// pinCreateResponse is the pins endpoint success shape
type pinCreateResponse struct {
	ID string `json:"id"`
}

// CreatePin publishes a post as a pin on the given board and returns the
// created pin id. The post image is sent as an inline base64 payload.
func (c *Client) CreatePin(ctx context.Context, userID, accessToken, boardID string, post *postdomain.Post) (string, error) {
	contentType, data := normalizeImageData(post.ImageData)

	description := post.Description
	if len(post.Hashtags) > 0 {
		tags := make([]string, 0, len(post.Hashtags))
		for _, tag := range post.Hashtags {
			tags = append(tags, "#"+strings.TrimPrefix(tag, "#"))
		}
		description = strings.TrimSpace(description + "\n\n" + strings.Join(tags, " "))
	}

	payload, _ := json.Marshal(map[string]interface{}{
		"board_id":    boardID,
		"title":       post.Title,
		"description": description,
		"link":        post.Link,
		"media_source": map[string]string{
			"source_type":  "image_base64",
			"content_type": contentType,
			"data":         data,
		},
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.apiBaseURL+pindomain.EndpointPins, strings.NewReader(string(payload)))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	status, body, err := c.do(req, userID, post.ID, pindomain.EndpointPins)
	if err != nil {
		return "", fmt.Errorf("%w: %v", pindomain.ErrPinCreation, err)
	}
	if status < 200 || status > 299 {
		return "", &pindomain.APIError{
			Kind:       pindomain.ErrPinCreation,
			Endpoint:   pindomain.EndpointPins,
			StatusCode: status,
			Body:       string(body),
		}
	}

	var pin pinCreateResponse
	if err := json.Unmarshal(body, &pin); err != nil || pin.ID == "" {
		return "", fmt.Errorf("%w: create pin", pindomain.ErrUnexpectedResponse)
	}
	return pin.ID, nil
}

// do executes the request and appends the audit row. The row is written
// whatever the outcome, before the caller sees the result.
func (c *Client) do(req *http.Request, userID, postID, endpoint string) (int, []byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.record(&pindomain.APICallLog{
			UserID:       userID,
			PostID:       postID,
			Endpoint:     endpoint,
			ErrorMessage: err.Error(),
		})
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)

	entry := &pindomain.APICallLog{
		UserID:       userID,
		PostID:       postID,
		Endpoint:     endpoint,
		StatusCode:   resp.StatusCode,
		ResponseBody: string(body),
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		entry.ErrorMessage = fmt.Sprintf("%s returned status %d", endpoint, resp.StatusCode)
	}
	if readErr != nil {
		entry.ErrorMessage = readErr.Error()
	}
	c.record(entry)

	if readErr != nil {
		return resp.StatusCode, nil, readErr
	}
	return resp.StatusCode, body, nil
}

// record writes the audit row. Audit failures are logged and swallowed:
// they must never fail the call they describe.
func (c *Client) record(entry *pindomain.APICallLog) {
	if c.recorder == nil {
		return
	}
	if err := c.recorder.Append(entry); err != nil {
		log.Printf("[Pinterest] Failed to write API call log for %s: %v", entry.Endpoint, err)
	}
}

// normalizeImageData strips a data-URI prefix if present and reports the
// content type. Bare base64 input is assumed to be a PNG.
func normalizeImageData(image string) (contentType, data string) {
	contentType = "image/png"
	data = image

	if strings.HasPrefix(image, "data:") {
		if idx := strings.Index(image, ","); idx >= 0 {
			meta := image[len("data:"):idx]
			data = image[idx+1:]
			if semi := strings.Index(meta, ";"); semi >= 0 {
				meta = meta[:semi]
			}
			if meta != "" {
				contentType = meta
			}
		}
	}

	return contentType, data
}
