package teddy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL    = "https://teddy-mod.de/api"
	defaultSysBaseURL = "https://teddy-sys-mod.de/api/v1"

	defaultRequestTimeout = 15 * time.Second
)

// Client is an authenticated request/response wrapper over the Teddy vendor
// API. Login and the chat endpoints live on the main host; the activity
// endpoints (logout, activity check) live on a separate system host.
//
// The client itself is stateless: every authenticated call takes the Session
// that owns the token.
type Client struct {
	BaseURL    string
	SysBaseURL string
	HTTP       *http.Client
}

type Config struct {
	BaseURL        string
	SysBaseURL     string
	RequestTimeout time.Duration
	HTTP           *http.Client
}

func New(cfg Config) *Client {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	sysBaseURL := strings.TrimSpace(cfg.SysBaseURL)
	if sysBaseURL == "" {
		sysBaseURL = defaultSysBaseURL
	}
	httpClient := cfg.HTTP
	if httpClient == nil {
		timeout := cfg.RequestTimeout
		if timeout <= 0 {
			timeout = defaultRequestTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		SysBaseURL: strings.TrimRight(sysBaseURL, "/"),
		HTTP:       httpClient,
	}
}

type loginRequest struct {
	GrantType string `json:"grant_type"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

// Login exchanges credentials for a bearer token. The vendor reports success
// with a 2xx response carrying {"status":200,"token":...}; anything else is
// an *AuthError.
func (c *Client) Login(ctx context.Context, creds Credentials) (*Session, error) {
	body := loginRequest{
		GrantType: "password",
		Username:  creds.Username,
		Password:  creds.Password,
	}
	status, raw, err := c.do(ctx, http.MethodPost, c.BaseURL+"/login", body, nil)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, &AuthError{StatusCode: status, Message: string(raw)}
	}

	var out LoginResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &AuthError{StatusCode: status, Message: err.Error()}
	}
	if out.Status != http.StatusOK || strings.TrimSpace(out.Token) == "" {
		return nil, &AuthError{StatusCode: status, Message: "missing token in login response"}
	}
	return &Session{Token: out.Token}, nil
}

// Logout invalidates the token server-side. The local token is cleared no
// matter how the request ends, so a session can never be reused after a
// logout attempt.
func (c *Client) Logout(ctx context.Context, sess *Session) error {
	if !sess.Authenticated() {
		return ErrNotAuthenticated
	}
	defer sess.Clear()

	status, raw, err := c.do(ctx, http.MethodGet, c.SysBaseURL+"/user/active/remove", nil, sess)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return &RequestError{StatusCode: status, Body: string(raw)}
	}

	var out statusResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	if !out.Status {
		return fmt.Errorf("%w: logout status=false", ErrUnexpectedResponse)
	}
	return nil
}

// IsActive probes whether the account is currently marked available. Any
// transport or parse error means the state is unknown; callers degrade to
// "attempt search anyway" instead of propagating.
func (c *Client) IsActive(ctx context.Context, sess *Session) (bool, error) {
	if !sess.Authenticated() {
		return false, ErrNotAuthenticated
	}
	status, raw, err := c.do(ctx, http.MethodGet, c.SysBaseURL+"/user/active/check", nil, sess)
	if err != nil {
		return false, err
	}
	if status < 200 || status >= 300 {
		return false, &RequestError{StatusCode: status, Body: string(raw)}
	}

	var out activeResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return false, fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	if !out.Status {
		return false, fmt.Errorf("%w: activity check status=false", ErrUnexpectedResponse)
	}
	return out.Active, nil
}

// StartSearch marks the account as available for matching. The vendor
// answers an "already active" account with an error response; that is
// idempotent success, not a failure. A definitive refusal comes back as
// (false, nil).
func (c *Client) StartSearch(ctx context.Context, sess *Session) (bool, error) {
	if !sess.Authenticated() {
		return false, ErrNotAuthenticated
	}
	status, raw, err := c.do(ctx, http.MethodPost, c.BaseURL+"/search/start", struct{}{}, sess)
	if err != nil {
		return false, err
	}

	var out statusResponse
	_ = json.Unmarshal(raw, &out)
	if strings.Contains(strings.ToLower(out.Error), "already active") {
		return true, nil
	}
	if status < 200 || status >= 300 {
		return false, &RequestError{StatusCode: status, Body: string(raw)}
	}
	if !out.Status {
		return false, nil
	}
	return true, nil
}

// CheckMessages performs a single-shot poll of the message-check endpoint.
// An explicit "no message found" answer maps to ErrNoNewMessages.
func (c *Client) CheckMessages(ctx context.Context, sess *Session) (*CheckMessagesResponse, error) {
	if !sess.Authenticated() {
		return nil, ErrNotAuthenticated
	}
	status, raw, err := c.do(ctx, http.MethodPost, c.BaseURL+"/message/check", struct{}{}, sess)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, &RequestError{StatusCode: status, Body: string(raw)}
	}

	var out CheckMessagesResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	if !out.Status {
		if strings.Contains(strings.ToLower(out.Error), "no message found") {
			return nil, ErrNoNewMessages
		}
		return nil, &RequestError{StatusCode: status, Body: out.Error}
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, url string, body any, sess *Session) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sess.Authenticated() {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, nil, err
	}
	raw, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp.StatusCode, raw, nil
}
