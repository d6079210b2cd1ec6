package todosdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the tabtodo service. It provides the
// unauthenticated operations and creates authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new client for the service at baseURL.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates a new user account.
func (c *SDKClient) Register(ctx context.Context, username, password string) (*UserResponse, error) {
	u, err := call[UserResponse](ctx, c, http.MethodPost, "/v1/users", "",
		RegisterRequest{Username: username, Password: password}, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Token exchanges credentials for a bearer token.
func (c *SDKClient) Token(ctx context.Context, username, password string) (*TokenResponse, error) {
	tok, err := call[TokenResponse](ctx, c, http.MethodPost, "/v1/token", "",
		LoginRequest{Username: username, Password: password}, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &tok, nil
}

// Login authenticates and returns a Session bound to the issued token.
func (c *SDKClient) Login(ctx context.Context, username, password string) (*Session, error) {
	tok, err := c.Token(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return newSession(c, tok), nil
}

// NewSessionFromToken wraps an existing access token.
func (c *SDKClient) NewSessionFromToken(accessToken string) *Session {
	return &Session{client: c, accessToken: accessToken}
}

// GetLiveness calls /livez.
func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	h, err := call[HealthResponse](ctx, c, http.MethodGet, "/livez", "", nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// GetReadiness calls /readyz.
func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	h, err := call[HealthResponse](ctx, c, http.MethodGet, "/readyz", "", nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &h, nil
}
