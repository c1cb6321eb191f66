package stockx

import (
	"context"
	"errors"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/donaldgifford/sales-tracker/internal/metrics"
)

const (
	defaultAuthorizeURL = "https://accounts.stockx.com/authorize"
	defaultTokenURL     = "https://accounts.stockx.com/oauth/token" //nolint:gosec // not a credential
	defaultRefreshURL   = "https://gateway.stockx.com/oauth/token"  //nolint:gosec // not a credential
	defaultAudience     = "gateway.stockx.com"
	defaultState        = "xyz"

	grantAuthorizationCode = "authorization_code"
	grantRefreshToken      = "refresh_token"
)

var defaultScopes = []string{"offline_access", "openid"}

// AuthClient performs the StockX OAuth2 authorization-code flow and the
// refresh-token exchange, storing every issued pair in a TokenStore.
// Token requests are form-encoded with the client credentials in the body.
// Nothing is retried.
type AuthClient struct {
	clientID     string
	clientSecret string
	redirectURI  string

	authorizeURL string
	tokenURL     string
	refreshURL   string
	audience     string
	state        string

	client *http.Client
	store  *TokenStore
}

// AuthOption configures the AuthClient.
type AuthOption func(*AuthClient)

// WithAuthorizeURL overrides the default StockX authorization endpoint.
func WithAuthorizeURL(u string) AuthOption {
	return func(c *AuthClient) {
		c.authorizeURL = u
	}
}

// WithTokenURL overrides the endpoint used for the authorization-code exchange.
func WithTokenURL(u string) AuthOption {
	return func(c *AuthClient) {
		c.tokenURL = u
	}
}

// WithRefreshURL overrides the endpoint used for the refresh-token exchange.
func WithRefreshURL(u string) AuthOption {
	return func(c *AuthClient) {
		c.refreshURL = u
	}
}

// WithAudience overrides the API audience requested during authorization.
func WithAudience(a string) AuthOption {
	return func(c *AuthClient) {
		c.audience = a
	}
}

// WithState overrides the anti-forgery state value.
func WithState(s string) AuthOption {
	return func(c *AuthClient) {
		c.state = s
	}
}

// WithAuthHTTPClient overrides the default HTTP client.
func WithAuthHTTPClient(hc *http.Client) AuthOption {
	return func(c *AuthClient) {
		c.client = hc
	}
}

// NewAuthClient creates a new StockX OAuth2 client writing into store.
func NewAuthClient(
	clientID, clientSecret, redirectURI string,
	store *TokenStore,
	opts ...AuthOption,
) *AuthClient {
	c := &AuthClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURI:  redirectURI,
		authorizeURL: defaultAuthorizeURL,
		tokenURL:     defaultTokenURL,
		refreshURL:   defaultRefreshURL,
		audience:     defaultAudience,
		state:        defaultState,
		client:       &http.Client{Timeout: 10 * time.Second},
		store:        store,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.client = jsonTokenClient(c.client)
	return c
}

// jsonTokenClient returns a copy of hc whose token replies are always
// decoded as JSON. x/oauth2 otherwise parses text/plain and form-encoded
// bodies as url values, accepting a reply StockX never sends.
func jsonTokenClient(hc *http.Client) *http.Client {
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	base := hc.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	wrapped := *hc
	wrapped.Transport = jsonReplyTransport{base: base}
	return &wrapped
}

type jsonReplyTransport struct {
	base http.RoundTripper
}

func (t jsonReplyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.Header == nil {
		resp.Header = make(http.Header)
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp, nil
}

func (c *AuthClient) oauthConfig(tokenURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.clientID,
		ClientSecret: c.clientSecret,
		RedirectURL:  c.redirectURI,
		Scopes:       defaultScopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:   c.authorizeURL,
			TokenURL:  tokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

// AuthorizationURL returns the URL the user must visit to grant access.
// It depends only on configuration: repeated calls return identical URLs.
func (c *AuthClient) AuthorizationURL() string {
	return c.oauthConfig(c.tokenURL).AuthCodeURL(
		c.state,
		oauth2.SetAuthURLParam("audience", c.audience),
	)
}

// ExchangeCode trades a one-time authorization code for a token pair,
// stores it, and returns it. On failure the TokenStore is left unchanged.
func (c *AuthClient) ExchangeCode(ctx context.Context, code string) (TokenPair, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.client)

	tok, err := c.oauthConfig(c.tokenURL).Exchange(ctx, code)
	if err != nil {
		return TokenPair{}, c.exchangeFailed(grantAuthorizationCode, err)
	}

	return c.storeToken(grantAuthorizationCode, tok), nil
}

// Refresh trades a refresh token for a new token pair against the refresh
// endpoint, stores it, and returns it. When StockX omits a new refresh token
// the supplied one is kept. On failure the TokenStore is left unchanged.
func (c *AuthClient) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.client)

	// An empty access token marks the seed as expired, forcing a refresh.
	src := c.oauthConfig(c.refreshURL).TokenSource(ctx, &oauth2.Token{
		RefreshToken: refreshToken,
	})

	tok, err := src.Token()
	if err != nil {
		return TokenPair{}, c.exchangeFailed(grantRefreshToken, err)
	}

	return c.storeToken(grantRefreshToken, tok), nil
}

func (c *AuthClient) storeToken(grant string, tok *oauth2.Token) TokenPair {
	pair := TokenPair{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
	}
	c.store.Set(pair)
	metrics.StockXTokenExchangesTotal.WithLabelValues(grant, "success").Inc()
	return pair
}

func (*AuthClient) exchangeFailed(grant string, err error) error {
	metrics.StockXTokenExchangesTotal.WithLabelValues(grant, "failure").Inc()

	authErr := &AuthExchangeError{GrantType: grant, Err: err}

	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
		authErr.StatusCode = retrieveErr.Response.StatusCode
	}

	return authErr
}
