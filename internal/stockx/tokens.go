package stockx

import "sync/atomic"

// TokenPair is the access/refresh credential pair issued by StockX.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// TokenStore holds the current TokenPair for the process lifetime. The pair
// is swapped atomically, so readers never see a torn pair. Nothing is
// persisted and no expiry is tracked.
type TokenStore struct {
	pair atomic.Pointer[TokenPair]
}

// NewTokenStore creates an empty, unauthenticated TokenStore.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Set replaces the current pair.
func (s *TokenStore) Set(pair TokenPair) {
	s.pair.Store(&pair)
}

// Pair returns the current pair, or false if no exchange has succeeded yet.
func (s *TokenStore) Pair() (TokenPair, bool) {
	p := s.pair.Load()
	if p == nil || p.AccessToken == "" {
		return TokenPair{}, false
	}
	return *p, true
}

// AccessToken returns the latest access token, or false when the process
// is not authenticated.
func (s *TokenStore) AccessToken() (string, bool) {
	p, ok := s.Pair()
	return p.AccessToken, ok
}

// RefreshToken returns the latest refresh token, or false when none was
// issued.
func (s *TokenStore) RefreshToken() (string, bool) {
	p, ok := s.Pair()
	if !ok || p.RefreshToken == "" {
		return "", false
	}
	return p.RefreshToken, true
}
