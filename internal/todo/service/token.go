package service

import (
	"time"

	"github.com/aussiebroadwan/tabtodo/pkg/jwtx"
)

// TokenService issues and validates signed, time-limited bearer tokens.
type TokenService struct {
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
	Issuer   string
	TTL      time.Duration

	// Now overrides the clock used for issuing; defaults to time.Now.
	Now func() time.Time
}

// NewTokenService builds an HS256 TokenService. The verifier shares the
// service clock, so overriding Now moves both sides.
func NewTokenService(secret []byte, issuer string, ttl time.Duration) (*TokenService, error) {
	signer, err := jwtx.NewSignerHS256(secret)
	if err != nil {
		return nil, err
	}

	s := &TokenService{
		Signer: signer,
		Issuer: issuer,
		TTL:    ttl,
	}

	verifier := jwtx.NewVerifierHS256(secret, issuer, 0)
	verifier.Now = s.now
	s.Verifier = verifier

	return s, nil
}

func (s *TokenService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Issue signs a token for subject. ttl <= 0 falls back to the service TTL and
// then to jwtx.DefaultAccessTokenTTL. It returns the lifetime actually used.
func (s *TokenService) Issue(subject string, ttl time.Duration) (string, time.Duration, error) {
	if ttl <= 0 {
		ttl = s.TTL
	}
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	token, err := s.Signer.Sign(jwtx.NewAccessClaims(subject, s.Issuer, ttl, s.now()))
	if err != nil {
		return "", 0, err
	}
	return token, ttl, nil
}

// Validate returns the token subject, or false for any expired, malformed,
// mis-issued or badly signed token.
func (s *TokenService) Validate(token string) (string, bool) {
	if token == "" {
		return "", false
	}

	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return "", false
	}
	return claims.Subject, true
}
