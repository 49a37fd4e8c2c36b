package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/you-humble/partsyard/internal/model"
	"github.com/you-humble/partsyard/platform/logger"
)

const (
	sessionIssuerSuffix = "/session"
	defaultSessionTTL   = 5 * 24 * time.Hour
	clockLeeway         = 30 * time.Second
)

type claims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

type Config struct {
	Issuer        string
	IDTokenSecret []byte
	SessionSecret []byte
	SessionTTL    time.Duration
	Now           func() time.Time
}

type provider struct {
	issuer        string
	idTokenSecret []byte
	sessionSecret []byte
	sessionTTL    time.Duration
	now           func() time.Time
}

func NewProvider(cfg Config) *provider {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &provider{
		issuer:        cfg.Issuer,
		idTokenSecret: cfg.IDTokenSecret,
		sessionSecret: cfg.SessionSecret,
		sessionTTL:    cfg.SessionTTL,
		now:           cfg.Now,
	}
}

func (p *provider) SessionTTL() time.Duration { return p.sessionTTL }

// Verify checks an ID token from the sign-in flow.
func (p *provider) Verify(ctx context.Context, idToken string) (model.Identity, error) {
	const op = "identity.provider.Verify"

	id, err := p.parse(idToken, p.issuer, p.idTokenSecret)
	if err != nil {
		logger.Warn(ctx, "id token rejected", logger.ErrorF(err))
		return model.Identity{}, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// MintSession exchanges a verified ID token for a session token.
func (p *provider) MintSession(ctx context.Context, idToken string) (string, error) {
	const op = "identity.provider.MintSession"

	id, err := p.Verify(ctx, idToken)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	now := p.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email: id.Email,
		Name:  id.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    p.issuer + sessionIssuerSuffix,
			Subject:   id.Subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.sessionTTL)),
		},
	})

	signed, err := token.SignedString(p.sessionSecret)
	if err != nil {
		return "", fmt.Errorf("%s: sign: %w", op, err)
	}

	logger.Info(ctx, "session minted", logger.String("email", id.Email))
	return signed, nil
}

// VerifySession resolves the identity behind a session cookie value.
func (p *provider) VerifySession(ctx context.Context, session string) (model.Identity, error) {
	const op = "identity.provider.VerifySession"

	id, err := p.parse(session, p.issuer+sessionIssuerSuffix, p.sessionSecret)
	if err != nil {
		logger.Debug(ctx, "session rejected", logger.ErrorF(err))
		return model.Identity{}, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

func (p *provider) parse(raw, issuer string, secret []byte) (model.Identity, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return model.Identity{}, errors.Join(model.ErrUnauthorized, errors.New("empty token"))
	}

	var c claims
	_, err := jwt.ParseWithClaims(raw, &c,
		func(*jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(clockLeeway),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		return model.Identity{}, errors.Join(model.ErrUnauthorized, err)
	}

	id := model.Identity{
		Subject: c.Subject,
		Email:   strings.TrimSpace(c.Email),
		Name:    c.Name,
	}
	if id.Empty() {
		return model.Identity{}, errors.Join(model.ErrUnauthorized, errors.New("token has no email"))
	}
	return id, nil
}
