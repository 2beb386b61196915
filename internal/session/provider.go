// SPDX-License-Identifier: Apache-2.0

// Package session holds the client-side authenticated identity. The
// [Provider] signs in against the server through the adapter, caches the
// returned identity, and hands it to the parts of the client that need to
// know who is acting (ownership checks, owner display-name snapshots).
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/mfadhilr/contekan/internal/adapter"
	"github.com/mfadhilr/contekan/internal/logger"
	"github.com/mfadhilr/contekan/models"
)

// Provider is the client's source of truth for "who is signed in".
type Provider interface {
	// Current returns the cached identity of the signed-in user. The
	// second return value is false when nobody is signed in.
	Current() (models.Session, bool)

	// SignIn authenticates against the server and caches the returned
	// identity. The adapter keeps the bearer token for later requests.
	SignIn(ctx context.Context, email, password string) error

	// Register creates a new account, signs it in, and caches the
	// returned identity.
	Register(ctx context.Context, email, name, password string) error

	// SignOut drops the cached identity and the adapter's bearer token.
	SignOut()
}

type provider struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger

	mu      sync.RWMutex
	current *models.Session
}

// NewProvider creates a Provider backed by the given server adapter.
func NewProvider(serverAdapter adapter.ServerAdapter, logger *logger.Logger) Provider {
	return &provider{adapter: serverAdapter, logger: logger}
}

func (p *provider) Current() (models.Session, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.current == nil {
		return models.Session{}, false
	}
	return *p.current, true
}

func (p *provider) SignIn(ctx context.Context, email, password string) error {
	session, err := p.adapter.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return fmt.Errorf("login on server: %w", err)
	}

	p.store(session)
	p.logger.Info().Int64("user_id", session.UserID).Msg("signed in")
	return nil
}

func (p *provider) Register(ctx context.Context, email, name, password string) error {
	session, err := p.adapter.Register(ctx, models.RegisterRequest{Email: email, Name: name, Password: password})
	if err != nil {
		return fmt.Errorf("register on server: %w", err)
	}

	p.store(session)
	p.logger.Info().Int64("user_id", session.UserID).Msg("registered and signed in")
	return nil
}

func (p *provider) SignOut() {
	p.mu.Lock()
	p.current = nil
	p.mu.Unlock()

	p.adapter.SetToken("")
	p.logger.Info().Msg("signed out")
}

func (p *provider) store(session models.Session) {
	p.mu.Lock()
	p.current = &session
	p.mu.Unlock()
}
