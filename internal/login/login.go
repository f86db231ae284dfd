// Package login implements the login flow on top of a profile fetcher and the
// credential storage.
package login

import (
	"context"
	"fmt"
	"strings"
	"summit/internal/config"
	"summit/pkg/domain"
	"summit/pkg/logger"
	"summit/pkg/profile"
	"summit/pkg/serrors"
	"summit/pkg/storage"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Options configure the login flow.
type Options struct {
	// Slot is the key remembered credentials are stored under.
	Slot string
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Slot: cfg.Store.Slot,
	}
}

// service is the concrete implementation of the Service interface.
type service struct {
	options Options
	fetcher profile.Fetcher
	storage storage.CredentialStorage
	// busy is set while a login is in flight.
	busy atomic.Bool
}

// CanSubmit implements Service.
func (s *service) CanSubmit(creds domain.Credentials) bool {
	return strings.TrimSpace(creds.Username) != "" && strings.TrimSpace(creds.Password) != ""
}

// Prefill implements Service.
func (s *service) Prefill(ctx context.Context) (*domain.Credentials, error) {
	creds, err := s.storage.LoadCredentials(ctx, s.options.Slot)
	if err != nil {
		return nil, fmt.Errorf("could not load remembered credentials: %w", err)
	}

	return creds, nil
}

// Login implements Service.
func (s *service) Login(ctx context.Context,
	creds domain.Credentials,
	remember bool,
	onComplete func(domain.FetchResult)) (*profile.Call, error) {
	if !s.CanSubmit(creds) {
		return nil, serrors.With(serrors.ErrBadRequest, "username and password are required")
	}
	if !s.busy.CompareAndSwap(false, true) {
		return nil, serrors.With(serrors.ErrConflict, "a login is already in progress")
	}

	ctx = logger.WithFields(logger.Named(ctx, "login"), zap.String("username", creds.Username))
	logger.Info(ctx, "logging in", zap.Bool("remember", remember))

	// the guard is released at most once per call: before onComplete when the
	// handler runs, or when the outcome settles if the dispatcher never drains
	var release sync.Once
	unlock := func() { release.Do(func() { s.busy.Store(false) }) }

	call := s.fetcher.Fetch(ctx, creds, func(res domain.FetchResult) {
		if res.OK() && remember {
			if err := s.storage.SaveCredentials(context.WithoutCancel(ctx), s.options.Slot, creds); err != nil {
				logger.Warn(ctx, "could not remember credentials", zap.Error(err))
			}
		}
		unlock()

		if onComplete != nil {
			onComplete(res)
		}
	})
	go func() {
		<-call.Done()
		unlock()
	}()

	return call, nil
}

// Forget implements Service.
func (s *service) Forget(ctx context.Context) error {
	if err := s.storage.ClearCredentials(ctx, s.options.Slot); err != nil {
		return fmt.Errorf("could not clear remembered credentials: %w", err)
	}
	logger.Info(ctx, "remembered credentials cleared")

	return nil
}

// New creates a login Service that fetches with fetcher and remembers
// credentials in st.
func New(fetcher profile.Fetcher, st storage.CredentialStorage, options Options) Service {
	return &service{
		options: options,
		fetcher: fetcher,
		storage: st,
	}
}
