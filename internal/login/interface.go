package login

import (
	"context"
	"summit/pkg/domain"
	"summit/pkg/profile"
)

// Service drives a login attempt and owns the "remember me" state.
type Service interface {
	// CanSubmit reports whether creds may be submitted: both username and
	// password must be non-empty after trimming surrounding whitespace.
	CanSubmit(creds domain.Credentials) bool
	// Prefill returns the remembered credentials, or nil when there are none.
	Prefill(ctx context.Context) (*domain.Credentials, error)
	// Login starts one profile fetch with creds. onComplete receives exactly
	// one result on the fetcher's dispatcher. It fails with ErrBadRequest for
	// credentials CanSubmit rejects and with ErrConflict while another login
	// is in flight. A login stops being in flight once its outcome settles,
	// even if the dispatcher has not run onComplete yet. When remember is set,
	// credentials are saved after a successful fetch and before onComplete
	// runs.
	Login(ctx context.Context,
		creds domain.Credentials,
		remember bool,
		onComplete func(domain.FetchResult)) (*profile.Call, error)
	// Forget clears the remembered credentials.
	Forget(ctx context.Context) error
}
