package sqldb

import (
	"fmt"
	"summit/pkg/domain"
	"summit/pkg/sealer"

	"github.com/google/uuid"
)

// credentialRow is one remembered pair. Password holds the sealed value.
type credentialRow struct {
	Slot     string `db:"slot"`
	ID       string `db:"id"`
	Username string `db:"username"`
	Password string `db:"password"`
}

func credentialRowFromDomain(s *sealer.Sealer, slot string, creds domain.Credentials) (credentialRow, error) {
	sealed, err := s.Seal([]byte(creds.Password))
	if err != nil {
		return credentialRow{}, fmt.Errorf("could not seal password: %w", err)
	}

	return credentialRow{
		Slot:     slot,
		ID:       uuid.NewString(),
		Username: creds.Username,
		Password: sealed,
	}, nil
}

func (r *credentialRow) ToDomain(s *sealer.Sealer) (*domain.Credentials, error) {
	password, err := s.Open(r.Password)
	if err != nil {
		return nil, fmt.Errorf("could not open remembered password: %w", err)
	}

	return &domain.Credentials{
		Username: r.Username,
		Password: string(password),
	}, nil
}
