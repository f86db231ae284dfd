package profile

import (
	"bytes"
	"summit/pkg/domain"
	"unicode/utf8"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

const (
	fieldName         = "name"
	fieldCardLastFour = "cardLastFour"
	fieldTransactions = "transactions"
	fieldMerchant     = "merchant"
	fieldAmount       = "amount"
)

// FromBody turns the body returned by an exchange into a result. A missing or
// blank body means the exchange produced nothing usable and is reported as a
// network failure; anything else is handed to Parse.
func FromBody(body []byte) domain.FetchResult {
	if len(bytes.TrimSpace(body)) == 0 {
		return domain.NetworkFailure(errors.New("empty response body"))
	}

	return Parse(string(body))
}

// Parse decodes raw into a Profile. It expects a JSON object of the form
//
//	{"name": "...", "cardLastFour": "...", "transactions": [{"merchant": "...", "amount": "..."}]}
//
// Every listed field is required and must be a string (transactions an array
// of objects). Unknown fields are ignored. Any violation, including a single
// malformed transaction, yields a parse failure and no partial profile.
//
// Parse is pure: the same input always yields an equal result.
func Parse(raw string) domain.FetchResult {
	p, err := decodeProfile(raw)
	if err != nil {
		return domain.ParseFailure(err)
	}

	return domain.Success(p)
}

func decodeProfile(raw string) (domain.Profile, error) {
	body := bytes.TrimSpace([]byte(raw))
	if !jx.Valid(body) {
		return domain.Profile{}, errors.New("body is not valid json")
	}

	d := jx.DecodeBytes(body)
	if tt := d.Next(); tt != jx.Object {
		return domain.Profile{}, errors.Errorf("expected object, got %s", tt)
	}

	var (
		name, card   string
		transactions []domain.Transaction
		seen         = map[string]bool{}
	)
	if err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		var err error
		switch k := string(key); k {
		case fieldName:
			name, err = requireString(d, k)
		case fieldCardLastFour:
			card, err = requireString(d, k)
		case fieldTransactions:
			transactions, err = decodeTransactions(d)
		default:
			return d.Skip()
		}
		if err != nil {
			return err
		}
		seen[string(key)] = true

		return nil
	}); err != nil {
		return domain.Profile{}, errors.Wrap(err, "decode profile")
	}

	for _, f := range []string{fieldName, fieldCardLastFour, fieldTransactions} {
		if !seen[f] {
			return domain.Profile{}, errors.Errorf("missing required field %q", f)
		}
	}

	return domain.NewProfile(name, card, transactions), nil
}

func decodeTransactions(d *jx.Decoder) ([]domain.Transaction, error) {
	if tt := d.Next(); tt != jx.Array {
		return nil, errors.Errorf("field %q: expected array, got %s", fieldTransactions, tt)
	}

	out := []domain.Transaction{}
	if err := d.Arr(func(d *jx.Decoder) error {
		tx, err := decodeTransaction(d)
		if err != nil {
			return errors.Wrapf(err, "transaction %d", len(out))
		}
		out = append(out, tx)

		return nil
	}); err != nil {
		return nil, errors.Wrapf(err, "field %q", fieldTransactions)
	}

	return out, nil
}

func decodeTransaction(d *jx.Decoder) (domain.Transaction, error) {
	if tt := d.Next(); tt != jx.Object {
		return domain.Transaction{}, errors.Errorf("expected object, got %s", tt)
	}

	var (
		tx                     domain.Transaction
		hasMerchant, hasAmount bool
	)
	if err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		var err error
		switch k := string(key); k {
		case fieldMerchant:
			tx.Merchant, err = requireString(d, k)
			hasMerchant = true
		case fieldAmount:
			tx.Amount, err = requireString(d, k)
			hasAmount = true
		default:
			return d.Skip()
		}

		return err
	}); err != nil {
		return domain.Transaction{}, err
	}

	switch {
	case !hasMerchant:
		return domain.Transaction{}, errors.Errorf("missing required field %q", fieldMerchant)
	case !hasAmount:
		return domain.Transaction{}, errors.Errorf("missing required field %q", fieldAmount)
	}

	return tx, nil
}

func requireString(d *jx.Decoder, field string) (string, error) {
	if tt := d.Next(); tt != jx.String {
		return "", errors.Errorf("field %q: expected string, got %s", field, tt)
	}
	s, err := d.Str()
	if err != nil {
		return "", errors.Wrapf(err, "field %q", field)
	}
	if !utf8.ValidString(s) {
		return "", errors.Errorf("field %q: invalid UTF-8", field)
	}

	return s, nil
}
