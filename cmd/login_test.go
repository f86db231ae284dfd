package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"summit/internal/login"
	"summit/pkg/domain"
	"summit/pkg/serrors"
	"testing"

	mockstorage "summit/pkg/storage/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReadPassword(t *testing.T) {
	pw, err := readPassword(strings.NewReader("hunter2\r\nignored\n"))
	require.NoError(t, err)
	require.Equal(t, "hunter2", pw)

	pw, err = readPassword(strings.NewReader("no-newline"))
	require.NoError(t, err)
	require.Equal(t, "no-newline", pw)
}

func TestPrintResult(t *testing.T) {
	p := domain.NewProfile("Nick C.", "7890", []domain.Transaction{
		{Merchant: "Starbucks", Amount: "$1.40"},
	})

	var text bytes.Buffer
	require.NoError(t, printResult(&text, domain.Success(p), outputText))
	require.Contains(t, text.String(), "Nick C.")
	require.Contains(t, text.String(), "Starbucks")

	var js bytes.Buffer
	require.NoError(t, printResult(&js, domain.Success(p), outputJSON))
	require.JSONEq(t,
		`{"name":"Nick C.","cardLastFour":"7890","transactions":[{"merchant":"Starbucks","amount":"$1.40"}]}`,
		js.String())

	var failed bytes.Buffer
	err := printResult(&failed, domain.NetworkFailure(errors.New("refused")), outputText)
	require.ErrorIs(t, err, serrors.ErrNetwork)
	require.Equal(t, "Failed to login: "+domain.NetworkFailureMessage+"\n", failed.String())
}

func TestResolveCredentials(t *testing.T) {
	const slot = "default"
	stored := &domain.Credentials{Username: "nick", Password: "hunter2"}
	flags := domain.Credentials{Username: "ann", Password: "pw"}

	tests := []struct {
		name        string
		flags       domain.Credentials
		remember    bool
		rememberSet bool
		load        func(st *mockstorage.MockCredentialStorage)
		want        loginInput
	}{
		{
			name:  "flags given",
			flags: flags,
			want:  loginInput{creds: flags},
		},
		{
			name:        "flags given and remember",
			flags:       flags,
			remember:    true,
			rememberSet: true,
			want:        loginInput{creds: flags, remember: true},
		},
		{
			name: "stored keeps remembering",
			load: func(st *mockstorage.MockCredentialStorage) {
				st.EXPECT().LoadCredentials(gomock.Any(), slot).Return(stored, nil)
			},
			want: loginInput{creds: *stored, remember: true},
		},
		{
			name:        "stored with remember off",
			rememberSet: true,
			load: func(st *mockstorage.MockCredentialStorage) {
				st.EXPECT().LoadCredentials(gomock.Any(), slot).Return(stored, nil)
			},
			want: loginInput{creds: *stored, forget: true},
		},
		{
			name:        "flags given with remember off",
			flags:       flags,
			rememberSet: true,
			load: func(st *mockstorage.MockCredentialStorage) {
				st.EXPECT().LoadCredentials(gomock.Any(), slot).Return(stored, nil)
			},
			want: loginInput{creds: flags, forget: true},
		},
		{
			name:        "remember off with nothing stored",
			rememberSet: true,
			load: func(st *mockstorage.MockCredentialStorage) {
				st.EXPECT().LoadCredentials(gomock.Any(), slot).Return(nil, nil)
			},
			want: loginInput{},
		},
		{
			name: "prefill fails",
			load: func(st *mockstorage.MockCredentialStorage) {
				st.EXPECT().LoadCredentials(gomock.Any(), slot).Return(nil, errors.New("locked"))
			},
			want: loginInput{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			st := mockstorage.NewMockCredentialStorage(ctrl)
			if tt.load != nil {
				tt.load(st)
			}
			svc := login.New(nil, st, login.Options{Slot: slot})

			got := resolveCredentials(context.Background(), svc, tt.flags, tt.remember, tt.rememberSet)
			require.Equal(t, tt.want, got)
		})
	}
}
