package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"strings"
	"summit/internal/config"
	"summit/internal/login"
	"summit/internal/summary"
	"summit/pkg/domain"
	"summit/pkg/logger"
	"summit/pkg/profile"
	"summit/pkg/profile/httpprofile"
	"summit/pkg/serrors"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// newFetcher builds the HTTP profile fetcher whose handlers run on dispatcher.
func newFetcher(cfg *config.Config, dispatcher profile.Dispatcher) (*httpprofile.Client, error) {
	httpClient := &http.Client{
		Transport: &httpprofile.LoggingTransport{
			Base:      http.DefaultTransport,
			LogBodies: cfg.Profile.LogBodies,
		},
	}

	return httpprofile.New(httpClient, httpprofile.Options{
		Endpoint:     cfg.Profile.Endpoint,
		Method:       cfg.Profile.Method,
		Timeout:      cfg.Profile.Timeout,
		MaxBodyBytes: cfg.Profile.MaxBodyBytes,
		Dispatcher:   dispatcher,
	})
}

// loginInput is what the login command submits once flags and remembered
// credentials are merged.
type loginInput struct {
	creds    domain.Credentials
	remember bool
	// forget is set when remembering was explicitly turned off while a pair
	// is stored.
	forget bool
}

// resolveCredentials merges flags with remembered credentials. Remembered
// credentials are used only when neither credential flag is given, and they
// keep being remembered unless remember is explicitly set to false, which also
// asks for the stored pair to be cleared.
func resolveCredentials(ctx context.Context,
	svc login.Service,
	creds domain.Credentials,
	remember bool,
	rememberSet bool) loginInput {
	in := loginInput{creds: creds, remember: remember}
	fromFlags := creds.Username != "" || creds.Password != ""
	optOut := rememberSet && !remember
	if fromFlags && !optOut {
		return in
	}

	stored, err := svc.Prefill(ctx)
	if err != nil {
		logger.Warn(ctx, "could not load remembered credentials", zap.Error(err))

		return in
	}
	if stored == nil {
		return in
	}
	in.forget = optOut
	if fromFlags {
		return in
	}

	logger.Info(ctx, "using remembered credentials", zap.String("username", stored.Username))
	in.creds = *stored
	if !rememberSet {
		in.remember = true
	}

	return in
}

func readPassword(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("could not read password: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func printResult(w io.Writer, res domain.FetchResult, output string) error {
	p, ok := res.Profile()
	if !ok {
		f, _ := res.Failure()
		_, _ = fmt.Fprintln(w, "Failed to login:", f.Message)

		return res.Err()
	}

	if output == outputJSON {
		_, err := fmt.Fprintln(w, string(profile.Encode(p)))

		return err
	}
	_, err := fmt.Fprint(w, summary.Render(p))

	return err
}

// loginCommand constructs the 'login' subcommand: it fetches the profile once
// and prints the summary.
func loginCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Signs in and prints the card summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			output, _ := cmd.Flags().GetString("output")
			if output != outputText && output != outputJSON {
				return serrors.With(serrors.ErrBadRequest, "unknown output %q", output)
			}

			username, _ := cmd.Flags().GetString("username")
			password, _ := cmd.Flags().GetString("password")
			if fromStdin, _ := cmd.Flags().GetBool("password-stdin"); fromStdin {
				var err error
				if password, err = readPassword(cmd.InOrStdin()); err != nil {
					return err
				}
			}

			strg, closeStrg := getStorage(ctx, cfg)
			defer closeStrg()

			// handlers run here, on the command goroutine
			loop := profile.NewLoop()
			fetcher, err := newFetcher(cfg, loop)
			if err != nil {
				return fmt.Errorf("could not create profile fetcher: %w", err)
			}
			svc := login.New(fetcher, strg, login.NewOptions(cfg))

			remember, _ := cmd.Flags().GetBool("remember")
			in := resolveCredentials(ctx, svc, domain.Credentials{
				Username: username,
				Password: password,
			}, remember, cmd.Flags().Changed("remember"))
			if in.forget {
				if err := svc.Forget(ctx); err != nil {
					return err
				}
			}

			var outcome domain.FetchResult
			if _, err := svc.Login(ctx, in.creds, in.remember, func(res domain.FetchResult) {
				outcome = res
				loop.Close()
			}); err != nil {
				return err
			}

			// SIGINT cancels the exchange through ctx; the handler still runs
			// once and closes the loop.
			if err := loop.Run(context.WithoutCancel(ctx)); err != nil {
				return err
			}

			if outcome.Canceled() {
				return fmt.Errorf("login canceled: %w", outcome.Err())
			}
			if err := printResult(cmd.OutOrStdout(), outcome, output); err != nil {
				if serrors.KindOf(err) == serrors.ErrNetwork {
					_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Check your connection and try again.")
				}

				return err
			}

			return nil
		},
	}

	cmd.Flags().StringP("username", "u", "", "Username; falls back to remembered credentials")
	cmd.Flags().StringP("password", "p", "", "Password; falls back to remembered credentials")
	cmd.Flags().Bool("password-stdin", false, "Read the password from stdin")
	cmd.Flags().Bool("remember", false, "Remember the credentials after a successful login; =false clears remembered ones")
	cmd.Flags().StringP("output", "o", outputText, "Output format: text or json")

	return cmd
}
