package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// flowTimeout bounds how long the loopback listener waits for the operator to
// finish the browser consent screen.
const flowTimeout = 5 * time.Minute

// runLoopbackFlow performs the interactive authorization-code exchange using a
// temporary listener on a random localhost port. The operator opens the
// printed URL in a browser, approves access, and Google redirects the code
// back to the listener.
func runLoopbackFlow(ctx context.Context, cfg *oauth2.Config, role Role) (*oauth2.Token, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("failed to start callback listener: %w", err)
	}
	defer listener.Close()

	flowCfg := *cfg
	flowCfg.RedirectURL = fmt.Sprintf("http://%s/callback", listener.Addr().String())

	state, err := randomState()
	if err != nil {
		return nil, err
	}

	codeCh := make(chan string, 1)
	errCh := make(chan error, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		if query.Get("state") != state {
			http.Error(w, "state mismatch", http.StatusBadRequest)
			errCh <- fmt.Errorf("state mismatch in authorization callback")
			return
		}

		if errParam := query.Get("error"); errParam != "" {
			http.Error(w, "authorization denied", http.StatusBadRequest)
			errCh <- fmt.Errorf("%w: %s", ErrFlowCancelled, errParam)
			return
		}

		code := query.Get("code")
		if code == "" {
			http.Error(w, "missing authorization code", http.StatusBadRequest)
			errCh <- fmt.Errorf("authorization callback carried no code")
			return
		}

		fmt.Fprintln(w, "Authentication complete. You can close this tab and return to the terminal.")
		codeCh <- code
	})

	server := &http.Server{Handler: mux}
	go func() {
		if serveErr := server.Serve(listener); serveErr != nil && serveErr != http.ErrServerClosed {
			errCh <- serveErr
		}
	}()
	defer server.Close()

	// access_type=offline plus prompt=consent makes Google return a refresh
	// token even when the account approved this client before.
	authURL := flowCfg.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)

	fmt.Printf("\nAuthenticate the %s account by visiting:\n\n  %s\n\nWaiting for the browser callback...\n", role, authURL)

	var code string
	select {
	case code = <-codeCh:
	case err := <-errCh:
		return nil, err
	case <-time.After(flowTimeout):
		return nil, fmt.Errorf("%w: no callback received within %s", ErrFlowCancelled, flowTimeout)
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrFlowCancelled, ctx.Err())
	}

	token, err := flowCfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("code exchange failed: %w", err)
	}

	return token, nil
}

func randomState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate state nonce: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
