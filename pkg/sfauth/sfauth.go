package sfauth

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const defaultTimeout = 10 * time.Second

// Provider exchanges client credentials for Salesforce bearer tokens.
// Tokens are cached until expiry via oauth2's reuse token source, so
// concurrent callers share one exchange instead of each hitting the
// token endpoint.
type Provider struct {
	conf       *clientcredentials.Config
	httpClient *http.Client

	mu sync.Mutex
	ts oauth2.TokenSource
}

// New creates a Provider for the given token endpoint and client credentials.
func New(tokenURL, clientID, clientSecret string) *Provider {
	return &Provider{
		conf: &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenURL,
			AuthStyle:    oauth2.AuthStyleInParams,
		},
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// WithHTTPClient overrides the HTTP client used for the exchange.
func (p *Provider) WithHTTPClient(hc *http.Client) *Provider {
	p.httpClient = hc
	return p
}

// Fetch returns a valid access token, performing the client-credentials
// grant when no cached token is usable.
func (p *Provider) Fetch(ctx context.Context) (string, error) {
	p.mu.Lock()
	if p.ts == nil {
		// The token source outlives any single request, so it is bound
		// to a background context carrying our HTTP client.
		c := context.WithValue(context.Background(), oauth2.HTTPClient, p.httpClient)
		p.ts = p.conf.TokenSource(c)
	}
	ts := p.ts
	p.mu.Unlock()

	tok, err := ts.Token()
	if err != nil {
		return "", fmt.Errorf("sfauth: token exchange failed: %w", err)
	}
	return tok.AccessToken, nil
}
