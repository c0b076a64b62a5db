package sfauth

import "context"

// IProvider supplies bearer tokens for the Salesforce API.
// Implementations are safe for concurrent use.
type IProvider interface {
	Fetch(ctx context.Context) (string, error)
}
