package spotify

import (
	"context"
	"errors"
	"net/url"

	"github.com/releasewatch/releasewatch/internal/config"
	"github.com/releasewatch/releasewatch/internal/http"
	"github.com/releasewatch/releasewatch/internal/spotify/dto"
)

// TokenURL is the fixed OAuth token endpoint.
const TokenURL = "https://accounts.spotify.com/api/token"

// ErrNoToken is returned when the token endpoint answers successfully but
// without an access token.
var ErrNoToken = errors.New("token response contained no access token")

// Authenticator exchanges client credentials for a short-lived bearer
// token using the OAuth client-credentials flow.
//
// Example usage:
//
//	auth := NewAuthenticator(client)
//	token, err := auth.Token(ctx, creds)
type Authenticator struct {
	client *http.Client

	// Endpoint is the token URL. Overridable for tests; defaults to
	// TokenURL.
	Endpoint string
}

// NewAuthenticator creates an Authenticator using the given client.
func NewAuthenticator(client *http.Client) *Authenticator {
	return &Authenticator{
		client:   client,
		Endpoint: TokenURL,
	}
}

// Token performs the client-credentials exchange and returns the bearer
// token.
//
// Any failure here is fatal to a run: there is no retry, and without a
// token no catalog request can be made.
func (a *Authenticator) Token(ctx context.Context, creds config.Credentials) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	var resp dto.TokenResponse
	if err := a.client.PostForm(ctx, a.Endpoint, creds.ClientID, creds.ClientSecret, form, &resp); err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", ErrNoToken
	}
	return resp.AccessToken, nil
}
