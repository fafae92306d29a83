// Package http provides an HTTP client configured for catalog API
// requests.
//
// The Client in this package handles:
//   - User-Agent headers on every request
//   - Bearer-token authentication for API calls
//   - Basic-auth form POSTs for the token exchange
//   - Timeout handling
//
// # Basic Usage
//
//	client := http.NewClient(60 * time.Second)
//
//	// Fetch a JSON document with bearer auth
//	var page albumsPage
//	err := client.GetJSON(ctx, url, token, &page)
//
//	// Exchange credentials for a token
//	var tok tokenResponse
//	err = client.PostForm(ctx, tokenURL, basicAuth, form, &tok)
package http
