// Package spotify talks to the Spotify Web API: the client-credentials
// token exchange and the paginated artist-albums endpoint.
//
// The package handles two concerns:
//
//  1. Exchanging stored credentials for a short-lived bearer token
//  2. Draining every page of an artist's release list, filtering and
//     normalizing entries into model.Release values
//
// # Token Exchange
//
//	auth := spotify.NewAuthenticator(client)
//	token, err := auth.Token(ctx, creds)
//	if err != nil {
//	    // Fatal: the whole run depends on the token.
//	}
//
// # Fetching Releases
//
//	fetcher := spotify.NewFetcher(client)
//	releases, err := fetcher.ArtistReleases(ctx, artistID, token)
//
// ArtistReleases follows the API's server-supplied "next page" URL until
// none remains, so one call drains the full release list. Compilations
// and releases that do not credit the queried artist (i.e. "appears on"
// entries) are filtered out.
//
// # Wire Format
//
// The raw JSON shapes live in the dto subpackage; mapping to the stable
// model.Release happens there so this package only deals in sequencing
// and filtering.
package spotify
