// Package teamdocs implements a catalog source for the Teamdocs content API.
//
// The source lists the directories and documents of one or more teams and
// returns them as domain records. Listings are paginated; the package fetches
// every page of a listing before returning, resolving side-loaded records
// into relationship references on the way out.
//
// # Architecture
//
// The package follows the driven port pattern defined in [driven.CatalogSource].
// It comprises the following components:
//
//   - Source: implements the catalog port on top of the client
//   - Client: handles Teamdocs API communication with rate limiting
//   - Config: client configuration with catalog defaults
//   - FetchAll: the paginated fetch protocol
//
// # Authentication
//
// Every request carries a bearer token obtained from the configured
// [driven.TokenProvider]. The token is exchanged once per process via the
// client-credentials flow and reused unchanged for the whole run.
//
// # Fetch Protocol
//
// Listings return an envelope of the form:
//
//	{"data": [...], "included": [...], "meta": {"total": N}}
//
// FetchAll first issues a probe request for page 1 to learn meta.total.
// When the total fits in one page the probe's payload is the complete
// result. Otherwise the probe payload is discarded and every page from 1
// to ceil(total/page_size) is fetched concurrently, capped at
// MaxInFlight simultaneous requests. Page 1 is requested a second time on
// this path; the source is read-only so the duplicate request is harmless
// and each record still appears exactly once in the merged output.
//
// Any page failure aborts the whole fetch. Partial results are never
// returned.
//
// # Relationship Resolution
//
// When a listing is fetched with resolution enabled, each record's
// relationship references are matched against the side-loaded records by
// type and id. A match attaches the side-loaded record's attributes to the
// reference; a reference with no match is left unresolved, which is not an
// error.
//
// # Rate Limiting
//
// A token bucket throttles requests across all concurrent page fetches.
// When the API answers 429 the limiter also backs off until the time the
// Retry-After header names before admitting further requests.
//
// # Error Handling
//
//   - Non-2xx responses are reported as [*APIError] with the status code,
//     the API's message and the request URL
//   - Authentication failures satisfy [IsUnauthorized]
//   - Fetch errors are never retried at this layer; the caller decides
package teamdocs
