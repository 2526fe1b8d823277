// Package capitol provides a client for the Congress.gov v3 REST API with a
// small set of composable reliability primitives:
//
//   - Configuration with construction-time defaults (base URL, rate budget, timeout)
//   - API key authentication with a fail-fast configured check
//   - An atomic per-client request counter for observability
//   - Opt-in rate-limit guarding (token bucket sized from the configured budget)
//   - Typed error classification (not-configured / invalid-argument / transport / parse)
//   - Prometheus metrics and lightweight structured debug logging
//
// Design goals:
//   - Small surface area – functional options configure everything
//   - Safe concurrent use of a single *Client instance
//   - No hidden retries, backoff or caching: the client performs exactly one
//     dispatch per call and leaves retry policy to the calling orchestrator
//
// Typical usage:
//
//	client := capitol.New(
//	    capitol.WithAPIKey(os.Getenv("CONGRESS_API_KEY")),
//	    capitol.WithTimeout(10*time.Second),
//	    capitol.WithMetrics(),
//	)
//	member, err := client.FetchMemberByBioguideID(ctx, "S000033")
//
// Errors carry enough context for callers to decide what to do next: use
// IsTransient to separate failures worth retrying (network, timeout, 5xx,
// rate-limit denial) from permanent ones (missing key, bad argument,
// unparseable body).
package capitol
