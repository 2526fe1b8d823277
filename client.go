package capitol

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// MaxPageSize is the largest page the Congress.gov API serves; larger limits
// are clamped.
const MaxPageSize = 250

// Client is a Congress.gov API client. It owns an immutable Config snapshot
// and a monotonically increasing request counter, and is safe for concurrent
// use. Each call performs exactly one dispatch: retry, backoff and caching
// belong to the caller.
type Client struct {
	config       Config
	httpClient   *http.Client
	limiter      *rate.Limiter
	metrics      *MetricsCollector
	logger       Logger
	userAgent    string
	requestCount atomic.Int64

	rateLimitGuard bool
}

// New constructs a Client from the provided functional options. Defaults are
// applied to any Config field left unset.
func New(options ...Option) *Client {
	client := &Client{
		userAgent: "capitol/" + Version,
	}

	for _, option := range options {
		option(client)
	}

	client.config = client.config.withDefaults()

	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: client.config.Timeout}
	} else if client.httpClient.Timeout == 0 {
		client.httpClient.Timeout = client.config.Timeout
	}

	if client.rateLimitGuard {
		// The full hourly budget is available as burst; tokens refill evenly
		// across the hour.
		perSecond := rate.Limit(float64(client.config.RateLimit) / 3600.0)
		client.limiter = rate.NewLimiter(perSecond, client.config.RateLimit)
	}

	return client
}

// Config returns a copy of the client's configuration.
func (c *Client) Config() Config {
	return c.config
}

// IsConfigured reports whether the client holds a usable API key.
func (c *Client) IsConfigured() bool {
	return c.config.IsConfigured()
}

// RequestCount returns the number of outbound dispatch attempts made by this
// client since construction. Attempts that fail in transport are counted;
// calls rejected before dispatch are not.
func (c *Client) RequestCount() int64 {
	return c.requestCount.Load()
}

// FetchMemberByBioguideID fetches a single member of Congress by bioguide ID.
func (c *Client) FetchMemberByBioguideID(ctx context.Context, bioguideID string) (*Member, error) {
	if strings.TrimSpace(bioguideID) == "" {
		return nil, &ClientError{
			Type:    ErrorTypeInvalidArgument,
			Message: "bioguide ID must not be empty",
		}
	}

	body, err := c.get(ctx, "member", "/member/"+url.PathEscape(bioguideID), nil)
	if err != nil {
		return nil, err
	}
	member, err := ParseMember(body)
	if err != nil {
		return nil, c.noteParseError("member", err)
	}
	return member, nil
}

// FetchMembers fetches one page of the member listing. limit is clamped to
// MaxPageSize; currentOnly restricts the listing to sitting members.
func (c *Client) FetchMembers(ctx context.Context, limit, offset int, currentOnly bool) (*MemberPage, error) {
	if limit <= 0 || offset < 0 {
		return nil, &ClientError{
			Type:    ErrorTypeInvalidArgument,
			Message: fmt.Sprintf("invalid page limit %d / offset %d", limit, offset),
		}
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))
	query.Set("currentMember", strconv.FormatBool(currentOnly))

	body, err := c.get(ctx, "members", "/member", query)
	if err != nil {
		return nil, err
	}
	page, err := ParseMemberPage(body)
	if err != nil {
		return nil, c.noteParseError("members", err)
	}
	return page, nil
}

// FetchAllCurrentMembers walks the member listing until the API's reported
// total is reached and returns every sitting member. The first failing page
// aborts the walk.
func (c *Client) FetchAllCurrentMembers(ctx context.Context) ([]Member, error) {
	var all []Member
	offset := 0

	for {
		page, err := c.FetchMembers(ctx, MaxPageSize, offset, true)
		if err != nil {
			return nil, err
		}
		if len(page.Members) == 0 {
			return all, nil
		}

		all = append(all, page.Members...)
		offset += len(page.Members)

		if c.logger != nil {
			c.logger.Debug("fetched member page",
				"pageSize", len(page.Members), "total", len(all), "reported", page.Count)
		}

		if offset >= page.Count {
			return all, nil
		}
	}
}

// FetchCommittees fetches one page of the committee listing for a chamber
// (house, senate or joint).
func (c *Client) FetchCommittees(ctx context.Context, chamber string, limit, offset int) (*CommitteePage, error) {
	if !validChamber(chamber) {
		return nil, &ClientError{
			Type:    ErrorTypeInvalidArgument,
			Message: fmt.Sprintf("invalid chamber %q", chamber),
		}
	}
	if limit <= 0 || offset < 0 {
		return nil, &ClientError{
			Type:    ErrorTypeInvalidArgument,
			Message: fmt.Sprintf("invalid page limit %d / offset %d", limit, offset),
		}
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	query := url.Values{}
	query.Set("chamber", chamber)
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	body, err := c.get(ctx, "committees", "/committee", query)
	if err != nil {
		return nil, err
	}
	page, err := ParseCommitteePage(body)
	if err != nil {
		return nil, c.noteParseError("committees", err)
	}
	return page, nil
}

// FetchAllCommitteesByChamber walks the committee listing for one chamber
// until the API's reported total is reached. The first failing page aborts
// the walk.
func (c *Client) FetchAllCommitteesByChamber(ctx context.Context, chamber string) ([]Committee, error) {
	var all []Committee
	offset := 0

	for {
		page, err := c.FetchCommittees(ctx, chamber, MaxPageSize, offset)
		if err != nil {
			return nil, err
		}
		if len(page.Committees) == 0 {
			return all, nil
		}

		all = append(all, page.Committees...)
		offset += len(page.Committees)

		if c.logger != nil {
			c.logger.Debug("fetched committee page", "chamber", chamber,
				"pageSize", len(page.Committees), "total", len(all), "reported", page.Count)
		}

		if offset >= page.Count {
			return all, nil
		}
	}
}

// FetchAllCommittees aggregates the committee listings of all three chambers
// (house, senate, joint). The first failing chamber aborts the aggregation.
func (c *Client) FetchAllCommittees(ctx context.Context) ([]Committee, error) {
	var all []Committee
	for _, chamber := range []string{ChamberHouse, ChamberSenate, ChamberJoint} {
		committees, err := c.FetchAllCommitteesByChamber(ctx, chamber)
		if err != nil {
			return nil, err
		}
		all = append(all, committees...)
	}
	return all, nil
}

// FetchCommitteeByCode fetches a single committee by chamber and system code
// (e.g. "hsju00").
func (c *Client) FetchCommitteeByCode(ctx context.Context, chamber, systemCode string) (*Committee, error) {
	if !validChamber(chamber) {
		return nil, &ClientError{
			Type:    ErrorTypeInvalidArgument,
			Message: fmt.Sprintf("invalid chamber %q", chamber),
		}
	}
	if strings.TrimSpace(systemCode) == "" {
		return nil, &ClientError{
			Type:    ErrorTypeInvalidArgument,
			Message: "committee system code must not be empty",
		}
	}

	path := "/committee/" + chamber + "/" + url.PathEscape(systemCode)
	body, err := c.get(ctx, "committee", path, nil)
	if err != nil {
		return nil, err
	}
	committee, err := ParseCommittee(body)
	if err != nil {
		return nil, c.noteParseError("committee", err)
	}
	return committee, nil
}

// FetchBill fetches a single bill by congress number, bill type (e.g. "hr",
// "s") and bill number.
func (c *Client) FetchBill(ctx context.Context, congress int, billType, number string) (*Bill, error) {
	if congress <= 0 || strings.TrimSpace(billType) == "" || strings.TrimSpace(number) == "" {
		return nil, &ClientError{
			Type:    ErrorTypeInvalidArgument,
			Message: fmt.Sprintf("invalid bill reference %d/%s/%s", congress, billType, number),
		}
	}

	path := fmt.Sprintf("/bill/%d/%s/%s",
		congress, url.PathEscape(strings.ToLower(billType)), url.PathEscape(number))
	body, err := c.get(ctx, "bill", path, nil)
	if err != nil {
		return nil, err
	}
	bill, err := ParseBill(body)
	if err != nil {
		return nil, c.noteParseError("bill", err)
	}
	return bill, nil
}

// noteParseError records a parse failure without altering the error: parse
// errors propagate to the caller unchanged.
func (c *Client) noteParseError(operation string, err error) error {
	if c.logger != nil {
		c.logger.Warn("response parsing failed", "operation", operation, "error", err.Error())
	}
	if c.metrics != nil {
		c.metrics.RecordError(ErrorTypeParse, operation)
	}
	return err
}

// get runs the shared request lifecycle: configured check, rate-limit guard,
// authenticated request construction, counted dispatch, status check. It
// returns the raw body for the caller to parse.
func (c *Client) get(ctx context.Context, operation, path string, query url.Values) ([]byte, error) {
	if !c.config.IsConfigured() {
		if c.metrics != nil {
			c.metrics.RecordError(ErrorTypeNotConfigured, operation)
		}
		return nil, &ClientError{
			Type:    ErrorTypeNotConfigured,
			Message: "no API key configured",
		}
	}

	if c.limiter != nil && !c.limiter.Allow() {
		if c.logger != nil {
			c.logger.Warn("rate-limit guard denied request", "operation", operation)
		}
		if c.metrics != nil {
			c.metrics.RecordRateLimitDenial(operation)
			c.metrics.RecordError(ErrorTypeRateLimit, operation)
		}
		return nil, &ClientError{
			Type:    ErrorTypeRateLimit,
			Message: "request budget exhausted",
			Cause:   ErrRateLimited,
		}
	}

	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", strings.TrimSpace(c.config.APIKey))
	query.Set("format", "json")

	endpoint := strings.TrimRight(c.config.BaseURL, "/") + path
	requestURL := endpoint + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &ClientError{
			Type:    ErrorTypeTransport,
			Message: "building request failed",
			URL:     endpoint,
			Cause:   err,
		}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	// Counted at dispatch, before the outcome is known.
	c.requestCount.Add(1)

	if c.logger != nil {
		c.logger.Debug("dispatching request", "operation", operation, "url", endpoint)
	}
	if c.metrics != nil {
		c.metrics.RecordRequestStart(operation)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if c.metrics != nil {
		c.metrics.RecordRequestEnd(operation)
	}

	if err != nil {
		if c.logger != nil {
			c.logger.Warn("request failed", "operation", operation, "error", err.Error())
		}
		if c.metrics != nil {
			c.metrics.RecordRequest(operation, 0, duration)
			c.metrics.RecordError(ErrorTypeTransport, operation)
		}
		return nil, &ClientError{
			Type:    ErrorTypeTransport,
			Message: "request dispatch failed",
			URL:     endpoint,
			Cause:   err,
		}
	}
	defer resp.Body.Close()

	if c.metrics != nil {
		c.metrics.RecordRequest(operation, resp.StatusCode, duration)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if c.metrics != nil {
			c.metrics.RecordError(ErrorTypeTransport, operation)
		}
		return nil, &ClientError{
			Type:       ErrorTypeTransport,
			Message:    "reading response body failed",
			StatusCode: resp.StatusCode,
			URL:        endpoint,
			Cause:      err,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if c.logger != nil {
			c.logger.Warn("non-success status",
				"operation", operation, "status", resp.StatusCode)
		}
		if c.metrics != nil {
			c.metrics.RecordError(ErrorTypeTransport, operation)
		}
		return nil, &ClientError{
			Type:       ErrorTypeTransport,
			Message:    fmt.Sprintf("unexpected status %s", resp.Status),
			StatusCode: resp.StatusCode,
			URL:        endpoint,
			Cause:      fmt.Errorf("response body: %s", truncate(body, payloadExcerptLimit)),
		}
	}

	return body, nil
}

func truncate(body []byte, limit int) string {
	if len(body) > limit {
		return string(body[:limit]) + "..."
	}
	return string(body)
}
