package ofs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bnema/pyme-segmenter/internal/domain"
	"github.com/bnema/pyme-segmenter/internal/logging"
	"github.com/bnema/pyme-segmenter/internal/ports"
)

const (
	resourcesPath = "/rest/ofscCore/v1/resources"

	// DefaultPageSize is the largest page the resources endpoint serves.
	DefaultPageSize = 100

	maxResponseBytes = 8 << 20
	maxPages         = 1000
)

var errNotConfigured = errors.New("ofs client is not configured")

// Client talks to the Oracle Field Service core REST API with basic auth.
type Client struct {
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	PageSize       int
	Log            *logrus.Entry

	mu      sync.RWMutex
	baseURL *url.URL
	creds   domain.Credentials
}

var _ ports.WorkforceAPI = (*Client)(nil)

func NewClient(httpClient *http.Client, requestTimeout time.Duration, log *logrus.Entry) *Client {
	return &Client{HTTPClient: httpClient, RequestTimeout: requestTimeout, Log: log}
}

func (c *Client) Configure(creds domain.Credentials) error {
	parsed, err := parseBaseURL(creds.URL)
	if err != nil {
		return err
	}
	if creds.ClientID == "" || creds.ClientSecret == "" {
		return errors.New("client id and secret are required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.baseURL = parsed
	c.creds = creds
	return nil
}

func (c *Client) ListResources(ctx context.Context) ([]domain.Resource, error) {
	pageSize := c.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	resources := make([]domain.Resource, 0)
	offset := 0
	for page := 0; page < maxPages; page++ {
		query := url.Values{}
		query.Set("expand", "workSkills")
		query.Set("limit", strconv.Itoa(pageSize))
		query.Set("offset", strconv.Itoa(offset))

		var payload resourcesPage
		if err := c.do(ctx, http.MethodGet, resourcesPath, query, nil, &payload); err != nil {
			return nil, remoteError("list resources", err)
		}

		for _, item := range payload.Items {
			resources = append(resources, fromResourceJSON(item, logging.FromContext(ctx, c.Log)))
		}
		offset += len(payload.Items)

		more := payload.HasMore || (payload.TotalResults > 0 && offset < payload.TotalResults)
		if !more || len(payload.Items) == 0 {
			return resources, nil
		}
	}

	return nil, remoteError("list resources", fmt.Errorf("more than %d pages", maxPages))
}

func (c *Client) SetSkillAssignments(ctx context.Context, id domain.ResourceID, skills []domain.SkillAssignment) error {
	path := resourcePath(id, "workSkills")
	if err := c.do(ctx, http.MethodPost, path, nil, toWorkSkillsJSON(skills), nil); err != nil {
		return remoteError(fmt.Sprintf("set work skills for %s", id), err)
	}
	return nil
}

func (c *Client) GetCalendar(ctx context.Context, id domain.ResourceID, from, to domain.Date) (domain.Calendar, error) {
	query := url.Values{}
	query.Set("dateFrom", from.String())
	query.Set("dateTo", to.String())

	var payload map[string]map[string]calendarEntryJSON
	if err := c.do(ctx, http.MethodGet, resourcePath(id, "workSchedules", "calendarView"), query, nil, &payload); err != nil {
		return nil, remoteError(fmt.Sprintf("get calendar for %s", id), err)
	}
	return fromCalendarJSON(payload), nil
}

func (c *Client) SetScheduleEntry(ctx context.Context, id domain.ResourceID, patch domain.SchedulePatch) error {
	if err := c.do(ctx, http.MethodPost, resourcePath(id, "workSchedules"), nil, toSchedulePatchJSON(patch), nil); err != nil {
		return remoteError(fmt.Sprintf("set work schedule for %s on %s", id, patch.StartDate), err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	c.mu.RLock()
	base := c.baseURL
	creds := c.creds
	c.mu.RUnlock()
	if base == nil {
		return errNotConfigured
	}

	endpoint := base.JoinPath(path)
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, method, endpoint.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.SetBasicAuth(creds.ClientID, creds.ClientSecret)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := logging.FromContext(ctx, c.Log).WithFields(logrus.Fields{"method": method, "path": endpoint.Path})
	started := time.Now()
	resp, err := c.httpClient().Do(req)
	if err != nil {
		log.WithError(err).Debug("ofs request failed")
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	log.WithFields(logrus.Fields{"status": resp.StatusCode, "elapsed": time.Since(started)}).Debug("ofs request")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeProblem(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}

	return context.WithTimeout(ctx, requestTimeout)
}

// StatusError is a non-2xx answer from the API.
type StatusError struct {
	StatusCode int
	Title      string
	Detail     string
}

func (e *StatusError) Error() string {
	message := fmt.Sprintf("status %d", e.StatusCode)
	if e.Title != "" {
		message += ": " + e.Title
	}
	if e.Detail != "" && e.Detail != e.Title {
		message += ": " + e.Detail
	}
	return message
}

func decodeProblem(resp *http.Response) error {
	statusErr := &StatusError{StatusCode: resp.StatusCode}
	var problem problemJSON
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&problem); err == nil {
		statusErr.Title = problem.Title
		statusErr.Detail = problem.Detail
	}
	return statusErr
}

func remoteError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrRemoteCall, err)
}

func resourcePath(id domain.ResourceID, segments ...string) string {
	parts := append([]string{resourcesPath, url.PathEscape(string(id))}, segments...)
	return strings.Join(parts, "/")
}

func parseBaseURL(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, errors.New("api base url is required")
	}

	parsed, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return nil, errors.New("api base url host is required")
	}
	return parsed, nil
}
