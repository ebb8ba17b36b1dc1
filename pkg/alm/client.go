package alm

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rlc-community-providers/rlc-hpalm-provider/internal/models"
	srvErrors "github.com/rlc-community-providers/rlc-hpalm-provider/pkg/errors"
)

const (
	ssoCookieName       = "LWSSO_COOKIE_KEY"
	qcSessionCookieName = "QCSession"
	xsrfTokenCookieName = "XSRF-TOKEN"

	defaultTimeout = 30 * time.Second
)

// Client talks to one HP ALM server. It holds connection details only;
// authentication state lives in the Session value returned by Login, so a
// single client can be reused across independent sessions.
type Client struct {
	baseURL  string
	username string
	password string
	domain   string
	useXSRF  bool

	httpClient *http.Client
	log        *zap.SugaredLogger
}

type Option func(*Client)

// WithHTTPClient replaces the underlying transport. Used by tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient builds a client for the HP ALM server at rawURL. The URL is
// reduced to scheme://host:port (port defaults to 80); any path such as
// /qcbin is discarded because the client appends endpoint paths itself. An
// empty domain falls back to DEFAULT.
func NewClient(rawURL, username, password string, useXSRF bool, domain string, opts ...Option) (*Client, error) {
	baseURL, err := normalizeBaseURL(rawURL)
	if err != nil {
		return nil, err
	}
	if domain = strings.TrimSpace(domain); domain == "" {
		domain = models.DefaultDomain
	}

	c := &Client{
		baseURL:    baseURL,
		username:   username,
		password:   password,
		domain:     domain,
		useXSRF:    useXSRF,
		httpClient: &http.Client{Timeout: defaultTimeout},
		log:        zap.S().Named("alm_client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// normalizeBaseURL splits the configured URL on ":" into scheme, host and
// optional port, mirroring how the connection target has always been
// derived. Missing port means 80.
func normalizeBaseURL(raw string) (string, error) {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) < 2 {
		return "", srvErrors.NewValidationError("invalid HP ALM URL %q", raw)
	}

	scheme := parts[0]
	host := strings.ReplaceAll(parts[1], "/", "")
	if scheme == "" || host == "" {
		return "", srvErrors.NewValidationError("invalid HP ALM URL %q", raw)
	}

	port := 80
	if len(parts) > 2 {
		portPart := parts[2]
		if i := strings.Index(portPart, "/"); i >= 0 {
			portPart = portPart[:i]
		}
		p, err := strconv.Atoi(portPart)
		if err != nil {
			return "", srvErrors.NewValidationError("invalid port in HP ALM URL %q", raw)
		}
		port = p
	}

	return fmt.Sprintf("%s://%s:%d", scheme, host, port), nil
}

// BaseURL returns the normalized scheme://host:port the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Domain returns the HP ALM domain the client queries.
func (c *Client) Domain() string {
	return c.domain
}

// Login performs the authentication handshake: a basic-auth POST to the
// authentication point capturing the LWSSO cookie, then, when XSRF is
// enabled, a POST to the site-session endpoint capturing the QCSession and
// XSRF-TOKEN cookies. The returned session must be passed to every
// subsequent call.
func (c *Client) Login(ctx context.Context) (*Session, error) {
	uri := c.baseURL + "/qcbin/authentication-point/authenticate"
	c.log.Debugw("executing HP ALM login request", "url", uri)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uri, nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Content-Type", "application/xml")
	req.Header.Set("Accept", "application/xml")
	req.Header.Set("Connection", "keep-alive")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Errorw("HP ALM login failed", "error", err)
		return nil, srvErrors.NewServerUnavailableError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.errorFromResponse(resp)
	}

	session := &Session{SSO: firstCookie(resp, ssoCookieName)}
	io.Copy(io.Discard, resp.Body)

	if c.useXSRF {
		if err := c.openSiteSession(ctx, session); err != nil {
			return nil, err
		}
	}

	return session, nil
}

// openSiteSession exchanges the SSO cookie for the QCSession and XSRF-TOKEN
// cookies required by HP ALM 12.0 onwards.
func (c *Client) openSiteSession(ctx context.Context, session *Session) error {
	uri := c.baseURL + "/qcbin/rest/site-session"
	c.log.Debugw("executing HP ALM site-session request", "url", uri)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uri, nil)
	if err != nil {
		return err
	}
	if session.SSO != nil {
		req.AddCookie(session.SSO)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Errorw("HP ALM site-session failed", "error", err)
		return srvErrors.NewServerUnavailableError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return c.errorFromResponse(resp)
	}

	session.QCSession = firstCookie(resp, qcSessionCookieName)
	session.XSRFToken = firstCookie(resp, xsrfTokenCookieName)
	io.Copy(io.Discard, resp.Body)
	return nil
}

// IsAuthenticated probes the session liveness endpoint. It returns true iff
// the server answers 200; any other status means the session is gone.
func (c *Client) IsAuthenticated(ctx context.Context, session *Session) (bool, error) {
	uri := c.baseURL + "/rest/is-authenticated"
	c.log.Debugw("executing HP ALM request", "url", uri)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/xml")
	req.Header.Set("Accept", "application/xml")
	session.apply(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Errorw("HP ALM is-authenticated failed", "error", err)
		return false, srvErrors.NewServerUnavailableError(err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return resp.StatusCode == http.StatusOK, nil
}

// GetProjects lists the projects of the configured domain.
func (c *Client) GetProjects(ctx context.Context, session *Session) ([]models.Project, error) {
	c.log.Debugw("retrieving HP ALM projects", "domain", c.domain)

	body, err := c.get(ctx, session, fmt.Sprintf("/qcbin/rest/domains/%s/projects", c.domain))
	if err != nil {
		return nil, err
	}
	return ParseProjects(body)
}

// GetDefects searches a project for defects matching the query. The filter
// expression travels form-encoded in the query parameter; the page size, when
// limited, travels as its own parameter next to it.
func (c *Client) GetDefects(ctx context.Context, session *Session, projectID string, query DefectQuery) ([]models.Defect, error) {
	c.log.Debugw("retrieving HP ALM defects",
		"domain", c.domain,
		"project", projectID,
		"query", query.Filter(),
		"limit", query.Limit,
	)

	rawQuery := "query=" + query.Encode()
	if query.Limit > 0 {
		rawQuery += "&page-size=" + strconv.Itoa(query.Limit)
	}

	path := fmt.Sprintf("/qcbin/rest/domains/%s/projects/%s/defects?%s", c.domain, projectID, rawQuery)
	body, err := c.get(ctx, session, path)
	if err != nil {
		return nil, err
	}
	return ParseDefects(body)
}

// GetDefect fetches a single defect by project and defect id.
func (c *Client) GetDefect(ctx context.Context, session *Session, projectID, defectID string) (*models.Defect, error) {
	c.log.Debugw("retrieving HP ALM defect", "domain", c.domain, "project", projectID, "defect", defectID)

	path := fmt.Sprintf("/qcbin/rest/domains/%s/projects/%s/defects/%s", c.domain, projectID, defectID)
	body, err := c.get(ctx, session, path)
	if err != nil {
		return nil, err
	}
	return ParseDefect(body)
}

// get issues an authenticated GET and returns the response body.
func (c *Client) get(ctx context.Context, session *Session, path string) ([]byte, error) {
	uri := c.baseURL + path
	c.log.Debugw("executing HP ALM GET request", "url", uri)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json,application/xml")
	session.apply(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Errorw("HP ALM GET failed", "url", uri, "error", err)
		return nil, srvErrors.NewServerUnavailableError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.errorFromResponse(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, srvErrors.NewServerUnavailableError(err)
	}
	return body, nil
}

// errorFromResponse maps a non-200 response to a typed error. The body is
// drained so the payload can travel in the error message.
func (c *Client) errorFromResponse(resp *http.Response) error {
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		payload = nil
	}
	c.log.Debugw("HP ALM request not successful",
		"status", resp.StatusCode,
		"payload", string(payload),
	)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return srvErrors.NewInvalidCredentialsError()
	case http.StatusNotFound:
		return srvErrors.NewNotFoundError()
	case http.StatusBadRequest:
		return srvErrors.NewBadRequestError(string(payload))
	default:
		return srvErrors.NewUpstreamError(resp.StatusCode, http.StatusText(resp.StatusCode), string(payload))
	}
}
