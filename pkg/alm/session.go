package alm

import "net/http"

// Session holds the credentials captured by the authentication handshake.
// It is returned by Login and threaded through every subsequent call; the
// client never mutates it after creation.
type Session struct {
	// SSO is the LWSSO_COOKIE_KEY cookie from the authentication point.
	SSO *http.Cookie
	// QCSession is the QCSession cookie from the site-session exchange.
	// Only set when the client runs with XSRF enabled.
	QCSession *http.Cookie
	// XSRFToken is the XSRF-TOKEN cookie from the site-session exchange.
	XSRFToken *http.Cookie
}

// Authenticated reports whether the handshake produced an SSO cookie.
func (s *Session) Authenticated() bool {
	return s != nil && s.SSO != nil
}

// apply attaches the session cookies and the XSRF header to an outgoing
// request.
func (s *Session) apply(req *http.Request) {
	if s == nil {
		return
	}
	if s.SSO != nil {
		req.AddCookie(s.SSO)
	}
	if s.QCSession != nil {
		req.AddCookie(s.QCSession)
	}
	if s.XSRFToken != nil {
		req.Header.Set("X-XSRF-TOKEN", s.XSRFToken.Value)
	}
}

// firstCookie returns the first Set-Cookie entry with the given name, or nil.
// HP ALM emits each cookie once, but proxies have been seen duplicating
// them; the first occurrence wins.
func firstCookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
