package visitor

import (
	"net"
	"net/http"
	"strings"
	"sync"

	"gitea.com/go-chi/session"
)

// RequestContext exposes the ambient request data a visitor log needs.
// Implementations return "" for anything they cannot resolve.
type RequestContext interface {
	SessionID() string
	ClientAddress() string
	RequestPath() string
}

type httpRequestContext struct {
	r *http.Request
}

// FromRequest reads the request context from r and the session the
// go-chi sessioner attached to it.
func FromRequest(r *http.Request) RequestContext {
	return httpRequestContext{r: r}
}

func (c httpRequestContext) SessionID() (id string) {
	if c.r == nil {
		return ""
	}

	// GetSession hands back a typed nil when no sessioner ran for r.
	defer func() {
		if recover() != nil {
			id = ""
		}
	}()

	sess := session.GetSession(c.r)
	if sess == nil {
		return ""
	}
	return sess.ID()
}

func (c httpRequestContext) ClientAddress() string {
	if c.r != nil {
		if ip := requestIP(c.r); ip != "" {
			return ip
		}
	}
	return localHostAddress()
}

func (c httpRequestContext) RequestPath() string {
	if c.r == nil || c.r.URL == nil {
		return ""
	}
	return c.r.URL.Path
}

// requestIP extracts the client address, checking X-Forwarded-For first
func requestIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		// First hop is the client
		ips := strings.Split(forwarded, ",")
		if ip := strings.TrimSpace(ips[0]); ip != "" {
			return ip
		}
	}

	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
		return realIP
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

var (
	localAddrOnce sync.Once
	localAddr     string
)

// localHostAddress returns the first non-loopback IPv4 address of this host,
// falling back to 127.0.0.1.
func localHostAddress() string {
	localAddrOnce.Do(func() {
		localAddr = "127.0.0.1"

		addrs, err := net.InterfaceAddrs()
		if err != nil {
			return
		}
		for _, addr := range addrs {
			ipNet, ok := addr.(*net.IPNet)
			if !ok || ipNet.IP.IsLoopback() {
				continue
			}
			if ip4 := ipNet.IP.To4(); ip4 != nil {
				localAddr = ip4.String()
				return
			}
		}
	})
	return localAddr
}
