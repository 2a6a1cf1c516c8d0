// Package mock provides test doubles for integration tests.
package mock

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"
)

// HIBPMock is an httptest stand-in for the Pwned Passwords range API. It
// records every request path so tests can verify that only digest prefixes
// ever reach the wire.
type HIBPMock struct {
	mu        sync.Mutex
	server    *httptest.Server
	responses map[string][]string // digest prefix -> response lines
	status    int
	delay     time.Duration
	requests  []string
}

// NewHIBPServer creates a new HIBP mock.
func NewHIBPServer() *HIBPMock {
	return &HIBPMock{
		responses: map[string][]string{},
		status:    http.StatusOK,
	}
}

// Start launches the underlying test server.
func (m *HIBPMock) Start() {
	m.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		m.requests = append(m.requests, r.URL.String())
		status := m.status
		delay := m.delay
		prefix := strings.TrimPrefix(r.URL.Path, "/range/")
		lines := m.responses[prefix]
		m.mu.Unlock()

		if delay > 0 {
			time.Sleep(delay)
		}

		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}

		_, _ = w.Write([]byte(strings.Join(lines, "\r\n")))
	}))
}

// GetUrl returns the mock server base URL.
func (m *HIBPMock) GetUrl() string {
	return m.server.URL
}

// Close shuts the mock server down.
func (m *HIBPMock) Close() {
	if m.server != nil {
		m.server.Close()
	}
}

// AddBreachedPassword registers a password as appearing count times in the
// breach corpus. The mock computes the digest the same way a client must.
func (m *HIBPMock) AddBreachedPassword(password string, count int) {
	digest := sha1.Sum([]byte(password))
	hexDigest := strings.ToUpper(hex.EncodeToString(digest[:]))
	prefix, suffix := hexDigest[:5], hexDigest[5:]

	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[prefix] = append(m.responses[prefix], fmt.Sprintf("%s:%d", suffix, count))
}

// SetStatus makes the mock answer every request with the given status code.
func (m *HIBPMock) SetStatus(status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = status
}

// SetDelay makes the mock wait before answering, to simulate timeouts.
func (m *HIBPMock) SetDelay(delay time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delay = delay
}

// Requests returns the URLs received so far.
func (m *HIBPMock) Requests() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.requests))
	copy(out, m.requests)
	return out
}
