// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	domainerror "github.com/password-auditor/backend/internal/domain/error"
)

func digestParts(password string) (prefix, suffix string) {
	digest := sha1.Sum([]byte(password))
	hexDigest := strings.ToUpper(hex.EncodeToString(digest[:]))
	return hexDigest[:5], hexDigest[5:]
}

func TestHIBPService_CountBreaches(t *testing.T) {
	const password = "password"
	prefix, suffix := digestParts(password)

	var requestedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		body := strings.Join([]string{
			"0018A45C4D1DEF81644B54AB7F969B88D65:1",
			"011053FD0102E94D6AE2F8B83D76FAF94F6:0", // padding line
			suffix + ":3730471",
			"1E2AAA439972480CEC7F16C795BBB429372:593",
		}, "\r\n")
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	service := NewHIBPService(server.URL, "password-auditor-test", 2*time.Second, true)

	count, err := service.CountBreaches(context.Background(), password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3730471 {
		t.Errorf("expected count 3730471, got %d", count)
	}

	if requestedPath != "/range/"+prefix {
		t.Errorf("expected request path /range/%s, got %s", prefix, requestedPath)
	}
}

func TestHIBPService_NeverTransmitsPassword(t *testing.T) {
	const password = "S3cret!Phrase"
	_, suffix := digestParts(password)

	var requestedURL string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedURL = r.URL.String()
		_, _ = w.Write([]byte(""))
	}))
	defer server.Close()

	service := NewHIBPService(server.URL, "password-auditor-test", 2*time.Second, true)

	if _, err := service.CountBreaches(context.Background(), password); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(requestedURL, password) {
		t.Errorf("raw password leaked in request URL: %s", requestedURL)
	}
	if strings.Contains(requestedURL, suffix) {
		t.Errorf("full digest leaked in request URL: %s", requestedURL)
	}

	// Only the 5-character prefix may appear after /range/.
	parts := strings.Split(strings.Trim(requestedURL, "/"), "/")
	sent := parts[len(parts)-1]
	if len(sent) != 5 {
		t.Errorf("expected a 5-character digest prefix, sent %q", sent)
	}
}

func TestHIBPService_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("0018A45C4D1DEF81644B54AB7F969B88D65:1\r\n"))
	}))
	defer server.Close()

	service := NewHIBPService(server.URL, "password-auditor-test", 2*time.Second, true)

	count, err := service.CountBreaches(context.Background(), "uncompromised-passphrase-xk49")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 0 {
		t.Errorf("expected count 0, got %d", count)
	}
}

func TestHIBPService_Errors(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		timeout  time.Duration
		wantCode domainerror.BreachErrorCode
	}{
		{
			name: "non-success status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			timeout:  2 * time.Second,
			wantCode: domainerror.ErrCodeLookupUnavailable,
		},
		{
			name: "malformed response line",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("not a suffix count line"))
			},
			timeout:  2 * time.Second,
			wantCode: domainerror.ErrCodeMalformedResponse,
		},
		{
			name: "timeout",
			handler: func(w http.ResponseWriter, r *http.Request) {
				time.Sleep(300 * time.Millisecond)
			},
			timeout:  20 * time.Millisecond,
			wantCode: domainerror.ErrCodeLookupTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			service := NewHIBPService(server.URL, "password-auditor-test", tt.timeout, true)

			_, err := service.CountBreaches(context.Background(), "hunter2")
			if err == nil {
				t.Fatal("expected an error")
			}

			var breachErr *domainerror.BreachError
			if !errors.As(err, &breachErr) {
				t.Fatalf("expected a BreachError, got %T: %v", err, err)
			}
			if breachErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, breachErr.Code)
			}
		})
	}
}

func TestHIBPService_MalformedCount(t *testing.T) {
	const password = "hunter2"
	_, suffix := digestParts(password)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(suffix + ":many"))
	}))
	defer server.Close()

	service := NewHIBPService(server.URL, "password-auditor-test", 2*time.Second, true)

	_, err := service.CountBreaches(context.Background(), password)

	var breachErr *domainerror.BreachError
	if !errors.As(err, &breachErr) {
		t.Fatalf("expected a BreachError, got %T: %v", err, err)
	}
	if breachErr.Code != domainerror.ErrCodeMalformedResponse {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeMalformedResponse, breachErr.Code)
	}
}

func TestHIBPService_Disabled(t *testing.T) {
	service := NewHIBPService("https://api.pwnedpasswords.com", "password-auditor-test", time.Second, false)

	if service.IsAvailable() {
		t.Error("expected disabled service to be unavailable")
	}

	_, err := service.CountBreaches(context.Background(), "hunter2")

	var breachErr *domainerror.BreachError
	if !errors.As(err, &breachErr) {
		t.Fatalf("expected a BreachError, got %T: %v", err, err)
	}
	if breachErr.Code != domainerror.ErrCodeLookupDisabled {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeLookupDisabled, breachErr.Code)
	}
}

func TestHIBPService_SameDigestPrefixPerPassword(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		_, _ = w.Write([]byte(""))
	}))
	defer server.Close()

	service := NewHIBPService(server.URL, "password-auditor-test", 2*time.Second, true)

	for i := 0; i < 2; i++ {
		if _, err := service.CountBreaches(context.Background(), "hunter2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if len(paths) != 2 || paths[0] != paths[1] {
		t.Errorf("expected identical request payloads for identical input, got %v", paths)
	}
}
