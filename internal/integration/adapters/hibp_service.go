// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"bufio"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	domainerror "github.com/password-auditor/backend/internal/domain/error"
)

// hashPrefixLength is the number of hex characters sent to the range API.
// Only this prefix ever leaves the process (k-anonymity convention).
const hashPrefixLength = 5

// HIBPService implements the adapter.BreachService interface against the
// Have-I-Been-Pwned Pwned Passwords range API.
type HIBPService struct {
	endpoint  string
	userAgent string
	enabled   bool
	client    *http.Client
}

// NewHIBPService creates a new HIBP service instance. The timeout bounds the
// whole lookup, including connection setup and body read.
func NewHIBPService(endpoint, userAgent string, timeout time.Duration, enabled bool) *HIBPService {
	return &HIBPService{
		endpoint:  strings.TrimSuffix(endpoint, "/"),
		userAgent: userAgent,
		enabled:   enabled,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// IsAvailable reports whether the service is configured for lookups.
func (s *HIBPService) IsAvailable() bool {
	return s.enabled && s.endpoint != ""
}

// CountBreaches returns how many times the password appears in the breach
// corpus. The request carries only the first five hex characters of the
// SHA-1 digest; the rest of the digest is compared locally against the
// returned candidate set.
func (s *HIBPService) CountBreaches(ctx context.Context, password string) (int, error) {
	if !s.IsAvailable() {
		return 0, domainerror.NewBreachError(
			domainerror.ErrCodeLookupDisabled,
			"breach lookup is disabled",
			domainerror.ErrLookupDisabled,
		)
	}

	digest := sha1.Sum([]byte(password))
	hexDigest := strings.ToUpper(hex.EncodeToString(digest[:]))
	prefix := hexDigest[:hashPrefixLength]
	suffix := hexDigest[hashPrefixLength:]

	url := fmt.Sprintf("%s/range/%s", s.endpoint, prefix)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, domainerror.NewBreachError(
			domainerror.ErrCodeLookupUnavailable,
			"failed to build breach lookup request",
			err,
		)
	}
	req.Header.Set("User-Agent", s.userAgent)
	// Padding makes every response the same shape so the prefix space
	// cannot be narrowed by response size.
	req.Header.Set("Add-Padding", "true")

	resp, err := s.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return 0, domainerror.NewBreachError(
				domainerror.ErrCodeLookupTimeout,
				"breach lookup timed out",
				domainerror.ErrLookupTimeout,
			)
		}
		return 0, domainerror.NewBreachError(
			domainerror.ErrCodeLookupUnavailable,
			"breach database unreachable",
			err,
		)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, domainerror.NewBreachError(
			domainerror.ErrCodeLookupUnavailable,
			fmt.Sprintf("breach database returned status %d", resp.StatusCode),
			domainerror.ErrLookupUnavailable,
		)
	}

	return matchSuffix(resp, suffix)
}

// matchSuffix scans the SUFFIX:COUNT response lines for the local suffix.
// Padding lines carry a zero count and are skipped.
func matchSuffix(resp *http.Response, suffix string) (int, error) {
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		candidate, countText, found := strings.Cut(line, ":")
		if !found {
			return 0, domainerror.NewBreachError(
				domainerror.ErrCodeMalformedResponse,
				"unexpected breach database response line",
				domainerror.ErrMalformedResponse,
			)
		}

		if !strings.EqualFold(candidate, suffix) {
			continue
		}

		count, err := strconv.Atoi(strings.TrimSpace(countText))
		if err != nil {
			return 0, domainerror.NewBreachError(
				domainerror.ErrCodeMalformedResponse,
				"unexpected breach count in response",
				domainerror.ErrMalformedResponse,
			)
		}
		return count, nil
	}
	if err := scanner.Err(); err != nil {
		if isTimeout(err) {
			return 0, domainerror.NewBreachError(
				domainerror.ErrCodeLookupTimeout,
				"breach lookup timed out",
				domainerror.ErrLookupTimeout,
			)
		}
		return 0, domainerror.NewBreachError(
			domainerror.ErrCodeLookupUnavailable,
			"failed to read breach database response",
			err,
		)
	}

	return 0, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
