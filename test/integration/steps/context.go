// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/password-auditor/backend/config"
	"github.com/password-auditor/backend/internal/domain/valueobject"
	"github.com/password-auditor/backend/internal/infra/dependency"
	"github.com/password-auditor/backend/test/integration/mock"
)

// rangePathPattern is the only request shape the breach database may see.
var rangePathPattern = regexp.MustCompile(`^/range/[0-9A-F]{5}$`)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// Breach database double
	hibpMock *mock.HIBPMock

	// Last password sent, for leak assertions
	lastPassword string

	// Config
	cfg *config.Config
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		// Set Gin to test mode
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{
			hibpMock: mock.NewHIBPServer(),
			cfg:      config.Load(),
		}
		tc.hibpMock.Start()

		// Point the breach client at the mock with a short timeout so the
		// timeout scenario stays fast.
		tc.cfg.HIBP.Endpoint = tc.hibpMock.GetUrl()
		tc.cfg.HIBP.Timeout = 100 * time.Millisecond

		injector := dependency.NewInjector(tc.cfg, valueobject.NewWordlist())
		tc.engine = injector.Router.Setup("test")
		tc.server = httptest.NewServer(tc.engine)

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil {
			if tc.server != nil {
				tc.server.Close()
			}
			if tc.hibpMock != nil {
				tc.hibpMock.Close()
			}
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerBreachSteps(ctx)
	registerResponseSteps(ctx)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I audit the password "([^"]*)"$`, iAuditThePassword)
	ctx.Step(`^I audit the password "([^"]*)" skipping the breach check$`, iAuditThePasswordSkippingBreachCheck)
}

// registerBreachSteps registers breach database steps.
func registerBreachSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the breach database knows the password "([^"]*)" seen (\d+) times$`, theBreachDatabaseKnowsThePassword)
	ctx.Step(`^the breach database is unavailable$`, theBreachDatabaseIsUnavailable)
	ctx.Step(`^the breach database times out$`, theBreachDatabaseTimesOut)
	ctx.Step(`^only digest prefixes should have reached the breach database$`, onlyDigestPrefixesShouldHaveReached)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response should have (\d+) suggestions$`, theResponseShouldHaveSuggestions)
}

// Step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) error {
	return doRequest(ctx, method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) error {
	return doRequest(ctx, method, endpoint, []byte(body.Content))
}

func iAuditThePassword(ctx context.Context, password string) error {
	return auditPassword(ctx, password, false)
}

func iAuditThePasswordSkippingBreachCheck(ctx context.Context, password string) error {
	return auditPassword(ctx, password, true)
}

func auditPassword(ctx context.Context, password string, skipBreachCheck bool) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.lastPassword = password

	payload, err := json.Marshal(map[string]any{
		"password":          password,
		"skip_breach_check": skipBreachCheck,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	return doRequest(ctx, http.MethodPost, "/api/v1/passwords/audit", payload)
}

func doRequest(ctx context.Context, method, endpoint string, body []byte) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, tc.server.URL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

func theBreachDatabaseKnowsThePassword(ctx context.Context, password string, count int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.hibpMock.AddBreachedPassword(password, count)
	return nil
}

func theBreachDatabaseIsUnavailable(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.hibpMock.SetStatus(http.StatusServiceUnavailable)
	return nil
}

func theBreachDatabaseTimesOut(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	// Longer than the configured client timeout.
	tc.hibpMock.SetDelay(300 * time.Millisecond)
	return nil
}

func onlyDigestPrefixesShouldHaveReached(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	requests := tc.hibpMock.Requests()
	if len(requests) == 0 {
		return fmt.Errorf("expected at least one breach database request")
	}

	for _, url := range requests {
		if !rangePathPattern.MatchString(url) {
			return fmt.Errorf("unexpected breach database request shape: %s", url)
		}
		if tc.lastPassword != "" && strings.Contains(url, tc.lastPassword) {
			return fmt.Errorf("raw password leaked to the breach database: %s", url)
		}
	}
	return nil
}

func theResponseStatusShouldBe(ctx context.Context, status int) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if tc.response.StatusCode != status {
		return fmt.Errorf("expected status %d, got %d (body: %s)", status, tc.response.StatusCode, tc.responseBody)
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("no response recorded")
	}
	var parsed map[string]any
	if err := json.Unmarshal(tc.responseBody, &parsed); err != nil {
		return fmt.Errorf("response is not JSON: %w (body: %s)", err, tc.responseBody)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, text string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("no response recorded")
	}
	if !strings.Contains(string(tc.responseBody), text) {
		return fmt.Errorf("response does not contain %q (body: %s)", text, tc.responseBody)
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	value, err := responseField(ctx, field)
	if err != nil {
		return err
	}
	if actual := fmt.Sprint(value); actual != expected {
		return fmt.Errorf("expected field %q to be %q, got %q", field, expected, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	_, err := responseField(ctx, field)
	return err
}

func theResponseShouldHaveSuggestions(ctx context.Context, count int) error {
	value, err := responseField(ctx, "suggestions")
	if err != nil {
		return err
	}
	suggestions, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field suggestions is not a list: %v", value)
	}
	if len(suggestions) != count {
		return fmt.Errorf("expected %d suggestions, got %d: %v", count, len(suggestions), suggestions)
	}
	return nil
}

// responseField navigates a dot-separated path through the JSON response.
func responseField(ctx context.Context, field string) (any, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return nil, fmt.Errorf("no response recorded")
	}

	var parsed map[string]any
	if err := json.Unmarshal(tc.responseBody, &parsed); err != nil {
		return nil, fmt.Errorf("response is not JSON: %w (body: %s)", err, tc.responseBody)
	}

	var value any = parsed
	for _, part := range strings.Split(field, ".") {
		object, ok := value.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("field %q is not an object in path %q", part, field)
		}
		value, ok = object[part]
		if !ok {
			return nil, fmt.Errorf("field %q not found in path %q (body: %s)", part, field, tc.responseBody)
		}
	}
	return value, nil
}
