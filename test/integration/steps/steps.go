package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"golang.org/x/crypto/bcrypt"

	"github.com/inkprofit/backend/internal/integration/persistence/model"
	"github.com/inkprofit/backend/test/integration/mock"
)

const settingsCachePrefix = "inkprofit:settings:"

// registerSetupSteps registers steps that shape the environment before the first request.
func registerSetupSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^the owner password is "([^"]*)"$`, theOwnerPasswordIs)
	ctx.Step(`^the current time is "([^"]*)"$`, theCurrentTimeIs)
	ctx.Step(`^the AI advisor is unavailable$`, theAIAdvisorIsUnavailable)
	ctx.Step(`^message delivery fails$`, messageDeliveryFails)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
	ctx.Step(`^I log in with password "([^"]*)"$`, iLogInWithPassword)
	ctx.Step(`^I save the response field "([^"]*)" as "([^"]*)"$`, iSaveTheResponseFieldAs)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) items?$`, theResponseFieldShouldHaveItems)
	ctx.Step(`^the response header "([^"]*)" should contain "([^"]*)"$`, theResponseHeaderShouldContain)
	ctx.Step(`^the response should match json:$`, theResponseShouldMatchJSON)
}

// registerStateSteps registers steps that inspect side effects outside the HTTP response.
func registerStateSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^a WhatsApp message should have been sent to "([^"]*)"$`, aWhatsAppMessageShouldHaveBeenSentTo)
	ctx.Step(`^an e-mail should have been sent to "([^"]*)"$`, anEmailShouldHaveBeenSentTo)
	ctx.Step(`^no message should have been sent$`, noMessageShouldHaveBeenSent)
	ctx.Step(`^there should be (\d+) stored (proposals|clients)$`, thereShouldBeStored)
	ctx.Step(`^the "([^"]*)" setting should be cached$`, theSettingShouldBeCached)
	ctx.Step(`^the "([^"]*)" setting should not be cached$`, theSettingShouldNotBeCached)
}

func testContext(ctx context.Context) (*TestContext, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return nil, fmt.Errorf("test context not found")
	}
	return tc, nil
}

func theAPIServerIsRunning(ctx context.Context) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	tc.ensureServer()
	return nil
}

func theOwnerPasswordIs(ctx context.Context, password string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	if tc.server != nil {
		return fmt.Errorf("owner password must be configured before the server starts")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	tc.cfg.Auth.OwnerPasswordHash = string(hash)
	return nil
}

func theCurrentTimeIs(ctx context.Context, value string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	current, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", value, err)
	}
	tc.clock.SetCurrentTime(current)
	return nil
}

func theAIAdvisorIsUnavailable(ctx context.Context) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	tc.advisor.Unavailable = true
	return nil
}

func messageDeliveryFails(ctx context.Context) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	tc.sender.FailError = fmt.Errorf("provider rejected the message")
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	return tc.send(method, endpoint, "")
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	return tc.send(method, endpoint, body.Content)
}

func (tc *TestContext) send(method, endpoint, body string) error {
	tc.ensureServer()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(tc.interpolate(body))
	}

	req, err := http.NewRequest(method, tc.server.URL+tc.interpolate(endpoint), reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

func iSetHeaderTo(ctx context.Context, header, value string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	tc.requestHeaders[header] = value
	return nil
}

func iLogInWithPassword(ctx context.Context, password string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}

	body, _ := json.Marshal(map[string]string{"password": password})
	if err := tc.send(http.MethodPost, "/api/v1/auth/login", string(body)); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusOK {
		return fmt.Errorf("login failed with status %d. Body: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	token, err := tc.field("access_token")
	if err != nil {
		return err
	}
	tc.accessToken = fmt.Sprintf("%v", token)
	return nil
}

func iSaveTheResponseFieldAs(ctx context.Context, field, name string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	value, err := tc.field(field)
	if err != nil {
		return err
	}
	tc.vars[name] = fmt.Sprintf("%v", value)
	return nil
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	var js json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	value, err := tc.field(field)
	if err != nil {
		return err
	}
	expected = tc.interpolate(expected)
	if actual := fmt.Sprintf("%v", value); actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	_, err = tc.field(field)
	return err
}

func theResponseFieldShouldHaveItems(ctx context.Context, field string, count int) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	value, err := tc.field(field)
	if err != nil {
		return err
	}
	items, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list", field)
	}
	if len(items) != count {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, count, len(items))
	}
	return nil
}

func theResponseHeaderShouldContain(ctx context.Context, header, expected string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if actual := tc.response.Header.Get(header); !strings.Contains(actual, expected) {
		return fmt.Errorf("header '%s' expected to contain '%s', got '%s'", header, expected, actual)
	}
	return nil
}

func theResponseShouldMatchJSON(ctx context.Context, body *godog.DocString) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}

	var expected, actual any
	if err := json.Unmarshal([]byte(tc.interpolate(body.Content)), &expected); err != nil {
		return fmt.Errorf("failed to parse expected JSON: %w", err)
	}
	if err := json.Unmarshal(tc.responseBody, &actual); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}

	expectedJSON, _ := json.Marshal(expected)
	actualJSON, _ := json.Marshal(actual)
	if string(expectedJSON) != string(actualJSON) {
		return fmt.Errorf("expected JSON:\n%s\nactual JSON:\n%s", string(expectedJSON), string(actualJSON))
	}
	return nil
}

func aWhatsAppMessageShouldHaveBeenSentTo(ctx context.Context, phone string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	for _, chat := range tc.sender.SentChats {
		if chat.To == phone {
			return nil
		}
	}
	return fmt.Errorf("no WhatsApp message sent to %s, got %+v", phone, tc.sender.SentChats)
}

func anEmailShouldHaveBeenSentTo(ctx context.Context, address string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	for _, email := range tc.sender.SentEmails {
		if email.To == address {
			return nil
		}
	}
	return fmt.Errorf("no e-mail sent to %s", address)
}

func noMessageShouldHaveBeenSent(ctx context.Context) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	if n := len(tc.sender.SentChats) + len(tc.sender.SentEmails); n > 0 {
		return fmt.Errorf("expected no messages, got %d", n)
	}
	return nil
}

func thereShouldBeStored(ctx context.Context, expected int, kind string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}

	var target any = &model.ProposalModel{}
	if kind == "clients" {
		target = &model.ClientModel{}
	}

	count, err := tc.db.Count(target)
	if err != nil {
		return err
	}
	if count != int64(expected) {
		return fmt.Errorf("expected %d stored %s, got %d", expected, kind, count)
	}
	return nil
}

func theSettingShouldBeCached(key string) error {
	if len(mock.CachedKeys(settingsCachePrefix+key)) == 0 {
		return fmt.Errorf("setting %q is not cached", key)
	}
	return nil
}

func theSettingShouldNotBeCached(key string) error {
	if keys := mock.CachedKeys(settingsCachePrefix + key); len(keys) > 0 {
		return fmt.Errorf("setting %q is still cached: %v", key, keys)
	}
	return nil
}

// field resolves a dotted path such as "proposal.id" or "proposals.0.status" in the JSON response.
func (tc *TestContext) field(path string) (any, error) {
	var data any
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	current := data
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("field '%s' not found in response. Body: %s", path, string(tc.responseBody))
			}
			current = value
		case []any:
			index, err := strconv.Atoi(part)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("field '%s' has no item %q", path, part)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("field '%s' not found in response", path)
		}
	}
	return current, nil
}
