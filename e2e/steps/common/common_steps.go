package common

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	GET(path string) error
	POST(path string, body any) error
	StatusCode() int
	Header(key string) string
	GetResponseField(field string) (any, error)
	ResponseContains(field string) bool
}

// RegisterSteps registers generic request and assertion steps
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &commonSteps{tc: tc}

	ctx.Step(`^I GET "([^"]*)"$`, steps.get)
	ctx.Step(`^I POST to "([^"]*)" with body:$`, steps.postDocString)
	ctx.Step(`^the response status should be (\d+)$`, steps.statusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should equal "([^"]*)"$`, steps.fieldShouldEqual)
	ctx.Step(`^the response should contain "([^"]*)"$`, steps.shouldContain)
	ctx.Step(`^the response should not contain "([^"]*)"$`, steps.shouldNotContain)
	ctx.Step(`^the response header "([^"]*)" should be set$`, steps.headerShouldBeSet)
}

type commonSteps struct {
	tc TestContext
}

func (s *commonSteps) get(ctx context.Context, path string) error {
	return s.tc.GET(path)
}

func (s *commonSteps) postDocString(ctx context.Context, path string, body *godog.DocString) error {
	return s.tc.POST(path, body.Content)
}

func (s *commonSteps) statusShouldBe(ctx context.Context, status int) error {
	if got := s.tc.StatusCode(); got != status {
		return fmt.Errorf("expected status %d, got %d", status, got)
	}
	return nil
}

func (s *commonSteps) fieldShouldEqual(ctx context.Context, field, expected string) error {
	value, err := s.tc.GetResponseField(field)
	if err != nil {
		return err
	}
	if got := fmt.Sprint(value); got != expected {
		return fmt.Errorf("expected %s=%q, got %q", field, expected, got)
	}
	return nil
}

func (s *commonSteps) shouldContain(ctx context.Context, field string) error {
	if !s.tc.ResponseContains(field) {
		return fmt.Errorf("expected response to contain %q", field)
	}
	return nil
}

func (s *commonSteps) shouldNotContain(ctx context.Context, field string) error {
	if s.tc.ResponseContains(field) {
		return fmt.Errorf("expected response not to contain %q", field)
	}
	return nil
}

func (s *commonSteps) headerShouldBeSet(ctx context.Context, key string) error {
	if s.tc.Header(key) == "" {
		return fmt.Errorf("expected header %s to be set", key)
	}
	return nil
}
