package analyze

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	POST(path string, body any) error
	GetResponseField(field string) (any, error)
}

// RegisterSteps registers analysis step definitions
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &analyzeSteps{tc: tc}

	ctx.Step(`^I analyze "([^"]*)"$`, steps.analyze)
	ctx.Step(`^I analyze without a domain$`, steps.analyzeWithoutDomain)
	ctx.Step(`^the trust score should be between (-?\d+) and (\d+)$`, steps.trustScoreBetween)
	ctx.Step(`^the policy analysis should have (\d+) verdicts?$`, steps.verdictCount)
	ctx.Step(`^the "([^"]*)" field should be a boolean$`, steps.fieldIsBoolean)
}

type analyzeSteps struct {
	tc TestContext
}

func (s *analyzeSteps) analyze(ctx context.Context, domain string) error {
	return s.tc.POST("/analyze", map[string]string{"domain": domain})
}

func (s *analyzeSteps) analyzeWithoutDomain(ctx context.Context) error {
	return s.tc.POST("/analyze", map[string]string{})
}

func (s *analyzeSteps) trustScoreBetween(ctx context.Context, low, high int) error {
	value, err := s.tc.GetResponseField("trust_score")
	if err != nil {
		return err
	}
	score, ok := value.(float64)
	if !ok {
		return fmt.Errorf("trust_score is %T, want number", value)
	}
	if int(score) < low || int(score) > high {
		return fmt.Errorf("trust_score %s outside [%d, %d]", strconv.Itoa(int(score)), low, high)
	}
	return nil
}

func (s *analyzeSteps) verdictCount(ctx context.Context, count int) error {
	value, err := s.tc.GetResponseField("policy_analysis")
	if err != nil {
		return err
	}
	verdicts, ok := value.([]any)
	if !ok {
		return fmt.Errorf("policy_analysis is %T, want array", value)
	}
	if len(verdicts) != count {
		return fmt.Errorf("expected %d verdicts, got %d", count, len(verdicts))
	}
	return nil
}

func (s *analyzeSteps) fieldIsBoolean(ctx context.Context, field string) error {
	value, err := s.tc.GetResponseField(field)
	if err != nil {
		return err
	}
	if _, ok := value.(bool); !ok {
		return fmt.Errorf("%s is %T, want boolean", field, value)
	}
	return nil
}
