package e2e

import (
	"github.com/cucumber/godog"

	"policyguard/e2e/steps/analyze"
	"policyguard/e2e/steps/common"
)

// RegisterSteps registers all step definitions from modular packages
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	// Generic requests and response assertions
	common.RegisterSteps(ctx, tc)

	// Analysis-specific steps
	analyze.RegisterSteps(ctx, tc)
}
