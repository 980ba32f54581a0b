//go:build integration

// Package integration runs the studio API feature files against the fully wired router.
// Storage is an in-memory SQLite database plus miniredis; AI and message providers are mocked.
package integration

import (
	"os"
	"testing"

	"github.com/cucumber/godog"
	"github.com/cucumber/godog/colors"

	"github.com/inkprofit/backend/test/integration/steps"
)

func TestFeatures(t *testing.T) {
	format := os.Getenv("GODOG_FORMAT")
	if format == "" {
		format = "pretty"
	}

	opts := godog.Options{
		Format:   format,
		Paths:    []string{"features"},
		Output:   colors.Colored(os.Stdout),
		Strict:   true,
		TestingT: t,
		// Scenarios share one database connection and must not interleave.
		Concurrency: 1,
		Tags:        os.Getenv("GODOG_TAGS"),
	}

	suite := godog.TestSuite{
		Name:                 "inkprofit-api",
		TestSuiteInitializer: steps.InitializeTestSuite,
		ScenarioInitializer:  steps.InitializeScenario,
		Options:              &opts,
	}

	if status := suite.Run(); status != 0 {
		t.Fatalf("feature tests failed with status %d", status)
	}
}
