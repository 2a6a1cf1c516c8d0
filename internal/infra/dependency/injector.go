// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/password-auditor/backend/config"
	"github.com/password-auditor/backend/internal/application/usecase/audit"
	"github.com/password-auditor/backend/internal/domain/valueobject"
	"github.com/password-auditor/backend/internal/infra/server/router"
	"github.com/password-auditor/backend/internal/integration/adapters"
	"github.com/password-auditor/backend/internal/integration/entrypoint/controller"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The wordlist is built once at startup and shared read-only.
func NewInjector(cfg *config.Config, wordlist *valueobject.Wordlist) *Injector {
	// Scoring policy: defaults overlaid with configured thresholds
	policy := valueobject.DefaultScoringPolicy()
	policy.MinLength = cfg.Evaluator.MinLength
	policy.BonusLength = cfg.Evaluator.BonusLength
	policy.EntropyThreshold = cfg.Evaluator.EntropyThreshold
	policy.SimilarityRatio = cfg.Evaluator.SimilarityRatio

	// Create adapters/services
	breachService := adapters.NewHIBPService(
		cfg.HIBP.Endpoint,
		cfg.HIBP.UserAgent,
		cfg.HIBP.Timeout,
		cfg.HIBP.Enabled,
	)

	// Create use cases
	evaluateStrengthUseCase := audit.NewEvaluateStrengthUseCase(policy, wordlist)
	checkBreachUseCase := audit.NewCheckBreachUseCase(breachService)
	auditPasswordUseCase := audit.NewAuditPasswordUseCase(evaluateStrengthUseCase, checkBreachUseCase)

	// Create controllers
	auditController := controller.NewAuditController(auditPasswordUseCase)
	healthController := controller.NewHealthController(breachService.IsAvailable)

	return &Injector{
		Config: cfg,
		Router: router.NewRouter(healthController, auditController),
	}
}
