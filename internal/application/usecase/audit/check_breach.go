package audit

import (
	"context"
	"errors"

	"github.com/password-auditor/backend/internal/application/adapter"
	"github.com/password-auditor/backend/internal/domain/entity"
	domainerror "github.com/password-auditor/backend/internal/domain/error"
)

// CheckBreachInput represents the input for a breach lookup.
type CheckBreachInput struct {
	Password string
}

// CheckBreachOutput represents the output of a breach lookup.
type CheckBreachOutput struct {
	Status entity.BreachStatus
}

// CheckBreachUseCase resolves the breach status of a password. Lookup
// failures are reported as a status, never as an error, so a failed lookup
// cannot abort the surrounding audit.
type CheckBreachUseCase struct {
	breachService adapter.BreachService
}

// NewCheckBreachUseCase creates a new CheckBreachUseCase instance.
func NewCheckBreachUseCase(breachService adapter.BreachService) *CheckBreachUseCase {
	return &CheckBreachUseCase{
		breachService: breachService,
	}
}

// Execute performs the breach lookup.
func (uc *CheckBreachUseCase) Execute(ctx context.Context, input CheckBreachInput) CheckBreachOutput {
	if uc.breachService == nil || !uc.breachService.IsAvailable() {
		return CheckBreachOutput{Status: entity.BreachNotChecked()}
	}

	count, err := uc.breachService.CountBreaches(ctx, input.Password)
	if err != nil {
		return CheckBreachOutput{Status: entity.BreachLookupFailed(lookupFailureReason(err))}
	}

	if count > 0 {
		return CheckBreachOutput{Status: entity.BreachFound(count)}
	}
	return CheckBreachOutput{Status: entity.BreachSafe()}
}

// lookupFailureReason maps a lookup error to a stable, password-free reason.
func lookupFailureReason(err error) string {
	var breachErr *domainerror.BreachError
	if errors.As(err, &breachErr) {
		return breachErr.Message
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "breach lookup timed out"
	}
	return "breach lookup failed"
}
