package audit

import (
	"context"

	"github.com/password-auditor/backend/internal/domain/entity"
)

// AuditPasswordInput represents the input for a full password audit.
type AuditPasswordInput struct {
	Password        string
	SkipBreachCheck bool
}

// AuditPasswordOutput represents the output of a full password audit.
type AuditPasswordOutput struct {
	Audit *entity.PasswordAudit
}

// AuditPasswordUseCase combines the strength evaluation with the optional
// breach lookup. The evaluation always succeeds; a failed or skipped lookup
// only changes the breach status of the result.
type AuditPasswordUseCase struct {
	evaluateStrengthUseCase *EvaluateStrengthUseCase
	checkBreachUseCase      *CheckBreachUseCase
}

// NewAuditPasswordUseCase creates a new AuditPasswordUseCase instance.
func NewAuditPasswordUseCase(
	evaluateStrengthUseCase *EvaluateStrengthUseCase,
	checkBreachUseCase *CheckBreachUseCase,
) *AuditPasswordUseCase {
	return &AuditPasswordUseCase{
		evaluateStrengthUseCase: evaluateStrengthUseCase,
		checkBreachUseCase:      checkBreachUseCase,
	}
}

// Execute performs the password audit.
func (uc *AuditPasswordUseCase) Execute(ctx context.Context, input AuditPasswordInput) AuditPasswordOutput {
	evaluation := uc.evaluateStrengthUseCase.Execute(EvaluateStrengthInput{
		Password: input.Password,
	})

	breach := entity.BreachNotChecked()
	if !input.SkipBreachCheck {
		lookup := uc.checkBreachUseCase.Execute(ctx, CheckBreachInput{
			Password: input.Password,
		})
		breach = lookup.Status
	}

	return AuditPasswordOutput{
		Audit: entity.NewPasswordAudit(evaluation.Report, breach),
	}
}
