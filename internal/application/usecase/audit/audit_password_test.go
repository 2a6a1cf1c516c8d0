package audit

import (
	"context"
	"testing"

	"github.com/password-auditor/backend/internal/domain/entity"
	domainerror "github.com/password-auditor/backend/internal/domain/error"
)

func newAuditUseCase(service *fakeBreachService) *AuditPasswordUseCase {
	return NewAuditPasswordUseCase(newEvaluator(), NewCheckBreachUseCase(service))
}

func TestAuditPassword_MergesStrengthAndBreach(t *testing.T) {
	uc := newAuditUseCase(&fakeBreachService{available: true, count: 7})

	output := uc.Execute(context.Background(), AuditPasswordInput{Password: "Tr7$Kxvloq2@"})
	audit := output.Audit

	if audit.Report.Score != 10 {
		t.Errorf("expected score 10, got %d", audit.Report.Score)
	}
	if audit.Breach.State != entity.BreachStateBreached {
		t.Errorf("expected breach state %s, got %s", entity.BreachStateBreached, audit.Breach.State)
	}
	if audit.Breach.Count != 7 {
		t.Errorf("expected breach count 7, got %d", audit.Breach.Count)
	}
	if audit.ID.String() == "" || audit.CheckedAt.IsZero() {
		t.Error("expected audit id and timestamp to be set")
	}
}

func TestAuditPassword_SkipBreachCheck(t *testing.T) {
	service := &fakeBreachService{available: true, count: 7}
	uc := newAuditUseCase(service)

	output := uc.Execute(context.Background(), AuditPasswordInput{
		Password:        "Tr7$Kxvloq2@",
		SkipBreachCheck: true,
	})

	if output.Audit.Breach.State != entity.BreachStateNotChecked {
		t.Errorf("expected breach state %s, got %s", entity.BreachStateNotChecked, output.Audit.Breach.State)
	}
	if service.lastInput != "" {
		t.Error("expected breach service not to be called")
	}
}

func TestAuditPassword_LookupFailureKeepsReport(t *testing.T) {
	uc := newAuditUseCase(&fakeBreachService{available: true, err: domainerror.NewBreachError(
		domainerror.ErrCodeLookupUnavailable,
		"breach database unreachable",
		domainerror.ErrLookupUnavailable,
	)})

	output := uc.Execute(context.Background(), AuditPasswordInput{Password: "Tr7$Kxvloq2@"})
	audit := output.Audit

	if audit.Breach.State != entity.BreachStateLookupFailed {
		t.Errorf("expected breach state %s, got %s", entity.BreachStateLookupFailed, audit.Breach.State)
	}

	// The strength report must be unaffected by the failed lookup.
	if audit.Report.Score != 10 {
		t.Errorf("expected score 10 despite lookup failure, got %d", audit.Report.Score)
	}
	if len(audit.Report.Suggestions) != 0 {
		t.Errorf("expected no suggestions, got %v", audit.Report.Suggestions)
	}
}
