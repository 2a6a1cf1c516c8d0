package entity

import "testing"

func TestLabelForScore(t *testing.T) {
	tests := []struct {
		score int
		want  StrengthLabel
	}{
		{0, StrengthVeryWeak},
		{1, StrengthVeryWeak},
		{2, StrengthWeak},
		{4, StrengthWeak},
		{5, StrengthFair},
		{6, StrengthFair},
		{7, StrengthGood},
		{8, StrengthGood},
		{9, StrengthStrong},
		{10, StrengthExcellent},
	}

	for _, tt := range tests {
		if got := LabelForScore(tt.score); got != tt.want {
			t.Errorf("LabelForScore(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestBreachStatusConstructors(t *testing.T) {
	if status := BreachNotChecked(); status.State != BreachStateNotChecked {
		t.Errorf("unexpected state %s", status.State)
	}
	if status := BreachSafe(); status.State != BreachStateSafe {
		t.Errorf("unexpected state %s", status.State)
	}
	if status := BreachFound(12); status.State != BreachStateBreached || status.Count != 12 {
		t.Errorf("unexpected status %+v", status)
	}
	if status := BreachLookupFailed("timed out"); status.State != BreachStateLookupFailed || status.Reason != "timed out" {
		t.Errorf("unexpected status %+v", status)
	}
}

func TestNewPasswordAudit(t *testing.T) {
	report := ScoreReport{Score: 10, Label: StrengthExcellent}
	audit := NewPasswordAudit(report, BreachSafe())

	if audit.ID.String() == "" {
		t.Error("expected a generated audit id")
	}
	if audit.CheckedAt.IsZero() {
		t.Error("expected a timestamp")
	}
	if audit.Report.Score != 10 || audit.Breach.State != BreachStateSafe {
		t.Errorf("unexpected audit %+v", audit)
	}
}
