package pipeline

import (
	"testing"

	"atelier_crm/internal/domain/entities"
)

func TestAdmit(t *testing.T) {
	cases := []struct {
		name        string
		current     entities.ProjectStatus
		candidate   entities.ProjectStatus
		hasAccepted bool
		want        bool
	}{
		{
			name:      "equal candidate is a no-op",
			current:   entities.StatusQuoteAccepted,
			candidate: entities.StatusQuoteAccepted,
			want:      false,
		},
		{
			name:      "forward step admitted",
			current:   entities.StatusQuoteSent,
			candidate: entities.StatusQuoteAccepted,
			want:      true,
		},
		{
			name:      "backward step rejected",
			current:   entities.StatusInProgress,
			candidate: entities.StatusQuoteAccepted,
			want:      false,
		},
		{
			name:      "refusal admitted before acceptance",
			current:   entities.StatusDesign,
			candidate: entities.StatusRefused,
			want:      true,
		},
		{
			name:        "refusal rejected at acceptance",
			current:     entities.StatusQuoteAccepted,
			candidate:   entities.StatusRefused,
			hasAccepted: true,
			want:        false,
		},
		{
			name:      "refusal rejected past acceptance",
			current:   entities.StatusDelivered,
			candidate: entities.StatusRefused,
			want:      false,
		},
		{
			name:      "nothing leaves refused",
			current:   entities.StatusRefused,
			candidate: entities.StatusQuoteAccepted,
			want:      false,
		},
		{
			name:      "unknown current re-anchors on the chain",
			current:   entities.ProjectStatus("statut-libre"),
			candidate: entities.StatusQuoteAccepted,
			want:      true,
		},
		{
			name:      "unknown current admits refusal",
			current:   entities.ProjectStatus("statut-libre"),
			candidate: entities.StatusRefused,
			want:      true,
		},
		{
			name:      "unknown candidate rejected",
			current:   entities.StatusDesign,
			candidate: entities.ProjectStatus("statut-libre"),
			want:      false,
		},
		{
			name:        "equal rank blocked once accepted",
			current:     entities.StatusQuoteAccepted,
			candidate:   entities.StatusQuoteAccepted,
			hasAccepted: true,
			want:        false,
		},
		{
			name:        "settlement escalation passes the strict-forward rule",
			current:     entities.StatusQuoteAccepted,
			candidate:   entities.StatusInvoiceSettled,
			hasAccepted: true,
			want:        true,
		},
		{
			name:        "manual stage past acceptance holds against re-derivation",
			current:     entities.StatusInProgress,
			candidate:   entities.StatusQuoteAccepted,
			hasAccepted: true,
			want:        false,
		},
		{
			name:        "invoice-settled escalation from a later manual stage",
			current:     entities.StatusInProgress,
			candidate:   entities.StatusInvoiceSettled,
			hasAccepted: true,
			want:        true,
		},
		{
			name:      "early candidate without acceptance still forward-only",
			current:   entities.StatusDepositReceived,
			candidate: entities.StatusQualification,
			want:      false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Admit(tc.current, tc.candidate, tc.hasAccepted); got != tc.want {
				t.Fatalf("Admit(%s, %s, %v) = %v, want %v", tc.current, tc.candidate, tc.hasAccepted, got, tc.want)
			}
		})
	}
}

// Re-running the derive+admit pair over an unchanged quote set must always
// settle into a no-op, whatever stage the project is at.
func TestDeriveThenAdmitIsIdempotent(t *testing.T) {
	quotes := []entities.Quote{
		quote(entities.QuoteStatusAccepted, false),
		quote(entities.QuoteStatusPending, false),
	}

	candidate, ok := Derive(entities.StatusQuoteSent, quotes)
	if !ok || !Admit(entities.StatusQuoteSent, candidate, HasAccepted(quotes)) {
		t.Fatalf("first pass should transition to %s", candidate)
	}

	again, ok := Derive(candidate, quotes)
	if ok && Admit(candidate, again, HasAccepted(quotes)) {
		t.Fatalf("second pass should be a no-op, admitted %s", again)
	}
}
