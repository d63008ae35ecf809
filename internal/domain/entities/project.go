package entities

import "time"

// ProjectStatus represents the lifecycle stage of a project/opportunity.
//
// The pipeline engine only ever moves a project forward along the fixed order
// below; the single side branch is StatusRefused, reachable only while no
// quote has been accepted. Manual edits through the CRM UI bypass the engine
// and are not constrained here.

type ProjectStatus string

const (
	StatusQualification   ProjectStatus = "qualification"
	StatusNeedsAssessment ProjectStatus = "prise-de-besoin"
	StatusDepositReceived ProjectStatus = "acompte-recu"
	StatusDesign          ProjectStatus = "conception"
	StatusQuoteSent       ProjectStatus = "negociation-devis"
	StatusQuoteAccepted   ProjectStatus = "devis-accepte"
	StatusFirstPayment    ProjectStatus = "premier-reglement"
	StatusInProgress      ProjectStatus = "en-cours"
	StatusInvoiceSettled  ProjectStatus = "facture-soldee"
	StatusDelivered       ProjectStatus = "livre"

	// StatusRefused is terminal and sits outside the forward chain.
	StatusRefused ProjectStatus = "refuse"
)

// statusRank is the total order used by the progression guard. StatusRefused
// has no rank on purpose.
var statusRank = map[ProjectStatus]int{
	StatusQualification:   0,
	StatusNeedsAssessment: 1,
	StatusDepositReceived: 2,
	StatusDesign:          3,
	StatusQuoteSent:       4,
	StatusQuoteAccepted:   5,
	StatusFirstPayment:    6,
	StatusInProgress:      7,
	StatusInvoiceSettled:  8,
	StatusDelivered:       9,
}

// statusLabels are the human-readable stage names shown in timelines and
// notifications.
var statusLabels = map[ProjectStatus]string{
	StatusQualification:   "Qualification",
	StatusNeedsAssessment: "Prise de besoin",
	StatusDepositReceived: "Acompte reçu",
	StatusDesign:          "Conception",
	StatusQuoteSent:       "Négociation devis",
	StatusQuoteAccepted:   "Devis accepté",
	StatusFirstPayment:    "Premier règlement",
	StatusInProgress:      "En cours",
	StatusInvoiceSettled:  "Facture soldée",
	StatusDelivered:       "Livré",
	StatusRefused:         "Refusé",
}

// Rank returns the position of s in the forward chain. ok is false for
// StatusRefused and for free-text values written by manual edits.
func (s ProjectStatus) Rank() (int, bool) {
	r, ok := statusRank[s]
	return r, ok
}

// Label returns the display name for s, falling back to the raw value for
// statuses the engine does not know.
func (s ProjectStatus) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// Project is the stage-bearing opportunity record.
//
// Storage model (DynamoDB):
//   - PK: id
//
// AssignedTo is the staff member notified on stage changes. LastUpdatedAt is
// the last-write-wins tiebreaker used by client reconciliation.
type Project struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Status        ProjectStatus `json:"status"`
	AssignedTo    string        `json:"assigned_to"`
	CreatedAt     time.Time     `json:"created_at"`
	LastUpdatedAt time.Time     `json:"last_updated_at"`
}
