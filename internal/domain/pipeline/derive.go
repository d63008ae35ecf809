package pipeline

import "atelier_crm/internal/domain/entities"

// Derive computes the candidate project status implied by the current quote
// set. ok is false when the quotes determine nothing:
//   - an empty quote set never initializes a status
//   - a mix with pending quotes and no acceptance defers to a human decision
//
// Rules, in precedence order:
//  1. Any accepted quote => StatusQuoteAccepted; if every accepted quote also
//     has its invoice settled, the candidate escalates to
//     StatusInvoiceSettled.
//  2. Else, all quotes refused => StatusRefused. Refusal must be unanimous so
//     a lingering pending quote is never silently overridden.
//  3. Else => no candidate.
//
// One acceptance is enough to move the pipeline: a project routinely carries
// several competing quotes and the others staying pending or being refused
// does not undo the win.
func Derive(current entities.ProjectStatus, quotes []entities.Quote) (entities.ProjectStatus, bool) {
	if len(quotes) == 0 {
		return current, false
	}

	accepted, settled, refused := 0, 0, 0
	for _, q := range quotes {
		switch q.Status {
		case entities.QuoteStatusAccepted:
			accepted++
			if q.InvoiceSettled {
				settled++
			}
		case entities.QuoteStatusRefused:
			refused++
		}
	}

	if accepted > 0 {
		if settled == accepted {
			return entities.StatusInvoiceSettled, true
		}
		return entities.StatusQuoteAccepted, true
	}
	if refused == len(quotes) {
		return entities.StatusRefused, true
	}
	return current, false
}

// HasAccepted reports whether any quote in the set is accepted. The guard
// needs this to apply its strict-forward rule.
func HasAccepted(quotes []entities.Quote) bool {
	for _, q := range quotes {
		if q.Status == entities.QuoteStatusAccepted {
			return true
		}
	}
	return false
}
