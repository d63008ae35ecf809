package pipeline

import "atelier_crm/internal/domain/entities"

// Admit applies the forward-only progression rule to a derived candidate.
//
// The comparison is a rank lookup on the fixed stage order. A candidate
// strictly earlier than the current stage is rejected; an equal candidate is
// a no-op (not an error). Once a project has reached StatusQuoteAccepted and
// an accepted quote exists, only strictly later ranks pass — this stops the
// engine from re-stamping the accepted marker on every quote edit while
// still letting the invoice-settled escalation through.
//
// StatusRefused sits outside the chain: it is admitted only from a stage
// before StatusQuoteAccepted, and nothing is admitted out of it.
func Admit(current, candidate entities.ProjectStatus, hasAccepted bool) bool {
	if candidate == current {
		return false
	}
	if current == entities.StatusRefused {
		return false
	}

	curRank, curKnown := current.Rank()
	acceptedRank, _ := entities.StatusQuoteAccepted.Rank()

	if candidate == entities.StatusRefused {
		return !curKnown || curRank < acceptedRank
	}

	candRank, ok := candidate.Rank()
	if !ok {
		return false
	}
	if !curKnown {
		// Manually edited or blank status: nothing to compare against, let
		// the engine re-anchor the project on the chain.
		return true
	}
	if candRank < curRank {
		return false
	}
	if hasAccepted && curRank >= acceptedRank {
		return candRank > curRank
	}
	return candRank >= curRank
}
