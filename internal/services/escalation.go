package services

import "time"

// EscalationPolicy decides when accumulated reports turn into a ban.
// It is pure: the same count always yields the same decision.
type EscalationPolicy struct {
	// Threshold is the report count at which a ban trips.
	Threshold int
	// BanWindow is the duration assigned to automatic bans so the
	// reconciliation job can later lift them.
	BanWindow time.Duration
}

type EscalationDecision struct {
	Ban    bool
	Window time.Duration
}

func (p EscalationPolicy) Decide(reportCount int) EscalationDecision {
	if reportCount >= p.Threshold {
		return EscalationDecision{Ban: true, Window: p.BanWindow}
	}
	return EscalationDecision{}
}
