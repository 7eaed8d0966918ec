package share

import "context"

// UnavailableSharer is the default Sharer for deployments with no platform
// share integration: every attempt reports OutcomeUnavailable so callers
// take the message-link fallback.
type UnavailableSharer struct{}

// NewUnavailableSharer creates the fallback-only sharer
func NewUnavailableSharer() *UnavailableSharer {
	return &UnavailableSharer{}
}

// Share always reports that no native share target exists
func (s *UnavailableSharer) Share(ctx context.Context, req Request) (Outcome, error) {
	return OutcomeUnavailable, nil
}
