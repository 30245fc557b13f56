package command

import "context"

// MatchNotifier delivers notifications about matching activity.
// Implementations live in infrastructure/notification. Delivery is
// best-effort: handlers log failures and never fail the command.
type MatchNotifier interface {
	// MatchProposed notifies the mentor that a pairing was proposed.
	MatchProposed(ctx context.Context, mentorEmail, mentorName, menteeName string, score int) error
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

// MatchProposed implements MatchNotifier.
func (NopNotifier) MatchProposed(context.Context, string, string, string, int) error { return nil }
