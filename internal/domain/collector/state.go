package collector

// State names the collector's position in the conversational flow. Sessions
// only exist while the flow is in progress; Complete and Cancelled tear the
// session down, so they never appear on a stored session.
type State string

const (
	StateAwaitingDecision State = "awaiting_decision"
	StateAwaitingReason   State = "awaiting_reason"
)
