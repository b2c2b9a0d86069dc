package event

// Log message constants
const (
	LogMsgHandlerFailed    = "Event handler returned error"
	LogMsgHandlerSkipped   = "Skipping handler for cancelled event"
	LogMsgDispatchStarted  = "Dispatching event"
	LogMsgDispatchFinished = "Event dispatch finished"

	// Log message for handler errors
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %w"
)

// Error message constants
const (
	ErrMsgNilHandler        = "handler is nil"
	ErrMsgInvalidPriority   = "invalid handler priority"
	ErrMsgEventTypeMismatch = "event type mismatch"
)

// Event names
const (
	NameAttackEntityCooldownReset = "PlayerAttackEntityCooldownResetEvent"
)
