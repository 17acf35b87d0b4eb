package cast

// OutcomeHandler handles the outcomes of a dispatched intent.
type OutcomeHandler interface {
	// HandleOutcome is called for every device once the intent is applied.
	//
	// Parameters:
	//   - batchID - identifier shared by all outcomes of the same dispatch.
	//   - intent - intent applied to the device.
	//   - outcome - result of the intent.
	HandleOutcome(batchID string, intent Intent, outcome Outcome) error
}
