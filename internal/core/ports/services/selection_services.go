package services

// SelectionSvc holds the process-wide active display currency.
type SelectionSvc interface {
	// Get never fails; it returns the default code when nothing has been
	// selected or the stored code is absent from the current catalog.
	Get() string

	// Set rejects malformed codes with apperrors.ErrValidation and codes
	// absent from the current catalog snapshot with
	// apperrors.ErrUnknownCurrency. Subscribers are notified synchronously
	// before Set returns.
	Set(code string) error

	// Subscribe registers a listener invoked once per successful Set. The
	// returned handle removes the listener; missed updates are not
	// replayed.
	Subscribe(listener func(code string)) (unsubscribe func())
}
