package demo

// copiedMsg reports a finished clipboard write.
type copiedMsg struct {
	FieldID string
}

// copyFailedMsg reports a clipboard error.
type copyFailedMsg struct {
	FieldID string
	Err     error
}
