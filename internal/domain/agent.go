package domain

// Agent is a support agent who can submit suggestions. Agent records are
// owned by user management; this service only reads them.
type Agent struct {
	ID          int64
	Email       string
	DisplayName string
	Active      bool
}
