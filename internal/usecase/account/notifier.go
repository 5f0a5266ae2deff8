package account

// Notifier is the outbound mail capability the account flows need. Delivery
// failures are reported to the caller as a flag, never as a failed operation.
type Notifier interface {
	SendActivationRequest(firstName, lastName, email, phone string) error
	SendWelcome(email, firstName string) error
	SendResetNotice(firstName, lastName, email, token string) error
}
