package service

import "context"

// RecoveryNotifier sends an out-of-band message to a recovered
// account's address. Delivery failure is a gateway-class error for the
// caller to report; it is never fatal to the process.
type RecoveryNotifier interface {
	Send(ctx context.Context, address, subject, body string) error
}
