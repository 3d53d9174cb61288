package appointment

import "github.com/salonova-app/booking-api/internal/audit"

// AuditSink receives the audit events emitted by the appointment use
// cases. Satisfied by audit.Dispatcher.
type AuditSink interface {
	Dispatch(ev audit.Event)
}
