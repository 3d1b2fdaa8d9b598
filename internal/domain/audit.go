package domain

import "time"

// AuditEntry records a mutating operation for the audit trail.
type AuditEntry struct {
	ID        int64
	Principal string
	Action    string
	Detail    string
	CreatedAt time.Time
}
