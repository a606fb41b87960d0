package repository

import (
	"time"

	"pinflow-backend/internal/pinterest/domain"
)

// APICallLogRepository defines the interface for the append-only audit
// log of outbound Pinterest API calls. There are intentionally no update
// or delete operations.
type APICallLogRepository interface {
	// Append writes one audit row
	Append(entry *domain.APICallLog) error

	// CountPinCreations counts pin-creation rows for a user since the
	// given time. Used by the publisher's rate gate.
	CountPinCreations(userID string, since time.Time) (int64, error)
}
