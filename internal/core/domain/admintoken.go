package domain

import (
	"time"

	"github.com/google/uuid"
)

// ResourceType names the kind of resource a capability token is bound to.
type ResourceType string

const (
	ResourceTypeExchange   ResourceType = "EXCHANGE"
	ResourceTypeWithdrawal ResourceType = "WITHDRAWAL"
)

// AdminTokenTTL is how long an issued capability link stays valid.
const AdminTokenTTL = 30 * time.Minute

// AdminLinkToken is a short-lived, single-use capability granting one
// privileged mutation on one specific resource. Validation rejects the token
// once UsedAt is set; consumption is an atomic check-and-set.
type AdminLinkToken struct {
	Token        string       `json:"-"` // opaque random value, never logged
	AdminID      uuid.UUID    `json:"admin_id"`
	ResourceType ResourceType `json:"resource_type"`
	ResourceID   uuid.UUID    `json:"resource_id"`
	ExpiresAt    time.Time    `json:"expires_at"`
	UsedAt       *time.Time   `json:"used_at,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}

// IsExpired reports whether the token is past its expiry at the given time.
func (t *AdminLinkToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
