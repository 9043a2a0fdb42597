package domain

import (
	"time"

	"github.com/google/uuid"
)

// AccessLevel is the permission level carried by a grant.
type AccessLevel string

const (
	AccessLevelRead      AccessLevel = "read"
	AccessLevelWrite     AccessLevel = "write"
	AccessLevelAdmin     AccessLevel = "admin"
	AccessLevelEmergency AccessLevel = "emergency"
)

// IsValid reports whether l is a known access level.
func (l AccessLevel) IsValid() bool {
	switch l {
	case AccessLevelRead, AccessLevelWrite, AccessLevelAdmin, AccessLevelEmergency:
		return true
	}
	return false
}

func (l AccessLevel) rank() int {
	switch l {
	case AccessLevelRead:
		return 1
	case AccessLevelWrite:
		return 2
	case AccessLevelAdmin:
		return 3
	}
	return 0
}

// Satisfies reports whether a grant at level l is enough for required.
// read < write < admin; emergency only ever satisfies read (and itself).
func (l AccessLevel) Satisfies(required AccessLevel) bool {
	switch {
	case l == AccessLevelEmergency:
		return required == AccessLevelRead || required == AccessLevelEmergency
	case required == AccessLevelEmergency:
		return false
	}
	return l.rank() > 0 && l.rank() >= required.rank()
}

// Restrictions limit what a grantee may do with the record.
type Restrictions struct {
	ReadOnly   bool `json:"read_only"`
	NoDownload bool `json:"no_download"`
}

// ConsentMeta records how the data subject consented to a grant.
type ConsentMeta struct {
	Validated   bool       `json:"validated"`
	Method      string     `json:"method,omitempty"`
	Reference   string     `json:"reference,omitempty"`
	ConsentedAt *time.Time `json:"consented_at,omitempty"`
}

// AccessGrant is a time-boxed permission on a single record.
// A nil ExpiresAt means the grant never expires.
type AccessGrant struct {
	ID           uuid.UUID    `json:"id"`
	GranteeID    string       `json:"grantee_id"`
	Level        AccessLevel  `json:"level"`
	GrantedBy    string       `json:"granted_by"`
	GrantedAt    time.Time    `json:"granted_at"`
	ExpiresAt    *time.Time   `json:"expires_at,omitempty"`
	Reason       string       `json:"reason"`
	Consent      ConsentMeta  `json:"consent"`
	Restrictions Restrictions `json:"restrictions"`
}

// IsActive reports whether the grant is in force at now. Expiry is inclusive:
// a grant is still active at exactly ExpiresAt.
func (g *AccessGrant) IsActive(now time.Time) bool {
	return g.ExpiresAt == nil || !now.After(*g.ExpiresAt)
}

// AccessDecision is the outcome of an access evaluation.
type AccessDecision struct {
	Granted      bool         `json:"granted"`
	Reason       string       `json:"reason"`
	Level        AccessLevel  `json:"level,omitempty"`
	ExpiresAt    *time.Time   `json:"expires_at,omitempty"`
	Restrictions Restrictions `json:"restrictions"`
}
