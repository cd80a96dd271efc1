package domain

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ClaimDeleteProvider authorizes deletion of provider records.
const ClaimDeleteProvider = "DeleteProvider"

// ClaimList holds a user's authorization claims. It is persisted as a
// JSON array in a single text column so the same model works on both
// postgres and sqlite.
type ClaimList []string

// Has reports whether the list contains the named claim.
func (c ClaimList) Has(name string) bool {
	for _, claim := range c {
		if claim == name {
			return true
		}
	}
	return false
}

func (c ClaimList) Value() (driver.Value, error) {
	if len(c) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (c *ClaimList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*c = nil
		return nil
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return fmt.Errorf("claim list: cannot scan %T", src)
	}
}

// User represents a credential record owned by the identity subsystem.
type User struct {
	bun.BaseModel `bun:"table:users" json:"-"`

	ID           uuid.UUID  `bun:"id,pk,type:uuid" json:"id"`
	Email        string     `bun:"email,notnull,unique" json:"email"`
	PasswordHash string     `bun:"password_hash,notnull" json:"-"` // Not exposed in API responses
	Claims       ClaimList  `bun:"claims,notnull,type:text" json:"claims"`
	FailedLogins int        `bun:"failed_logins,notnull,default:0" json:"-"`
	LockedUntil  *time.Time `bun:"locked_until,nullzero" json:"-"`
	CreatedAt    time.Time  `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt    time.Time  `bun:"updated_at,notnull" json:"updated_at"`
}

// Blocked reports whether the account is locked out at the given time.
func (u *User) Blocked(now time.Time) bool {
	return u.LockedUntil != nil && now.Before(*u.LockedUntil)
}

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	// FindByEmail returns the user with the given email, or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Store inserts a new user row.
	Store(ctx context.Context, u *User) error

	// Update overwrites the row identified by the user's primary key.
	Update(ctx context.Context, u *User) error
}
