package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

// RoleList is stored as a JSON-encoded array, one column per shop.
type RoleList []string

func (r RoleList) Value() (driver.Value, error) {
	if r == nil {
		r = RoleList{}
	}
	b, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (r *RoleList) Scan(value interface{}) error {
	if value == nil {
		*r = RoleList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	default:
		return errors.New("unsupported type for RoleList")
	}
}

// Shop is the account holder: it authenticates against the API and owns users.
type Shop struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Email       string    `gorm:"size:180;uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"size:255;not null" json:"-"`
	Roles       RoleList  `gorm:"type:text" json:"-"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Address     string    `gorm:"size:255" json:"address"`
	City        string    `gorm:"size:255" json:"city"`
	ArrivalDate time.Time `json:"arrival_date"`

	Users []User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

// EffectiveRoles always contains the base role and is deduplicated,
// regardless of what is stored.
func (s *Shop) EffectiveRoles() []string {
	roles := append([]string{}, s.Roles...)
	roles = append(roles, RoleUser)

	seen := make(map[string]struct{}, len(roles))
	out := roles[:0]
	for _, role := range roles {
		if _, ok := seen[role]; ok {
			continue
		}
		seen[role] = struct{}{}
		out = append(out, role)
	}
	return out
}

// HasRole checks the effective role set, not the raw stored one.
func (s *Shop) HasRole(role string) bool {
	for _, r := range s.EffectiveRoles() {
		if r == role {
			return true
		}
	}
	return false
}
