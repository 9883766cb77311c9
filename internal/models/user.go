package models

import "time"

// User is an end customer registered by a shop. Every user belongs to
// exactly one shop; deleting the shop deletes its users.
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Email      string    `gorm:"size:180;uniqueIndex;not null" json:"email" validate:"required,email"`
	FirstName  string    `gorm:"size:255;not null" json:"first_name" validate:"required,min=4,max=255"`
	LastName   string    `gorm:"size:255;not null" json:"last_name" validate:"required,min=4,max=255"`
	Address    string    `gorm:"size:255;not null" json:"address" validate:"required,min=10,max=255"`
	PostalCode string    `gorm:"size:100;not null" json:"postal_code" validate:"required,min=4,max=255"`
	City       string    `gorm:"size:100;not null" json:"city" validate:"required,min=3,max=255"`
	CreatedAt  time.Time `json:"created_at"`

	ShopID uint `gorm:"not null" json:"shop_id"`
	Shop   Shop `json:"-"`

	Phones []*Phone `gorm:"many2many:user_phone;constraint:OnDelete:CASCADE;" json:"-"`
}

// AddPhone links the phone on both sides of the relation. Adding the
// same phone twice is a no-op.
func (u *User) AddPhone(p *Phone) {
	if containsPhone(u.Phones, p) {
		return
	}
	u.Phones = append(u.Phones, p)
	if !containsUser(p.Users, u) {
		p.Users = append(p.Users, u)
	}
}

// RemovePhone unlinks the phone on both sides of the relation.
func (u *User) RemovePhone(p *Phone) {
	u.Phones = removePhone(u.Phones, p)
	p.Users = removeUser(p.Users, u)
}

// HasPhone reports whether the phone is linked to this user.
func (u *User) HasPhone(p *Phone) bool {
	return containsPhone(u.Phones, p)
}

func containsPhone(list []*Phone, p *Phone) bool {
	for _, x := range list {
		if x == p || (p.ID != 0 && x.ID == p.ID) {
			return true
		}
	}
	return false
}

func containsUser(list []*User, u *User) bool {
	for _, x := range list {
		if x == u || (u.ID != 0 && x.ID == u.ID) {
			return true
		}
	}
	return false
}

func removePhone(list []*Phone, p *Phone) []*Phone {
	out := list[:0]
	for _, x := range list {
		if x == p || (p.ID != 0 && x.ID == p.ID) {
			continue
		}
		out = append(out, x)
	}
	return out
}

func removeUser(list []*User, u *User) []*User {
	out := list[:0]
	for _, x := range list {
		if x == u || (u.ID != 0 && x.ID == u.ID) {
			continue
		}
		out = append(out, x)
	}
	return out
}
