package models

// Phone is a catalog product. The user relation is the inverse side of
// user_phone: phones are linked through the user accessors.
type Phone struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Model       string `gorm:"size:255;not null" json:"model" validate:"required,min=4,max=255"`
	Color       string `gorm:"size:255;not null" json:"color" validate:"required,min=2,max=255"`
	Description string `gorm:"type:text;not null" json:"description" validate:"required,min=10,max=255"`
	Price       *int   `gorm:"not null" json:"price" validate:"required"`

	Users []*User `gorm:"many2many:user_phone;constraint:OnDelete:CASCADE;" json:"-"`
}

// AddUser links through the owning side so both collections stay in sync.
func (p *Phone) AddUser(u *User) {
	u.AddPhone(p)
}

// RemoveUser unlinks through the owning side.
func (p *Phone) RemoveUser(u *User) {
	u.RemovePhone(p)
}
