package policy

import "github.com/bilemo/phone-shop-api/internal/models"

// Principal is the authenticated shop account, resolved by the auth
// middleware and passed explicitly to every check.
type Principal struct {
	ShopID uint
	Roles  []string
}

func (p Principal) IsAdmin() bool {
	for _, role := range p.Roles {
		if role == models.RoleAdmin {
			return true
		}
	}
	return false
}

// Denial reasons, surfaced verbatim in 403 bodies.
const (
	ReasonShowUser    = "you are not allowed to view this user's record"
	ReasonDeleteUser  = "you are not allowed to delete this user"
	ReasonModifyUser  = "you are not allowed to modify this user"
	ReasonAddPhone    = "you do not have administrator rights to add a product"
	ReasonUpdatePhone = "you do not have administrator rights to update this product"
	ReasonDeletePhone = "you do not have administrator rights to delete this product"
)

// CanViewUser allows a shop to read only its own users, unless admin.
func CanViewUser(p Principal, u *models.User) bool {
	return p.IsAdmin() || u.ShopID == p.ShopID
}

// CanDeleteUser follows the same ownership rule as CanViewUser.
func CanDeleteUser(p Principal, u *models.User) bool {
	return p.IsAdmin() || u.ShopID == p.ShopID
}

// CanModifyUser guards mutations of a user record, including linking
// and unlinking phones.
func CanModifyUser(p Principal, u *models.User) bool {
	return p.IsAdmin() || u.ShopID == p.ShopID
}

// CanMutatePhone guards catalog writes: admin only.
func CanMutatePhone(p Principal) bool {
	return p.IsAdmin()
}
