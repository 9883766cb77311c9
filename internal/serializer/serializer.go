// Package serializer projects entities into group-scoped JSON views.
// Two groups exist: "list" for collection endpoints and "detail" for
// single resources. Field membership is an explicit allow-list per
// view struct; credentials and the stored role set never appear.
package serializer

import (
	"time"

	"github.com/bilemo/phone-shop-api/internal/links"
	"github.com/bilemo/phone-shop-api/internal/models"
)

// ---- Phone ----

type PhoneListView struct {
	ID    uint        `json:"id"`
	Model string      `json:"model"`
	Color string      `json:"color"`
	Links links.Links `json:"_links,omitempty"`
}

type PhoneDetailView struct {
	ID          uint        `json:"id"`
	Model       string      `json:"model"`
	Color       string      `json:"color"`
	Description string      `json:"description"`
	Price       *int        `json:"price"`
	Links       links.Links `json:"_links,omitempty"`
}

func PhoneList(b *links.Builder, phones []models.Phone) []PhoneListView {
	out := make([]PhoneListView, 0, len(phones))
	for i := range phones {
		p := &phones[i]
		out = append(out, PhoneListView{
			ID:    p.ID,
			Model: p.Model,
			Color: p.Color,
			Links: b.PhoneSelf(p.ID),
		})
	}
	return out
}

func PhoneDetail(b *links.Builder, p *models.Phone) PhoneDetailView {
	return PhoneDetailView{
		ID:          p.ID,
		Model:       p.Model,
		Color:       p.Color,
		Description: p.Description,
		Price:       p.Price,
		Links:       b.PhoneDetail(p.ID),
	}
}

// embeddedPhone carries detail fields with only a self link, so a
// user's detail view never recurses back into the relation.
func embeddedPhone(b *links.Builder, p *models.Phone) PhoneDetailView {
	return PhoneDetailView{
		ID:          p.ID,
		Model:       p.Model,
		Color:       p.Color,
		Description: p.Description,
		Price:       p.Price,
		Links:       b.PhoneSelf(p.ID),
	}
}

// ---- User ----

type UserListView struct {
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	City      string      `json:"city"`
	Links     links.Links `json:"_links,omitempty"`
}

type UserEmbedded struct {
	Phones []PhoneDetailView `json:"phones"`
}

type UserDetailView struct {
	ID         uint         `json:"id"`
	Email      string       `json:"email"`
	FirstName  string       `json:"first_name"`
	LastName   string       `json:"last_name"`
	Address    string       `json:"address"`
	PostalCode string       `json:"postal_code"`
	City       string       `json:"city"`
	CreatedAt  time.Time    `json:"created_at"`
	Links      links.Links  `json:"_links,omitempty"`
	Embedded   UserEmbedded `json:"_embedded"`
}

func userListView(b *links.Builder, u *models.User) UserListView {
	return UserListView{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		City:      u.City,
		Links:     b.UserSelf(u.ID),
	}
}

func UserList(b *links.Builder, users []models.User) []UserListView {
	out := make([]UserListView, 0, len(users))
	for i := range users {
		out = append(out, userListView(b, &users[i]))
	}
	return out
}

func UserDetail(b *links.Builder, u *models.User) UserDetailView {
	phones := make([]PhoneDetailView, 0, len(u.Phones))
	for _, p := range u.Phones {
		phones = append(phones, embeddedPhone(b, p))
	}
	return UserDetailView{
		ID:         u.ID,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Address:    u.Address,
		PostalCode: u.PostalCode,
		City:       u.City,
		CreatedAt:  u.CreatedAt,
		Links:      b.UserDetail(u.ID),
		Embedded:   UserEmbedded{Phones: phones},
	}
}

// ---- Shop ----

type ShopEmbedded struct {
	Users []UserListView `json:"users"`
}

// ShopListView embeds the shop's users; the detail view does not.
type ShopListView struct {
	Name     string       `json:"name"`
	City     string       `json:"city"`
	Links    links.Links  `json:"_links,omitempty"`
	Embedded ShopEmbedded `json:"_embedded"`
}

type ShopDetailView struct {
	ID          uint        `json:"id"`
	Email       string      `json:"email"`
	Name        string      `json:"name"`
	Address     string      `json:"address"`
	City        string      `json:"city"`
	ArrivalDate time.Time   `json:"arrival_date"`
	Links       links.Links `json:"_links,omitempty"`
}

func ShopList(b *links.Builder, shops []models.Shop) []ShopListView {
	out := make([]ShopListView, 0, len(shops))
	for i := range shops {
		s := &shops[i]
		users := make([]UserListView, 0, len(s.Users))
		for j := range s.Users {
			users = append(users, userListView(b, &s.Users[j]))
		}
		out = append(out, ShopListView{
			Name:     s.Name,
			City:     s.City,
			Links:    b.ShopSelf(s.ID),
			Embedded: ShopEmbedded{Users: users},
		})
	}
	return out
}

func ShopDetail(b *links.Builder, s *models.Shop) ShopDetailView {
	return ShopDetailView{
		ID:          s.ID,
		Email:       s.Email,
		Name:        s.Name,
		Address:     s.Address,
		City:        s.City,
		ArrivalDate: s.ArrivalDate,
		Links:       b.ShopSelf(s.ID),
	}
}
