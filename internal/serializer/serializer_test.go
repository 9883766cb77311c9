package serializer

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilemo/phone-shop-api/internal/links"
	"github.com/bilemo/phone-shop-api/internal/models"
)

const base = "https://api.example.com"

func intPtr(v int) *int { return &v }

func testPhone() models.Phone {
	return models.Phone{
		ID:          10,
		Model:       "P30 Pro",
		Color:       "black",
		Description: "flagship with a 6.47 inch screen",
		Price:       intPtr(799),
	}
}

func testUser() models.User {
	return models.User{
		ID:         7,
		Email:      "jeanne.martin@example.com",
		FirstName:  "Jeanne",
		LastName:   "Martin",
		Address:    "12 rue de la Paix, Paris",
		PostalCode: "75002",
		City:       "Paris",
		CreatedAt:  time.Date(2021, 2, 7, 10, 43, 0, 0, time.UTC),
		ShopID:     1,
	}
}

func keys(t *testing.T, v any) map[string]json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &m))
	return m
}

func TestPhoneListOmitsDetailOnlyFields(t *testing.T) {
	b := links.NewBuilderFromBase(base)
	views := PhoneList(b, []models.Phone{testPhone()})
	require.Len(t, views, 1)

	m := keys(t, views[0])
	assert.Contains(t, m, "id")
	assert.Contains(t, m, "model")
	assert.Contains(t, m, "color")
	assert.NotContains(t, m, "description")
	assert.NotContains(t, m, "price")

	assert.Equal(t, base+"/api/phones/10", views[0].Links["self"].Href)
	assert.NotContains(t, views[0].Links, "update")
}

func TestPhoneDetailCarriesFullRelationSet(t *testing.T) {
	b := links.NewBuilderFromBase(base)
	phone := testPhone()
	view := PhoneDetail(b, &phone)

	m := keys(t, view)
	assert.Contains(t, m, "description")
	assert.Contains(t, m, "price")

	for _, rel := range []string{"self", "create", "update", "delete"} {
		assert.Contains(t, view.Links, rel)
	}
}

func TestUserListIsMinimal(t *testing.T) {
	b := links.NewBuilderFromBase(base)
	views := UserList(b, []models.User{testUser()})
	require.Len(t, views, 1)

	m := keys(t, views[0])
	assert.Contains(t, m, "first_name")
	assert.Contains(t, m, "last_name")
	assert.Contains(t, m, "city")
	assert.NotContains(t, m, "id")
	assert.NotContains(t, m, "email")
	assert.NotContains(t, m, "address")
	assert.NotContains(t, m, "postal_code")
	assert.NotContains(t, m, "created_at")
	assert.NotContains(t, m, "_embedded")

	assert.Equal(t, base+"/api/users/7", views[0].Links["self"].Href)
}

func TestUserDetailEmbedsPhonesWithSelfLinkOnly(t *testing.T) {
	b := links.NewBuilderFromBase(base)
	user := testUser()
	phone := testPhone()
	user.AddPhone(&phone)

	view := UserDetail(b, &user)
	require.Len(t, view.Embedded.Phones, 1)

	embedded := view.Embedded.Phones[0]
	assert.Equal(t, phone.Model, embedded.Model)
	assert.Equal(t, phone.Description, embedded.Description)
	assert.Equal(t, base+"/api/phones/10", embedded.Links["self"].Href)
	assert.NotContains(t, embedded.Links, "create")
	assert.NotContains(t, embedded.Links, "update")
	assert.NotContains(t, embedded.Links, "delete")

	// No recursive embed: the view type has no users section.
	m := keys(t, embedded)
	assert.NotContains(t, m, "_embedded")
}

func TestUserDetailWithoutPhonesHasEmptyEmbed(t *testing.T) {
	b := links.NewBuilderFromBase(base)
	user := testUser()
	view := UserDetail(b, &user)

	raw, err := json.Marshal(view)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"_embedded":{"phones":[]}`)
}

func TestShopListEmbedsUsersButDetailDoesNot(t *testing.T) {
	b := links.NewBuilderFromBase(base)
	shop := models.Shop{
		ID:       3,
		Email:    "shop@example.com",
		Password: "secret-hash",
		Roles:    models.RoleList{models.RoleAdmin},
		Name:     "BileMo Paris",
		Address:  "1 avenue des Champs",
		City:     "Paris",
		Users:    []models.User{testUser()},
	}

	list := ShopList(b, []models.Shop{shop})
	require.Len(t, list, 1)
	require.Len(t, list[0].Embedded.Users, 1)
	assert.Equal(t, "Jeanne", list[0].Embedded.Users[0].FirstName)

	m := keys(t, list[0])
	assert.NotContains(t, m, "id")
	assert.NotContains(t, m, "email")
	assert.NotContains(t, m, "address")
	assert.NotContains(t, m, "arrival_date")

	detail := ShopDetail(b, &shop)
	dm := keys(t, detail)
	assert.Contains(t, dm, "email")
	assert.Contains(t, dm, "arrival_date")
	assert.NotContains(t, dm, "_embedded")
}

func TestCredentialsNeverSerialized(t *testing.T) {
	b := links.NewBuilderFromBase(base)
	shop := models.Shop{ID: 3, Password: "hash", Roles: models.RoleList{models.RoleAdmin}}

	for _, view := range []any{ShopDetail(b, &shop), ShopList(b, []models.Shop{shop})[0]} {
		raw, err := json.Marshal(view)
		require.NoError(t, err)
		assert.NotContains(t, string(raw), "hash")
		assert.NotContains(t, string(raw), "ROLE_ADMIN")
		assert.NotContains(t, string(raw), "password")
	}
}
