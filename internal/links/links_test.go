package links

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhoneDetailLinks(t *testing.T) {
	b := NewBuilderFromBase("https://api.example.com")

	l := b.PhoneDetail(42)
	assert.Equal(t, "https://api.example.com/api/phones/42", l["self"].Href)
	assert.Equal(t, "https://api.example.com/api/phones/addphone", l["create"].Href)
	assert.Equal(t, "https://api.example.com/api/phones/42", l["update"].Href)
	assert.Equal(t, "https://api.example.com/api/phones/42", l["delete"].Href)
}

func TestUnsavedEntityGetsNoIDBearingLinks(t *testing.T) {
	b := NewBuilderFromBase("https://api.example.com")

	l := b.PhoneDetail(0)
	assert.NotContains(t, l, "self")
	assert.NotContains(t, l, "update")
	assert.NotContains(t, l, "delete")
	assert.Contains(t, l, "create")

	assert.Empty(t, b.PhoneSelf(0))
	assert.Empty(t, b.UserSelf(0))
	assert.Empty(t, b.ShopSelf(0))
}

func TestUserDetailLinks(t *testing.T) {
	b := NewBuilderFromBase("https://api.example.com")

	l := b.UserDetail(7)
	assert.Equal(t, "https://api.example.com/api/users/7", l["self"].Href)
	assert.Equal(t, "https://api.example.com/api/users/add", l["create"].Href)
	assert.Equal(t, "https://api.example.com/api/users/7", l["delete"].Href)
	assert.NotContains(t, l, "update")
}

func TestNewBuilderUsesRequestHost(t *testing.T) {
	req := httptest.NewRequest("GET", "http://shop.example.org/api/shops", nil)
	b := NewBuilder(req)

	assert.Equal(t, "http://shop.example.org/api/shops/3", b.ShopSelf(3)["self"].Href)
}

func TestNewBuilderHonorsForwardedProto(t *testing.T) {
	req := httptest.NewRequest("GET", "http://shop.example.org/api/shops", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	b := NewBuilder(req)

	assert.Equal(t, "https://shop.example.org/api/shops/3", b.ShopSelf(3)["self"].Href)
}
