package links

import (
	"fmt"
	"net/http"
)

// Link is one hyperlink in a resource's _links section.
type Link struct {
	Href string `json:"href"`
}

// Links maps a relation name to its URL.
type Links map[string]Link

// Route templates, kept in one place so handlers and links stay in sync.
const (
	routeShowPhone   = "/api/phones/%d"
	routeAddPhone    = "/api/phones/addphone"
	routeUpdatePhone = "/api/phones/%d"
	routeDeletePhone = "/api/phones/%d"
	routeShowUser    = "/api/users/%d"
	routeAddUser     = "/api/users/add"
	routeDeleteUser  = "/api/users/%d"
	routeShowShop    = "/api/shops/%d"
)

// Builder produces absolute URLs for one request's scheme and host.
type Builder struct {
	base string
}

// NewBuilder derives the base URL from the incoming request.
func NewBuilder(r *http.Request) *Builder {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return &Builder{base: scheme + "://" + r.Host}
}

// NewBuilderFromBase builds against a fixed base URL.
func NewBuilderFromBase(base string) *Builder {
	return &Builder{base: base}
}

func (b *Builder) url(template string, args ...any) Link {
	return Link{Href: b.base + fmt.Sprintf(template, args...)}
}

// PhoneSelf is the lone self link, used by list views and embeds.
func (b *Builder) PhoneSelf(id uint) Links {
	l := Links{}
	if id != 0 {
		l["self"] = b.url(routeShowPhone, id)
	}
	return l
}

// PhoneDetail carries the full relation set for a phone.
func (b *Builder) PhoneDetail(id uint) Links {
	l := Links{"create": b.url(routeAddPhone)}
	if id != 0 {
		l["self"] = b.url(routeShowPhone, id)
		l["update"] = b.url(routeUpdatePhone, id)
		l["delete"] = b.url(routeDeletePhone, id)
	}
	return l
}

func (b *Builder) UserSelf(id uint) Links {
	l := Links{}
	if id != 0 {
		l["self"] = b.url(routeShowUser, id)
	}
	return l
}

func (b *Builder) UserDetail(id uint) Links {
	l := Links{"create": b.url(routeAddUser)}
	if id != 0 {
		l["self"] = b.url(routeShowUser, id)
		l["delete"] = b.url(routeDeleteUser, id)
	}
	return l
}

func (b *Builder) ShopSelf(id uint) Links {
	l := Links{}
	if id != 0 {
		l["self"] = b.url(routeShowShop, id)
	}
	return l
}
