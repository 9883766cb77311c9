package handlers_test

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/bilemo/phone-shop-api/internal/config"
	dbpkg "github.com/bilemo/phone-shop-api/internal/db"
	"github.com/bilemo/phone-shop-api/internal/models"
	"github.com/bilemo/phone-shop-api/internal/routes"
)

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, dbpkg.Migrate(db))

	cfg := &config.Config{JWTSecret: "test-secret", ServerPort: "0"}

	r := gin.New()
	routes.RegisterRoutes(r, db, cfg)
	return r, db, cfg
}

func createShop(t *testing.T, db *gorm.DB, email string, admin bool) *models.Shop {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	require.NoError(t, err)

	roles := models.RoleList{}
	if admin {
		roles = models.RoleList{models.RoleAdmin}
	}

	shop := &models.Shop{
		Email:       email,
		Password:    string(hashed),
		Roles:       roles,
		Name:        "BileMo " + email,
		Address:     "1 avenue des Champs",
		City:        "Paris",
		ArrivalDate: time.Now(),
	}
	require.NoError(t, db.Create(shop).Error)
	return shop
}

func createUser(t *testing.T, db *gorm.DB, shop *models.Shop, email string) *models.User {
	t.Helper()
	user := &models.User{
		Email:      email,
		FirstName:  "Jeanne",
		LastName:   "Martin",
		Address:    "12 rue de la Paix, Paris",
		PostalCode: "75002",
		City:       "Paris",
		CreatedAt:  time.Now(),
		ShopID:     shop.ID,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createPhone(t *testing.T, db *gorm.DB, model string) *models.Phone {
	t.Helper()
	price := 799
	phone := &models.Phone{
		Model:       model,
		Color:       "black",
		Description: "flagship with a 6.47 inch screen",
		Price:       &price,
	}
	require.NoError(t, db.Create(phone).Error)
	return phone
}

func tokenFor(t *testing.T, cfg *config.Config, shop *models.Shop) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   shop.ID,
		"roles": shop.EffectiveRoles(),
		"exp":   time.Now().Add(time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)
	return token
}

func doRequest(r *gin.Engine, method, path, token string, body []byte) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, "unexpected status, body: %s", rec.Body.String())
}
