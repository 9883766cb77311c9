package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bilemo/phone-shop-api/internal/httperr"
	"github.com/bilemo/phone-shop-api/internal/links"
	"github.com/bilemo/phone-shop-api/internal/models"
	"github.com/bilemo/phone-shop-api/internal/pagination"
	"github.com/bilemo/phone-shop-api/internal/serializer"
)

const shopPageSize = 1

type ShopHandler struct {
	db *gorm.DB
}

func NewShopHandler(db *gorm.DB) *ShopHandler {
	return &ShopHandler{db: db}
}

func (h *ShopHandler) List(c *gin.Context) {
	var shops []models.Shop
	if err := h.db.
		Preload("Users").
		Order("id ASC").
		Find(&shops).Error; err != nil {

		httperr.Internal(c)
		return
	}

	page := pagination.ParsePage(c.Query("page"))
	items := pagination.Page(shops, page, shopPageSize)

	b := links.NewBuilder(c.Request)
	c.JSON(http.StatusOK, serializer.ShopList(b, items))
}

func (h *ShopHandler) Show(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		httperr.NotFound(c)
		return
	}

	var shop models.Shop
	if err := h.db.First(&shop, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c)
			return
		}
		httperr.Internal(c)
		return
	}

	b := links.NewBuilder(c.Request)
	c.JSON(http.StatusOK, serializer.ShopDetail(b, &shop))
}
