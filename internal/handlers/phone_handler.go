package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bilemo/phone-shop-api/internal/audit"
	"github.com/bilemo/phone-shop-api/internal/httperr"
	"github.com/bilemo/phone-shop-api/internal/links"
	"github.com/bilemo/phone-shop-api/internal/middleware"
	"github.com/bilemo/phone-shop-api/internal/models"
	"github.com/bilemo/phone-shop-api/internal/pagination"
	"github.com/bilemo/phone-shop-api/internal/policy"
	"github.com/bilemo/phone-shop-api/internal/serializer"
	"github.com/bilemo/phone-shop-api/internal/validation"
)

const phonePageSize = 5

type PhoneHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewPhoneHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *PhoneHandler {
	return &PhoneHandler{db: db, audit: dispatcher}
}

// --------- Requests ---------

type CreatePhoneRequest struct {
	Model       string `json:"model"`
	Color       string `json:"color"`
	Description string `json:"description"`
	Price       *int   `json:"price"`
}

// UpdatePhoneRequest carries the allow-list of updatable fields.
// Absent keys and empty strings leave the stored value untouched.
type UpdatePhoneRequest struct {
	Model       *string `json:"model,omitempty"`
	Color       *string `json:"color,omitempty"`
	Description *string `json:"description,omitempty"`
	Price       *int    `json:"price,omitempty"`
}

// --------- Handlers ---------

func (h *PhoneHandler) List(c *gin.Context) {
	var phones []models.Phone
	if err := h.db.Order("id ASC").Find(&phones).Error; err != nil {
		httperr.Internal(c)
		return
	}

	page := pagination.ParsePage(c.Query("page"))
	items := pagination.Page(phones, page, phonePageSize)

	b := links.NewBuilder(c.Request)
	c.JSON(http.StatusOK, serializer.PhoneList(b, items))
}

func (h *PhoneHandler) Show(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		httperr.NotFound(c)
		return
	}

	var phone models.Phone
	if err := h.db.First(&phone, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c)
			return
		}
		httperr.Internal(c)
		return
	}

	b := links.NewBuilder(c.Request)
	c.JSON(http.StatusOK, serializer.PhoneDetail(b, &phone))
}

func (h *PhoneHandler) Create(c *gin.Context) {
	principal := middleware.CurrentPrincipal(c)
	if !policy.CanMutatePhone(principal) {
		httperr.Forbidden(c, policy.ReasonAddPhone)
		return
	}

	var req CreatePhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.MalformedPayload(c)
		return
	}

	phone := models.Phone{
		Model:       req.Model,
		Color:       req.Color,
		Description: req.Description,
		Price:       req.Price,
	}

	if errs := validation.Validate(&phone); len(errs) > 0 {
		httperr.Validation(c, errs)
		return
	}

	if err := h.db.Create(&phone).Error; err != nil {
		httperr.Internal(c)
		return
	}

	h.audit.Dispatch(audit.Event{
		ShopID:   principal.ShopID,
		Action:   "phone.created",
		Entity:   "phone",
		EntityID: &phone.ID,
	})

	c.JSON(http.StatusCreated, httperr.HTTPError{
		Status:  http.StatusCreated,
		Message: "the new phone has been added",
	})
}

func (h *PhoneHandler) Update(c *gin.Context) {
	principal := middleware.CurrentPrincipal(c)
	if !policy.CanMutatePhone(principal) {
		httperr.Forbidden(c, policy.ReasonUpdatePhone)
		return
	}

	id, ok := parseID(c.Param("id"))
	if !ok {
		httperr.NotFound(c)
		return
	}

	var phone models.Phone
	if err := h.db.First(&phone, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c)
			return
		}
		httperr.Internal(c)
		return
	}

	var req UpdatePhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.MalformedPayload(c)
		return
	}

	if req.Model != nil && *req.Model != "" {
		phone.Model = *req.Model
	}
	if req.Color != nil && *req.Color != "" {
		phone.Color = *req.Color
	}
	if req.Description != nil && *req.Description != "" {
		phone.Description = *req.Description
	}
	if req.Price != nil {
		phone.Price = req.Price
	}

	if errs := validation.Validate(&phone); len(errs) > 0 {
		httperr.Validation(c, errs)
		return
	}

	if err := h.db.Save(&phone).Error; err != nil {
		httperr.Internal(c)
		return
	}

	h.audit.Dispatch(audit.Event{
		ShopID:   principal.ShopID,
		Action:   "phone.updated",
		Entity:   "phone",
		EntityID: &phone.ID,
	})

	c.JSON(http.StatusOK, httperr.HTTPError{
		Status:  http.StatusOK,
		Message: "the phone has been updated",
	})
}

func (h *PhoneHandler) Delete(c *gin.Context) {
	principal := middleware.CurrentPrincipal(c)
	if !policy.CanMutatePhone(principal) {
		httperr.Forbidden(c, policy.ReasonDeletePhone)
		return
	}

	id, ok := parseID(c.Param("id"))
	if !ok {
		httperr.NotFound(c)
		return
	}

	var phone models.Phone
	if err := h.db.First(&phone, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c)
			return
		}
		httperr.Internal(c)
		return
	}

	if err := h.db.Delete(&phone).Error; err != nil {
		httperr.Internal(c)
		return
	}

	h.audit.Dispatch(audit.Event{
		ShopID:   principal.ShopID,
		Action:   "phone.deleted",
		Entity:   "phone",
		EntityID: &phone.ID,
	})

	c.Status(http.StatusNoContent)
}
