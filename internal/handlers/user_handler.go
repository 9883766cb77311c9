package handlers

import (
	"net/http"
	"time"

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

const userPageSize = 5

type UserHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewUserHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *UserHandler {
	return &UserHandler{db: db, audit: dispatcher}
}

// --------- Requests ---------

type CreateUserRequest struct {
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Address    string `json:"address"`
	PostalCode string `json:"postal_code"`
	City       string `json:"city"`
}

// --------- Handlers ---------

func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	if err := h.db.Order("id ASC").Find(&users).Error; err != nil {
		httperr.Internal(c)
		return
	}

	page := pagination.ParsePage(c.Query("page"))
	items := pagination.Page(users, page, userPageSize)

	b := links.NewBuilder(c.Request)
	c.JSON(http.StatusOK, serializer.UserList(b, items))
}

func (h *UserHandler) Show(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		httperr.NotFound(c)
		return
	}

	var user models.User
	if err := h.db.Preload("Phones").First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c)
			return
		}
		httperr.Internal(c)
		return
	}

	principal := middleware.CurrentPrincipal(c)
	if !policy.CanViewUser(principal, &user) {
		httperr.Forbidden(c, policy.ReasonShowUser)
		return
	}

	b := links.NewBuilder(c.Request)
	c.JSON(http.StatusOK, serializer.UserDetail(b, &user))
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.MalformedPayload(c)
		return
	}

	principal := middleware.CurrentPrincipal(c)

	user := models.User{
		Email:      req.Email,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Address:    req.Address,
		PostalCode: req.PostalCode,
		City:       req.City,
		CreatedAt:  time.Now(),
		ShopID:     principal.ShopID,
	}

	errs := validation.Validate(&user)
	if ferr := validation.UniqueUserEmail(h.db, &user); ferr != nil {
		errs = append(errs, *ferr)
	}
	if len(errs) > 0 {
		httperr.Validation(c, errs)
		return
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c)
		return
	}

	h.audit.Dispatch(audit.Event{
		ShopID:   principal.ShopID,
		Action:   "user.created",
		Entity:   "user",
		EntityID: &user.ID,
	})

	c.JSON(http.StatusCreated, httperr.HTTPError{
		Status:  http.StatusCreated,
		Message: "the new user has been added",
	})
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		httperr.NotFound(c)
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c)
			return
		}
		httperr.Internal(c)
		return
	}

	principal := middleware.CurrentPrincipal(c)
	if !policy.CanDeleteUser(principal, &user) {
		httperr.Forbidden(c, policy.ReasonDeleteUser)
		return
	}

	if err := h.db.Delete(&user).Error; err != nil {
		httperr.Internal(c)
		return
	}

	h.audit.Dispatch(audit.Event{
		ShopID:   principal.ShopID,
		Action:   "user.deleted",
		Entity:   "user",
		EntityID: &user.ID,
	})

	c.Status(http.StatusNoContent)
}

// AttachPhone links a phone to a user; the join is symmetric, so the
// user appears on the phone's side as well.
func (h *UserHandler) AttachPhone(c *gin.Context) {
	user, phone, principal, ok := h.loadUserAndPhone(c)
	if !ok {
		return
	}

	if user.HasPhone(phone) {
		c.JSON(http.StatusOK, httperr.HTTPError{
			Status:  http.StatusOK,
			Message: "the phone is already linked to this user",
		})
		return
	}

	if err := h.db.Model(user).Association("Phones").Append(phone); err != nil {
		httperr.Internal(c)
		return
	}
	user.AddPhone(phone)

	h.audit.Dispatch(audit.Event{
		ShopID:   principal.ShopID,
		Action:   "user.phone_attached",
		Entity:   "user",
		EntityID: &user.ID,
		Metadata: gin.H{"phone_id": phone.ID},
	})

	c.JSON(http.StatusOK, httperr.HTTPError{
		Status:  http.StatusOK,
		Message: "the phone has been linked to the user",
	})
}

// DetachPhone removes the link on both sides.
func (h *UserHandler) DetachPhone(c *gin.Context) {
	user, phone, principal, ok := h.loadUserAndPhone(c)
	if !ok {
		return
	}

	if err := h.db.Model(user).Association("Phones").Delete(phone); err != nil {
		httperr.Internal(c)
		return
	}
	user.RemovePhone(phone)

	h.audit.Dispatch(audit.Event{
		ShopID:   principal.ShopID,
		Action:   "user.phone_detached",
		Entity:   "user",
		EntityID: &user.ID,
		Metadata: gin.H{"phone_id": phone.ID},
	})

	c.Status(http.StatusNoContent)
}

func (h *UserHandler) loadUserAndPhone(c *gin.Context) (*models.User, *models.Phone, policy.Principal, bool) {
	var principal policy.Principal

	userID, ok := parseID(c.Param("id"))
	if !ok {
		httperr.NotFound(c)
		return nil, nil, principal, false
	}
	phoneID, ok := parseID(c.Param("phoneId"))
	if !ok {
		httperr.NotFound(c)
		return nil, nil, principal, false
	}

	var user models.User
	if err := h.db.Preload("Phones").First(&user, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c)
			return nil, nil, principal, false
		}
		httperr.Internal(c)
		return nil, nil, principal, false
	}

	principal = middleware.CurrentPrincipal(c)
	if !policy.CanModifyUser(principal, &user) {
		httperr.Forbidden(c, policy.ReasonModifyUser)
		return nil, nil, principal, false
	}

	var phone models.Phone
	if err := h.db.First(&phone, phoneID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c)
			return nil, nil, principal, false
		}
		httperr.Internal(c)
		return nil, nil, principal, false
	}

	return &user, &phone, principal, true
}
