package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/eyadma/whatsapp-automation-app-sub004/internal/directory"
	"github.com/eyadma/whatsapp-automation-app-sub004/internal/models"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	Customers *directory.CustomerRepository
}

func NewCustomerHandler(customers *directory.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{Customers: customers}
}

type customerRequest struct {
	Name              string `json:"name" binding:"required"`
	Phone             string `json:"phone" binding:"required"`
	Phone2            string `json:"phone2"`
	AreaID            uint   `json:"area_id"`
	Area              string `json:"area"`
	PackagePrice      string `json:"package_price"`
	PackageID         string `json:"package_id"`
	BusinessName      string `json:"business_name"`
	HasReturn         bool   `json:"has_return"`
	PreferredLanguage string `json:"preferred_language"`
	Language          string `json:"language"`
}

func (r customerRequest) model(userID string) models.Customer {
	return models.Customer{
		UserID:            userID,
		Name:              r.Name,
		Phone:             r.Phone,
		Phone2:            r.Phone2,
		AreaID:            r.AreaID,
		Area:              r.Area,
		PackagePrice:      r.PackagePrice,
		PackageID:         r.PackageID,
		BusinessName:      r.BusinessName,
		HasReturn:         r.HasReturn,
		PreferredLanguage: r.PreferredLanguage,
		Language:          r.Language,
	}
}

// GetCustomers lists the user's customers, optionally narrowed with
// ?area_id=1,2
func (h *CustomerHandler) GetCustomers(c *gin.Context) {
	var filter directory.CustomerFilter
	if raw := c.Query("area_id"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid area_id"})
				return
			}
			filter.AreaIDs = append(filter.AreaIDs, uint(id))
		}
	}

	customers, err := h.Customers.ListForUser(c.Request.Context(), currentUser(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	if customers == nil {
		customers = []models.Customer{}
	}
	c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer := req.model(currentUser(c))
	if err := h.Customers.Create(c.Request.Context(), &customer); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer := req.model(currentUser(c))
	customer.ID = id
	if err := h.Customers.Update(c.Request.Context(), &customer); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.Customers.Delete(c.Request.Context(), currentUser(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted"})
}
