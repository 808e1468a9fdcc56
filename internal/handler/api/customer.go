package api

import (
	"errors"
	"net/http"

	reqdto "hotel-reservations/internal/handler/dto/request"
	resdto "hotel-reservations/internal/handler/dto/response"
	"hotel-reservations/internal/handler/httperr"
	"hotel-reservations/internal/pkg/errs"
	"hotel-reservations/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	customers usecase.CustomersManager
}

func NewCustomerHandler(customers usecase.CustomersManager) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// @Summary Create customer
// @Description Register a new customer; duplicate emails are tolerated
// @Tags customers
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCustomerRequest true "Customer"
// @Success 201 {object} resdto.CustomerResponse
// @Failure 400 {object} map[string]string
// @Router /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req reqdto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	created, err := h.customers.AddCustomer(req.Name, req.Email)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to store customer", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCustomer(created))
}

// @Summary Get customer
// @Description Get the first customer matching the email
// @Tags customers
// @Produce json
// @Param email path string true "Customer email"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 404 {object} map[string]string
// @Router /customers/{email} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	found, err := h.customers.GetCustomer(c.Param("email"))
	if err != nil {
		if errors.Is(err, errs.ErrCustomerNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomer(found))
}

// @Summary List customers
// @Tags customers
// @Produce json
// @Success 200 {array} resdto.CustomerResponse
// @Router /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	customers := h.customers.ListCustomers()
	out := make([]*resdto.CustomerResponse, 0, len(customers))
	for _, cust := range customers {
		out = append(out, resdto.FromCustomer(cust))
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Update customer
// @Description Update every customer matching the email, key included
// @Tags customers
// @Accept json
// @Produce json
// @Param email path string true "Current customer email"
// @Param request body reqdto.UpdateCustomerRequest true "New values"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /customers/{email} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	var req reqdto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.customers.EditCustomer(c.Param("email"), req.Name, req.Email); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to store customer", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Remove customer
// @Description Remove every customer matching the email
// @Tags customers
// @Param email path string true "Customer email"
// @Success 204
// @Router /customers/{email} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.customers.RemoveCustomer(c.Param("email")); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to store customer", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
