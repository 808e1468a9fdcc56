package api

import (
	"net/http"

	reqdto "hotel-reservations/internal/handler/dto/request"
	resdto "hotel-reservations/internal/handler/dto/response"
	"hotel-reservations/internal/handler/httperr"
	"hotel-reservations/internal/pkg/errs"
	"hotel-reservations/internal/usecase"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservations usecase.ReservationsManager
	hotels       usecase.HotelsManager
	customers    usecase.CustomersManager
}

func NewReservationHandler(
	reservations usecase.ReservationsManager,
	hotels usecase.HotelsManager,
	customers usecase.CustomersManager,
) *ReservationHandler {
	return &ReservationHandler{
		reservations: reservations,
		hotels:       hotels,
		customers:    customers,
	}
}

// @Summary Create reservation
// @Description Reserve the named room for the customer and record the reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	ht, err := h.hotels.GetHotel(req.HotelName)
	if err != nil {
		if errors.Is(err, errs.ErrHotelNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Hotel not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	cust, err := h.customers.GetCustomer(req.CustomerEmail)
	if err != nil {
		if errors.Is(err, errs.ErrCustomerNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	room, err := ht.GetRoom(req.RoomNumber)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		return
	}

	res, err := h.reservations.ReserveRoom(usecase.ReserveRoomParams{
		Hotel:    ht,
		Room:     room,
		Customer: cust,
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
	})
	if err != nil {
		if errors.Is(err, errs.ErrRoomNotAvailable) {
			httperr.AbortWithError(c, http.StatusConflict, err, "Room not available", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to store reservation", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservation(res))
}

// @Summary List reservations
// @Tags reservations
// @Produce json
// @Success 200 {array} resdto.ReservationResponse
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	reservations := h.reservations.ListReservations()
	out := make([]*resdto.ReservationResponse, 0, len(reservations))
	for _, res := range reservations {
		out = append(out, resdto.FromReservation(res))
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Cancel reservation
// @Description Remove the reservation record; the room status is not reverted here
// @Tags reservations
// @Param id path string true "Reservation ID" format(uuid)
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID", nil)
		return
	}
	if err := h.reservations.CancelReservation(id); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to store reservation", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
