package api

import (
	"errors"
	"net/http"

	"hotel-reservations/internal/domain/hotel"
	reqdto "hotel-reservations/internal/handler/dto/request"
	resdto "hotel-reservations/internal/handler/dto/response"
	"hotel-reservations/internal/handler/httperr"
	"hotel-reservations/internal/pkg/errs"
	"hotel-reservations/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HotelHandler struct {
	hotels usecase.HotelsManager
}

func NewHotelHandler(hotels usecase.HotelsManager) *HotelHandler {
	return &HotelHandler{hotels: hotels}
}

// @Summary Create hotel
// @Description Register a new hotel with its rooms; a duplicate name is silently ignored
// @Tags hotels
// @Accept json
// @Produce json
// @Param request body reqdto.CreateHotelRequest true "Hotel"
// @Success 201 {object} resdto.HotelResponse
// @Failure 400 {object} map[string]string
// @Router /hotels [post]
func (h *HotelHandler) Create(c *gin.Context) {
	var req reqdto.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	created, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room", nil)
		return
	}
	if err := h.hotels.AddHotel(created); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to store hotel", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromHotel(created))
}

// @Summary Get hotel
// @Description Get the first hotel matching the name
// @Tags hotels
// @Produce json
// @Param name path string true "Hotel name"
// @Success 200 {object} resdto.HotelResponse
// @Failure 404 {object} map[string]string
// @Router /hotels/{name} [get]
func (h *HotelHandler) Get(c *gin.Context) {
	found, err := h.hotels.GetHotel(c.Param("name"))
	if err != nil {
		if errors.Is(err, errs.ErrHotelNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Hotel not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHotel(found))
}

// @Summary List hotels
// @Tags hotels
// @Produce json
// @Success 200 {array} resdto.HotelResponse
// @Router /hotels [get]
func (h *HotelHandler) List(c *gin.Context) {
	hotels := h.hotels.ListHotels()
	out := make([]*resdto.HotelResponse, 0, len(hotels))
	for _, ht := range hotels {
		out = append(out, resdto.FromHotel(ht))
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Update hotel
// @Description Update name and location on every hotel matching the name
// @Tags hotels
// @Accept json
// @Produce json
// @Param name path string true "Current hotel name"
// @Param request body reqdto.UpdateHotelRequest true "New values"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /hotels/{name} [put]
func (h *HotelHandler) Update(c *gin.Context) {
	var req reqdto.UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.hotels.EditHotel(c.Param("name"), req.Name, req.Location); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to store hotel", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Remove hotel
// @Description Remove every hotel matching the name
// @Tags hotels
// @Param name path string true "Hotel name"
// @Success 204
// @Router /hotels/{name} [delete]
func (h *HotelHandler) Delete(c *gin.Context) {
	if err := h.hotels.RemoveHotel(c.Param("name")); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to store hotel", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Add room
// @Description Append a room to the first hotel matching the name
// @Tags hotels
// @Accept json
// @Produce json
// @Param name path string true "Hotel name"
// @Param request body reqdto.CreateRoomRequest true "Room"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /hotels/{name}/rooms [post]
func (h *HotelHandler) AddRoom(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	room, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room", nil)
		return
	}
	if err := h.hotels.AddRoom(c.Param("name"), room); err != nil {
		if errors.Is(err, errs.ErrHotelNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Hotel not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to store hotel", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRoom(room))
}

// @Summary Reserve room
// @Description Flip the named room to reserved if it is currently available; no reservation record is created
// @Tags hotels
// @Param name path string true "Hotel name"
// @Param number path string true "Room number"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /hotels/{name}/rooms/{number}/reserve [post]
func (h *HotelHandler) ReserveRoom(c *gin.Context) {
	key, room, ok := h.lookupKeys(c)
	if !ok {
		return
	}
	if err := h.hotels.ReserveRoom(key, room); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to store hotel", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Cancel room reservation
// @Description Release the named room unconditionally
// @Tags hotels
// @Param name path string true "Hotel name"
// @Param number path string true "Room number"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /hotels/{name}/rooms/{number}/cancel [post]
func (h *HotelHandler) CancelReservation(c *gin.Context) {
	key, room, ok := h.lookupKeys(c)
	if !ok {
		return
	}
	if err := h.hotels.CancelReservation(key, room); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to store hotel", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// lookupKeys resolves the path params to the owned hotel and room entities
// used as lookup keys by the status operations.
func (h *HotelHandler) lookupKeys(c *gin.Context) (*hotel.Hotel, *hotel.Room, bool) {
	ht, err := h.hotels.GetHotel(c.Param("name"))
	if err != nil {
		if errors.Is(err, errs.ErrHotelNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Hotel not found", nil)
			return nil, nil, false
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return nil, nil, false
	}
	room, err := ht.GetRoom(c.Param("number"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		return nil, nil, false
	}
	return ht, room, true
}
