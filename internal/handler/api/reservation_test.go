//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"hotel-reservations/internal/handler/api"
	"hotel-reservations/internal/infra/jsonstore"
	"hotel-reservations/internal/pkg/clock"
	"hotel-reservations/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	customers    usecase.CustomersManager
	hotels       usecase.HotelsManager
	reservations usecase.ReservationsManager
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	dataDir := s.T().TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	customersDoc, err := jsonstore.NewDocument(filepath.Join(dataDir, "customers.json"))
	s.Require().NoError(err)
	hotelsDoc, err := jsonstore.NewDocument(filepath.Join(dataDir, "hotels.json"))
	s.Require().NoError(err)
	reservationsDoc, err := jsonstore.NewDocument(filepath.Join(dataDir, "reservations.json"))
	s.Require().NoError(err)

	s.customers, err = usecase.NewCustomersManager(customersDoc, logger)
	s.Require().NoError(err)
	s.hotels, err = usecase.NewHotelsManager(hotelsDoc, logger)
	s.Require().NoError(err)
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.reservations, err = usecase.NewReservationsManager(reservationsDoc, clk, logger)
	s.Require().NoError(err)

	customerHandler := api.NewCustomerHandler(s.customers)
	hotelHandler := api.NewHotelHandler(s.hotels)
	reservationHandler := api.NewReservationHandler(s.reservations, s.hotels, s.customers)

	s.router.POST("/api/customers", customerHandler.Create)
	s.router.POST("/api/hotels", hotelHandler.Create)
	s.router.POST("/api/reservations", reservationHandler.Create)
	s.router.GET("/api/reservations", reservationHandler.List)
	s.router.DELETE("/api/reservations/:id", reservationHandler.Cancel)
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) postJSON(url string, body map[string]any) *httptest.ResponseRecorder {
	data, err := json.Marshal(body)
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *ReservationHandlerTestSuite) seed() {
	w := s.postJSON("/api/customers", map[string]any{
		"name":  "Alice",
		"email": "alice@example.com",
	})
	s.Require().Equal(http.StatusCreated, w.Code)

	w = s.postJSON("/api/hotels", map[string]any{
		"name":     "Grand Plaza",
		"location": "Madrid",
		"rooms": []map[string]any{
			{
				"room_number": "101",
				"room_type":   "double",
				"room_status": "available",
				"room_price":  150,
			},
		},
	})
	s.Require().Equal(http.StatusCreated, w.Code)
}

func reservationBody() map[string]any {
	return map[string]any{
		"hotel_name":     "Grand Plaza",
		"room_number":    "101",
		"customer_email": "alice@example.com",
		"check_in":       "2025-07-01",
		"check_out":      "2025-07-05",
	}
}

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	s.seed()

	w := s.postJSON("/api/reservations", reservationBody())
	s.Equal(http.StatusCreated, w.Code)

	var res struct {
		ID   string `json:"id"`
		Room struct {
			Status string `json:"roomStatus"`
		} `json:"room"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	s.NotEmpty(res.ID)
	s.Equal("reserved", res.Room.Status)
}

func (s *ReservationHandlerTestSuite) TestCreateReservationConflict() {
	s.seed()

	w := s.postJSON("/api/reservations", reservationBody())
	s.Require().Equal(http.StatusCreated, w.Code)

	w = s.postJSON("/api/reservations", reservationBody())
	s.Equal(http.StatusConflict, w.Code)
}

func (s *ReservationHandlerTestSuite) TestCreateReservationUnknownHotel() {
	s.seed()

	body := reservationBody()
	body["hotel_name"] = "Nowhere Inn"
	w := s.postJSON("/api/reservations", body)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *ReservationHandlerTestSuite) TestCreateReservationUnknownCustomer() {
	s.seed()

	body := reservationBody()
	body["customer_email"] = "nobody@example.com"
	w := s.postJSON("/api/reservations", body)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *ReservationHandlerTestSuite) TestCreateReservationMissingField() {
	s.seed()

	body := reservationBody()
	delete(body, "check_in")
	w := s.postJSON("/api/reservations", body)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *ReservationHandlerTestSuite) TestCancelReservation() {
	s.seed()

	w := s.postJSON("/api/reservations", reservationBody())
	s.Require().Equal(http.StatusCreated, w.Code)

	var res struct {
		ID string `json:"id"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))

	req := httptest.NewRequest(http.MethodDelete, "/api/reservations/"+res.ID, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	s.Equal(http.StatusNoContent, rec.Code)

	s.Empty(s.reservations.ListReservations())

	// the room keeps its reserved status until the hotel-side cancel runs
	h, err := s.hotels.GetHotel("Grand Plaza")
	s.Require().NoError(err)
	room, err := h.GetRoom("101")
	s.Require().NoError(err)
	s.False(room.IsAvailable())
}

func (s *ReservationHandlerTestSuite) TestCancelReservationBadID() {
	req := httptest.NewRequest(http.MethodDelete, "/api/reservations/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ReservationHandlerTestSuite) TestListReservations() {
	s.seed()

	w := s.postJSON("/api/reservations", reservationBody())
	s.Require().Equal(http.StatusCreated, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/reservations", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	s.Equal(http.StatusOK, rec.Code)

	var list []json.RawMessage
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &list))
	s.Len(list, 1)
}
