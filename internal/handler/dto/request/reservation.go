package request

// CreateReservationRequest names the hotel, room and customer by their
// natural keys; check-in/check-out are carried as opaque strings.
type CreateReservationRequest struct {
	HotelName     string `json:"hotel_name" binding:"required"`
	RoomNumber    string `json:"room_number" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required"`
	CheckIn       string `json:"check_in" binding:"required"`
	CheckOut      string `json:"check_out" binding:"required"`
}
