package converter

import (
	"fmt"

	"hotel-reservations/internal/domain/hotel"
	"hotel-reservations/internal/infra"
	"hotel-reservations/internal/infra/record"
)

func RoomToRecord(r *hotel.Room) record.Room {
	return record.Room{
		ID:     r.ID(),
		Number: r.Number(),
		Type:   r.Type(),
		Status: r.Status(),
		Price:  r.Price(),
	}
}

func RoomFromRecord(rec record.Room) (*hotel.Room, error) {
	if err := validateRoomRecord(rec); err != nil {
		return nil, err
	}
	return hotel.ReconstructRoom(rec.ID, rec.Number, rec.Type, rec.Status, rec.Price), nil
}

func HotelToRecord(h *hotel.Hotel) record.Hotel {
	rooms := make([]record.Room, 0, len(h.Rooms()))
	for _, r := range h.Rooms() {
		rooms = append(rooms, RoomToRecord(r))
	}
	return record.Hotel{
		ID:       h.ID(),
		Name:     h.Name(),
		Location: h.Location(),
		Rooms:    rooms,
	}
}

func HotelsToRecords(hotels []*hotel.Hotel) []record.Hotel {
	recs := make([]record.Hotel, 0, len(hotels))
	for _, h := range hotels {
		recs = append(recs, HotelToRecord(h))
	}
	return recs
}

func HotelFromRecord(rec record.Hotel) (*hotel.Hotel, error) {
	rooms := make([]*hotel.Room, 0, len(rec.Rooms))
	for _, rr := range rec.Rooms {
		room, err := RoomFromRecord(rr)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return hotel.ReconstructHotel(rec.ID, rec.Name, rec.Location, rooms), nil
}

func HotelsFromRecords(recs []record.Hotel) ([]*hotel.Hotel, error) {
	hotels := make([]*hotel.Hotel, 0, len(recs))
	for _, rec := range recs {
		h, err := HotelFromRecord(rec)
		if err != nil {
			return nil, err
		}
		hotels = append(hotels, h)
	}
	return hotels, nil
}

// validateRoomRecord rejects unrecognized enum strings. Structural fields
// fail fast on load; there is no per-record skip.
func validateRoomRecord(rec record.Room) error {
	if !rec.Type.IsValid() {
		return infra.WrapRepoErr(
			fmt.Sprintf("unknown room type %q", rec.Type.String()),
			hotel.ErrUnknownRoomType, infra.KindDecodeFailure)
	}
	if !rec.Status.IsValid() {
		return infra.WrapRepoErr(
			fmt.Sprintf("unknown room status %q", rec.Status.String()),
			hotel.ErrUnknownRoomStatus, infra.KindDecodeFailure)
	}
	return nil
}
