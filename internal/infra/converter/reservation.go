package converter

import (
	"hotel-reservations/internal/domain/reservation"
	"hotel-reservations/internal/infra"
	"hotel-reservations/internal/infra/record"

	"github.com/jinzhu/copier"
)

// The snapshot and record shapes share field names on purpose so copier can
// map them mechanically, including the nested rooms slice.

func ReservationToRecord(res *reservation.Reservation) (record.Reservation, error) {
	rec := record.Reservation{
		ID:        res.ID(),
		CheckIn:   res.CheckIn(),
		CheckOut:  res.CheckOut(),
		CreatedAt: res.CreatedAt(),
	}
	if err := copier.CopyWithOption(&rec.Hotel, res.Hotel(), copier.Option{DeepCopy: true}); err != nil {
		return record.Reservation{}, infra.WrapRepoErr("failed to map hotel snapshot to record", err, infra.KindEncodeFailure)
	}
	if err := copier.CopyWithOption(&rec.Customer, res.Customer(), copier.Option{DeepCopy: true}); err != nil {
		return record.Reservation{}, infra.WrapRepoErr("failed to map customer snapshot to record", err, infra.KindEncodeFailure)
	}
	if err := copier.CopyWithOption(&rec.Room, res.Room(), copier.Option{DeepCopy: true}); err != nil {
		return record.Reservation{}, infra.WrapRepoErr("failed to map room snapshot to record", err, infra.KindEncodeFailure)
	}
	return rec, nil
}

func ReservationsToRecords(reservations []*reservation.Reservation) ([]record.Reservation, error) {
	recs := make([]record.Reservation, 0, len(reservations))
	for _, res := range reservations {
		rec, err := ReservationToRecord(res)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// ReservationFromRecord rehydrates the full typed snapshot graph. The
// embedded room and hotel rooms go through the same enum validation as the
// hotels document.
func ReservationFromRecord(rec record.Reservation) (*reservation.Reservation, error) {
	if err := validateRoomRecord(rec.Room); err != nil {
		return nil, err
	}
	for _, rr := range rec.Hotel.Rooms {
		if err := validateRoomRecord(rr); err != nil {
			return nil, err
		}
	}

	var h reservation.HotelSnapshot
	if err := copier.CopyWithOption(&h, rec.Hotel, copier.Option{DeepCopy: true}); err != nil {
		return nil, infra.WrapRepoErr("failed to map hotel snapshot", err, infra.KindDecodeFailure)
	}
	var r reservation.RoomSnapshot
	if err := copier.CopyWithOption(&r, rec.Room, copier.Option{DeepCopy: true}); err != nil {
		return nil, infra.WrapRepoErr("failed to map room snapshot", err, infra.KindDecodeFailure)
	}
	var c reservation.CustomerSnapshot
	if err := copier.CopyWithOption(&c, rec.Customer, copier.Option{DeepCopy: true}); err != nil {
		return nil, infra.WrapRepoErr("failed to map customer snapshot", err, infra.KindDecodeFailure)
	}

	return reservation.ReconstructReservation(rec.ID, h, c, r, rec.CheckIn, rec.CheckOut, rec.CreatedAt), nil
}

func ReservationsFromRecords(recs []record.Reservation) ([]*reservation.Reservation, error) {
	reservations := make([]*reservation.Reservation, 0, len(recs))
	for _, rec := range recs {
		res, err := ReservationFromRecord(rec)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, nil
}
