//go:build unit

package usecase_test

import (
	"testing"

	"hotel-reservations/internal/domain/hotel"
	"hotel-reservations/internal/infra/jsonstore"
	"hotel-reservations/internal/pkg/errs"
	"hotel-reservations/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHotelsManager(t *testing.T, doc *jsonstore.Document) usecase.HotelsManager {
	t.Helper()
	m, err := usecase.NewHotelsManager(doc, newTestLogger())
	require.NoError(t, err)
	return m
}

func newTestRoom(t *testing.T, number string, status hotel.RoomStatus) *hotel.Room {
	t.Helper()
	room, err := hotel.NewRoom(number, hotel.RoomTypeDouble, status, 150)
	require.NoError(t, err)
	return room
}

func newTestHotel(t *testing.T, name string, rooms ...*hotel.Room) *hotel.Hotel {
	t.Helper()
	return hotel.NewHotel(name, "Madrid", rooms)
}

func TestHotelsManagerAdd(t *testing.T) {
	t.Run("add then get", func(t *testing.T) {
		m := newHotelsManager(t, newTestDocument(t, "hotels.json"))

		h := newTestHotel(t, "Grand Plaza")
		require.NoError(t, m.AddHotel(h))

		got, err := m.GetHotel("Grand Plaza")
		require.NoError(t, err)
		assert.Same(t, h, got)
	})

	t.Run("duplicate name is a silent no-op", func(t *testing.T) {
		m := newHotelsManager(t, newTestDocument(t, "hotels.json"))

		original := newTestHotel(t, "Grand Plaza")
		require.NoError(t, m.AddHotel(original))
		require.NoError(t, m.AddHotel(newTestHotel(t, "Grand Plaza")))

		assert.Len(t, m.ListHotels(), 1)
		got, err := m.GetHotel("Grand Plaza")
		require.NoError(t, err)
		assert.Same(t, original, got)
	})

	t.Run("get unknown name", func(t *testing.T) {
		m := newHotelsManager(t, newTestDocument(t, "hotels.json"))

		_, err := m.GetHotel("Nowhere Inn")
		assert.ErrorIs(t, err, errs.ErrHotelNotFound)
	})
}

func TestHotelsManagerEditRemove(t *testing.T) {
	t.Run("edit replaces name and location", func(t *testing.T) {
		m := newHotelsManager(t, newTestDocument(t, "hotels.json"))
		require.NoError(t, m.AddHotel(newTestHotel(t, "Grand Plaza")))

		require.NoError(t, m.EditHotel("Grand Plaza", "Plaza Renamed", "Barcelona"))

		got, err := m.GetHotel("Plaza Renamed")
		require.NoError(t, err)
		assert.Equal(t, "Barcelona", got.Location())
		_, err = m.GetHotel("Grand Plaza")
		assert.ErrorIs(t, err, errs.ErrHotelNotFound)
	})

	t.Run("remove drops every match", func(t *testing.T) {
		m := newHotelsManager(t, newTestDocument(t, "hotels.json"))
		require.NoError(t, m.AddHotel(newTestHotel(t, "Grand Plaza")))
		require.NoError(t, m.AddHotel(newTestHotel(t, "Seaside")))

		require.NoError(t, m.RemoveHotel("Grand Plaza"))

		hotels := m.ListHotels()
		require.Len(t, hotels, 1)
		assert.Equal(t, "Seaside", hotels[0].Name())
	})
}

func TestHotelsManagerAddRoom(t *testing.T) {
	t.Run("appends to the first matching hotel", func(t *testing.T) {
		m := newHotelsManager(t, newTestDocument(t, "hotels.json"))
		require.NoError(t, m.AddHotel(newTestHotel(t, "Grand Plaza")))

		require.NoError(t, m.AddRoom("Grand Plaza", newTestRoom(t, "101", hotel.StatusAvailable)))

		got, err := m.GetHotel("Grand Plaza")
		require.NoError(t, err)
		assert.Len(t, got.Rooms(), 1)
	})

	t.Run("unknown hotel is an error", func(t *testing.T) {
		m := newHotelsManager(t, newTestDocument(t, "hotels.json"))

		err := m.AddRoom("Nowhere Inn", newTestRoom(t, "101", hotel.StatusAvailable))
		assert.ErrorIs(t, err, errs.ErrHotelNotFound)
	})
}

func TestHotelsManagerRoomStatus(t *testing.T) {
	t.Run("reserve flips an available room", func(t *testing.T) {
		m := newHotelsManager(t, newTestDocument(t, "hotels.json"))
		room := newTestRoom(t, "101", hotel.StatusAvailable)
		h := newTestHotel(t, "Grand Plaza", room)
		require.NoError(t, m.AddHotel(h))

		require.NoError(t, m.ReserveRoom(h, room))
		assert.Equal(t, hotel.StatusReserved, room.Status())
	})

	t.Run("reserve on a non-available room is a silent no-op", func(t *testing.T) {
		m := newHotelsManager(t, newTestDocument(t, "hotels.json"))
		room := newTestRoom(t, "101", hotel.StatusOccupied)
		h := newTestHotel(t, "Grand Plaza", room)
		require.NoError(t, m.AddHotel(h))

		require.NoError(t, m.ReserveRoom(h, room))
		assert.Equal(t, hotel.StatusOccupied, room.Status())
	})

	t.Run("reserve on an unknown room is a silent no-op", func(t *testing.T) {
		m := newHotelsManager(t, newTestDocument(t, "hotels.json"))
		h := newTestHotel(t, "Grand Plaza")
		require.NoError(t, m.AddHotel(h))

		assert.NoError(t, m.ReserveRoom(h, newTestRoom(t, "999", hotel.StatusAvailable)))
	})

	t.Run("cancel releases unconditionally", func(t *testing.T) {
		m := newHotelsManager(t, newTestDocument(t, "hotels.json"))
		room := newTestRoom(t, "101", hotel.StatusOutOfOrder)
		h := newTestHotel(t, "Grand Plaza", room)
		require.NoError(t, m.AddHotel(h))

		require.NoError(t, m.CancelReservation(h, room))
		assert.Equal(t, hotel.StatusAvailable, room.Status())
	})
}

func TestHotelsManagerReload(t *testing.T) {
	doc := newTestDocument(t, "hotels.json")

	m := newHotelsManager(t, doc)
	room := newTestRoom(t, "101", hotel.StatusAvailable)
	h := newTestHotel(t, "Grand Plaza", room)
	require.NoError(t, m.AddHotel(h))
	require.NoError(t, m.ReserveRoom(h, room))

	reloaded := newHotelsManager(t, doc)
	got, err := reloaded.GetHotel("Grand Plaza")
	require.NoError(t, err)
	assert.Equal(t, h.ID(), got.ID())
	require.Len(t, got.Rooms(), 1)
	assert.Equal(t, room.ID(), got.Rooms()[0].ID())
	assert.Equal(t, hotel.StatusReserved, got.Rooms()[0].Status())
}
