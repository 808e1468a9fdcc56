package hotel

type RoomType string

const (
	RoomTypeSingle RoomType = "single"
	RoomTypeDouble RoomType = "double"
	RoomTypeSuite  RoomType = "suite"
)

func (t RoomType) String() string {
	return string(t)
}

func (t RoomType) IsValid() bool {
	switch t {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeSuite:
		return true
	default:
		return false
	}
}

type RoomStatus string

const (
	StatusAvailable  RoomStatus = "available"
	StatusReserved   RoomStatus = "reserved"
	StatusOccupied   RoomStatus = "occupied"
	StatusOutOfOrder RoomStatus = "out_of_order"
)

func (s RoomStatus) String() string {
	return string(s)
}

func (s RoomStatus) IsValid() bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusOccupied, StatusOutOfOrder:
		return true
	default:
		return false
	}
}

func ParseRoomType(s string) (RoomType, error) {
	t := RoomType(s)
	if !t.IsValid() {
		return "", ErrUnknownRoomType
	}
	return t, nil
}

func ParseRoomStatus(s string) (RoomStatus, error) {
	st := RoomStatus(s)
	if !st.IsValid() {
		return "", ErrUnknownRoomStatus
	}
	return st, nil
}
