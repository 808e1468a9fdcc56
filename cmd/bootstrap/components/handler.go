package components

import (
	"hotel-reservations/internal/handler"
	"hotel-reservations/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCustomerHandler,
		api.NewHotelHandler,
		api.NewReservationHandler,
	),
	fx.Invoke(handler.NewRouter),
)
