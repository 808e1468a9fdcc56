package components

import (
	"hotel-reservations/internal/pkg/clock"
	"hotel-reservations/internal/usecase"

	"go.uber.org/fx"
)

var ManagerModule = fx.Module("manager",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			usecase.NewCustomersManager,
			fx.ParamTags(`name:"customers"`, ``),
		),
		fx.Annotate(
			usecase.NewHotelsManager,
			fx.ParamTags(`name:"hotels"`, ``),
		),
		fx.Annotate(
			usecase.NewReservationsManager,
			fx.ParamTags(`name:"reservations"`, ``, ``),
		),
	),
)
