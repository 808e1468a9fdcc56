package bootstrap

import (
	"hotel-reservations/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	StoreModule,
	components.ManagerModule,
	components.HandlerModule,
)
