package bootstrap

import (
	"hotel-reservations/internal/infra/jsonstore"
	"hotel-reservations/internal/pkg/config"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewDocuments,
	),
)

// Documents exposes one named document per collection so each manager can
// ask for its own file.
type Documents struct {
	fx.Out

	Customers    *jsonstore.Document `name:"customers"`
	Hotels       *jsonstore.Document `name:"hotels"`
	Reservations *jsonstore.Document `name:"reservations"`
}

func NewDocuments(cfg config.Config) (Documents, error) {
	customers, err := jsonstore.NewDocument(cfg.Store.CustomersPath())
	if err != nil {
		return Documents{}, err
	}
	hotels, err := jsonstore.NewDocument(cfg.Store.HotelsPath())
	if err != nil {
		return Documents{}, err
	}
	reservations, err := jsonstore.NewDocument(cfg.Store.ReservationsPath())
	if err != nil {
		return Documents{}, err
	}

	return Documents{
		Customers:    customers,
		Hotels:       hotels,
		Reservations: reservations,
	}, nil
}
