package orders

import (
	"github.com/telshop/backoffice/internal/orders/repository"
	"github.com/telshop/backoffice/internal/orders/service"
	"go.uber.org/fx"
)

var Module = fx.Module("orders.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
