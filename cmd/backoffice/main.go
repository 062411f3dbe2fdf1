package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/telshop/backoffice/internal/auth"
	"github.com/telshop/backoffice/internal/catalog"
	"github.com/telshop/backoffice/internal/config"
	"github.com/telshop/backoffice/internal/logger"
	"github.com/telshop/backoffice/internal/orders"
	"github.com/telshop/backoffice/internal/server"
	"github.com/telshop/backoffice/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,

		auth.Module,
		catalog.Module,
		orders.Module,

		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
