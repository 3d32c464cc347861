package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	configx "github.com/gasolinas-mx/gasolinas-skill/pkg/config"
	logx "github.com/gasolinas-mx/gasolinas-skill/pkg/logger"
	"github.com/gasolinas-mx/gasolinas-skill/server"
	"github.com/gasolinas-mx/gasolinas-skill/skill/audit"
	"github.com/gasolinas-mx/gasolinas-skill/skill/device"
	"github.com/gasolinas-mx/gasolinas-skill/skill/handlers"
	"github.com/gasolinas-mx/gasolinas-skill/skill/prices"
)

func main() {
	logx.Init(*configx.MustNew[logx.Config]("LOG"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pricesClient := prices.MustNewClient(*configx.MustNew[prices.Config]("OCTANOS"))
	deviceClient := device.NewClient(*configx.MustNew[device.Config]("DEVICE_ADDRESS"))

	var auditStore audit.Store = audit.NopStore{}
	auditCfg := configx.MustNew[audit.Config]("AUDIT")
	if auditCfg.Enabled() {
		pg, err := audit.NewPGStore(*auditCfg)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot initialise audit store")
		}
		defer pg.Close()
		if err := pg.Bootstrap(ctx); err != nil {
			log.Fatal().Err(err).Msg("cannot bootstrap audit store")
		}
		auditStore = pg
	}

	dispatcher := handlers.New(deviceClient, pricesClient, auditStore)
	router := server.NewRouter(dispatcher)

	if err := server.Run(ctx, *configx.MustNew[server.Config]("SERVER"), router); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
