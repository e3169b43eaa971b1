package main

import (
	"github.com/facebookgo/grace/gracehttp"
	"github.com/labstack/gommon/log"

	"github.com/John2013/phone-book/api"
	"github.com/John2013/phone-book/config"
	"github.com/John2013/phone-book/cron"
	"github.com/John2013/phone-book/repository"
	"github.com/John2013/phone-book/route"
	"github.com/John2013/phone-book/services"
	"github.com/John2013/phone-book/store"
)

func main() {
	configuration := config.GetConfig()

	if err := store.Init(); err != nil {
		log.Fatalf("store init: %v", err)
	}
	go cron.Init()

	repo := repository.NewRedisRepository()
	svc := services.NewRecordService(repo)
	handler := api.NewRecordHandler(svc)

	e := route.Init(handler)
	e.Server.Addr = ":" + configuration.RUN_PORT

	// Serve it like a boss
	e.Logger.Fatal(gracehttp.Serve(e.Server))
}
