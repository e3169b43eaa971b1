package cron

import (
	"context"

	"github.com/jasonlvhit/gocron"
	"github.com/labstack/gommon/log"

	"github.com/John2013/phone-book/store"
)

// PingStore logs store connectivity so outages show up before requests fail.
func PingStore() {
	if err := store.Ping(context.Background()); err != nil {
		log.Warnf("store ping failed: %v", err)
		return
	}
	log.Debug("store ping ok")
}

func Init() {
	x := gocron.NewScheduler()
	x.Every(30).Seconds().Do(PingStore)
	<-x.Start()
}
