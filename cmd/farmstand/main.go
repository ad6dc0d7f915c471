package main

import (
	"log"

	"farmstand/internal/config"
	httpapi "farmstand/internal/http"
	applog "farmstand/internal/log"
	"farmstand/internal/repos"
)

func main() {
	cfg := config.Load()
	applog.Init(cfg.LogLevel)
	defer applog.Sync()

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}
	repos.SetQueryTimeout(cfg.QueryTimeout)

	app := httpapi.New(cfg, db)
	log.Fatal(app.Listen(":" + cfg.Port))
}
