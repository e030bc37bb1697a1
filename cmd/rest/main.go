package main

import (
	"log"

	"dbt-dost-be/internal/bootstrap"
	"dbt-dost-be/internal/config"
	"dbt-dost-be/internal/server"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)

	// 3. Initialize Server
	srv := server.New(cfg, container)

	// 4. Run Server
	log.Fatal(srv.Run())
}
