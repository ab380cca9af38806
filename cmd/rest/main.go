package main

import (
	"log"

	"github.com/bibincs/hackathonchatbot/internal/bootstrap"
	"github.com/bibincs/hackathonchatbot/internal/config"
	"github.com/bibincs/hackathonchatbot/internal/server"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (Container)
	// This embeds the airport corpus up front, so startup blocks on the
	// embedding provider.
	container := bootstrap.NewContainer(cfg)
	defer container.Logger.Sync()

	// 3. Initialize Server
	srv := server.New(cfg, container)

	// 4. Run Server
	log.Fatal(srv.Run())
}
