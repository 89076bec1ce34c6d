package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/deviill007/ShakeHubInShop/configs"
	"github.com/deviill007/ShakeHubInShop/routes"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	// HTTP
	r := gin.Default()

	if err := routes.RegisterRoutes(r, db, cfg); err != nil {
		log.Fatalf("register routes failed: %v", err)
	}

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
