package main

import (
	"fmt"
	"log"

	"github.com/sadamkhan7679/issuetracker-fastapi-nextjs/configs"
	"github.com/sadamkhan7679/issuetracker-fastapi-nextjs/middlewares"
	"github.com/sadamkhan7679/issuetracker-fastapi-nextjs/repository"
	"github.com/sadamkhan7679/issuetracker-fastapi-nextjs/routes"
	"github.com/sadamkhan7679/issuetracker-fastapi-nextjs/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// Storage: one JSON document holding the whole collection
	repo := repository.NewIssueRepository(cfg.DataFile)
	svc := services.NewIssueService(repo)

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.TimerMiddleware())

	routes.RegisterRoutes(r, svc)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
