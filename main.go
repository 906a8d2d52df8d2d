package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"shopfront/config"
	"shopfront/db"
	"shopfront/handlers"
	"shopfront/middleware"
	"shopfront/payments"
	"shopfront/store"
)

func runMigrations() {
	sqlBytes, err := os.ReadFile("schema.sql")
	if err != nil {
		log.Fatal("Failed to read schema.sql:", err)
	}

	if _, err := db.GetDB().Exec(string(sqlBytes)); err != nil {
		log.Fatal("Failed to apply schema:", err)
	}
	log.Println("Database schema verified")
}

func main() {
	cfg := config.Load()

	if err := db.InitDB(cfg.DatabaseURL); err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	runMigrations()

	gateway := payments.NewStripeGateway(cfg.StripeSecretKey, cfg.StripeAPIBase)
	h := handlers.New(store.NewUsers(db.GetDB()), store.NewContacts(db.GetDB()), gateway, cfg)

	r := gin.Default()
	r.LoadHTMLGlob("templates/*")
	r.Static("/static", "./static")
	r.Use(middleware.SessionLoader())

	r.GET("/", h.Index)
	r.GET("/contact", h.ShowContact)
	r.POST("/contact", h.SubmitContact)
	r.GET("/register", h.ShowRegister)
	r.POST("/register", h.Register)
	r.GET("/sign_in", h.ShowSignIn)
	r.POST("/sign_in", h.SignIn)
	r.GET("/sign_out", h.SignOut)

	api := r.Group("/api")
	{
		api.GET("/contacts", h.ListContacts)
	}

	fmt.Println("Server starting on port " + cfg.Port)
	r.Run(":" + cfg.Port)
}
