package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/drawpath/config"
	"github.com/katalvlaran/drawpath/web"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	cfgPath := os.Getenv("DRAWPATH_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/drawpath.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("No config file at %s (%v), using defaults", cfgPath, err)
		cfg = config.FromEnv()
	}

	srv := web.NewServer(cfg)
	r := srv.SetupRouter()

	log.Printf("Starting drawpath on %s", cfg.Server.Address)
	if err := r.Run(cfg.Server.Address); err != nil {
		log.Fatal(err)
	}
}
