package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"food-admin/api"
	"food-admin/config"
	"food-admin/console"
	"food-admin/controllers"
	"food-admin/mockapi"
)

func main() {
	var (
		configPath string
		baseURL    string
		mock       bool
	)
	flag.StringVar(&configPath, "config", "", "Path to the YAML configuration file")
	flag.StringVar(&baseURL, "base-url", "", "Override the API base URL")
	flag.BoolVar(&mock, "mock", false, "Run an embedded mock API server and point the client at it")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	if mock {
		store := mockapi.NewStore()
		store.Seed(3, 8)
		server := mockapi.NewServer(store)
		go func() {
			log.Printf("Mock API listening on %s", cfg.MockAddr)
			if err := server.Router().Run(cfg.MockAddr); err != nil {
				log.Fatalf("Mock API server failed: %v", err)
			}
		}()
		cfg.BaseURL = "http://localhost" + cfg.MockAddr
		waitForMock(cfg.BaseURL)
	}

	client, err := api.NewClient(api.Config{
		BaseURL:           cfg.BaseURL,
		Timeout:           cfg.Timeout,
		RequestsPerSecond: cfg.RequestsPerSecond,
	})
	if err != nil {
		log.Fatalf("Failed to create API client: %v", err)
	}

	users := controllers.NewUserController(client)
	items := controllers.NewItemController(client)
	cart := controllers.NewCartController(client)
	orders := controllers.NewOrderController(client, cfg.PollInterval, cfg.SimulateDelay)
	orders.SetSimulate(cfg.SimulateStatus)

	log.Printf("Connected to %s", cfg.BaseURL)
	con := console.New(cfg, users, items, cart, orders, os.Stdin, os.Stdout)
	if err := con.Run(context.Background()); err != nil {
		log.Fatalf("Console failed: %v", err)
	}
}

// waitForMock blocks until the embedded mock server answers its
// health endpoint, so the first data load does not race the listener.
func waitForMock(baseURL string) {
	for i := 0; i < 50; i++ {
		resp, err := http.Get(baseURL + "/health")
		if err == nil {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
	log.Println("Warning: mock API did not become ready in time")
}
