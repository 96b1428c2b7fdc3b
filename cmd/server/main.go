package main

import (
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"bazaar-sim/internal/api"
	"bazaar-sim/internal/catalog"
	"bazaar-sim/internal/config"
)

func main() {
	// Load .env file from parent directory, falling back to the current one.
	if err := godotenv.Load("../.env"); err != nil {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("💡 No .env file found, using environment variables only")
		}
	} else {
		log.Println("✅ Loaded environment from ../.env")
	}

	log.Println("🎲 ================================")
	log.Println("🎲  BAZAAR-SIM - COMBAT ENGINE")
	log.Println("🎲 ================================")

	appConfig := config.Load()
	log.Printf("🛡️  Resource limits: %d iterations/request, %d dispatch queue depth",
		appConfig.Limits.MaxIterationsPerRequest, appConfig.Limits.MaxDispatchQueue)
	log.Printf("⚙️  Worker pool: %d goroutines", appConfig.Server.WorkerCount)

	cards := catalog.Builtin()
	if packPath := os.Getenv("CARD_PACK_PATH"); packPath != "" {
		loaded, err := catalog.Load(packPath)
		if err != nil {
			log.Fatalf("❌ failed to load card pack %s: %v", packPath, err)
		}
		cards = loaded
		log.Printf("📦 Loaded card pack: %s", packPath)
	}
	log.Printf("📖 Catalog ready: %d cards", len(cards.Names()))

	// Start the loopback-only pprof/metrics debug server.
	debugCfg := api.DefaultObservabilityConfig()
	if os.Getenv("DISABLE_DEBUG_SERVER") != "true" {
		if err := api.StartDebugServer(debugCfg); err != nil {
			log.Printf("⚠️ Debug server disabled: %v", err)
		}
	}

	server := api.NewServer(cards, appConfig)

	addr := ":" + strconv.Itoa(appConfig.Server.Port)
	go func() {
		if err := server.Start(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	log.Println("✅ Server ready! Press Ctrl+C to stop.")
	<-quit

	log.Println("🛑 Shutting down...")
	server.Stop()
	log.Println("👋 Goodbye!")
}

