package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"log"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/cargoview/opsdash/internal/config"
	"github.com/cargoview/opsdash/internal/domain"
	"github.com/cargoview/opsdash/internal/repository/postgres"
)

// Registers a company and mints its operator API key. The key is printed
// once; only the bcrypt hash is stored.
func main() {
	name := flag.String("name", "", "company display name")
	customerNumber := flag.String("customer-number", "", "customer code carried in shipment business data")
	flag.Parse()

	if *name == "" || *customerNumber == "" {
		log.Fatal("usage: create-company -name <name> -customer-number <code>")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	db, err := postgres.Open(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	keyBytes := make([]byte, 32)
	if _, err := rand.Read(keyBytes); err != nil {
		log.Fatalf("failed to generate API key: %v", err)
	}
	apiKey := hex.EncodeToString(keyBytes)

	hash, err := bcrypt.GenerateFromPassword([]byte(apiKey), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash API key: %v", err)
	}

	repos := postgres.NewRepositories(db, logger)
	company := &domain.Company{
		CustomerNumber: *customerNumber,
		CustomerName:   *name,
		APIKeyHash:     string(hash),
		IsActive:       true,
	}
	if err := repos.Company.Create(context.Background(), company); err != nil {
		log.Fatalf("failed to create company: %v", err)
	}

	fmt.Printf("Company created:\n")
	fmt.Printf("  ID:              %s\n", company.ID)
	fmt.Printf("  Customer number: %s\n", company.CustomerNumber)
	fmt.Printf("  API key:         %s\n", apiKey)
	fmt.Println("Store the API key now; it cannot be recovered later.")
}
