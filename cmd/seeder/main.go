// Command seeder fills the default homepage sections and the starter
// medicine catalog. Existing data is left untouched.
package main

import (
	"context"
	"log"
	"time"

	"github.com/samparc/medical-api/internal/config"
	"github.com/samparc/medical-api/internal/services"
	"github.com/samparc/medical-api/internal/store/backend"
	"github.com/samparc/medical-api/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	utils.PasswordCost = cfg.BcryptCost

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := backend.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to storage: %v", err)
	}
	defer db.Close(ctx)

	if err := services.SeedDefaults(ctx, db); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	if cfg.SeedSellerEmail != "" {
		seller, err := services.EnsureApprovedSeller(ctx, db, services.SeedSeller{
			Name:         cfg.SeedSellerName,
			BusinessName: cfg.SeedSellerBusiness,
			Email:        cfg.SeedSellerEmail,
			Password:     cfg.SeedSellerPassword,
		})
		if err != nil {
			log.Fatalf("Seeding seller failed: %v", err)
		}
		log.Printf("Seed seller %s is %s.", seller.Email, seller.Status)
	}
	log.Println("Seeding complete.")
}
