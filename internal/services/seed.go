package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/samparc/medical-api/internal/models"
	"github.com/samparc/medical-api/internal/store"
	"github.com/samparc/medical-api/internal/utils"
)

// SeedSeller describes the in-house seller account kept approved at startup.
type SeedSeller struct {
	Name         string
	BusinessName string
	Email        string
	Password     string
}

// EnsureApprovedSeller registers the seller when missing and approves it when
// it exists in any other state.
func EnsureApprovedSeller(ctx context.Context, sellers store.SellerStore, seed SeedSeller) (*models.Seller, error) {
	email := strings.ToLower(strings.TrimSpace(seed.Email))
	existing, err := sellers.GetSellerByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.Status != models.SellerApproved {
			if err := sellers.UpdateSellerStatus(ctx, existing.ID, models.SellerApproved); err != nil {
				return nil, fmt.Errorf("approve seed seller: %w", err)
			}
			existing.Status = models.SellerApproved
			log.Printf("Seed seller %s approved.", email)
		}
		return existing, nil
	case !errors.Is(err, store.ErrNotFound):
		return nil, fmt.Errorf("look up seed seller: %w", err)
	}

	hash, err := utils.HashPassword(seed.Password)
	if err != nil {
		return nil, fmt.Errorf("hash seed seller password: %w", err)
	}
	seller := &models.Seller{
		Name:               seed.Name,
		BusinessName:       seed.BusinessName,
		Email:              email,
		PasswordHash:       hash,
		Status:             models.SellerApproved,
		DocumentsSubmitted: []string{},
		CreatedAt:          time.Now().UTC(),
	}
	if err := sellers.CreateSeller(ctx, seller); err != nil {
		return nil, fmt.Errorf("create seed seller: %w", err)
	}
	log.Printf("Seed seller %s registered and approved.", email)
	return seller, nil
}

// DefaultContent is the homepage copy written by the seeder when a section is empty.
var DefaultContent = map[string]string{
	models.SectionHero:          "Your Health is Our Top Priority",
	models.SectionAbout:         "SAMPARC MEDICAL has served the Malavli community with accessible, quality healthcare from its campus near Malavali Railway Station.",
	models.SectionServices:      "General medicine, 24/7 emergency care, pharmacy, diagnostics, pathology and vaccination under one roof.",
	models.SectionAnnouncements: "OPD is open 8:00 AM to 8:00 PM, Monday to Saturday. Emergency services are available 24/7.",
}

// DefaultCatalog is the starter pharmacy catalog. Prices are in paise.
var DefaultCatalog = []models.Medicine{
	{Name: "Paracetamol 500mg", Description: "Fever and mild pain relief, strip of 10 tablets.", Category: "Analgesics", Price: 2500, Available: true},
	{Name: "Amoxicillin 250mg", Description: "Broad spectrum antibiotic, strip of 10 capsules. Prescription required.", Category: "Antibiotics", Price: 8900, Available: true},
	{Name: "Cetirizine 10mg", Description: "Antihistamine for allergies, strip of 10 tablets.", Category: "Antiallergics", Price: 1800, Available: true},
	{Name: "ORS Sachet", Description: "Oral rehydration salts, 21g sachet.", Category: "Supplements", Price: 2100, Available: true},
	{Name: "Metformin 500mg", Description: "Blood sugar control, strip of 15 tablets. Prescription required.", Category: "Antidiabetics", Price: 3200, Available: true},
	{Name: "Cough Syrup 100ml", Description: "Relief from dry cough.", Category: "Respiratory", Price: 9500, Available: false},
}

// SeedDefaults writes missing content sections and, when the catalog is
// empty, the starter medicines.
func SeedDefaults(ctx context.Context, s store.Store) error {
	for section, content := range DefaultContent {
		_, err := s.GetContent(ctx, section)
		if err == nil {
			continue
		}
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}
		if err := s.PutContent(ctx, &models.ContentSection{Section: section, Content: content, UpdatedAt: time.Now().UTC()}); err != nil {
			return err
		}
		log.Printf("Seeded content section %q.", section)
	}

	existing, err := s.ListMedicines(ctx, models.MedicineFilter{})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Printf("Catalog already has %d medicines, skipping.", len(existing))
		return nil
	}
	for _, m := range DefaultCatalog {
		m := m
		if err := s.CreateMedicine(ctx, &m); err != nil {
			return err
		}
	}
	log.Printf("Seeded %d medicines.", len(DefaultCatalog))
	return nil
}
