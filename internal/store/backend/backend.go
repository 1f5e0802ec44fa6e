// Package backend opens the store.Store selected by STORAGE_DRIVER.
package backend

import (
	"context"
	"fmt"
	"log"

	"github.com/samparc/medical-api/internal/config"
	"github.com/samparc/medical-api/internal/store"
	"github.com/samparc/medical-api/internal/store/mongostore"
	"github.com/samparc/medical-api/internal/store/sqlstore"
)

func Open(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.StorageDriver {
	case "mongo":
		s, err := mongostore.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		log.Println("Successfully connected to MongoDB!")
		return s, nil
	case "postgres", "sqlite":
		s, err := sqlstore.Open(cfg.StorageDriver, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		if err := s.Ping(ctx); err != nil {
			_ = s.Close(ctx)
			return nil, fmt.Errorf("ping %s: %w", cfg.StorageDriver, err)
		}
		log.Printf("Successfully connected to %s!", cfg.StorageDriver)
		return s, nil
	}
	return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
}
