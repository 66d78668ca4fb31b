package store

import (
	"github.com/MKhiriev/go-fundraiser/internal/logger"
	"github.com/MKhiriev/go-fundraiser/internal/utils"
)

// Storages aggregates every repository of the server.
type Storages struct {
	UserRepository     UserRepository
	CategoryRepository CategoryRepository
	CampaignRepository CampaignRepository
}

// NewStorages builds all repositories over one connection pool.
func NewStorages(db *DB, codec CredentialEncoder, log *logger.Logger) *Storages {
	ids := utils.NewUUIDGenerator()

	return &Storages{
		UserRepository:     NewUserRepository(db, codec, ids, log),
		CategoryRepository: NewCategoryRepository(db, ids, log),
		CampaignRepository: NewCampaignRepository(db, ids, log),
	}
}
