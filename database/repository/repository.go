package repository

import (
	"context"
	"database/sql"
	"fmt"

	"xoadvisor/config"
	"xoadvisor/database"
	accountRepo "xoadvisor/database/repository/account"
	inquiryRepo "xoadvisor/database/repository/inquiry"
	profileRepo "xoadvisor/database/repository/profile"
	resourceRepo "xoadvisor/database/repository/resource"
	roleRepo "xoadvisor/database/repository/role"

	"go.mongodb.org/mongo-driver/mongo"
)

// Re-export the repository interfaces.
type (
	ResourceRepository = resourceRepo.ResourceRepository
	ProfileRepository  = profileRepo.ProfileRepository
	InquiryRepository  = inquiryRepo.InquiryRepository
	RoleRepository     = roleRepo.RoleRepository
	AccountRepository  = accountRepo.AccountRepository
)

// Store bundles one repository per table of the selected backend.
type Store struct {
	Resources ResourceRepository
	Profiles  ProfileRepository
	Inquiries InquiryRepository
	Roles     RoleRepository
	Accounts  AccountRepository
}

type indexer interface {
	EnsureIndexes(ctx context.Context) error
}

// NewMongoStore wires the MongoDB repositories and creates their indexes.
func NewMongoStore(ctx context.Context, db *mongo.Database) (*Store, error) {
	resources := resourceRepo.NewMongoResourceRepo(db)
	profiles := profileRepo.NewMongoProfileRepo(db)
	inquiries := inquiryRepo.NewMongoInquiryRepo(db)
	roles := roleRepo.NewMongoRoleRepo(db)
	accounts := accountRepo.NewMongoAccountRepo(db)

	for _, ix := range []indexer{resources, profiles, inquiries, roles, accounts} {
		if err := ix.EnsureIndexes(ctx); err != nil {
			return nil, fmt.Errorf("mongo store: %w", err)
		}
	}

	return &Store{
		Resources: resources,
		Profiles:  profiles,
		Inquiries: inquiries,
		Roles:     roles,
		Accounts:  accounts,
	}, nil
}

// NewPostgresStore wires the PostgreSQL repositories. The schema is created
// by database.InitPostgres.
func NewPostgresStore(db *sql.DB) *Store {
	return &Store{
		Resources: resourceRepo.NewPostgresResourceRepo(db),
		Profiles:  profileRepo.NewPostgresProfileRepo(db),
		Inquiries: inquiryRepo.NewPostgresInquiryRepo(db),
		Roles:     roleRepo.NewPostgresRoleRepo(db),
		Accounts:  accountRepo.NewPostgresAccountRepo(db),
	}
}

// Open connects to the backend named by DB_DRIVER and returns its store
// with a probe for the health monitor.
func Open(ctx context.Context) (*Store, func(context.Context) error, error) {
	switch config.AppConfig.DBDriver {
	case config.DriverPostgres:
		database.InitPostgres()
		return NewPostgresStore(database.PostgresDB), database.PingPostgres, nil
	case config.DriverMongo, "":
		database.InitDB()
		store, err := NewMongoStore(ctx, database.MongoDatabase())
		if err != nil {
			return nil, nil, err
		}
		return store, database.PingMongo, nil
	default:
		return nil, nil, fmt.Errorf("unknown DB_DRIVER %q", config.AppConfig.DBDriver)
	}
}
