package repositories

import (
	"fmt"

	"github.com/FlatBushZombies/quickhands/internal/entities"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DbContext struct {
	DB *gorm.DB
}

func NewDbContext(connectionString string) (*DbContext, error) {
	db, err := gorm.Open(sqlite.Open(connectionString), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}

	return &DbContext{DB: db}, nil
}

func (c *DbContext) Migrate() error {
	err := c.DB.AutoMigrate(entities.User{})
	if err != nil {
		return fmt.Errorf("failed to migrate User entity: %w", err)
	}

	err = c.DB.AutoMigrate(entities.ServiceRequest{})
	if err != nil {
		return fmt.Errorf("failed to migrate ServiceRequest entity: %w", err)
	}

	err = c.DB.AutoMigrate(entities.Application{})
	if err != nil {
		return fmt.Errorf("failed to migrate Application entity: %w", err)
	}

	err = c.DB.AutoMigrate(entities.Notification{})
	if err != nil {
		return fmt.Errorf("failed to migrate Notification entity: %w", err)
	}

	// Uniqueness of (job, applicant) is enforced by the database, not by the
	// pre-checks in the service layer.
	if err = c.DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_job_applicant ON applications (job_id, freelancer_clerk_id);").
		Error; err != nil {
		return fmt.Errorf("failed to create application index: %w", err)
	}

	return nil
}

func (c *DbContext) Close() error {
	db, err := c.DB.DB()
	if err != nil {
		return err
	}

	return db.Close()
}
