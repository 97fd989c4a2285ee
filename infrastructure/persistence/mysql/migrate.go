package mysql

import (
	"fmt"

	"userdir/infrastructure/persistence/mysql/po"

	"gorm.io/gorm"
)

// AutoMigrate creates or alters the users table.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&po.UserPO{}); err != nil {
		return fmt.Errorf("auto migrate users: %w", err)
	}
	return nil
}
