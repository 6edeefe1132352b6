package db

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	models "pisos-tracker/internal/models/gorm"
)

// EnsureSchema creates the pisos table with its check constraints when it is
// missing. Running it again on an existing table is a no-op.
func EnsureSchema(ctx context.Context, db *gorm.DB) error {
	m := db.WithContext(ctx).Migrator()

	if !m.HasTable(&models.Listing{}) {
		if err := m.CreateTable(&models.Listing{}); err != nil {
			return fmt.Errorf("create table pisos: %w", err)
		}
		return nil
	}

	for _, name := range []string{"chk_pisos_superficie", "chk_pisos_precio"} {
		if m.HasConstraint(&models.Listing{}, name) {
			continue
		}
		if err := m.CreateConstraint(&models.Listing{}, name); err != nil {
			return fmt.Errorf("add constraint %s: %w", name, err)
		}
	}
	return nil
}
