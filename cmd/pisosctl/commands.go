package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"pisos-tracker/internal/config"
	"pisos-tracker/internal/constants"
	"pisos-tracker/internal/db"
	"pisos-tracker/internal/db/repositories"
	"pisos-tracker/internal/services"
)

// stores holds both database handles opened for one command.
type stores struct {
	orm  *gorm.DB
	sqlx *sqlx.DB
}

// openStores loads configuration and opens both database handles.
func openStores() (*stores, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	return openStoresFor(cfg.Database)
}

func openStoresFor(cfg config.DatabaseConfig) (*stores, error) {
	orm, err := db.OpenORM(cfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	sqlxDB, err := db.OpenSQLX(cfg, orm)
	if err != nil {
		if sqlDB, dbErr := orm.DB(); dbErr == nil {
			sqlDB.Close()
		}
		return nil, fmt.Errorf("open database: %w", err)
	}
	return &stores{orm: orm, sqlx: sqlxDB}, nil
}

// Close releases the gorm pool and, on postgres, the separate sqlx pool.
func (s *stores) Close() error {
	sqlDB, err := s.orm.DB()
	if err != nil {
		return err
	}
	ormErr := sqlDB.Close()
	if s.sqlx.DB == sqlDB {
		return ormErr
	}
	return errors.Join(ormErr, s.sqlx.Close())
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the pisos table and its check constraints if missing",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStores()
			if err != nil {
				return err
			}
			defer st.Close()

			if err := db.EnsureSchema(cmd.Context(), st.orm); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Tabla 'pisos' lista.")
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every listing as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStores()
			if err != nil {
				return err
			}
			defer st.Close()

			export := services.NewExportService(repositories.NewListingRepository(st.orm, nil), nil)
			return runExport(cmd.Context(), export, out, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}

// runExport writes the CSV to path, or to stdout when path is empty.
// No file is created when the table is empty.
func runExport(ctx context.Context, export *services.ExportService, path string, stdout io.Writer) error {
	listings, err := export.Snapshot(ctx)
	if errors.Is(err, services.ErrNothingToExport) {
		return errors.New(constants.MsgNothingToExport)
	}
	if err != nil {
		return err
	}

	if path == "" {
		return services.WriteListingsCSV(stdout, listings)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := services.WriteListingsCSV(f, listings); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%d pisos exportados a %s\n", len(listings), path)
	return nil
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Confirm the pisos table answers and print its row count",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStores()
			if err != nil {
				return err
			}
			defer st.Close()

			count, err := repositories.NewListingStatsRepo(st.sqlx, nil).Count(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "La tabla 'pisos' existe. Total registros: %d\n", count)
			return nil
		},
	}
}
