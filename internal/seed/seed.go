// Package seed creates default data after migrations run.
package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/rahulm/campusdesk/internal/app/models"
	"github.com/rahulm/campusdesk/internal/app/repositories"
	"github.com/rahulm/campusdesk/internal/pkg/auth"
)

const (
	defaultSuperAdminUsername = "admin"
	defaultSuperAdminPassword = "admin123"
)

// CreateDefaultData seeds a default superadmin account when none exists so a
// fresh install can be administered immediately.
func CreateDefaultData(ctx context.Context, pool *pgxpool.Pool, lgr zerolog.Logger) error {
	accountRepo := repositories.NewAccountRepository(pool)

	exists, err := accountRepo.SuperAdminExists(ctx)
	if err != nil {
		return fmt.Errorf("failed to check for existing superadmin: %w", err)
	}
	if exists {
		lgr.Debug().Msg("Superadmin account already present, skipping seed")
		return nil
	}

	passwordHash, err := auth.HashPassword(defaultSuperAdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash default superadmin password: %w", err)
	}

	account := &models.Account{
		Username:     defaultSuperAdminUsername,
		PasswordHash: passwordHash,
		Role:         models.RoleSuperAdmin,
		IsActive:     true,
	}
	if _, err := accountRepo.Create(ctx, pool, account); err != nil {
		return fmt.Errorf("failed to create default superadmin: %w", err)
	}

	lgr.Warn().
		Str("username", defaultSuperAdminUsername).
		Msg("Default superadmin account created with a well-known password, change it immediately")
	return nil
}
