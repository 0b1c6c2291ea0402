package seed

import (
	"context"
	"errors"
	"fmt"

	appModels "github.com/genius/elearning/internal/app/models"
	"github.com/genius/elearning/internal/config"
	"github.com/genius/elearning/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// LevelStore is the part of the educational level repository the seeder needs
type LevelStore interface {
	CreateIfMissing(ctx context.Context, level *appModels.EducationalLevel) (bool, error)
}

// UserStore is the part of the user repository the seeder needs
type UserStore interface {
	RoleExists(ctx context.Context, role appModels.Role) (bool, error)
	Create(ctx context.Context, user *appModels.User) error
}

// DefaultLevels are the school grades available on a fresh install
var DefaultLevels = []appModels.EducationalLevel{
	{Name: "First Preparatory", NameAr: "اولي اعدادي", Level: appModels.StagePrep, Year: 1, Order: 1, IsActive: true},
	{Name: "Second Preparatory", NameAr: "تانيه اعدادي", Level: appModels.StagePrep, Year: 2, Order: 2, IsActive: true},
	{Name: "Third Preparatory", NameAr: "تالته اعدادي", Level: appModels.StagePrep, Year: 3, Order: 3, IsActive: true},
	{Name: "First Secondary", NameAr: "اولي ثانوي", Level: appModels.StageSecondary, Year: 1, Order: 4, IsActive: true},
	{Name: "Second Secondary", NameAr: "تانيه ثانوي", Level: appModels.StageSecondary, Year: 2, Order: 5, IsActive: true},
	{Name: "Third Secondary", NameAr: "تالته ثانوي", Level: appModels.StageSecondary, Year: 3, Order: 6, IsActive: true},
}

// CreateDefaultData seeds educational levels and the first admin account if they don't exist.
// Errors are collected so one failed row does not stop the others.
func CreateDefaultData(ctx context.Context, levels LevelStore, users UserStore, admin config.SeedConfig, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (educational levels/admin)...")
	var finalErr error

	created := 0
	for i := range DefaultLevels {
		level := DefaultLevels[i]
		added, err := levels.CreateIfMissing(ctx, &level)
		if err != nil {
			lgr.Error().Err(err).Str("level", level.Name).Msg("Error creating educational level")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if added {
			created++
		}
	}
	lgr.Info().Int("created", created).Msg("Educational levels checked")

	if err := createAdmin(ctx, users, admin, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}

func createAdmin(ctx context.Context, users UserStore, admin config.SeedConfig, lgr zerolog.Logger) error {
	exists, err := users.RoleExists(ctx, appModels.RoleAdmin)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if an admin user exists")
		return err
	}
	if exists {
		lgr.Info().Msg("Admin user already exists, skipping creation")
		return nil
	}
	if admin.AdminPhone == "" || admin.AdminPassword == "" {
		lgr.Warn().Msg("No admin user and no seed credentials configured, skipping admin creation")
		return nil
	}

	hashedPassword, err := auth.HashPassword(admin.AdminPassword)
	if err != nil {
		return fmt.Errorf("error hashing admin password: %w", err)
	}

	user := &appModels.User{
		Name:          admin.AdminName,
		Phone:         admin.AdminPhone,
		GuardianPhone: admin.AdminPhone,
		Gender:        appModels.GenderMale,
		Password:      hashedPassword,
		Role:          appModels.RoleAdmin,
		Permissions:   []string{},
	}
	if err := users.Create(ctx, user); err != nil {
		lgr.Error().Err(err).Msg("Error creating admin user")
		return err
	}

	lgr.Info().Int64("adminID", user.ID).Msg("Default admin user created successfully")
	return nil
}
