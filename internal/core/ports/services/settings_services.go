package services

import (
	"context"

	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/domain"
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/dto"
)

// SettingsSvcFacade manages per-user configuration. Settings are loaded on
// demand and handed to computations as explicit values.
type SettingsSvcFacade interface {
	// GetSettings retrieves the caller's settings, creating defaults on
	// first access.
	GetSettings(ctx context.Context, userID string) (*domain.Settings, error)

	// UpdateSettings fully replaces the caller's settings row.
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, userID string) (*domain.Settings, error)
}
