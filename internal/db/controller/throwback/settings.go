// Package throwback persists the throwback widget settings record.
package throwback

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/throwback-posts/throwback-posts/internal/db/controller/setting"
	"github.com/throwback-posts/throwback-posts/internal/db/models"
	tb "github.com/throwback-posts/throwback-posts/internal/throwback"
)

// Repository reads and writes the settings record stored under tb.SettingsKey.
type Repository struct {
	db *gorm.DB
}

// NewRepository returns a Repository using db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Load returns the stored record, or (nil, nil) when none was saved yet.
// A record that cannot be read or decoded into tb.Settings is reported as
// tb.ErrMalformedSettings.
func (r *Repository) Load(ctx context.Context) (*tb.Settings, error) {
	s, err := setting.Get(r.db.WithContext(ctx), tb.SettingsKey)
	if err != nil {
		switch {
		case errors.Is(err, setting.ErrSettingNotFound):
			return nil, nil
		case errors.Is(err, models.ErrInvalidJSON):
			return nil, fmt.Errorf("%w: %w", tb.ErrMalformedSettings, err)
		}

		return nil, err
	}

	var settings tb.Settings
	if err := json.Unmarshal(s.Value, &settings); err != nil {
		return nil, fmt.Errorf("%w: %w", tb.ErrMalformedSettings, err)
	}

	return &settings, nil
}

// LoadOrDefault returns the stored record or the defaults when none exists.
func (r *Repository) LoadOrDefault(ctx context.Context) (*tb.Settings, error) {
	settings, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}

	if settings == nil {
		return tb.DefaultSettings(), nil
	}

	return settings, nil
}

// Save stores settings, replacing any previous record.
func (r *Repository) Save(ctx context.Context, settings *tb.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}

	_, err = setting.Set(r.db.WithContext(ctx), tb.SettingsKey, datatypes.JSON(data))

	return err
}

// Reset deletes the stored record so the defaults apply again.
func (r *Repository) Reset(ctx context.Context) error {
	err := setting.DeleteByName(r.db.WithContext(ctx), tb.SettingsKey)
	if errors.Is(err, setting.ErrSettingNotFound) {
		return nil
	}

	return err
}
