// Package setting stores named JSON documents in the settings table.
package setting

import (
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/throwback-posts/throwback-posts/internal/db/models"
)

const nameQueryPattern = "name = ?"

var (
	// ErrSettingNotFound is returned when no setting with the given name exists.
	ErrSettingNotFound = errors.New("setting not found")
	// ErrSettingNameEmpty is returned for an empty setting name.
	ErrSettingNameEmpty = errors.New("setting name cannot be empty")
	// ErrSettingAlreadyExists is returned by Create for a name that is taken.
	ErrSettingAlreadyExists = errors.New("setting already exists")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

func check(db *gorm.DB, name string) error {
	if db == nil {
		return ErrDBNil
	}

	if name == "" {
		return ErrSettingNameEmpty
	}

	return nil
}

// Get retrieves a setting by its name.
func Get(db *gorm.DB, name string) (*models.Setting, error) {
	if err := check(db, name); err != nil {
		return nil, err
	}

	var setting models.Setting

	result := db.Where(nameQueryPattern, name).First(&setting)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}

		return nil, result.Error
	}

	return &setting, nil
}

// GetAll retrieves all settings ordered by name.
func GetAll(db *gorm.DB) ([]models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var settings []models.Setting
	if err := db.Order("name").Find(&settings).Error; err != nil {
		return nil, err
	}

	return settings, nil
}

// Create inserts a new setting, failing if the name is already taken.
func Create(db *gorm.DB, name string, value datatypes.JSON) (*models.Setting, error) {
	if err := check(db, name); err != nil {
		return nil, err
	}

	setting := &models.Setting{Name: name, Value: models.JSON(value)}

	result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(setting)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, ErrSettingAlreadyExists
	}

	return setting, nil
}

// Set creates or replaces the value of a setting.
func Set(db *gorm.DB, name string, value datatypes.JSON) (*models.Setting, error) {
	if err := check(db, name); err != nil {
		return nil, err
	}

	var setting models.Setting

	// only the id is read, a stored value that no longer scans must not block its replacement
	result := db.Select("id").Where(nameQueryPattern, name).First(&setting)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return Create(db, name, value)
	}

	if result.Error != nil {
		return nil, result.Error
	}

	setting.Name = name
	setting.Value = models.JSON(value)
	if err := db.Save(&setting).Error; err != nil {
		return nil, err
	}

	return &setting, nil
}

// DeleteByName removes a setting by name.
func DeleteByName(db *gorm.DB, name string) error {
	if err := check(db, name); err != nil {
		return err
	}

	result := db.Where(nameQueryPattern, name).Delete(&models.Setting{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrSettingNotFound
	}

	return nil
}
