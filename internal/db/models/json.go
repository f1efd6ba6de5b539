package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// ErrInvalidJSON is returned when a stored JSON column does not hold valid JSON.
var ErrInvalidJSON = errors.New("invalid json value")

// JSON is a raw JSON document column. It behaves like datatypes.JSON but is
// stored as TEXT on SQLite, where a JSON column has numeric affinity and a bare
// number would come back as an INTEGER.
type JSON datatypes.JSON

// GormDataType implements schema.GormDataTypeInterface.
func (JSON) GormDataType() string {
	return datatypes.JSON{}.GormDataType()
}

// GormDBDataType implements migrator.GormDataTypeInterface.
func (JSON) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "sqlite" {
		return "TEXT"
	}

	return datatypes.JSON{}.GormDBDataType(db, field)
}

// Value implements driver.Valuer.
func (j JSON) Value() (driver.Value, error) {
	return datatypes.JSON(j).Value()
}

// Scan implements sql.Scanner. Numbers from columns created with numeric
// affinity are accepted as their JSON text.
func (j *JSON) Scan(value any) error {
	switch v := value.(type) {
	case int64:
		value = strconv.FormatInt(v, 10)
	case float64:
		value = strconv.FormatFloat(v, 'g', -1, 64)
	}

	var raw datatypes.JSON
	if err := raw.Scan(value); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	if !json.Valid(raw) {
		return fmt.Errorf("%w: %q", ErrInvalidJSON, string(raw))
	}

	*j = JSON(raw)

	return nil
}

// MarshalJSON writes the document as is.
func (j JSON) MarshalJSON() ([]byte, error) {
	return datatypes.JSON(j).MarshalJSON()
}

// UnmarshalJSON stores a copy of data.
func (j *JSON) UnmarshalJSON(data []byte) error {
	return (*datatypes.JSON)(j).UnmarshalJSON(data)
}
