package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList stores an ordered list of strings as a JSON column.
type StringList []string

// Value implements driver.Valuer.
func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		s = StringList{}
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner.
func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("unsupported type %T for StringList", value)
	}
}

// GormDataType tells GORM to migrate the column as JSON.
func (StringList) GormDataType() string {
	return "json"
}

// LanguageFamily groups related languages. Reference data, rarely mutated.
type LanguageFamily struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;size:255;not null"`
}

// Language is a catalog entry. A language may belong to zero or one family.
type Language struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	Name             string     `json:"name" gorm:"size:255;not null;index"`
	Description      string     `json:"description" gorm:"type:text"` // origin and history
	NumSpeakers      uint64     `json:"num_speakers"`
	Words            StringList `json:"words"` // example words, order preserved
	LanguageFamilyID *uint      `json:"language_family_id"`

	Family *LanguageFamily `json:"-" gorm:"foreignKey:LanguageFamilyID;constraint:OnDelete:SET NULL"`
}

// LanguageView is a Language joined with its family name for list/detail reads.
type LanguageView struct {
	ID               uint       `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	NumSpeakers      uint64     `json:"num_speakers"`
	Words            StringList `json:"words"`
	LanguageFamilyID *uint      `json:"language_family_id"`
	FamilyName       *string    `json:"family_name"`
}

// Fluency is static reference data ("Beginner".."Native"), read-only via the API.
type Fluency struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;size:255;not null"`
}
