// Package userrepo provides data transfer objects and mapping functions for
// user persistence. Translator language skills live in a companion table so
// the notification fan-out can match languages in SQL.
package userrepo

import (
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user aggregates.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Email     string `gorm:"index"`
	Phone     string
	Role      int `gorm:"index"`
	PushToken string

	Languages []UserLanguageDTO `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// UserLanguageDTO is one language in a translator's skill set.
type UserLanguageDTO struct {
	UserID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Language string    `gorm:"type:varchar(8);primaryKey;index"`
}

// TableName specifies the database table name for user language skills.
func (UserLanguageDTO) TableName() string {
	return "user_languages"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	languages := make([]UserLanguageDTO, 0, len(aggregate.Languages()))
	for _, language := range aggregate.Languages() {
		languages = append(languages, UserLanguageDTO{
			UserID:   aggregate.ID().Bytes(),
			Language: language.Code(),
		})
	}

	return UserDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Email:     aggregate.Email(),
		Phone:     aggregate.Phone(),
		Role:      int(aggregate.Role()),
		PushToken: aggregate.PushToken(),
		Languages: languages,
	}
}

// toDomain converts a database DTO to a user domain aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	languages := make([]kernel.Language, 0, len(dto.Languages))
	for _, languageDTO := range dto.Languages {
		language, langErr := kernel.NewLanguage(languageDTO.Language)
		if langErr != nil {
			return nil, langErr
		}
		languages = append(languages, language)
	}

	return user.RestoreUser(
		id,
		dto.Name,
		dto.Email,
		dto.Phone,
		user.Role(dto.Role),
		languages,
		dto.PushToken,
	)
}
