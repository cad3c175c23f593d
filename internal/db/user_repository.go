package db

import (
	"time"

	"github.com/pallasgreen/issuedesk/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByIDWithIssues(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.
		Preload("CreatedIssues", func(query *gorm.DB) *gorm.DB {
			return query.Order("created_at ASC, id ASC")
		}).
		First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("lower(trim(email)) = ?", email).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("lower(trim(email)) = ?", email).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) UpdateByID(userID uint, updates map[string]any) (int64, error) {
	result := repo.database.Model(&models.User{}).Where("id = ?", userID).Updates(updates)
	return result.RowsAffected, result.Error
}

func (repo *UserRepository) UpdatePassword(userID uint, passwordHash string) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Update("password_hash", passwordHash).Error
}

func (repo *UserRepository) SetResetToken(userID uint, tokenHash string, expire time.Time) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]any{
		"reset_password_token":  tokenHash,
		"reset_password_expire": expire,
	}).Error
}

// ConsumePasswordReset sets the new hash and clears both reset columns in one
// guarded update, so a token can only ever be spent once.
func (repo *UserRepository) ConsumePasswordReset(tokenHash string, now time.Time, passwordHash string) (int64, error) {
	result := repo.database.Model(&models.User{}).
		Where("reset_password_token = ? AND reset_password_expire IS NOT NULL AND reset_password_expire > ?", tokenHash, now).
		Updates(map[string]any{
			"password_hash":         passwordHash,
			"reset_password_token":  "",
			"reset_password_expire": nil,
		})
	return result.RowsAffected, result.Error
}

func (repo *UserRepository) DeleteByID(userID uint) (int64, error) {
	result := repo.database.Delete(&models.User{}, userID)
	return result.RowsAffected, result.Error
}
