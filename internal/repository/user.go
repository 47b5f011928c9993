package repository

import (
	"errors"

	"gorm.io/gorm"

	"surveyhub/internal/config"
	"surveyhub/internal/database"
	"surveyhub/internal/models"
)

// Register inserts a new user. The second registration of a username fails
// with ErrDuplicateUsername and leaves no partial state behind.
func Register(username, password string, isAdmin bool) (int, error) {
	hashed, err := models.HashPassword(password)
	if err != nil {
		return 0, err
	}

	user := models.User{
		Username: username,
		Password: hashed,
		IsAdmin:  isAdmin,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, ErrDuplicateUsername
		}
		return 0, err
	}
	return user.ID, nil
}

// ValidateLogin reports whether the credentials match a stored user. The
// error is non-nil only for persistence failures, never for a bad login.
func ValidateLogin(username, password string) (bool, error) {
	user, err := GetUserByName(username)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.CheckPassword(password), nil
}

// IsAdmin reports whether the named user holds the admin flag.
// Unknown users are simply not admins.
func IsAdmin(username string) (bool, error) {
	user, err := GetUserByName(username)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.IsAdmin, nil
}

// GetUserByName fetches a user row by username.
func GetUserByName(username string) (*models.User, error) {
	var user models.User
	err := database.DB.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserID resolves a username to its id, or ErrNotFound.
func GetUserID(username string) (int, error) {
	user, err := GetUserByName(username)
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}

// ListUsers returns every user ordered by id.
func ListUsers() ([]models.User, error) {
	var users []models.User
	err := database.DB.Order("id").Find(&users).Error
	return users, err
}

// DeleteUser removes a user account. Survey authors are refused rather than
// cascaded, since their surveys stay meaningful to respondents; the user's
// own responses and answers are cascade-deleted. The bootstrap admin is
// always refused.
func DeleteUser(id int) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if config.Conf != nil && user.Username == config.Conf.Bootstrap.AdminUsername {
			return ErrAdminProtected
		}

		var authored int64
		if err := tx.Model(&models.Survey{}).Where("creator_id = ?", id).Count(&authored).Error; err != nil {
			return err
		}
		if authored > 0 {
			return ErrUserHasSurveys
		}

		var responseIDs []int
		if err := tx.Model(&models.Response{}).Where("respondent_id = ?", id).Pluck("id", &responseIDs).Error; err != nil {
			return err
		}
		if len(responseIDs) > 0 {
			if err := tx.Where("response_id IN ?", responseIDs).Delete(&models.Answer{}).Error; err != nil {
				return err
			}
			if err := tx.Where("respondent_id = ?", id).Delete(&models.Response{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.User{}, id).Error
	})
}
