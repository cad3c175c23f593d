package services

import (
	"errors"
	"strings"
	"time"

	"github.com/pallasgreen/issuedesk/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrDuplicateEmail         = errors.New("user already exists with this email")
	ErrUserNotFound           = errors.New("user not found")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidCurrentPassword = errors.New("current password is incorrect")
	ErrInvalidOrExpiredToken  = errors.New("invalid or expired reset token")
)

type AccountUserRepository interface {
	FindByID(userID uint) (models.User, error)
	FindByIDWithIssues(userID uint) (models.User, error)
	FindByNormalizedEmail(email string) (models.User, error)
	ExistsByNormalizedEmail(email string) (bool, error)
	Create(user *models.User) error
	UpdateByID(userID uint, updates map[string]any) (int64, error)
	UpdatePassword(userID uint, passwordHash string) error
	SetResetToken(userID uint, tokenHash string, expire time.Time) error
	ConsumePasswordReset(tokenHash string, now time.Time, passwordHash string) (int64, error)
	DeleteByID(userID uint) (int64, error)
}

type AccountService struct {
	users AccountUserRepository
}

func NewAccountService(users AccountUserRepository) *AccountService {
	return &AccountService{users: users}
}

type RegisterInput struct {
	Firstname string
	Lastname  string
	Email     string
	Password  string
	Role      string
}

// ProfileUpdate carries only the fields the caller supplied; nil means "leave
// unchanged".
type ProfileUpdate struct {
	Firstname *string
	Lastname  *string
	Email     *string
	Avatar    *string
}

func (service *AccountService) Register(input RegisterInput) (models.User, error) {
	firstname, err := ValidateFirstname(input.Firstname)
	if err != nil {
		return models.User{}, err
	}
	lastname, err := ValidateLastname(input.Lastname)
	if err != nil {
		return models.User{}, err
	}
	email := NormalizeAccountEmail(input.Email)
	if email == "" {
		return models.User{}, ErrEmailInvalid
	}
	if err := ValidatePasswordLength(input.Password); err != nil {
		return models.User{}, err
	}
	role, err := ValidateRole(input.Role)
	if err != nil {
		return models.User{}, err
	}

	exists, err := service.users.ExistsByNormalizedEmail(email)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, ErrDuplicateEmail
	}

	passwordHash, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	now := time.Now()
	user := models.User{
		Firstname:    firstname,
		Lastname:     lastname,
		Email:        email,
		PasswordHash: passwordHash,
		Avatar:       models.DefaultAvatar,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := service.users.Create(&user); err != nil {
		// The unique index resolves concurrent signups with the same email.
		if isUniqueConstraintError(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return user, nil
}

// Authenticate deliberately returns the same failure for an unknown email and
// a wrong password, so responses cannot be used to enumerate accounts.
func (service *AccountService) Authenticate(emailRaw string, password string) (models.User, error) {
	email := NormalizeAccountEmail(emailRaw)
	if email == "" || password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	user, err := service.users.FindByNormalizedEmail(email)
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if !VerifyPassword(&user, password) {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func VerifyPassword(user *models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), bcryptInput(password)) == nil
}

func (service *AccountService) FindByID(userID uint) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrUserNotFound
	}
	return user, err
}

// ProfileByID loads the record with its created issues populated for the
// profile payload.
func (service *AccountService) ProfileByID(userID uint) (models.User, error) {
	user, err := service.users.FindByIDWithIssues(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrUserNotFound
	}
	return user, err
}

func (service *AccountService) UpdateProfile(userID uint, update ProfileUpdate) (models.User, error) {
	current, err := service.FindByID(userID)
	if err != nil {
		return models.User{}, err
	}

	updates := map[string]any{}
	if update.Firstname != nil {
		firstname, err := ValidateFirstname(*update.Firstname)
		if err != nil {
			return models.User{}, err
		}
		updates["firstname"] = firstname
	}
	if update.Lastname != nil {
		lastname, err := ValidateLastname(*update.Lastname)
		if err != nil {
			return models.User{}, err
		}
		updates["lastname"] = lastname
	}
	if update.Email != nil {
		email := NormalizeAccountEmail(*update.Email)
		if email == "" {
			return models.User{}, ErrEmailInvalid
		}
		if email != current.Email {
			exists, err := service.users.ExistsByNormalizedEmail(email)
			if err != nil {
				return models.User{}, err
			}
			if exists {
				return models.User{}, ErrDuplicateEmail
			}
		}
		updates["email"] = email
	}
	if update.Avatar != nil {
		updates["avatar"] = *update.Avatar
	}

	if len(updates) == 0 {
		return current, nil
	}
	updates["updated_at"] = time.Now()

	if _, err := service.users.UpdateByID(userID, updates); err != nil {
		if isUniqueConstraintError(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return service.FindByID(userID)
}

// ChangePassword never touches the stored hash unless the current password
// verifies, and hashes the replacement exactly once.
func (service *AccountService) ChangePassword(userID uint, currentPassword string, newPassword string) error {
	user, err := service.FindByID(userID)
	if err != nil {
		return err
	}
	if !VerifyPassword(&user, currentPassword) {
		return ErrInvalidCurrentPassword
	}
	if err := ValidatePasswordLength(newPassword); err != nil {
		return err
	}
	if currentPassword == newPassword {
		// Nothing changed, so the stored hash stays as it is.
		return nil
	}

	passwordHash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	return service.users.UpdatePassword(userID, passwordHash)
}

// IssueResetToken stores only the token hash with its expiry and returns the
// raw token; delivery to the account holder is the caller's concern.
func (service *AccountService) IssueResetToken(emailRaw string) (string, error) {
	email := NormalizeAccountEmail(emailRaw)
	if email == "" {
		return "", ErrUserNotFound
	}
	user, err := service.users.FindByNormalizedEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrUserNotFound
	}
	if err != nil {
		return "", err
	}

	rawToken, tokenHash, err := GenerateResetToken()
	if err != nil {
		return "", err
	}
	if err := service.users.SetResetToken(user.ID, tokenHash, time.Now().Add(ResetTokenTTL)); err != nil {
		return "", err
	}
	return rawToken, nil
}

func (service *AccountService) ConsumeResetToken(rawToken string, newPassword string) error {
	if strings.TrimSpace(rawToken) == "" {
		return ErrInvalidOrExpiredToken
	}
	if err := ValidatePasswordLength(newPassword); err != nil {
		return err
	}

	passwordHash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	affected, err := service.users.ConsumePasswordReset(HashResetToken(rawToken), time.Now(), passwordHash)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrInvalidOrExpiredToken
	}
	return nil
}

func (service *AccountService) DeleteAccount(userID uint) error {
	affected, err := service.users.DeleteByID(userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(strings.ToUpper(err.Error()), "UNIQUE")
}
