package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/mactanair/airline-backend/internal/models"
	"github.com/mactanair/airline-backend/pkg/utils"
)

type RegisterPassengerInput struct {
	Username      string        `json:"username" binding:"required"`
	FirstName     string        `json:"first_name" binding:"required"`
	LastName      string        `json:"last_name" binding:"required"`
	Password      string        `json:"password" binding:"required,min=6"`
	Email         string        `json:"email" binding:"required,email"`
	ContactNumber string        `json:"contact_number" binding:"required"`
	Gender        models.Gender `json:"gender" binding:"required,oneof=M F O"`
	Address       string        `json:"address" binding:"required"`
}

type UserInput struct {
	Username  string `json:"username" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
}

type RegisterAdminInput struct {
	AdminCodes []string  `json:"admin_codes" binding:"required,min=1"`
	User       UserInput `json:"user" binding:"required"`
}

type AccountService interface {
	RegisterPassenger(in RegisterPassengerInput) (*models.Passenger, error)
	RegisterAdmin(in RegisterAdminInput) ([]models.Admin, error)
	Login(username, password string) (*models.User, string, error)
	AdminLogin(username, password string) (*models.User, string, error)
	Logout(tokenKey string) error
	Authenticate(tokenKey string) (*models.User, error)
	ToggleStaff(id uint) (bool, error)
	ToggleActive(id uint) (bool, error)
	ListUsers() ([]models.User, error)
	ListPassengers() ([]models.Passenger, error)
}

type accountService struct {
	db         *gorm.DB
	adminCodes []string
}

func NewAccountService(db *gorm.DB, adminCodes []string) AccountService {
	return &accountService{db: db, adminCodes: adminCodes}
}

var _ AccountService = (*accountService)(nil)

// ValidateAdminCodes checks every supplied code against the configured
// allow-list. One bad code fails the whole batch.
func ValidateAdminCodes(codes, allowed []string) error {
	if len(codes) == 0 {
		return invalid("admin_codes must not be empty")
	}
	valid := make(map[string]bool, len(allowed))
	for _, code := range allowed {
		valid[code] = true
	}
	for _, code := range codes {
		if !valid[code] {
			return invalid("invalid admin code: %s", code)
		}
	}
	return nil
}

// RegisterPassenger creates the account and its Passenger profile in one
// transaction so a failure never leaves a half-created account behind.
func (s *accountService) RegisterPassenger(in RegisterPassengerInput) (*models.Passenger, error) {
	passenger := &models.Passenger{
		ContactNumber: in.ContactNumber,
		Gender:        in.Gender,
		Address:       in.Address,
	}
	if err := passenger.Validate(); err != nil {
		return nil, invalid("%v", err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		user, err := createUser(tx, UserInput{
			Username:  in.Username,
			FirstName: in.FirstName,
			LastName:  in.LastName,
			Email:     in.Email,
			Password:  in.Password,
		})
		if err != nil {
			return err
		}
		passenger.UserID = user.ID
		if err := tx.Create(passenger).Error; err != nil {
			return err
		}
		passenger.User = *user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return passenger, nil
}

// RegisterAdmin validates the full code batch up front, then creates one
// account and one Admin record per code inside a single transaction.
func (s *accountService) RegisterAdmin(in RegisterAdminInput) ([]models.Admin, error) {
	if err := ValidateAdminCodes(in.AdminCodes, s.adminCodes); err != nil {
		return nil, err
	}

	var admins []models.Admin
	err := s.db.Transaction(func(tx *gorm.DB) error {
		user, err := createUser(tx, in.User)
		if err != nil {
			return err
		}
		for _, code := range in.AdminCodes {
			admin := models.Admin{UserID: user.ID, AdminCode: code}
			if err := tx.Create(&admin).Error; err != nil {
				return err
			}
			admins = append(admins, admin)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return admins, nil
}

func createUser(tx *gorm.DB, in UserInput) (*models.User, error) {
	var existing models.User
	if err := tx.Where("username = ?", in.Username).First(&existing).Error; err == nil {
		return nil, ErrUsernameTaken
	}

	user := models.User{
		Username:  in.Username,
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Password:  in.Password,
		IsActive:  true,
	}
	if err := user.HashPassword(); err != nil {
		return nil, err
	}
	if err := tx.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *accountService) Login(username, password string) (*models.User, string, error) {
	user, err := s.checkCredentials(username, password)
	if err != nil {
		return nil, "", err
	}
	return s.finishLogin(user)
}

// AdminLogin requires the account to be both active and staff, and reports
// the same error as a wrong password when it is not.
func (s *accountService) AdminLogin(username, password string) (*models.User, string, error) {
	user, err := s.checkCredentials(username, password)
	if err != nil {
		return nil, "", err
	}
	if !user.IsStaff {
		return nil, "", ErrInvalidCredentials
	}
	return s.finishLogin(user)
}

func (s *accountService) checkCredentials(username, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := user.CheckPassword(password); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func (s *accountService) finishLogin(user *models.User) (*models.User, string, error) {
	key, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	now := time.Now()
	user.LastLogin = &now
	if err := s.db.Model(user).Update("last_login", now).Error; err != nil {
		return nil, "", err
	}
	return user, key, nil
}

// issueToken returns the account's persistent token, minting a new one only
// when none exists or the stored one no longer validates.
func (s *accountService) issueToken(user *models.User) (string, error) {
	var token models.AuthToken
	err := s.db.Where("user_id = ?", user.ID).First(&token).Error
	if err == nil {
		if parsed, perr := utils.ValidateToken(token.Key); perr == nil && parsed.Valid {
			return token.Key, nil
		}
		key, kerr := utils.GenerateToken(user)
		if kerr != nil {
			return "", kerr
		}
		token.Key = key
		if err := s.db.Save(&token).Error; err != nil {
			return "", err
		}
		return key, nil
	}

	key, err := utils.GenerateToken(user)
	if err != nil {
		return "", err
	}
	token = models.AuthToken{UserID: user.ID, Key: key}
	if err := s.db.Create(&token).Error; err != nil {
		return "", err
	}
	return key, nil
}

// Logout revokes the token by deleting its row.
func (s *accountService) Logout(tokenKey string) error {
	result := s.db.Where("key = ?", tokenKey).Delete(&models.AuthToken{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Authenticate resolves a bearer token to an active account: the signature
// must validate, the token row must still exist, and the account must be
// active.
func (s *accountService) Authenticate(tokenKey string) (*models.User, error) {
	parsed, err := utils.ValidateToken(tokenKey)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidCredentials
	}
	userID, ok := utils.TokenUserID(parsed)
	if !ok {
		return nil, ErrInvalidCredentials
	}

	var token models.AuthToken
	if err := s.db.Where("user_id = ? AND key = ?", userID, tokenKey).First(&token).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func (s *accountService) ToggleStaff(id uint) (bool, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return false, translate(err)
	}
	user.IsStaff = !user.IsStaff
	if err := s.db.Model(&user).Update("is_staff", user.IsStaff).Error; err != nil {
		return false, err
	}
	return user.IsStaff, nil
}

func (s *accountService) ToggleActive(id uint) (bool, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return false, translate(err)
	}
	user.IsActive = !user.IsActive
	if err := s.db.Model(&user).Update("is_active", user.IsActive).Error; err != nil {
		return false, err
	}
	return user.IsActive, nil
}

func (s *accountService) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *accountService) ListPassengers() ([]models.Passenger, error) {
	var passengers []models.Passenger
	if err := s.db.Preload("User").Order("id").Find(&passengers).Error; err != nil {
		return nil, err
	}
	return passengers, nil
}
