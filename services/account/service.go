package account

import (
	"fmt"
	"strings"
	"time"

	contractorRepo "contracthub/database/repository/contractor"
	userRepo "contracthub/database/repository/user"
	"contracthub/models"
	"contracthub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// RegisterInput is the signup payload.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// AuthResult couples the persisted user with a signed session token.
type AuthResult struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// Service is the thin credential collaborator: it turns signups and logins
// into authenticated actors for the core. Registering a contractor role also
// creates the contractor profile, per the ownership model.
type Service interface {
	Register(input RegisterInput) (*AuthResult, error)
	Login(email, password string) (*AuthResult, error)
}

// DefaultService implements Service.
type DefaultService struct {
	Users       userRepo.UserRepository
	Contractors contractorRepo.ContractorRepository
	Logger      *zap.Logger
}

func (s *DefaultService) Register(input RegisterInput) (*AuthResult, error) {
	if input.Name == "" || input.Email == "" {
		return nil, utils.NewValidationError("name and email are required")
	}
	if len(input.Password) < 6 {
		return nil, utils.NewValidationError("password must be at least 6 characters")
	}
	role, ok := models.ParseRole(input.Role)
	if !ok || role == models.RoleAdmin {
		return nil, utils.NewValidationError("role must be client or contractor")
	}

	existing, err := s.Users.GetByEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &utils.ConflictError{Message: "email already registered"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        strings.ToLower(input.Email),
		PasswordHash: string(hash),
		Role:         role,
		Phone:        input.Phone,
		Address:      input.Address,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Users.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if role == models.RoleContractor {
		availability := make(map[string]models.DayAvailability, len(models.WeekdayKeys))
		for _, day := range models.WeekdayKeys {
			availability[day] = models.DayAvailability{}
		}
		contractor := &models.Contractor{
			ID:           uuid.New().String(),
			UserID:       user.ID,
			Services:     []models.ServiceOffering{},
			Availability: availability,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := s.Contractors.Create(contractor); err != nil {
			return nil, fmt.Errorf("failed to create contractor profile: %w", err)
		}
	}

	token, err := utils.GenerateToken(user.ID, string(user.Role), tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.Logger.Info("user registered",
		zap.String("userId", user.ID),
		zap.String("role", string(user.Role)),
	)
	return &AuthResult{User: user, Token: token}, nil
}

func (s *DefaultService) Login(email, password string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, utils.NewValidationError("email and password are required")
	}

	user, err := s.Users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &utils.AuthorizationError{Message: "invalid credentials"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, &utils.AuthorizationError{Message: "invalid credentials"}
	}

	token, err := utils.GenerateToken(user.ID, string(user.Role), tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &AuthResult{User: user, Token: token}, nil
}
