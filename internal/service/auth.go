package service

import (
	"context"
	"regexp"
	"time"

	"restaurant-backend/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 7 * 24 * time.Hour

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
)

type Claims struct {
	UserID  int    `json:"user_id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

type RegisterRequest struct {
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Password    string    `json:"password"`
	Address     string    `json:"address"`
	BirthDate   time.Time `json:"birth_date"`
	Gender      string    `json:"gender"`
	PhoneNumber string    `json:"phone_number"`
}

type UpdateProfileRequest struct {
	FullName    string    `json:"full_name"`
	Address     string    `json:"address"`
	BirthDate   time.Time `json:"birth_date"`
	Gender      string    `json:"gender"`
	PhoneNumber string    `json:"phone_number"`
}

// AuthService issues and revokes session tokens and resolves callers to
// stable user ids. Revoked token ids live in a shared expiring set, not
// in process memory, so revocation survives restarts and extra replicas.
type AuthService struct {
	users       UserRepository
	blacklist   TokenBlacklist
	jwtSecret   []byte
	adminSecret string
}

func NewAuthService(users UserRepository, blacklist TokenBlacklist, jwtSecret, adminSecret string) *AuthService {
	return &AuthService{
		users:       users,
		blacklist:   blacklist,
		jwtSecret:   []byte(jwtSecret),
		adminSecret: adminSecret,
	}
}

func (s *AuthService) Register(req RegisterRequest, adminSecret string) (*domain.User, error) {
	if !emailPattern.MatchString(req.Email) {
		return nil, domain.ErrInvalidEmail
	}
	if !phonePattern.MatchString(req.PhoneNumber) {
		return nil, domain.ErrInvalidPhone
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Address:      req.Address,
		BirthDate:    req.BirthDate,
		Gender:       req.Gender,
		PhoneNumber:  req.PhoneNumber,
		IsAdmin:      adminSecret != "" && adminSecret == s.adminSecret,
	}
	if err := s.users.CreateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	now := time.Now()
	claims := &Claims{
		UserID:  user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) VerifyToken(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	revoked, err := s.blacklist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, domain.ErrTokenRevoked
	}
	return claims, nil
}

func (s *AuthService) Logout(ctx context.Context, claims *Claims) error {
	until := time.Now().Add(tokenDuration)
	if claims.ExpiresAt != nil {
		until = claims.ExpiresAt.Time
	}
	return s.blacklist.Revoke(ctx, claims.ID, until)
}

func (s *AuthService) GetProfile(email string) (*domain.Profile, error) {
	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	return profileOf(user), nil
}

func (s *AuthService) UpdateProfile(email string, req UpdateProfileRequest) (*domain.Profile, error) {
	if !phonePattern.MatchString(req.PhoneNumber) {
		return nil, domain.ErrInvalidPhone
	}

	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	user.FullName = req.FullName
	user.Address = req.Address
	user.BirthDate = req.BirthDate
	user.Gender = req.Gender
	user.PhoneNumber = req.PhoneNumber

	if err := s.users.UpdateUser(user); err != nil {
		return nil, err
	}
	return profileOf(user), nil
}

func profileOf(user *domain.User) *domain.Profile {
	return &domain.Profile{
		FullName:    user.FullName,
		Email:       user.Email,
		Address:     user.Address,
		BirthDate:   user.BirthDate,
		Gender:      user.Gender,
		PhoneNumber: user.PhoneNumber,
		IsAdmin:     user.IsAdmin,
	}
}

var _ AuthServiceInterface = (*AuthService)(nil)
