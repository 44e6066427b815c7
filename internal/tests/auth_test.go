package tests

import (
	"context"
	"testing"
	"time"

	"restaurant-backend/internal/domain"
	"restaurant-backend/internal/mocks"
	"restaurant-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) (*service.AuthService, *mocks.UserRepository, *mocks.TokenBlacklist) {
	users := mocks.NewUserRepository(t)
	blacklist := mocks.NewTokenBlacklist(t)
	svc := service.NewAuthService(users, blacklist, "test-secret", "admin-key")
	return svc, users, blacklist
}

func TestAuthService_Register(t *testing.T) {
	svc, users, _ := newAuthService(t)

	tests := []struct {
		name          string
		req           service.RegisterRequest
		adminSecret   string
		prepareMocks  func()
		expectedError error
		expectAdmin   bool
	}{
		{
			name: "success",
			req: service.RegisterRequest{
				FullName:    "Ada Lovelace",
				Email:       "ada@example.com",
				Password:    "s3cret",
				PhoneNumber: "+79161234567",
			},
			prepareMocks: func() {
				users.On("CreateUser", mock.MatchedBy(func(u *domain.User) bool {
					if u.Email != "ada@example.com" || u.IsAdmin {
						return false
					}
					return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret")) == nil
				})).Return(nil).Once()
			},
		},
		{
			name: "admin_with_matching_secret",
			req: service.RegisterRequest{
				Email:       "chef@example.com",
				Password:    "s3cret",
				PhoneNumber: "+79161234568",
			},
			adminSecret: "admin-key",
			prepareMocks: func() {
				users.On("CreateUser", mock.MatchedBy(func(u *domain.User) bool {
					return u.IsAdmin
				})).Return(nil).Once()
			},
			expectAdmin: true,
		},
		{
			name: "wrong_admin_secret_registers_plain_user",
			req: service.RegisterRequest{
				Email:       "mallory@example.com",
				Password:    "s3cret",
				PhoneNumber: "+79161234569",
			},
			adminSecret: "guess",
			prepareMocks: func() {
				users.On("CreateUser", mock.MatchedBy(func(u *domain.User) bool {
					return !u.IsAdmin
				})).Return(nil).Once()
			},
		},
		{
			name: "bad_email",
			req: service.RegisterRequest{
				Email:       "not-an-email",
				Password:    "s3cret",
				PhoneNumber: "+79161234567",
			},
			prepareMocks:  func() {},
			expectedError: domain.ErrInvalidEmail,
		},
		{
			name: "bad_phone",
			req: service.RegisterRequest{
				Email:       "ada@example.com",
				Password:    "s3cret",
				PhoneNumber: "0000",
			},
			prepareMocks:  func() {},
			expectedError: domain.ErrInvalidPhone,
		},
		{
			name: "duplicate_email",
			req: service.RegisterRequest{
				Email:       "ada@example.com",
				Password:    "s3cret",
				PhoneNumber: "+79161234567",
			},
			prepareMocks: func() {
				users.On("CreateUser", mock.Anything).Return(domain.ErrEmailTaken).Once()
			},
			expectedError: domain.ErrEmailTaken,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			user, err := svc.Register(testCase.req, testCase.adminSecret)
			assert.ErrorIs(t, err, testCase.expectedError)
			if testCase.expectedError == nil {
				assert.Equal(t, testCase.expectAdmin, user.IsAdmin)
			}
		})
	}
}

func TestAuthService_LoginAndVerify(t *testing.T) {
	svc, users, blacklist := newAuthService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	user := &domain.User{
		ID:           7,
		Email:        "ada@example.com",
		PasswordHash: string(hash),
		IsAdmin:      true,
	}

	ctx := context.Background()

	t.Run("login_then_verify", func(t *testing.T) {
		users.On("GetUserByEmail", "ada@example.com").Return(user, nil).Once()
		blacklist.On("IsRevoked", ctx, mock.AnythingOfType("string")).Return(false, nil).Once()

		token, err := svc.Login("ada@example.com", "s3cret")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := svc.VerifyToken(ctx, token)
		assert.NoError(t, err)
		assert.Equal(t, 7, claims.UserID)
		assert.Equal(t, "ada@example.com", claims.Email)
		assert.True(t, claims.IsAdmin)
		assert.NotEmpty(t, claims.ID)
	})

	t.Run("wrong_password", func(t *testing.T) {
		users.On("GetUserByEmail", "ada@example.com").Return(user, nil).Once()

		_, err := svc.Login("ada@example.com", "nope")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown_email", func(t *testing.T) {
		users.On("GetUserByEmail", "ghost@example.com").Return(nil, domain.ErrUserNotFound).Once()

		_, err := svc.Login("ghost@example.com", "s3cret")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("garbage_token", func(t *testing.T) {
		_, err := svc.VerifyToken(ctx, "definitely.not.a.jwt")
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})

	t.Run("revoked_token_rejected", func(t *testing.T) {
		users.On("GetUserByEmail", "ada@example.com").Return(user, nil).Once()
		blacklist.On("IsRevoked", ctx, mock.AnythingOfType("string")).Return(true, nil).Once()

		token, err := svc.Login("ada@example.com", "s3cret")
		assert.NoError(t, err)

		_, err = svc.VerifyToken(ctx, token)
		assert.ErrorIs(t, err, domain.ErrTokenRevoked)
	})
}

func TestAuthService_Logout(t *testing.T) {
	svc, users, blacklist := newAuthService(t)

	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	user := &domain.User{ID: 7, Email: "ada@example.com", PasswordHash: string(hash)}

	ctx := context.Background()

	users.On("GetUserByEmail", "ada@example.com").Return(user, nil).Once()
	blacklist.On("IsRevoked", ctx, mock.AnythingOfType("string")).Return(false, nil).Once()

	token, err := svc.Login("ada@example.com", "s3cret")
	assert.NoError(t, err)

	claims, err := svc.VerifyToken(ctx, token)
	assert.NoError(t, err)

	blacklist.On("Revoke", ctx, claims.ID, mock.MatchedBy(func(until time.Time) bool {
		// Revocation must outlive the token itself.
		return until.After(time.Now().Add(6 * 24 * time.Hour))
	})).Return(nil).Once()

	assert.NoError(t, svc.Logout(ctx, claims))
}

func TestAuthService_UpdateProfile(t *testing.T) {
	svc, users, _ := newAuthService(t)

	user := &domain.User{ID: 7, Email: "ada@example.com", FullName: "Ada"}

	t.Run("success", func(t *testing.T) {
		users.On("GetUserByEmail", "ada@example.com").Return(user, nil).Once()
		users.On("UpdateUser", mock.MatchedBy(func(u *domain.User) bool {
			return u.FullName == "Ada Lovelace" && u.PhoneNumber == "+79161234567"
		})).Return(nil).Once()

		profile, err := svc.UpdateProfile("ada@example.com", service.UpdateProfileRequest{
			FullName:    "Ada Lovelace",
			PhoneNumber: "+79161234567",
		})
		assert.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", profile.FullName)
	})

	t.Run("bad_phone", func(t *testing.T) {
		_, err := svc.UpdateProfile("ada@example.com", service.UpdateProfileRequest{
			PhoneNumber: "abc",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidPhone)
	})
}
