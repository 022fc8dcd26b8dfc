package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fitbite/internal/auth"
	domainerrors "fitbite/internal/errors"
	"fitbite/internal/model"
)

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		input         RegisterInput
		setupMock     func(*MockUserRepository, *MockCartRepository)
		expectedError error
		checkUser     func(*testing.T, *model.User)
	}{
		{
			name: "successful registration creates the user and an empty cart",
			input: RegisterInput{
				Name:     "Maria Lopez",
				Email:    "maria@example.com",
				Password: "password123",
				RUT:      "12.345.678-5",
				Phone:    "+56911112222",
				Address:  "Av. Italia 850",
				Commune:  "Providencia",
				Region:   "Metropolitana",
			},
			setupMock: func(mu *MockUserRepository, mc *MockCartRepository) {
				mu.On("FindByEmail", mock.Anything, "maria@example.com").Return(nil, gorm.ErrRecordNotFound)
				mu.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Run(func(args mock.Arguments) {
					args.Get(1).(*model.User).ID = 7
				}).Return(nil)
				mc.On("Create", mock.Anything, mock.MatchedBy(func(cart *model.Cart) bool {
					return cart.UserID == 7
				})).Return(nil)
			},
			checkUser: func(t *testing.T, user *model.User) {
				assert.Equal(t, model.RoleCustomer, user.Role)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, "password123", user.PasswordHash)
			},
		},
		{
			name: "missing region defaults to Metropolitana",
			input: RegisterInput{
				Name:     "Pedro Soto",
				Email:    "pedro@example.com",
				Password: "password123",
				RUT:      "8.888.888-K",
			},
			setupMock: func(mu *MockUserRepository, mc *MockCartRepository) {
				mu.On("FindByEmail", mock.Anything, "pedro@example.com").Return(nil, gorm.ErrRecordNotFound)
				mu.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
				mc.On("Create", mock.Anything, mock.AnythingOfType("*model.Cart")).Return(nil)
			},
			checkUser: func(t *testing.T, user *model.User) {
				assert.Equal(t, "Metropolitana", user.Region)
			},
		},
		{
			name: "duplicate email is rejected",
			input: RegisterInput{
				Name:     "Maria Lopez",
				Email:    "maria@example.com",
				Password: "password123",
			},
			setupMock: func(mu *MockUserRepository, mc *MockCartRepository) {
				mu.On("FindByEmail", mock.Anything, "maria@example.com").Return(&model.User{ID: 1, Email: "maria@example.com"}, nil)
			},
			expectedError: domainerrors.ErrDuplicateEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserRepo := new(MockUserRepository)
			mockCartRepo := new(MockCartRepository)
			tt.setupMock(mockUserRepo, mockCartRepo)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockUserRepo, mockCartRepo, jwtService, new(MockTokenStore))

			user, err := service.Register(context.Background(), tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				if tt.checkUser != nil {
					tt.checkUser(t, user)
				}
			}
			mockUserRepo.AssertExpectations(t)
			mockCartRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository, *MockTokenStore)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "maria@example.com",
			password: "password123",
			setupMock: func(mu *MockUserRepository, mt *MockTokenStore) {
				mu.On("FindByEmail", mock.Anything, "maria@example.com").Return(&model.User{
					ID:           7,
					Email:        "maria@example.com",
					PasswordHash: string(hashedPassword),
					Role:         model.RoleCustomer,
				}, nil)
				mt.On("StoreRefreshToken", mock.Anything, mock.Anything, uint(7), "maria@example.com", mock.Anything).Return(nil)
			},
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "password123",
			setupMock: func(mu *MockUserRepository, mt *MockTokenStore) {
				mu.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "maria@example.com",
			password: "wrong",
			setupMock: func(mu *MockUserRepository, mt *MockTokenStore) {
				mu.On("FindByEmail", mock.Anything, "maria@example.com").Return(&model.User{
					ID:           7,
					Email:        "maria@example.com",
					PasswordHash: string(hashedPassword),
				}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserRepo := new(MockUserRepository)
			mockTokenStore := new(MockTokenStore)
			tt.setupMock(mockUserRepo, mockTokenStore)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockUserRepo, new(MockCartRepository), jwtService, mockTokenStore)

			accessToken, refreshToken, user, err := service.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, accessToken)
				assert.Empty(t, refreshToken)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, accessToken)
				assert.NotEmpty(t, refreshToken)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)

				claims, err := jwtService.ValidateToken(accessToken)
				assert.NoError(t, err)
				assert.Equal(t, uint(7), claims.UserID)
				assert.Equal(t, model.RoleCustomer, claims.Role)
			}
			mockUserRepo.AssertExpectations(t)
			mockTokenStore.AssertExpectations(t)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")

	t.Run("valid refresh token yields a new access token", func(t *testing.T) {
		tokenID, refreshToken, err := jwtService.GenerateRefreshToken(7, "maria@example.com", model.RoleCustomer)
		assert.NoError(t, err)

		mockTokenStore := new(MockTokenStore)
		mockTokenStore.On("GetRefreshToken", mock.Anything, tokenID).Return(uint(7), "maria@example.com", nil)

		service := NewAuthService(new(MockUserRepository), new(MockCartRepository), jwtService, mockTokenStore)
		accessToken, err := service.RefreshToken(context.Background(), refreshToken)

		assert.NoError(t, err)
		assert.NotEmpty(t, accessToken)
		mockTokenStore.AssertExpectations(t)
	})

	t.Run("token unknown to the store is rejected", func(t *testing.T) {
		tokenID, refreshToken, err := jwtService.GenerateRefreshToken(7, "maria@example.com", model.RoleCustomer)
		assert.NoError(t, err)

		mockTokenStore := new(MockTokenStore)
		mockTokenStore.On("GetRefreshToken", mock.Anything, tokenID).Return(uint(0), "", assert.AnError)

		service := NewAuthService(new(MockUserRepository), new(MockCartRepository), jwtService, mockTokenStore)
		accessToken, err := service.RefreshToken(context.Background(), refreshToken)

		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
		assert.Empty(t, accessToken)
		mockTokenStore.AssertExpectations(t)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		service := NewAuthService(new(MockUserRepository), new(MockCartRepository), jwtService, new(MockTokenStore))
		accessToken, err := service.RefreshToken(context.Background(), "not-a-jwt")

		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
		assert.Empty(t, accessToken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	tokenID, refreshToken, err := jwtService.GenerateRefreshToken(7, "maria@example.com", model.RoleCustomer)
	assert.NoError(t, err)

	mockTokenStore := new(MockTokenStore)
	mockTokenStore.On("DeleteRefreshToken", mock.Anything, tokenID).Return(nil)

	service := NewAuthService(new(MockUserRepository), new(MockCartRepository), jwtService, mockTokenStore)
	assert.NoError(t, service.Logout(context.Background(), refreshToken))
	mockTokenStore.AssertExpectations(t)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	t.Run("only supplied fields change", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		mockUserRepo.On("FindByID", mock.Anything, uint(7)).Return(&model.User{
			ID:      7,
			Name:    "Maria Lopez",
			Phone:   "+56911112222",
			Commune: "Providencia",
		}, nil)
		mockUserRepo.On("Update", mock.Anything, mock.MatchedBy(func(user *model.User) bool {
			return user.Phone == "+56933334444" && user.Name == "Maria Lopez"
		})).Return(nil)

		service := NewAuthService(mockUserRepo, new(MockCartRepository), auth.NewJWTService("test-secret"), new(MockTokenStore))
		user, err := service.UpdateProfile(context.Background(), 7, ProfilePatch{Phone: strPtr("+56933334444")})

		assert.NoError(t, err)
		assert.Equal(t, "+56933334444", user.Phone)
		assert.Equal(t, "Providencia", user.Commune)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		mockUserRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		service := NewAuthService(mockUserRepo, new(MockCartRepository), auth.NewJWTService("test-secret"), new(MockTokenStore))
		user, err := service.UpdateProfile(context.Background(), 99, ProfilePatch{Phone: strPtr("+56933334444")})

		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
		assert.Nil(t, user)
		mockUserRepo.AssertExpectations(t)
	})
}
