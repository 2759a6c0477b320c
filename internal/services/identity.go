package services

import (
	"context"
	"errors"
	"time"

	"github.com/denmor86/coffeetime/internal/config"
	"github.com/denmor86/coffeetime/internal/logger"
	"github.com/denmor86/coffeetime/internal/models"
	"github.com/denmor86/coffeetime/internal/storage"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"
)

var (
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrBadCredentials    = errors.New("bad credentials")
	ErrTooManyAttempts   = errors.New("too many authentication attempts")
)

const (
	TokenSecterAlgo     = "HS256"
	TokenExpirationTime = 24 * time.Hour

	// попыток входа в секунду, c небольшим запасом на всплеск
	AuthAttemptsPerSecond = 2
	AuthAttemptsBurst     = 5
)

type IdentityService interface {
	RegisterUser(ctx context.Context, user models.UserRequest) error
	AuthenticateUser(ctx context.Context, user models.UserRequest) (bool, error)
	UpdateAccount(ctx context.Context, login string, account models.AccountRequest) error
	ChangePassword(ctx context.Context, login string, request models.PasswordRequest) error
	GenerateJWT(username string) (string, error)
	GetTokenAuth() *jwtauth.JWTAuth
}

type Identity struct {
	JWTAuth *jwtauth.JWTAuth
	Storage storage.IStorage
	Limiter *rate.Limiter
}

// Создание сервиса
func NewIdentity(cfg config.Config, storage storage.IStorage) IdentityService {
	tokenAuth := jwtauth.New(TokenSecterAlgo, []byte(cfg.JWTSecret), nil)
	return &Identity{
		JWTAuth: tokenAuth,
		Storage: storage,
		Limiter: rate.NewLimiter(rate.Limit(AuthAttemptsPerSecond), AuthAttemptsBurst),
	}
}

// Регистрация нового пользователя
func (i *Identity) RegisterUser(ctx context.Context, user models.UserRequest) error {
	logger.Info("Register user:", user.Login)

	if user.Login == "" || user.Password == "" {
		return ErrBadCredentials
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Error generating password hash", err)
		return err
	}

	err = i.Storage.AddUser(ctx, models.UserData{Login: user.Login, PasswordHash: string(hashedPassword)})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			logger.Warn("User already exist", user.Login)
			return ErrUserAlreadyExists
		}
		logger.Error("Error registering user", user.Login, err)
		return err
	}
	return nil
}

// Аутентификация пользователя. Любая проверка проходит через троттлинг попыток.
func (i *Identity) AuthenticateUser(ctx context.Context, user models.UserRequest) (bool, error) {
	logger.Info("Authenticate user", user.Login)

	if !i.Limiter.Allow() {
		logger.Warn("Authentication throttled", user.Login)
		return false, ErrTooManyAttempts
	}

	data, err := i.Storage.GetUser(ctx, user.Login)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			logger.Warn("Unknown user", user.Login)
			return false, nil
		}
		logger.Error("Error getting user", err)
		return false, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(data.PasswordHash), []byte(user.Password))
	if err != nil {
		logger.Warn("Invalid password", user.Login)
		return false, nil
	}

	logger.Info("User authenticated", user.Login)
	return true, nil
}

// UpdateAccount - изменение имени и почты аккаунта
func (i *Identity) UpdateAccount(ctx context.Context, login string, account models.AccountRequest) error {
	data, err := i.Storage.GetUser(ctx, login)
	if err != nil {
		logger.Error("Error getting user", err)
		return err
	}

	if account.Name != "" {
		data.Name = account.Name
	}
	if account.Email != "" {
		data.Email = account.Email
	}

	return i.Storage.UpdateUser(ctx, *data)
}

// ChangePassword - смена пароля с проверкой текущего
func (i *Identity) ChangePassword(ctx context.Context, login string, request models.PasswordRequest) error {
	if request.New == "" {
		return ErrBadCredentials
	}

	data, err := i.Storage.GetUser(ctx, login)
	if err != nil {
		logger.Error("Error getting user", err)
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(data.PasswordHash), []byte(request.Current)); err != nil {
		logger.Warn("Invalid current password", login)
		return ErrBadCredentials
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.New), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Error generating password hash", err)
		return err
	}

	data.PasswordHash = string(hashedPassword)
	return i.Storage.UpdateUser(ctx, *data)
}

// Создание строки JWT токена
func (i *Identity) GenerateJWT(username string) (string, error) {
	expirationTime := time.Now().Add(TokenExpirationTime)

	_, tokenString, err := i.JWTAuth.Encode(map[string]interface{}{
		"username": username,
		"exp":      expirationTime,
	})
	return tokenString, err
}

// Возвращаем указатель на JWTAuth (chi)
func (i *Identity) GetTokenAuth() *jwtauth.JWTAuth {
	return i.JWTAuth
}
