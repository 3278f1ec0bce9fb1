package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gin-giftregistry/constants"
	"gin-giftregistry/models"
	"gin-giftregistry/repositories"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(name string, email string, password string) (*models.User, error)
	Login(email string, password string) (*Session, error)
	GetUserFromToken(tokenString string) (*models.User, error)
	Logout(tokenString string) error
	EnsureAdmin(password string) (bool, error)
	CleanExpiredSessions() (int64, error)
}

type AuthSettings struct {
	SecretKey  string
	SessionTTL time.Duration
	AdminEmail string
	BcryptCost int
}

// Session is a signed session token together with its expiry.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

type AuthService struct {
	repository      repositories.IAuthRepository
	tokenRepository repositories.ITokenRepository
	settings        AuthSettings
	now             func() time.Time
}

func NewAuthService(repository repositories.IAuthRepository, tokenRepository repositories.ITokenRepository, settings AuthSettings) IAuthService {
	if settings.BcryptCost == 0 {
		settings.BcryptCost = bcrypt.DefaultCost
	}
	if settings.SessionTTL <= 0 {
		settings.SessionTTL = 24 * time.Hour
	}
	settings.AdminEmail = NormalizeEmail(settings.AdminEmail)
	return &AuthService{
		repository:      repository,
		tokenRepository: tokenRepository,
		settings:        settings,
		now:             time.Now,
	}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) roleFor(email string) string {
	if email == s.settings.AdminEmail {
		return constants.RoleParent
	}
	return constants.RoleMember
}

func (s *AuthService) Register(name string, email string, password string) (*models.User, error) {
	email = NormalizeEmail(email)

	_, err := s.repository.FindUser(email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.settings.BcryptCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         s.roleFor(email),
	}
	if err := s.repository.CreateUser(&user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}

// Login never reveals whether the email or the password was wrong.
func (s *AuthService) Login(email string, password string) (*Session, error) {
	foundUser, err := s.repository.FindUser(NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.createSession(foundUser.ID)
}

func (s *AuthService) createSession(userID uint) (*Session, error) {
	now := s.now()
	expiresAt := now.Add(s.settings.SessionTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   strconv.FormatUint(uint64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})

	tokenString, err := token.SignedString([]byte(s.settings.SecretKey))
	if err != nil {
		return nil, err
	}
	return &Session{Token: tokenString, ExpiresAt: expiresAt}, nil
}

func (s *AuthService) parseToken(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return []byte(s.settings.SecretKey), nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	if claims.ID == "" {
		return nil, fmt.Errorf("%w: missing session id", ErrInvalidSession)
	}
	return claims, nil
}

func (s *AuthService) GetUserFromToken(tokenString string) (*models.User, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return nil, err
	}

	// ログアウト済みのセッションかチェック
	isBlacklisted, err := s.tokenRepository.IsTokenBlacklisted(claims.ID)
	if err != nil {
		return nil, err
	}
	if isBlacklisted {
		return nil, fmt.Errorf("%w: session is logged out", ErrInvalidSession)
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad subject", ErrInvalidSession)
	}
	user, err := s.repository.FindUserByID(uint(userID))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: unknown user", ErrInvalidSession)
		}
		return nil, err
	}
	return user, nil
}

// Logout blacklists the session id until the token would have expired anyway.
func (s *AuthService) Logout(tokenString string) error {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return err
	}
	return s.tokenRepository.AddBlacklistedToken(claims.ID, claims.ExpiresAt.Time)
}

// EnsureAdmin creates the bootstrap parent account when it does not exist.
// It reports whether an account was created.
func (s *AuthService) EnsureAdmin(password string) (bool, error) {
	_, err := s.repository.FindUser(s.settings.AdminEmail)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return false, err
	}

	if _, err := s.Register(constants.AdminName, s.settings.AdminEmail, password); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *AuthService) CleanExpiredSessions() (int64, error) {
	return s.tokenRepository.CleanExpiredTokens(s.now())
}
