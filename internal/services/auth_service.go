package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/brunovieira/advocase/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and password
	// mismatch so a caller cannot tell which check failed.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken covers malformed, forged and expired tokens alike.
	ErrInvalidToken = errors.New("invalid token")
)

// TokenTTL is the absolute validity window of an issued token. Tokens are
// stateless: a leaked token stays valid until expiry regardless of password
// changes.
const TokenTTL = 30 * 24 * time.Hour

type AuthAccountRepository interface {
	ExistsByEmail(email string) (bool, error)
	FindByEmail(email string) (models.Account, error)
	FindByID(id string) (models.Account, error)
	Create(account *models.Account) error
}

type AuthService struct {
	accounts  AuthAccountRepository
	secretKey []byte
}

func NewAuthService(accounts AuthAccountRepository, secretKey []byte) *AuthService {
	return &AuthService{accounts: accounts, secretKey: secretKey}
}

type accountClaims struct {
	AccountID string `json:"uid"`
	jwt.RegisteredClaims
}

func (service *AuthService) Register(email string, password string, name string, now time.Time) (models.Account, string, error) {
	exists, err := service.accounts.ExistsByEmail(email)
	if err != nil {
		return models.Account{}, "", err
	}
	if exists {
		return models.Account{}, "", ErrEmailTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Account{}, "", err
	}

	account := models.Account{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(passwordHash),
		Name:         name,
		CreatedAt:    now,
	}
	if err := service.accounts.Create(&account); err != nil {
		return models.Account{}, "", err
	}

	token, err := service.IssueToken(account.ID, now)
	if err != nil {
		return models.Account{}, "", err
	}
	return account, token, nil
}

func (service *AuthService) Login(email string, password string, now time.Time) (models.Account, string, error) {
	account, err := service.accounts.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Account{}, "", ErrInvalidCredentials
		}
		return models.Account{}, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return models.Account{}, "", ErrInvalidCredentials
	}

	token, err := service.IssueToken(account.ID, now)
	if err != nil {
		return models.Account{}, "", err
	}
	return account, token, nil
}

func (service *AuthService) IssueToken(accountID string, now time.Time) (string, error) {
	return service.issueToken(accountID, now, TokenTTL)
}

func (service *AuthService) issueToken(accountID string, now time.Time, ttl time.Duration) (string, error) {
	claims := accountClaims{
		AccountID: accountID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(service.secretKey)
}

// Authenticate verifies a bearer token and returns the embedded account id.
func (service *AuthService) Authenticate(rawToken string) (string, error) {
	claims := &accountClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return service.secretKey, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	// The parser rejects expired tokens; a token without exp would never
	// expire, so it is refused outright.
	if claims.ExpiresAt == nil {
		return "", ErrInvalidToken
	}
	if claims.AccountID == "" {
		return "", ErrInvalidToken
	}
	return claims.AccountID, nil
}
