package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"menu_orders/internal/models"
	"menu_orders/internal/redis"
	"menu_orders/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// AuthService is the identity-service collaborator: it resolves bearer
// tokens to application users and administers identity accounts.
type AuthService interface {
	Register(email, password string) (*models.Identity, error)
	Login(email, password string) (string, error)
	ResolveToken(token string) (*models.User, error)
	RequireSuperadmin(token string) (*models.User, error)
	DeleteIdentity(identityID string) error
}

type authService struct {
	identityRepo repository.IdentityRepository
	userRepo     repository.UserRepository
	redis        *redis.Client
	tokenTTL     time.Duration
}

func NewAuthService(identityRepo repository.IdentityRepository, userRepo repository.UserRepository, redisClient *redis.Client, tokenTTL time.Duration) AuthService {
	return &authService{
		identityRepo: identityRepo,
		userRepo:     userRepo,
		redis:        redisClient,
		tokenTTL:     tokenTTL,
	}
}

func (s *authService) Register(email, password string) (*models.Identity, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	identity := &models.Identity{
		ID:           randomID(),
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.identityRepo.Create(identity); err != nil {
		return nil, err
	}
	return identity, nil
}

func (s *authService) Login(email, password string) (string, error) {
	identity, err := s.identityRepo.GetByEmail(email)
	if err != nil {
		return "", ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)); err != nil {
		return "", ErrUnauthorized
	}

	token := randomID()
	record := &redis.TokenRecord{
		IdentityID: identity.ID,
		Email:      identity.Email,
		IssuedAt:   time.Now(),
	}
	if err := s.redis.SetToken(token, record, s.tokenTTL); err != nil {
		return "", fmt.Errorf("failed to store token: %w", err)
	}

	return token, nil
}

// ResolveToken maps a bearer token to the application user behind it. Any
// failure along the way reads as invalid credentials.
func (s *authService) ResolveToken(token string) (*models.User, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	record, err := s.redis.GetToken(token)
	if err != nil {
		return nil, ErrUnauthorized
	}

	user, err := s.userRepo.GetByIdentityID(record.IdentityID)
	if err != nil {
		return nil, ErrUnauthorized
	}

	return user, nil
}

// RequireSuperadmin is the shared gate in front of every privileged
// operation; it runs before any data is touched.
func (s *authService) RequireSuperadmin(token string) (*models.User, error) {
	user, err := s.ResolveToken(token)
	if err != nil {
		return nil, err
	}

	if user.Role != string(models.SuperAdmin) {
		return nil, ErrForbidden
	}

	return user, nil
}

func (s *authService) DeleteIdentity(identityID string) error {
	return s.identityRepo.Delete(identityID)
}

func randomID() string {
	buf := make([]byte, 16)
	rand.Read(buf)
	return hex.EncodeToString(buf)
}
