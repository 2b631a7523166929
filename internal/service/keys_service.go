package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/maheshrc27/content-planner/internal/models"
	"github.com/maheshrc27/content-planner/internal/repository"
	"github.com/maheshrc27/content-planner/pkg/utils"
)

// MaxApiKeys is how many keys a single user may hold.
const MaxApiKeys = 5

const maxKeyNameLength = 64

var (
	ErrTooManyKeys   = fmt.Errorf("Only %d API Keys can be created.", MaxApiKeys)
	ErrKeyNotFound   = errors.New("Key doesn't exist")
	ErrInvalidUserID = errors.New("UserID is not valid")
)

type ApiKeyService interface {
	// Create returns the new key with its secret. It is the only time the
	// secret is handed out.
	Create(ctx context.Context, userID int64, name string) (*models.ApiKey, error)
	List(ctx context.Context, userID int64) ([]*models.ApiKey, error)
	GetUserID(ctx context.Context, apiKey string) (int64, error)
	RemoveAPIKey(ctx context.Context, userID, keyID int64) error
}

type apiKeyService struct {
	k repository.ApiKeyRepository
}

func NewApiKeyService(k repository.ApiKeyRepository) ApiKeyService {
	return &apiKeyService{
		k: k,
	}
}

func (s *apiKeyService) Create(ctx context.Context, userID int64, name string) (*models.ApiKey, error) {
	if userID == 0 {
		return nil, ErrInvalidUserID
	}

	name = sanitizeText(name)
	if len(name) > maxKeyNameLength {
		return nil, validationError("Key name must be at most %d characters", maxKeyNameLength)
	}

	n, err := s.k.CountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if n >= MaxApiKeys {
		slog.Info(ErrTooManyKeys.Error(), "user_id", userID)
		return nil, ErrTooManyKeys
	}

	secret, err := utils.GenerateRandomKey(24)
	if err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("Error generating API key")
	}

	apiKey := &models.ApiKey{
		UserID: userID,
		Name:   name,
		ApiKey: secret,
	}
	if err := s.k.Create(ctx, apiKey); err != nil {
		return nil, fmt.Errorf("Error saving API key")
	}

	slog.Info("api key created", "user_id", userID, "key_id", apiKey.ID)
	return apiKey, nil
}

func (s *apiKeyService) GetUserID(ctx context.Context, apiKey string) (int64, error) {
	userID, isExist, err := s.k.Touch(ctx, apiKey)
	if err != nil {
		return 0, err
	}
	if !isExist {
		return 0, ErrKeyNotFound
	}
	return *userID, nil
}

func (s *apiKeyService) List(ctx context.Context, userID int64) ([]*models.ApiKey, error) {
	apiKeys, err := s.k.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("Error getting API keys")
	}

	out := make([]*models.ApiKey, 0, len(apiKeys))
	for _, k := range apiKeys {
		out = append(out, k.Masked())
	}
	return out, nil
}

func (s *apiKeyService) RemoveAPIKey(ctx context.Context, userID, keyID int64) error {
	if userID == 0 {
		slog.Info(ErrInvalidUserID.Error())
		return ErrInvalidUserID
	}
	if keyID == 0 {
		err := errors.New("KeyID is not valid")
		slog.Info(err.Error())
		return err
	}

	removed, err := s.k.Remove(ctx, keyID, userID)
	if err != nil {
		return err
	}
	if !removed {
		slog.Info(ErrKeyNotFound.Error(), "key_id", keyID)
		return ErrKeyNotFound
	}
	return nil
}
