package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"

	config "github.com/maheshrc27/content-planner/configs"
	"github.com/maheshrc27/content-planner/internal/models"
	"github.com/maheshrc27/content-planner/internal/repository"
	"github.com/maheshrc27/content-planner/internal/transfer"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googleoauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

type AuthService interface {
	AuthCodeURL(state string) string
	LoginCallback(ctx context.Context, code string) (int64, error)
}

type authService struct {
	cfg      config.Config
	u        repository.UserRepository
	oauth2   *oauth2.Config
	exchange func(ctx context.Context, code string) (*oauth2.Token, error)
	userInfo func(ctx context.Context, token *oauth2.Token) (*transfer.GoogleUserInfo, error)
}

func NewAuthService(cfg config.Config, u repository.UserRepository) AuthService {
	oauth2Config := &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURI,
		Scopes:       []string{googleoauth2.UserinfoEmailScope, googleoauth2.UserinfoProfileScope},
		Endpoint:     google.Endpoint,
	}

	s := &authService{
		cfg:    cfg,
		u:      u,
		oauth2: oauth2Config,
	}
	s.exchange = func(ctx context.Context, code string) (*oauth2.Token, error) {
		return oauth2Config.Exchange(ctx, code)
	}
	s.userInfo = s.googleUserInfo
	return s
}

func (s *authService) AuthCodeURL(state string) string {
	return s.oauth2.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

func (s *authService) LoginCallback(ctx context.Context, code string) (int64, error) {
	if code == "" {
		err := errors.New("code or state is empty")
		slog.Info(err.Error())
		return 0, err
	}

	if s.oauth2.ClientID == "" || s.oauth2.ClientSecret == "" || s.oauth2.RedirectURL == "" {
		err := errors.New("OAuth2 configuration is incomplete")
		slog.Info(err.Error())
		return 0, err
	}

	token, err := s.exchange(ctx, code)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	info, err := s.userInfo(ctx, token)
	if err != nil {
		return 0, err
	}
	if info.Email == "" {
		err = errors.New("Google account has no email")
		slog.Info(err.Error())
		return 0, err
	}

	user, isExist, err := s.u.GetByEmail(ctx, info.Email)
	if err != nil {
		return 0, err
	}
	if isExist && user.GoogleID != "" {
		if user.Name != info.Name || user.ProfilePicture != info.Picture {
			user.Name = info.Name
			user.ProfilePicture = info.Picture
			if err := s.u.Update(ctx, user); err != nil {
				slog.Warn("refreshing profile failed", "user_id", user.ID, "error", err)
			}
		}
		return user.ID, nil
	}

	role := models.RoleUser
	if s.isAdminEmail(info.Email) {
		role = models.RoleAdmin
	}

	userID, err := s.u.Create(ctx, nil, &models.User{
		GoogleID:       info.ID,
		Email:          info.Email,
		Name:           info.Name,
		ProfilePicture: info.Picture,
		Role:           role,
	})
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	slog.Info("user signed up", "user_id", userID, "role", role)
	return userID, nil
}

func (s *authService) isAdminEmail(email string) bool {
	return slices.ContainsFunc(s.cfg.AdminEmails, func(e string) bool {
		return strings.EqualFold(e, email)
	})
}

func (s *authService) googleUserInfo(ctx context.Context, token *oauth2.Token) (*transfer.GoogleUserInfo, error) {
	svc, err := googleoauth2.NewService(ctx, option.WithTokenSource(s.oauth2.TokenSource(ctx, token)))
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return &transfer.GoogleUserInfo{
		ID:      info.Id,
		Email:   info.Email,
		Name:    info.Name,
		Picture: info.Picture,
	}, nil
}
