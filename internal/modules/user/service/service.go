package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/campuskit/campus-portal/internal/entity"
	"github.com/campuskit/campus-portal/internal/modules/user/dto"
	"github.com/campuskit/campus-portal/internal/modules/user/repository"
	"github.com/campuskit/campus-portal/internal/ratelimit"
	"github.com/campuskit/campus-portal/internal/token"
	"github.com/campuskit/campus-portal/pkg/apperror"
	"github.com/campuskit/campus-portal/pkg/validator"
)

const loginAction = "login"

type AuthService interface {
	Login(ctx context.Context, input dto.LoginInput, clientIP string) (*dto.AuthResponse, error)
	CreateUser(ctx context.Context, input dto.CreateUserInput) (*entity.User, error)
}

type authService struct {
	repo         repository.UserRepository
	codec        *token.Codec
	rdb          *redis.Client
	loginLockout time.Duration
}

func NewAuthService(repo repository.UserRepository, codec *token.Codec, rdb *redis.Client, loginLockout time.Duration) AuthService {
	return &authService{
		repo:         repo,
		codec:        codec,
		rdb:          rdb,
		loginLockout: loginLockout,
	}
}

func (s *authService) Login(ctx context.Context, input dto.LoginInput, clientIP string) (*dto.AuthResponse, error) {
	// Keyed per email+IP so one account's failures never lock out other
	// accounts behind the same address.
	limiterKey := fmt.Sprintf("%s|%s", input.Email, clientIP)

	allowed, err := ratelimit.CheckAndSet(ctx, s.rdb, limiterKey, loginAction, s.loginLockout)
	if err != nil {
		// Redis being down must not lock everyone out.
		log.Printf("login rate limit check failed: %v", err)
	} else if !allowed {
		msg := "too many login attempts, try again later"
		if ttl, terr := ratelimit.TTL(ctx, s.rdb, limiterKey, loginAction); terr == nil && ttl > 0 {
			msg = fmt.Sprintf("too many login attempts, try again in %s", ttl.Round(time.Second))
		}
		return nil, apperror.New(http.StatusTooManyRequests, msg, apperror.ErrRateLimited)
	}

	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(http.StatusUnauthorized, "invalid credentials", apperror.ErrUnauthorized)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, apperror.New(http.StatusUnauthorized, "invalid credentials", apperror.ErrUnauthorized)
	}

	if err := ratelimit.Clear(ctx, s.rdb, limiterKey, loginAction); err != nil {
		log.Printf("failed to clear login rate limit: %v", err)
	}

	now := time.Now()
	signed, err := s.codec.Issue(user.ID.String(), user.Role, now)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""

	return &dto.AuthResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   now.Add(s.codec.TTL()).Unix(),
		User:        user,
	}, nil
}

func (s *authService) CreateUser(ctx context.Context, input dto.CreateUserInput) (*entity.User, error) {
	name := validator.CleanText(input.Name)
	if name == "" {
		return nil, apperror.Validation("name must not be empty")
	}

	if existing, _ := s.repo.FindByEmail(ctx, input.Email); existing != nil {
		return nil, apperror.Validation("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:         name,
		Email:        input.Email,
		PasswordHash: string(hashed),
		Role:         input.Role,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}
