package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pitchside/matchday/internal/domain/user"
	idgen "github.com/pitchside/matchday/internal/platform/id"
	"github.com/pitchside/matchday/internal/platform/logging"
)

type CreateUserInput struct {
	Username    string
	Email       string
	FirstName   string
	LastName    string
	Role        user.Role
	TeamID      string
	Nationality string
}

type UserService struct {
	userRepo user.Repository
	idGen    idgen.Generator
	logger   *logging.Logger
	now      func() time.Time
}

func NewUserService(userRepo user.Repository, idGen idgen.Generator, logger *logging.Logger) *UserService {
	if logger == nil {
		logger = logging.Default()
	}

	return &UserService{
		userRepo: userRepo,
		idGen:    idGen,
		logger:   logger,
		now:      time.Now,
	}
}

// Create registers an account. Usernames are unique; role payloads that do
// not belong to the role are dropped rather than rejected.
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (user.User, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)

	if input.Role == "" {
		input.Role = user.RolePlain
	}
	if input.Role != user.RoleCoach {
		input.TeamID = ""
	}
	if input.Role != user.RoleReferee {
		input.Nationality = ""
	}

	_, taken, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return user.User{}, fmt.Errorf("get user by username: %w", err)
	}
	if taken {
		return user.User{}, fmt.Errorf("%w: username %q is already taken", ErrInvalidInput, input.Username)
	}

	userID, err := s.idGen.NewID()
	if err != nil {
		return user.User{}, fmt.Errorf("generate user id: %w", err)
	}

	u := user.User{
		ID:          userID,
		Username:    input.Username,
		Email:       input.Email,
		FirstName:   strings.TrimSpace(input.FirstName),
		LastName:    strings.TrimSpace(input.LastName),
		Role:        input.Role,
		TeamID:      strings.TrimSpace(input.TeamID),
		Nationality: strings.TrimSpace(input.Nationality),
		CreatedAt:   s.now().UTC(),
	}
	if err := u.Validate(); err != nil {
		return user.User{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	if err := s.userRepo.Create(ctx, u); err != nil {
		return user.User{}, fmt.Errorf("create user: %w", err)
	}

	s.logger.InfoContext(ctx, "user created", "user_id", u.ID, "role", string(u.Role))

	return u, nil
}

func (s *UserService) Get(ctx context.Context, id string) (user.User, error) {
	u, ok, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.User{}, fmt.Errorf("get user: %w", err)
	}
	if !ok {
		return user.User{}, fmt.Errorf("%w: user=%s", ErrNotFound, id)
	}

	return u, nil
}

func (s *UserService) List(ctx context.Context) ([]user.User, error) {
	items, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return items, nil
}
