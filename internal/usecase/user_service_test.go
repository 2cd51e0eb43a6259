package usecase

import (
	"errors"
	"testing"

	"github.com/pitchside/matchday/internal/domain/user"
	"github.com/pitchside/matchday/internal/infrastructure/repository/memory"
	"github.com/pitchside/matchday/internal/platform/logging"
)

func newUserService(store *memory.Store) *UserService {
	return NewUserService(store.Users(), &sequenceIDGenerator{prefix: "usr"}, logging.NewNop())
}

func TestUserService_Create(t *testing.T) {
	store := memory.NewSeededStore()
	service := newUserService(store)

	created, err := service.Create(t.Context(), CreateUserInput{
		Username: "new.coach",
		Email:    "coach@riverside.local",
		Role:     user.RoleCoach,
		TeamID:   memory.TeamIDRiverside,
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if created.Role != user.RoleCoach || created.TeamID != memory.TeamIDRiverside {
		t.Fatalf("unexpected coach payload: %+v", created)
	}
}

func TestUserService_Create_DefaultsAndPayloadScrub(t *testing.T) {
	store := memory.NewSeededStore()
	service := newUserService(store)

	// No role defaults to plain user, and foreign role payloads are dropped.
	created, err := service.Create(t.Context(), CreateUserInput{
		Username:    "plain.fan",
		Email:       "fan@matchday.local",
		TeamID:      memory.TeamIDNorthend,
		Nationality: "Italy",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if created.Role != user.RolePlain {
		t.Fatalf("role = %s, want %s", created.Role, user.RolePlain)
	}
	if created.TeamID != "" || created.Nationality != "" {
		t.Fatalf("role payloads not scrubbed: %+v", created)
	}
}

func TestUserService_Create_UsernameTaken(t *testing.T) {
	store := memory.NewSeededStore()
	service := newUserService(store)

	_, err := service.Create(t.Context(), CreateUserInput{
		Username: "league.admin", // seeded
		Email:    "other@matchday.local",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for taken username, got %v", err)
	}
}

func TestUserService_Create_Validation(t *testing.T) {
	store := memory.NewSeededStore()
	service := newUserService(store)

	if _, err := service.Create(t.Context(), CreateUserInput{Username: "abc", Email: "a@b.c"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for short username, got %v", err)
	}
	if _, err := service.Create(t.Context(), CreateUserInput{Username: "valid.name", Email: ""}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing email, got %v", err)
	}
	if _, err := service.Create(t.Context(), CreateUserInput{Username: "valid.name", Email: "a@b.c", Role: "owner"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown role, got %v", err)
	}
}

func TestUserService_GetAndList(t *testing.T) {
	store := memory.NewSeededStore()
	service := newUserService(store)

	u, err := service.Get(t.Context(), memory.UserIDCoach)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if u.TeamID != memory.TeamIDNorthend {
		t.Fatalf("unexpected coach team: %q", u.TeamID)
	}

	if _, err := service.Get(t.Context(), "no-such-user"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	items, err := service.List(t.Context())
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 seeded users, got %d", len(items))
	}
}
