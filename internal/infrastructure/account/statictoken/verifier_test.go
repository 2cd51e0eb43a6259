package statictoken

import (
	"context"
	"errors"
	"testing"

	"github.com/pitchside/matchday/internal/domain/user"
	"github.com/pitchside/matchday/internal/usecase"
)

func TestVerifyAccessToken(t *testing.T) {
	verifier := NewVerifier(map[string]user.Principal{
		"tok-admin": {UserID: "user-admin", Role: user.RoleAdmin},
		"tok-coach": {UserID: "user-coach", Role: user.RoleCoach, TeamID: "team-1"},
		"  ":        {UserID: "ignored", Role: user.RolePlain},
	}, nil)

	t.Run("known token", func(t *testing.T) {
		principal, err := verifier.VerifyAccessToken(context.Background(), "tok-coach")
		if err != nil {
			t.Fatalf("verify: %v", err)
		}
		if principal.UserID != "user-coach" || principal.Role != user.RoleCoach || principal.TeamID != "team-1" {
			t.Fatalf("unexpected principal: %+v", principal)
		}
	})

	t.Run("token is trimmed", func(t *testing.T) {
		principal, err := verifier.VerifyAccessToken(context.Background(), "  tok-admin  ")
		if err != nil {
			t.Fatalf("verify: %v", err)
		}
		if principal.UserID != "user-admin" {
			t.Fatalf("unexpected principal: %+v", principal)
		}
	})

	t.Run("empty token", func(t *testing.T) {
		if _, err := verifier.VerifyAccessToken(context.Background(), "   "); !errors.Is(err, usecase.ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		if _, err := verifier.VerifyAccessToken(context.Background(), "tok-nope"); !errors.Is(err, usecase.ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("blank table keys are dropped", func(t *testing.T) {
		if _, err := verifier.VerifyAccessToken(context.Background(), "  "); !errors.Is(err, usecase.ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})
}
