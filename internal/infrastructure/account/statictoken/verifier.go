// Package statictoken verifies bearer tokens against a static token table
// loaded at startup. It exists for single-box deployments where running a
// separate identity service is not worth it; the table maps opaque tokens
// to principals.
package statictoken

import (
	"context"
	"fmt"
	"strings"

	"github.com/pitchside/matchday/internal/domain/user"
	"github.com/pitchside/matchday/internal/platform/logging"
	"github.com/pitchside/matchday/internal/usecase"
)

type Verifier struct {
	principals map[string]user.Principal
	logger     *logging.Logger
}

func NewVerifier(principals map[string]user.Principal, logger *logging.Logger) *Verifier {
	if logger == nil {
		logger = logging.Default()
	}

	table := make(map[string]user.Principal, len(principals))
	for token, principal := range principals {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		table[token] = principal
	}

	return &Verifier{
		principals: table,
		logger:     logger,
	}
}

func (v *Verifier) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: token is required", usecase.ErrUnauthorized)
	}

	principal, ok := v.principals[token]
	if !ok {
		v.logger.WarnContext(ctx, "access token rejected")
		return user.Principal{}, fmt.Errorf("%w: unknown token", usecase.ErrUnauthorized)
	}
	if strings.TrimSpace(principal.UserID) == "" {
		return user.Principal{}, fmt.Errorf("invalid token table entry: user_id is empty")
	}

	return principal, nil
}
