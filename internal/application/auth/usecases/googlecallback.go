package usecases

import (
	"context"
	"fmt"

	"github.com/shiken-app/shiken/internal/application/auth/dto"
	"github.com/shiken-app/shiken/internal/domain/user"
	apperrors "github.com/shiken-app/shiken/internal/shared/errors"
	"github.com/shiken-app/shiken/internal/shared/logger"
)

type GoogleCallbackCommand struct {
	Code string
}

// GoogleCallbackUseCase completes the sign-in: exchange the code, fetch the
// profile, upsert the account by email and issue a session token. First
// sign-in creates the account; later ones refresh name and image.
type GoogleCallbackUseCase struct {
	oauthClient OAuthClient
	userRepo    user.Repository
	tokens      TokenIssuer
	logger      logger.Interface
}

func NewGoogleCallbackUseCase(
	oauthClient OAuthClient,
	userRepo user.Repository,
	tokens TokenIssuer,
	logger logger.Interface,
) *GoogleCallbackUseCase {
	return &GoogleCallbackUseCase{
		oauthClient: oauthClient,
		userRepo:    userRepo,
		tokens:      tokens,
		logger:      logger,
	}
}

func (uc *GoogleCallbackUseCase) Execute(ctx context.Context, cmd GoogleCallbackCommand) (*dto.LoginResult, error) {
	accessToken, err := uc.oauthClient.ExchangeCode(ctx, cmd.Code)
	if err != nil {
		uc.logger.Warnw("oauth code exchange failed", "error", err)
		return nil, apperrors.NewUnauthorizedError("sign-in failed")
	}

	info, err := uc.oauthClient.GetUserInfo(ctx, accessToken)
	if err != nil {
		uc.logger.Warnw("failed to fetch oauth profile", "error", err)
		return nil, apperrors.NewUnauthorizedError("sign-in failed")
	}
	if info.Email == "" {
		return nil, apperrors.NewUnauthorizedError("sign-in failed")
	}

	u, err := uc.userRepo.Upsert(ctx, info.Email, info.Name, info.Picture)
	if err != nil {
		uc.logger.Errorw("failed to upsert user", "email", info.Email, "error", err)
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	token, err := uc.tokens.Generate(u.ID(), u.IsAdmin())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", u.ID(), "error", err)
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	uc.logger.Infow("user signed in", "user_id", u.ID(), "email", u.Email())
	return &dto.LoginResult{
		AccessToken: token,
		User:        dto.ToUserDTO(u),
	}, nil
}
