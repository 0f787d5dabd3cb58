package command

import (
	"context"
	"fmt"

	"github.com/inventoryops/warehouse-api/internal/alert"
	userdomain "github.com/inventoryops/warehouse-api/internal/user/domain"
	"github.com/inventoryops/warehouse-api/pkg/apperror"
	"github.com/inventoryops/warehouse-api/pkg/auth"
)

// ForgotPasswordCommand requests a password reset link
type ForgotPasswordCommand struct {
	Email string
}

// ForgotPasswordHandler handles the forgot password command
type ForgotPasswordHandler struct {
	users           userdomain.UserRepository
	tokens          *auth.TokenManager
	sender          alert.Sender
	mailFrom        string
	frontendBaseURL string
}

// NewForgotPasswordHandler creates a new forgot password handler
func NewForgotPasswordHandler(
	users userdomain.UserRepository,
	tokens *auth.TokenManager,
	sender alert.Sender,
	mailFrom, frontendBaseURL string,
) *ForgotPasswordHandler {
	return &ForgotPasswordHandler{
		users:           users,
		tokens:          tokens,
		sender:          sender,
		mailFrom:        mailFrom,
		frontendBaseURL: frontendBaseURL,
	}
}

// Handle executes the forgot password command. The mailed signed token
// is the whole reset capability; nothing else is persisted.
func (h *ForgotPasswordHandler) Handle(ctx context.Context, cmd ForgotPasswordCommand) error {
	if cmd.Email == "" {
		return apperror.Validation("email is required")
	}

	user, err := h.users.FindByEmail(cmd.Email)
	if err != nil {
		return err
	}

	token, err := h.tokens.GenerateResetToken(user.ID, user.Role)
	if err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", h.frontendBaseURL, token)

	return h.sender.Send(ctx, alert.Message{
		From:    h.mailFrom,
		To:      user.Email,
		Subject: "Password Reset Request",
		Body:    fmt.Sprintf("You requested a password reset. Click the link to reset your password: %s", resetURL),
	})
}
