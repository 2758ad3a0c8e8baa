package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-kita-inventory/internal/auth"
	"github.com/MKhiriev/go-kita-inventory/internal/logger"
	"github.com/MKhiriev/go-kita-inventory/internal/router"
	"github.com/MKhiriev/go-kita-inventory/internal/service"
	"github.com/MKhiriev/go-kita-inventory/internal/store"
	"github.com/MKhiriev/go-kita-inventory/models"
)

const (
	forgotPasswordPath = "/forgot-password"

	msgResetLinkSent    = "If an account with these details exists, we have sent a password reset link."
	msgResetLinkInvalid = "This password reset link is invalid or has expired."
	msgPasswordChanged  = "Your password has been changed. Please log in."
)

type resetPasswordPage struct {
	Token string
}

func (h *Handler) forgotPasswordForm(w http.ResponseWriter, r *http.Request, _ router.Params) {
	h.render(w, r, viewForgotPassword, http.StatusOK, "Forgot password", nil)
}

// forgotPasswordSubmit answers the same way whether or not the account
// exists.
func (h *Handler) forgotPasswordSubmit(w http.ResponseWriter, r *http.Request, _ router.Params) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	form := models.ForgotPasswordForm{Login: strings.TrimSpace(r.PostFormValue("login"))}
	if err := h.validator.Validate(ctx, form); err != nil {
		if !rejectForm(w, r, err, map[string]string{"login": form.Login}, forgotPasswordPath) {
			h.renderError(w, r, err)
		}
		return
	}

	user, err := h.users.FindByLoginOrEmail(ctx, form.Login)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		log.Info().Msg("password reset requested for unknown account")
	case err != nil:
		h.renderError(w, r, err)
		return
	case user.Email == "":
		log.Warn().Int64("user_id", user.UserID).Msg("password reset requested for account without e-mail")
	default:
		if err = h.sendResetLink(r, user); err != nil {
			log.Err(err).Int64("user_id", user.UserID).Msg("cannot send password reset link")
		}
	}

	clearOldInput(r)
	flash(r, "success", msgResetLinkSent)
	router.RedirectTo(w, r, auth.LoginPath)
}

func (h *Handler) sendResetLink(r *http.Request, user models.User) error {
	ctx := r.Context()

	token, err := h.services.Tokens.IssuePasswordResetToken(ctx, user.UserID)
	if err != nil {
		return fmt.Errorf("issue reset token: %w", err)
	}

	appName := h.services.AppInfo.GetAppName(ctx)
	link := h.publicURL + "/reset-password/" + url.PathEscape(token)
	mail := models.Mail{
		To:      user.Email,
		Subject: appName + ": reset your password",
		Text: fmt.Sprintf(
			"Hello %s,\n\nopen the following link to choose a new password:\n\n%s\n\nThe link expires in %s. If you did not ask for it, ignore this message.\n",
			user.Name, link, h.cfg.Auth.PasswordResetDuration,
		),
	}

	if err = h.mailer.Send(ctx, mail); err != nil {
		return fmt.Errorf("send reset mail: %w", err)
	}
	return nil
}

func (h *Handler) resetPasswordForm(w http.ResponseWriter, r *http.Request, params router.Params) {
	ctx := r.Context()
	token := params.ByName("token")

	if _, err := h.services.Tokens.ValidatePasswordResetToken(ctx, token); err != nil {
		if errors.Is(err, service.ErrTokenInvalid) {
			flash(r, "error", msgResetLinkInvalid)
			router.RedirectTo(w, r, forgotPasswordPath)
			return
		}
		h.renderError(w, r, err)
		return
	}

	h.render(w, r, viewResetPassword, http.StatusOK, "Reset password", resetPasswordPage{Token: token})
}

// resetPasswordSubmit validates the form before the token is consumed, so a
// typo in the confirmation does not burn the link.
func (h *Handler) resetPasswordSubmit(w http.ResponseWriter, r *http.Request, params router.Params) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	form := models.ResetPasswordForm{
		Token:                params.ByName("token"),
		Password:             r.PostFormValue("password"),
		PasswordConfirmation: r.PostFormValue("password_confirmation"),
	}

	if _, err := h.services.Tokens.ValidatePasswordResetToken(ctx, form.Token); err != nil {
		if errors.Is(err, service.ErrTokenInvalid) {
			flash(r, "error", msgResetLinkInvalid)
			router.RedirectTo(w, r, forgotPasswordPath)
			return
		}
		h.renderError(w, r, err)
		return
	}

	if err := h.validator.Validate(ctx, form); err != nil {
		if !rejectForm(w, r, err, nil, "/reset-password/"+url.PathEscape(form.Token)) {
			h.renderError(w, r, err)
		}
		return
	}

	passwordHash, err := h.services.Credentials.HashPassword(form.Password)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	// the token is spent only together with the password change
	userID, err := h.services.Tokens.ConsumePasswordResetToken(ctx, form.Token, passwordHash)
	if err != nil {
		if errors.Is(err, service.ErrTokenInvalid) {
			flash(r, "error", msgResetLinkInvalid)
			router.RedirectTo(w, r, forgotPasswordPath)
			return
		}
		h.renderError(w, r, err)
		return
	}

	if err = h.services.Tokens.RevokeRememberToken(ctx, userID); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("cannot revoke remember token after password reset")
	}
	h.record(r, models.ChangelogEntry{UserID: userID, Action: models.ActionPasswordReset})

	log.Info().Int64("user_id", userID).Msg("password reset")
	flash(r, "success", msgPasswordChanged)
	router.RedirectTo(w, r, auth.LoginPath)
}
