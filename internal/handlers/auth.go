// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"crypto/subtle"
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/pquerna/otp/totp"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/crypto/bcrypt"

	"folio/internal/config"
	"folio/internal/document"
	"folio/internal/middleware"
	"folio/internal/session"
	"folio/internal/store"
)

// Settings keys for the administrator's TOTP state. The active secret is
// the one codes validate against; the pending secret exists between
// enrollment start and the first verified code.
const (
	totpSecretKey  = "admin_totp_secret"
	totpPendingKey = "admin_totp_secret_pending"
)

// totpIssuer names the service in authenticator apps.
const totpIssuer = "folio"

// Auth groups the authentication handlers for the single administrator.
type Auth struct {
	cfg      *config.Config
	sessions *session.Store
	settings *store.SettingsStore
}

// NewAuth creates the auth handler group.
func NewAuth(cfg *config.Config, sessions *session.Store, docs document.API) *Auth {
	return &Auth{
		cfg:      cfg,
		sessions: sessions,
		settings: store.NewSettingsStore(docs),
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Authenticated bool `json:"authenticated"`
	TwoFARequired bool `json:"two_fa_required"`
	TwoFAEnrolled bool `json:"two_fa_enrolled"`
}

// Login validates the administrator's credentials and opens a session.
// When a TOTP secret is enrolled, the session stays restricted until the
// code is verified; without one the login completes immediately.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(a.cfg.AdminEmail)) == 1
	passOK := bcrypt.CompareHashAndPassword([]byte(a.cfg.AdminPasswordHash), []byte(req.Password)) == nil
	if !emailOK || !passOK {
		respondError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	secret, err := a.settings.Get(r.Context(), totpSecretKey, "")
	if err != nil {
		serverError(w, "totp secret read failed", err)
		return
	}

	enrolled := secret != ""
	if _, err := a.sessions.Create(r.Context(), w, &session.Data{
		Email:     req.Email,
		TwoFADone: !enrolled,
	}); err != nil {
		serverError(w, "session create failed", err)
		return
	}

	respondJSON(w, http.StatusOK, loginResponse{
		Authenticated: true,
		TwoFARequired: enrolled,
		TwoFAEnrolled: enrolled,
	})
}

type twoFASetupResponse struct {
	Secret string `json:"secret"`
	QRCode string `json:"qr_code"` // base64-encoded PNG
}

// TwoFASetup generates a fresh TOTP secret for enrollment and returns it
// with a QR code. The secret stays pending until the first code verifies.
func (a *Auth) TwoFASetup(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: sess.Email,
	})
	if err != nil {
		serverError(w, "totp generate failed", err)
		return
	}

	if err := a.settings.Set(r.Context(), totpPendingKey, key.Secret(), "pending TOTP enrollment"); err != nil {
		serverError(w, "totp secret store failed", err)
		return
	}

	qrPNG, err := qrcode.Encode(key.URL(), qrcode.Medium, 256)
	if err != nil {
		serverError(w, "qr code generation failed", err)
		return
	}

	respondJSON(w, http.StatusOK, twoFASetupResponse{
		Secret: key.Secret(),
		QRCode: base64.StdEncoding.EncodeToString(qrPNG),
	})
}

type twoFAVerifyRequest struct {
	Code string `json:"code"`
}

// TwoFAVerify validates a TOTP code against the active secret, or the
// pending one during enrollment, and unlocks the session. A verified
// pending secret becomes the active secret.
func (a *Auth) TwoFAVerify(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req twoFAVerifyRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	secret, err := a.settings.Get(r.Context(), totpSecretKey, "")
	if err != nil {
		serverError(w, "totp secret read failed", err)
		return
	}
	enrolling := false
	if secret == "" {
		if secret, err = a.settings.Get(r.Context(), totpPendingKey, ""); err != nil {
			serverError(w, "totp secret read failed", err)
			return
		}
		enrolling = true
	}
	if secret == "" {
		respondError(w, http.StatusConflict, "two-factor authentication is not set up")
		return
	}

	if !totp.Validate(req.Code, secret) {
		respondError(w, http.StatusUnauthorized, "invalid code")
		return
	}

	if enrolling {
		if err := a.settings.Set(r.Context(), totpSecretKey, secret, "TOTP shared secret"); err != nil {
			serverError(w, "totp secret store failed", err)
			return
		}
		if err := a.settings.Delete(r.Context(), totpPendingKey); err != nil {
			slog.Warn("pending totp secret cleanup failed", "error", err)
		}
	}

	sess.TwoFADone = true
	if err := a.sessions.Update(r.Context(), r, sess); err != nil {
		serverError(w, "session update failed", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"verified": true})
}

// Me reports the current session state.
func (a *Auth) Me(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"email":       sess.Email,
		"two_fa_done": sess.TwoFADone,
	})
}

// Logout destroys the session.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.sessions.Destroy(r.Context(), w, r); err != nil {
		serverError(w, "session destroy failed", err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
