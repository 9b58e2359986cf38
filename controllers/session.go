package controllers

import (
	"net/http"
	"time"

	"go-breakfast/utils"

	"github.com/sirupsen/logrus"
)

// SessionController starts browsing sessions
type SessionController struct {
	Sessions *utils.SessionStore
	Tokens   *utils.TokenIssuer
	Logger   logrus.FieldLogger
}

// NewSessionController creates a new SessionController
func NewSessionController(sessions *utils.SessionStore, tokens *utils.TokenIssuer, logger logrus.FieldLogger) *SessionController {
	return &SessionController{
		Sessions: sessions,
		Tokens:   tokens,
		Logger:   logger,
	}
}

// CreateSession opens a session with an empty cart and returns its token
func (sc *SessionController) CreateSession(w http.ResponseWriter, r *http.Request) {
	session := sc.Sessions.Create()

	token, err := sc.Tokens.GenerateSessionToken(session.ID, session.CreatedAt, session.ExpiresAt)
	if err != nil {
		sc.Logger.WithError(err).Error("failed to sign session token")
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}

	sc.Logger.WithField("session_id", session.ID).Info("session started")
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"session_id": session.ID,
		"token":      token,
		"expires_at": session.ExpiresAt.UTC().Format(time.RFC3339),
	})
}
