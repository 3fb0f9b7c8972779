package handlers

import (
	"errors"
	"net/http"
	"time"

	"premierlodge/services/apiclient"
	"premierlodge/services/pms"
	"premierlodge/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const staffSessionDuration = 12 * time.Hour

type AuthHandler struct {
	PMS    *pms.Client
	Tokens utils.TokenStore
}

func NewAuthHandler(pmsClient *pms.Client, tokens utils.TokenStore) *AuthHandler {
	return &AuthHandler{PMS: pmsClient, Tokens: tokens}
}

// Login proxies the sign-in to the PMS, stores the upstream bearer token in
// the credential store and issues a local staff session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var creds pms.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	env, err := h.PMS.Login(c.Request.Context(), creds)
	if err != nil {
		var reqErr *apiclient.RequestError
		if errors.As(err, &reqErr) {
			utils.JSONError(c, reqErr.Status, "sign-in rejected", reqErr.StatusText)
			return
		}
		utils.JSONError(c, http.StatusBadGateway, "sign-in unavailable", err.Error())
		return
	}
	if !env.Success || env.Data == nil || env.Data.Token == "" {
		utils.JSONError(c, http.StatusUnauthorized, "sign-in failed", env.Message)
		return
	}

	if err := h.Tokens.Set(c.Request.Context(), env.Data.Token); err != nil {
		utils.GetLogger().Error("failed to store upstream token", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "sign-in failed", "could not persist session")
		return
	}

	// The upstream staff ID is the token subject; fall back to the email for
	// PMS versions that do not return one.
	subject := env.Data.ID
	if subject == "" {
		subject = env.Data.Email
	}
	sessionToken, err := utils.GenerateToken(subject, env.Data.Email, staffSessionDuration)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "sign-in failed", "could not issue session token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": sessionToken,
		"name":  env.Data.Name,
		"email": env.Data.Email,
	})
}

// Logout clears the stored upstream token. The upstream sign-out is best-effort.
func (h *AuthHandler) Logout(c *gin.Context) {
	if _, err := h.PMS.Logout(c.Request.Context()); err != nil {
		utils.GetLogger().Warn("upstream logout failed", zap.Error(err))
	}
	if err := h.Tokens.Clear(c.Request.Context()); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "logout failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}
