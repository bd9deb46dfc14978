package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/littlelemon/restaurant-app/models"
	"github.com/littlelemon/restaurant-app/session"
	"github.com/littlelemon/restaurant-app/utils"
)

type SessionController struct {
	Gate *session.Gate
}

func NewSessionController(gate *session.Gate) *SessionController {
	return &SessionController{Gate: gate}
}

// Register runs the onboarding flow: validate the three fields, record the
// profile and hand out a session token.
// Body: {"first_name": "...", "last_name": "...", "email": "..."}
func (sc *SessionController) Register(c *gin.Context) {
	// Required-ness is the gate's rule (blank after trimming rejects), so
	// binding stays permissive here.
	var req models.Profile
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := sc.Gate.ValidateRegistration(req.FirstName, req.LastName, req.Email); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := sc.Gate.LogIn(req); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	token, err := utils.GenerateToken(req.Email)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("User registered: %s", req.Email)
	utils.RespondJSON(c, http.StatusCreated, "Registration successful", gin.H{
		"token":   token,
		"profile": sc.Gate.Profile(),
	})
}

// Logout clears the session: flag, profile, notification prefs and cart,
// and revokes the presented token.
func (sc *SessionController) Logout(c *gin.Context) {
	if token := c.GetString("token"); token != "" {
		utils.BlacklistToken(token)
	}

	if err := sc.Gate.LogOut(); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Logged out", nil)
}

// GetProfile serves the profile screen data.
func (sc *SessionController) GetProfile(c *gin.Context) {
	if !sc.Gate.IsLoggedIn() {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("not logged in"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Profile data", gin.H{
		"profile":       sc.Gate.Profile(),
		"notifications": sc.Gate.Notifications(),
	})
}

// UpdateNotifications persists the three notification toggles.
// Body: {"order_status": true, "password_change": false, "special_offers": true}
func (sc *SessionController) UpdateNotifications(c *gin.Context) {
	if !sc.Gate.IsLoggedIn() {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("not logged in"))
		return
	}

	var req models.NotificationPrefs
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := sc.Gate.SetNotifications(req); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Notification preferences updated", sc.Gate.Notifications())
}
