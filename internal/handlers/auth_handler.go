package handlers

import (
	"net/http"
	"time"

	"nars_shop/internal/models"
	"nars_shop/internal/redis"
	"nars_shop/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct {
	userService services.UserService
	sessions    *redis.Client
	sessionTTL  time.Duration
	adminPIN    string
}

func NewAuthHandler(userService services.UserService, sessions *redis.Client, sessionTTL time.Duration, adminPIN string) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		sessions:    sessions,
		sessionTTL:  sessionTTL,
		adminPIN:    adminPIN,
	}
}

type SignupRequest struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Address   string `json:"address"`
	Mobile    string `json:"mobile"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ValidatePinRequest struct {
	Pin string `json:"pin"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
		Mobile:    req.Mobile,
		Email:     req.Email,
		Role:      string(models.RoleCustomer),
		IsActive:  true,
	}

	if err := h.userService.Register(user, req.Password); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Signup successful"})
}

func (h *AuthHandler) Signin(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	user, err := h.userService.Authenticate(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	sessionID := uuid.NewString()
	session := &redis.SessionData{
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		Role:      user.Role,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := h.sessions.SetSession(sessionID, session, h.sessionTTL); err != nil {
		respondError(c, err)
		return
	}

	c.SetCookie(sessionCookie, sessionID, int(h.sessionTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Signin successful",
		"username": user.FirstName,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID, err := c.Cookie(sessionCookie)
	if err == nil && sessionID != "" {
		if err := h.sessions.DeleteSession(sessionID); err != nil {
			respondError(c, err)
			return
		}
	}

	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logout successful"})
}

func (h *AuthHandler) CurrentUser(c *gin.Context) {
	session := currentSession(c)
	user, err := h.userService.GetUserByID(session.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ValidatePin gates the admin dashboard behind a second factor. A successful
// validation is recorded on the session.
func (h *AuthHandler) ValidatePin(c *gin.Context) {
	var req ValidatePinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.Pin != h.adminPIN {
		respondError(c, services.ErrInvalidPin)
		return
	}

	if session := currentSession(c); session != nil {
		session.PinValidated = true
		sessionID := c.GetString(sessionCookie)
		if err := h.sessions.UpdateSession(sessionID, session, h.sessionTTL); err != nil {
			respondError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Pin validated successfully"})
}
