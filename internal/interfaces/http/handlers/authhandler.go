package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/brandvault/brandvault/internal/application/auth/dto"
	"github.com/brandvault/brandvault/internal/application/auth/usecases"
	"github.com/brandvault/brandvault/internal/shared/config"
	"github.com/brandvault/brandvault/internal/shared/logger"
	"github.com/brandvault/brandvault/internal/shared/utils"
)

type AuthHandler struct {
	signupUC      signupUseCase
	loginUC       loginUseCase
	currentUserUC currentUserUseCase
	cookie        config.CookieConfig
	logger        logger.Interface
}

func NewAuthHandler(
	signupUC signupUseCase,
	loginUC loginUseCase,
	currentUserUC currentUserUseCase,
	cookie config.CookieConfig,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		signupUC:      signupUC,
		loginUC:       loginUC,
		currentUserUC: currentUserUC,
		cookie:        cookie,
		logger:        logger,
	}
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.signupUC.Execute(c.Request.Context(), usecases.SignupCommand{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		CompanyName: req.CompanyName,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.setSession(c, result)
	utils.CreatedResponse(c, result.User, "Account created successfully")
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.setSession(c, result)
	utils.SuccessResponse(c, http.StatusOK, "Login successful", result.User)
}

// Logout handles POST /auth/logout. It succeeds without a session too.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearSessionCookie(c, h.cookie)
	utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	result, err := h.currentUserUC.Execute(c.Request.Context(), p)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *AuthHandler) setSession(c *gin.Context, result *dto.SessionResult) {
	maxAge := int(time.Until(result.ExpiresAt).Seconds())
	if maxAge < 1 {
		h.logger.Warnw("issued session already expired", "user_id", result.User.ID)
		return
	}
	utils.SetSessionCookie(c, h.cookie, result.Token, maxAge)
}
