package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/aactechsol/massage-manager/internal/config"
	"github.com/aactechsol/massage-manager/internal/httperr"
	"github.com/aactechsol/massage-manager/internal/middleware"
	"github.com/aactechsol/massage-manager/internal/models"
	ucAccount "github.com/aactechsol/massage-manager/internal/usecase/account"
	"github.com/aactechsol/massage-manager/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config

	register      *ucAccount.Register
	requestReset  *ucAccount.RequestReset
	resetPassword *ucAccount.ResetPassword
}

func NewAuthHandler(
	db *gorm.DB,
	cfg *config.Config,
	register *ucAccount.Register,
	requestReset *ucAccount.RequestReset,
	resetPassword *ucAccount.ResetPassword,
) *AuthHandler {
	return &AuthHandler{
		db:            db,
		config:        cfg,
		register:      register,
		requestReset:  requestReset,
		resetPassword: resetPassword,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone"`
	Password  string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// --------- Handlers ---------

// LoginPage is the landing target for unauthenticated redirects.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Por favor inicia sesión para acceder a esta página.",
		"next":    c.Query("next"),
	})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "El dominio del email no parece ser válido.")
		return
	}

	out, err := h.register.Execute(c.Request.Context(), ucAccount.RegisterInput{
		Email:     email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Password:  req.Password,
	})
	if err != nil {
		if httperr.IsBusiness(err, "email_already_registered") {
			httperr.BadRequest(c, "email_already_registered", "Este email ya está registrado.")
			return
		}
		httperr.Internal(c, "failed_to_register", "Error al registrar el usuario.")
		return
	}

	message := "Registro exitoso. Se ha enviado una solicitud de activación al administrador."
	if !out.Notified {
		message = "Registro exitoso, pero hubo un error al notificar al administrador. Por favor contacta con soporte."
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"id":         out.User.ID,
			"email":      out.User.Email,
			"first_name": out.User.FirstName,
			"last_name":  out.User.LastName,
			"phone":      out.User.Phone,
			"is_active":  out.User.IsActive,
		},
		"notified": out.Notified,
		"message":  message,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			h.invalidCredentials(c)
			return
		}
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		h.invalidCredentials(c)
		return
	}

	// inactive accounts get the same answer as a bad password
	if !user.IsActive {
		h.invalidCredentials(c)
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Error al generar el token.")
		return
	}

	c.SetCookie(middleware.AuthCookie, token, int((24 * time.Hour).Seconds()), "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":         user.ID,
			"email":      user.Email,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"phone":      user.Phone,
			"is_admin":   user.IsAdmin,
		},
		"token": token,
		"next":  c.Query("next"),
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.AuthCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Has cerrado sesión correctamente."})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	out, err := h.requestReset.Execute(c.Request.Context(), ucAccount.RequestResetInput{
		Email: req.Email,
	})
	if err != nil {
		if httperr.IsBusiness(err, "unknown_email") {
			httperr.BadRequest(c, "unknown_email", "No se encontró ningún usuario activo con ese email.")
			return
		}
		httperr.Internal(c, "failed_to_request_reset", "Error al enviar la solicitud.")
		return
	}

	message := "Se ha enviado una solicitud de restablecimiento de contraseña al administrador."
	if !out.Notified {
		message = "Solicitud registrada, pero hubo un error al notificar al administrador."
	}

	c.JSON(http.StatusOK, gin.H{
		"notified": out.Notified,
		"message":  message,
	})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	err := h.resetPassword.Execute(c.Request.Context(), ucAccount.ResetPasswordInput{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		if httperr.IsBusiness(err, "invalid_or_expired_token") {
			httperr.BadRequest(c, "invalid_or_expired_token", "El token no es válido o ha expirado.")
			return
		}
		if httperr.IsBusiness(err, "invalid_password") {
			httperr.BadRequest(c, "invalid_password", "La contraseña debe tener al menos 6 caracteres.")
			return
		}
		httperr.Internal(c, "failed_to_reset_password", "Error al restablecer la contraseña.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contraseña actualizada correctamente."})
}

func (h *AuthHandler) invalidCredentials(c *gin.Context) {
	httperr.Unauthorized(c, "invalid_credentials", "Email o contraseña incorrectos, o cuenta no activa.")
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"admin": user.IsAdmin,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
