package handlers

import (
	"errors"
	"net/http"

	otpService "tourmate/services/otp"
	"tourmate/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OTPHandler serves email verification endpoints.
type OTPHandler struct {
	OTPService otpService.OTPService
}

// SendOTPHandler handles POST /api/otp/send.
func (h *OTPHandler) SendOTPHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.OTPService.Send(c.Request.Context(), req.Email); err != nil {
		var cooldown otpService.CooldownError
		switch {
		case errors.Is(err, otpService.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		case errors.As(err, &cooldown):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": cooldown.Error()})
		default:
			logger.Error("Failed to send OTP", zap.String("email", req.Email), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send verification code"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Verification code sent"})
}

// VerifyOTPHandler handles POST /api/otp/verify.
func (h *OTPHandler) VerifyOTPHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Email string `json:"email" binding:"required"`
		Code  string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.OTPService.Verify(c.Request.Context(), req.Email, req.Code); err != nil {
		switch {
		case errors.Is(err, otpService.ErrNoOTP):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No pending verification code for this email"})
		case errors.Is(err, otpService.ErrMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid verification code"})
		default:
			logger.Error("Failed to verify OTP", zap.String("email", req.Email), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify code"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Email verified"})
}
