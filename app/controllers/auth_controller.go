package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/thatboywest/elearningbackend/app/services"
	"github.com/thatboywest/elearningbackend/pkg/utils"
)

// AuthController exposes signup and login over HTTP.
type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

func (ctrl *AuthController) Signup(c *gin.Context) {
	type signupRequest struct {
		FirstName   string `json:"firstName" binding:"required"`
		LastName    string `json:"lastName" binding:"required"`
		Email       string `json:"email" binding:"required,email"`
		PhoneNumber string `json:"phoneNumber" binding:"required,phone"`
		Password    string `json:"password" binding:"required,min=8"`
	}

	var request signupRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, 400, err.Error(), utils.ErrBadRequest)
		return
	}

	token, err := ctrl.auth.Signup(c.Request.Context(), services.SignupInput{
		FirstName:   request.FirstName,
		LastName:    request.LastName,
		Email:       request.Email,
		PhoneNumber: request.PhoneNumber,
		Password:    request.Password,
	})
	switch {
	case errors.Is(err, services.ErrEmailAlreadyUsed):
		utils.ErrorResponse(c, 400, "Email already been used", utils.ErrEmailAlreadyUsed)
		return
	case errors.Is(err, services.ErrPhoneAlreadyUsed):
		utils.ErrorResponse(c, 400, "Phone number already been used", utils.ErrPhoneAlreadyUsed)
		return
	case err != nil:
		utils.ErrorResponse(c, 400, err.Error(), utils.ErrSaveData)
		return
	}

	c.JSON(201, gin.H{"token": token})
}

func (ctrl *AuthController) Login(c *gin.Context) {
	type loginRequest struct {
		Email       string `json:"email"`
		PhoneNumber string `json:"phoneNumber"`
		Password    string `json:"password" binding:"required"`
	}

	var request loginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, 400, err.Error(), utils.ErrBadRequest)
		return
	}

	token, err := ctrl.auth.Login(c.Request.Context(), request.Email, request.PhoneNumber, request.Password)
	switch {
	case errors.Is(err, services.ErrMissingIdentifier):
		utils.ErrorResponse(c, 400, "Please provide either email or phone number", utils.ErrMissingIdentifier)
		return
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.ErrorResponse(c, 401, "Invalid credentials", utils.ErrInvalidCredentials)
		return
	case err != nil:
		utils.ErrorResponse(c, 400, err.Error(), utils.ErrGetData)
		return
	}

	c.JSON(200, gin.H{"token": token})
}
