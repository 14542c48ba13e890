package handler

import (
	"campus_cms/config"
	"campus_cms/constants"
	"campus_cms/helper"
	"campus_cms/model"
	"campus_cms/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
)

func Login(c *fiber.Ctx) error {
	loginInput := new(model.LoginInput)

	if err := c.BodyParser(loginInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
	}

	if loginInput.Identifier == "" || loginInput.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, errors.New("identifier and password are required"))
	}

	account, err := helper.VerifyCredentials(loginInput.Identifier, loginInput.Password)
	if err != nil {
		return utils.AppError(c, err)
	}

	token, err := helper.IssueToken(account)
	if err != nil {
		return utils.AppError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "Lax",
		Secure:   false,
		Path:     "/",
	})

	return c.JSON(fiber.Map{
		"message": "login success",
		"token":   token,
		"account": fiber.Map{
			"id":                account.ID,
			"username":          account.Username,
			"email":             account.Email,
			"role":              account.Role,
			"canManageEvents":   account.CanManageEvents,
			"canManageStaff":    account.CanManageStaff,
			"canReviewProfiles": account.CanReviewProfiles,
			"lastLogin":         account.LastLogin,
		},
	})
}

func Me(c *fiber.Ctx) error {
	account, err := helper.GetLiveAccount(c)
	if err != nil {
		return utils.AppError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, account)
}

func ForgotPassword(c *fiber.Ctx) error {
	input, ok := c.Locals("inputForgotPassword").(model.ForgotPasswordInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	token, account, err := helper.CreateResetToken(input.Email)
	if err != nil {
		return utils.AppError(c, err)
	}
	if token != nil {
		utils.SendResetPasswordEmail(account.Email, utils.ResetPasswordData{
			Username:  account.Username,
			ResetLink: config.Current().PublicBaseURL + "/reset-password?token=" + token.Token,
			ExpiresIn: "1 hour",
		})
	}

	// Same response whether or not the email exists.
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "if the email exists, a reset link has been sent",
	})
}

func ResetPassword(c *fiber.Ctx) error {
	input, ok := c.Locals("inputResetPassword").(model.ResetPasswordInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	if err := helper.ConsumeResetToken(input.Token, input.NewPassword); err != nil {
		return utils.AppError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "password updated"})
}
