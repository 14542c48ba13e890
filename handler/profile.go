package handler

import (
	"campus_cms/apperr"
	"campus_cms/constants"
	"campus_cms/helper"
	"campus_cms/model"
	"campus_cms/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// SubmitProfile handles the owner's self-submission: first call creates the
// profile, later calls overwrite the content fields. Either way the profile
// re-enters moderation.
func SubmitProfile(c *fiber.Ctx) error {
	input, ok := c.Locals("inputSubmitProfile").(model.SubmitProfileInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	claims, ok := helper.GetClaims(c)
	if !ok {
		return utils.AppError(c, apperr.Authentication(constants.INVALID_SESSION))
	}

	profile, err := helper.SubmitProfile(claims.AccountId, claims.Username, &input)
	if err != nil {
		return utils.AppError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, profile)
}

func MyProfile(c *fiber.Ctx) error {
	claims, ok := helper.GetClaims(c)
	if !ok {
		return utils.AppError(c, apperr.Authentication(constants.INVALID_SESSION))
	}

	profile, err := helper.GetProfileByAccount(claims.AccountId)
	if err != nil {
		return utils.AppError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, profile)
}

func MyProfileHistory(c *fiber.Ctx) error {
	claims, ok := helper.GetClaims(c)
	if !ok {
		return utils.AppError(c, apperr.Authentication(constants.INVALID_SESSION))
	}

	entries, err := helper.ProfileHistoryFor(claims.AccountId)
	if err != nil {
		return utils.AppError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, entries)
}
