package handler

import (
	"campus_cms/config"
	"campus_cms/constants"
	"campus_cms/database"
	"campus_cms/helper"
	"campus_cms/model"
	"campus_cms/utils"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// GetDirectory is the public staff directory: approved, visible profiles
// only, optionally narrowed by department.
func GetDirectory(c *fiber.Ctx) error {
	department := c.Query("department")

	profiles, err := helper.CachedVisibleProfiles(department)
	if err != nil {
		return utils.AppError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, profiles)
}

// GetDirectoryQR renders a QR code pointing at a visible profile's public
// page. Hidden profiles 404 the same way missing ones do.
func GetDirectoryQR(c *fiber.Ctx) error {
	profileId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("profileId invalid"))
	}

	var profile model.Profile
	err := database.DB.
		Where("id = ? AND status = ? AND is_visible = ?", profileId, constants.PROFILE_APPROVED, true).
		First(&profile).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, nil)
	}

	url := fmt.Sprintf("%s/directory/%d", config.Current().PublicBaseURL, profile.ID)
	png, err := utils.GenerateQRCode(url, 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set("Content-Type", "image/png")
	return c.Send(png)
}
