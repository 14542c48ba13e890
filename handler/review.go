package handler

import (
	"campus_cms/constants"
	"campus_cms/database"
	"campus_cms/helper"
	"campus_cms/model"
	"campus_cms/utils"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GetModerationQueue lists profiles for reviewers, unfiltered by visibility.
// This is deliberately a different accessor than the public directory.
func GetModerationQueue(c *fiber.Ctx) error {
	filterInput := new(model.FilterProfile)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	condition := database.DB.Model(&model.Profile{})
	if filterInput.Status != nil {
		condition = condition.Where("status = ?", *filterInput.Status)
	}
	if filterInput.Department != nil {
		condition = condition.Where("department = ?", *filterInput.Department)
	}
	if filterInput.SearchKey != "" {
		key := "%" + strings.ToLower(filterInput.SearchKey) + "%"
		condition = condition.Where("LOWER(name_zh) LIKE ? OR LOWER(name_en) LIKE ?", key, key)
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var profiles model.Profiles
	condition.Order("updated_at DESC").Find(&profiles)
	response := &model.ResponseCustom{
		Rows:       profiles,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func ReviewProfile(c *fiber.Ctx) error {
	profileId, ok := c.Locals("profileId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse profileId fail"))
	}
	input, ok := c.Locals("inputReviewProfile").(model.ReviewProfileInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	reviewer, ok := c.Locals("actingAccount").(*model.Account)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse acting account fail"))
	}

	profile, err := helper.ReviewProfile(profileId, reviewer.Username, &input)
	if err != nil {
		return utils.AppError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, profile)
}

func ProfileHistory(c *fiber.Ctx) error {
	profileId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse profileId fail"))
	}

	var profile model.Profile
	if err := database.DB.First(&profile, profileId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	entries, err := helper.ProfileHistoryFor(profile.AccountId)
	if err != nil {
		return utils.AppError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, entries)
}
