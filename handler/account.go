package handler

import (
	"campus_cms/apperr"
	"campus_cms/constants"
	"campus_cms/database"
	"campus_cms/helper"
	"campus_cms/model"
	"campus_cms/utils"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func GetAccounts(c *fiber.Ctx) error {
	filterInput := new(model.FilterAccount)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	db := database.DB

	condition := db.Model(&model.Account{})
	if filterInput.SearchKey != "" {
		key := "%" + strings.ToLower(filterInput.SearchKey) + "%"
		condition = condition.Where("LOWER(username) LIKE ? OR LOWER(email) LIKE ?", key, key)
	}
	if filterInput.Active != nil {
		condition = condition.Where("is_active = ?", filterInput.Active)
	}
	if filterInput.Role != nil {
		condition = condition.Where("role = ?", filterInput.Role)
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var accounts model.Accounts
	condition.Preload("Profile").Order("id ASC").Find(&accounts)
	response := &model.ResponseCustom{
		Rows:       accounts,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func CreateAccount(c *fiber.Ctx) error {
	accountInput, ok := c.Locals("inputCreateAccount").(model.CreateAccountInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	account, err := helper.CreateAccount(&accountInput)
	if err != nil {
		return utils.AppError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, account)
}

func UpdateAccount(c *fiber.Ctx) error {
	input, ok := c.Locals("inputUpdateAccount").(model.UpdateAccountInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}
	accountId, ok := c.Locals("accountId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse accountId fail"))
	}

	account, err := helper.UpdateAccount(accountId, &input)
	if err != nil {
		return utils.AppError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, account)
}

func ToggleActiveAccount(c *fiber.Ctx) error {
	isActive, ok := c.Locals("isActive").(bool)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse isActive fail"))
	}
	accountId, ok := c.Locals("accountId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse accountId fail"))
	}

	account, err := helper.ToggleActiveAccount(accountId, isActive)
	if err != nil {
		return utils.AppError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, account)
}

func DeleteAccounts(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse deleteIds fail"))
	}

	if err := helper.DeleteAccounts(input.IDs); err != nil {
		return utils.AppError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": input.IDs})
}

func AdminChangePassword(c *fiber.Ctx) error {
	input, ok := c.Locals("inputAdminChangePassword").(model.AdminChangePassword)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	if err := helper.AdminSetPassword(input.AccountId, input.NewPassword); err != nil {
		return utils.AppError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "password updated"})
}

func StaffChangePassword(c *fiber.Ctx) error {
	input, ok := c.Locals("inputStaffChangePassword").(model.StaffChangePassword)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	claims, ok := helper.GetClaims(c)
	if !ok {
		return utils.AppError(c, apperr.Authentication(constants.INVALID_SESSION))
	}

	if err := helper.ChangeOwnPassword(claims.AccountId, input.CurrentPassword, input.NewPassword); err != nil {
		return utils.AppError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "password updated"})
}
