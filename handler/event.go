package handler

import (
	"campus_cms/constants"
	"campus_cms/database"
	"campus_cms/model"
	"campus_cms/utils"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetEvents(c *fiber.Ctx) error {
	filterInput := new(model.FilterEvent)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	condition := database.DB.Model(&model.Event{})
	if filterInput.Status != nil {
		condition = condition.Where("status = ?", *filterInput.Status)
	}
	if filterInput.SearchKey != "" {
		key := "%" + strings.ToLower(filterInput.SearchKey) + "%"
		condition = condition.Where("LOWER(title_zh) LIKE ? OR LOWER(title_en) LIKE ?", key, key)
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var events model.Events
	condition.Order("start_time DESC").Find(&events)
	response := &model.ResponseCustom{
		Rows:       events,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetEventBySlug(c *fiber.Ctx) error {
	var event model.Event
	if err := database.DB.Where("slug = ?", c.Params("slug")).First(&event).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, event)
}

func CreateEvent(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateEvent").(model.CreateEventInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	db := database.DB
	newEvent := new(model.Event)
	copier.Copy(&newEvent, &input)
	newEvent.Status = constants.EVENT_UPCOMING
	newEvent.Slug = uniqueEventSlug(db, input.TitleEn)

	if err := db.Create(&newEvent).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, newEvent)
}

func UpdateEvent(c *fiber.Ctx) error {
	input, ok := c.Locals("inputUpdateEvent").(model.UpdateEventInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}
	eventId, ok := c.Locals("eventId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse eventId fail"))
	}

	db := database.DB
	var event model.Event
	if err := db.First(&event, eventId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	if input.TitleZh != nil {
		event.TitleZh = *input.TitleZh
	}
	if input.TitleEn != nil {
		event.TitleEn = *input.TitleEn
		event.Slug = uniqueEventSlug(db.Where("id <> ?", event.ID), *input.TitleEn)
	}
	if input.DescriptionZh != nil {
		event.DescriptionZh = *input.DescriptionZh
	}
	if input.DescriptionEn != nil {
		event.DescriptionEn = *input.DescriptionEn
	}
	if input.Location != nil {
		event.Location = *input.Location
	}
	if input.Cover != nil {
		event.Cover = *input.Cover
	}
	if input.StartTime != nil {
		event.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		event.EndTime = input.EndTime
	}

	if err := db.Save(&event).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, event)
}

func DeleteEvents(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse deleteIds fail"))
	}

	if err := database.DB.Delete(&model.Event{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": input.IDs})
}

func uniqueEventSlug(db *gorm.DB, title string) string {
	base := slug.Make(title)
	candidate := base
	for i := 2; ; i++ {
		var count int64
		db.Session(&gorm.Session{}).Model(&model.Event{}).Where("slug = ?", candidate).Count(&count)
		if count == 0 {
			return candidate
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
