package validate

import (
	"campus_cms/constants"
	"campus_cms/model"
	"campus_cms/utils"
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// SubmitProfile validates the owner submission before anything touches
// storage: a missing required field never creates a profile row or a
// history entry.
func SubmitProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SubmitProfileInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("inputSubmitProfile", input)
		return c.Next()
	}
}

func ReviewProfile(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileId, err := strconv.ParseUint(c.Params(key), 10, 32)
		if err != nil || profileId == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("profileId invalid"))
		}

		var input model.ReviewProfileInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		// The status enum is closed; anything outside it is rejected here and
		// re-checked inside the engine.
		if !utils.IsValidValueOfConstant(input.Status, constants.PROFILE_STATUS) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.STATUS_NOT_EXISTS, errors.New("status invalid"), "status")
		}

		c.Locals("profileId", uint(profileId))
		c.Locals("inputReviewProfile", input)
		return c.Next()
	}
}
