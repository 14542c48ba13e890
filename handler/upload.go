package handler

import (
	"campus_cms/config"
	"campus_cms/constants"
	"campus_cms/utils"
	"fmt"
	"net/url"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/gofiber/fiber/v2"
)

// GenerateUploadSignature signs a direct-to-cloudinary upload so the browser
// can push avatar and event cover images without the backend ever touching
// the binary. We only store the resulting reference string.
func GenerateUploadSignature(c *fiber.Ctx) error {
	type SigParams struct {
		Folder   string `json:"folder"`
		PublicID string `json:"public_id"`
	}

	var params SigParams
	if err := c.BodyParser(&params); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	timestamp := time.Now().Unix()

	signable := url.Values{}
	signable.Set("timestamp", fmt.Sprintf("%d", timestamp))
	if params.Folder != "" {
		signable.Set("folder", params.Folder)
	}
	if params.PublicID != "" {
		signable.Set("public_id", params.PublicID)
	}

	signature, err := api.SignParameters(signable, config.Config("CLOUDINARY_API_SECRET"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"apiKey":    config.Config("CLOUDINARY_API_KEY"),
		"cloudName": config.Config("CLOUDINARY_CLOUD_NAME"),
	})
}
