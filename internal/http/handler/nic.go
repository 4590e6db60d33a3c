package handler

import (
	"github.com/gofiber/fiber/v2"

	"staffregistry/internal/model"
	"staffregistry/internal/nic"
	"staffregistry/internal/service"
)

type nicRequest struct {
	NIC string `json:"nic"`
}

type nicInfoResponse struct {
	nic.Info
	BirthDate string `json:"birth_date,omitempty"`
}

// NormalizeNIC converts a NIC in either format to the 12-digit form.
// The raw value goes to the codec untouched.
//
//	@Summary	Normalize NIC
//	@Tags		nic
//	@Accept		json
//	@Produce	json
//	@Param		body	body		nicRequest	true	"raw NIC"
//	@Success	200		{object}	map[string]string
//	@Failure	422		{object}	errorPayload
//	@Router		/nic/normalize [post]
func NormalizeNIC() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req nicRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object")
		}
		canonical, err := nic.Normalize(req.NIC)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"canonical": canonical})
	}
}

// NICInfo reports what a NIC encodes. birth_date is omitted when the day of
// year does not exist in the birth year.
//
//	@Summary	Decode NIC
//	@Tags		nic
//	@Accept		json
//	@Produce	json
//	@Param		body	body		nicRequest	true	"raw NIC"
//	@Success	200		{object}	nicInfoResponse
//	@Failure	422		{object}	errorPayload
//	@Router		/nic/info [post]
func NICInfo(svc service.StaffService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req nicRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object")
		}
		info, err := svc.LookupNIC(req.NIC)
		if err != nil {
			return writeServiceError(c, err)
		}
		res := nicInfoResponse{Info: info}
		if d, ok := info.BirthDate(); ok {
			res.BirthDate = d.Format(model.DateLayout)
		}
		return c.JSON(res)
	}
}
