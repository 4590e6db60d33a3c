package handler

import (
	"io"
	"strconv"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"staffregistry/internal/model"
	"staffregistry/internal/service"
)

// staffID validates the :id path parameter. The second return is false when
// an error response has already been written.
func staffID(c *fiber.Ctx) (string, bool) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		_ = writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		return "", false
	}
	return id, true
}

// ListStaff returns staff records with limit and offset.
//
//	@Summary	List staff
//	@Tags		staff
//	@Produce	json
//	@Param		limit	query		int	false	"page size"	default(10)
//	@Param		offset	query		int	false	"rows to skip"	default(0)
//	@Success	200		{object}	service.StaffListResult
//	@Failure	400		{object}	errorPayload
//	@Router		/staff [get]
func ListStaff(svc service.StaffService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// CreateStaff registers a new staff member.
//
//	@Summary	Create staff record
//	@Tags		staff
//	@Accept		json
//	@Produce	json
//	@Param		body	body		model.StaffInput	true	"staff record"
//	@Success	201		{object}	model.Staff
//	@Failure	400		{object}	errorPayload
//	@Failure	409		{object}	errorPayload
//	@Failure	422		{object}	errorPayload
//	@Router		/staff [post]
func CreateStaff(svc service.StaffService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.StaffInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object")
		}
		st, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(st)
	}
}

// GetStaff returns one staff record.
//
//	@Summary	Get staff record
//	@Tags		staff
//	@Produce	json
//	@Param		id	path		string	true	"staff id"
//	@Success	200	{object}	model.Staff
//	@Failure	404	{object}	errorPayload
//	@Router		/staff/{id} [get]
func GetStaff(svc service.StaffService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := staffID(c)
		if !ok {
			return nil
		}
		st, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(st)
	}
}

// UpdateStaff replaces the editable fields of a staff record.
//
//	@Summary	Update staff record
//	@Tags		staff
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"staff id"
//	@Param		body	body		model.StaffInput	true	"staff record"
//	@Success	200		{object}	model.Staff
//	@Failure	400		{object}	errorPayload
//	@Failure	404		{object}	errorPayload
//	@Failure	422		{object}	errorPayload
//	@Router		/staff/{id} [put]
func UpdateStaff(svc service.StaffService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := staffID(c)
		if !ok {
			return nil
		}
		var in model.StaffInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object")
		}
		st, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(st)
	}
}

// DeleteStaff removes a staff record and its photograph.
//
//	@Summary	Delete staff record
//	@Tags		staff
//	@Param		id	path	string	true	"staff id"
//	@Success	204
//	@Failure	404	{object}	errorPayload
//	@Router		/staff/{id} [delete]
func DeleteStaff(svc service.StaffService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := staffID(c)
		if !ok {
			return nil
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// SearchStaff filters staff by query string parameters: q, designation,
// gender, marital_status, salary_code, nic, age_min, age_max, limit, offset.
// limit defaults to 10; limit=0 returns every match.
//
//	@Summary	Search staff
//	@Tags		staff
//	@Produce	json
//	@Param		q				query		string	false	"name or appointment number"
//	@Param		designation		query		string	false	"designation"
//	@Param		gender			query		string	false	"Male or Female"
//	@Param		marital_status	query		string	false	"marital status"
//	@Param		salary_code		query		string	false	"salary code"
//	@Param		nic				query		string	false	"full or partial NIC"
//	@Param		age_min			query		int		false	"minimum age"
//	@Param		age_max			query		int		false	"maximum age"
//	@Param		limit			query		int		false	"page size, 0 for all"	default(10)
//	@Param		offset			query		int		false	"rows to skip"
//	@Success	200				{object}	service.StaffListResult
//	@Failure	400				{object}	errorPayload
//	@Router		/staff/search [get]
func SearchStaff(svc service.StaffService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f := model.StaffSearch{
			Query:         c.Query("q"),
			Designation:   c.Query("designation"),
			Gender:        c.Query("gender"),
			MaritalStatus: c.Query("marital_status"),
			SalaryCode:    c.Query("salary_code"),
			NICNumber:     c.Query("nic"),
		}

		var err error
		if f.AgeMin, err = optionalInt(c, "age_min"); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_AGE_MIN", "invalid age_min")
		}
		if f.AgeMax, err = optionalInt(c, "age_max"); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_AGE_MAX", "invalid age_max")
		}
		if f.Limit, err = strconv.Atoi(c.Query("limit", "10")); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		if f.Offset, err = strconv.Atoi(c.Query("offset", "0")); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.Search(c.UserContext(), f)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

func optionalInt(c *fiber.Ctx, key string) (*int, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// StaffStats returns headcounts grouped by designation and gender.
//
//	@Summary	Staff statistics
//	@Tags		staff
//	@Produce	json
//	@Success	200	{object}	model.StaffCount
//	@Router		/staff/stats [get]
func StaffStats(svc service.StaffService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := svc.Stats(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(out)
	}
}

// UploadPhoto attaches a photograph (multipart/form-data, field name: file).
// The content type is sniffed from the file itself.
//
//	@Summary	Upload staff photo
//	@Tags		staff
//	@Accept		mpfd
//	@Produce	json
//	@Param		id		path		string	true	"staff id"
//	@Param		file	formData	file	true	"image file"
//	@Success	200		{object}	model.Staff
//	@Failure	400		{object}	errorPayload
//	@Failure	413		{object}	errorPayload
//	@Failure	415		{object}	errorPayload
//	@Router		/staff/{id}/photo [post]
func UploadPhoto(svc service.StaffService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := staffID(c)
		if !ok {
			return nil
		}

		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}
		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		mt, err := mimetype.DetectReader(f)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot read uploaded file")
		}
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot read uploaded file")
		}

		st, err := svc.UploadPhoto(c.UserContext(), id, f, fh.Filename, mt.String(), fh.Size)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(st)
	}
}

// PhotoURL returns a presigned download URL for the staff photograph.
//
//	@Summary	Staff photo URL
//	@Tags		staff
//	@Produce	json
//	@Param		id	path		string	true	"staff id"
//	@Success	200	{object}	map[string]string
//	@Failure	404	{object}	errorPayload
//	@Router		/staff/{id}/photo [get]
func PhotoURL(svc service.StaffService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := staffID(c)
		if !ok {
			return nil
		}
		url, err := svc.PhotoURL(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"url": url})
	}
}

// PhotoContent streams the stored photograph through the API.
//
//	@Summary	Staff photo content
//	@Tags		staff
//	@Produce	image/jpeg,image/png
//	@Param		id	path	string	true	"staff id"
//	@Success	200
//	@Failure	404	{object}	errorPayload
//	@Router		/staff/{id}/photo/raw [get]
func PhotoContent(svc service.StaffService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := staffID(c)
		if !ok {
			return nil
		}
		rc, info, err := svc.OpenPhoto(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		if info.ContentType != "" {
			c.Set(fiber.HeaderContentType, info.ContentType)
		}
		if info.ETag != "" {
			c.Set(fiber.HeaderETag, `"`+info.ETag+`"`)
		}
		// fasthttp closes rc once the body is written
		return c.SendStream(rc, int(info.Size))
	}
}
