package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talentscreen/screening-api/internal/core/domain"
	"github.com/talentscreen/screening-api/internal/core/ports"
)

// SubmissionHandler handles resume submission, ranking and read-back.
type SubmissionHandler struct {
	service ports.SubmissionService
	docs    ports.DocumentStore
}

func NewSubmissionHandler(service ports.SubmissionService, docs ports.DocumentStore) *SubmissionHandler {
	return &SubmissionHandler{service: service, docs: docs}
}

type submitResponse struct {
	Filename string `json:"filename"`
	Score    int    `json:"score"`
	BestRole string `json:"best_role"`
}

type rankedResponse struct {
	Submissions []domain.SubmissionRecord `json:"submissions"`
	Total       int                       `json:"total"`
}

// Submit runs the intake-and-scoring pipeline for one multipart submission.
//
// @Summary      Submit a resume for scoring
// @Tags         submissions
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        name    formData  string  true  "Applicant name"
// @Param        email   formData  string  true  "Applicant email"
// @Param        skills  formData  string  true  "Self-reported skills"
// @Param        resume  formData  file    true  "Resume (PDF)"
// @Success      201     {object}  submitResponse
// @Failure      400     {object}  map[string]string
// @Failure      401     {object}  map[string]string
// @Router       /v1/submissions [post]
func (h *SubmissionHandler) Submit(c echo.Context) error {
	name := c.FormValue("name")
	email := c.FormValue("email")
	skills := c.FormValue("skills")
	if name == "" || email == "" || skills == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name, email and skills are required"})
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "resume file is required"})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return err
	}

	result, err := h.service.Submit(c.Request().Context(), ports.SubmitInput{
		Name:     name,
		Email:    email,
		Skills:   skills,
		Filename: fileHeader.Filename,
		Data:     data,
	})
	if err != nil {
		// domain errors are mapped by the central error handler
		return err
	}

	return c.JSON(http.StatusCreated, submitResponse{
		Filename: result.Filename,
		Score:    result.Score,
		BestRole: result.BestRole,
	})
}

// Ranked returns every submission sorted by score descending.
//
// @Summary      List submissions ranked by score
// @Tags         submissions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  rankedResponse
// @Failure      403  {object}  map[string]string
// @Router       /v1/submissions/ranked [get]
func (h *SubmissionHandler) Ranked(c echo.Context) error {
	records, err := h.service.Rank(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, rankedResponse{
		Submissions: records,
		Total:       len(records),
	})
}

// Download serves a stored resume read-only by storage name.
//
// @Summary      Download a stored resume
// @Tags         submissions
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        filename  path  string  true  "Storage name"
// @Success      200
// @Failure      404  {object}  map[string]string
// @Router       /v1/resumes/{filename} [get]
func (h *SubmissionHandler) Download(c echo.Context) error {
	path, err := h.docs.Path(c.Param("filename"))
	if err != nil {
		return err
	}
	return c.File(path)
}
