package handlers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/kaytee124/jobserverapi/api/http/presenter"
	"github.com/kaytee124/jobserverapi/pkg/apperr"
	"github.com/kaytee124/jobserverapi/pkg/cv"
)

// SubmissionHandler accepts CVs for a job, either as an uploaded document
// (multipart "file" + "email") or as a hosted link (JSON cvUrl + email).
type SubmissionHandler struct {
	cvs       cv.UseCase
	uploadDir string
}

func NewSubmissionHandler(cvs cv.UseCase, uploadDir string) *SubmissionHandler {
	if uploadDir == "" {
		uploadDir = os.TempDir()
	}
	return &SubmissionHandler{cvs: cvs, uploadDir: uploadDir}
}

type linkRequest struct {
	CVURL string `json:"cvUrl"`
	Email string `json:"email"`
}

type submissionResponse struct {
	Message    string `json:"message"`
	Match      *bool  `json:"match"`
	InsertedID string `json:"insertedId"`
}

// Submit stores a CV against the job in the path.
// @Summary Submit CV
// @Description Multipart uploads are text-extracted and judged against the job skills; JSON bodies store a hosted CV link.
// @Tags    cv
// @Accept  multipart/form-data
// @Accept  json
// @Produce json
// @Param   id    path     string true  "job id"
// @Param   file  formData file   false "CV document (pdf or docx)"
// @Param   email formData string false "applicant email"
// @Success 200 {object} submissionResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /all-jobs/{id} [post]
func (h *SubmissionHandler) Submit(c *fiber.Ctx) error {
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		return h.submitDocument(c)
	}
	return h.submitLink(c)
}

func (h *SubmissionHandler) submitLink(c *fiber.Ctx) error {
	var req linkRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	id, err := h.cvs.SubmitLink(c.UserContext(), c.Params("id"), req.CVURL, req.Email)
	if err != nil {
		if errors.Is(err, apperr.ErrInvalidInput) {
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		}
		log.Printf("submit cv link for job %s: %v", c.Params("id"), err)
		return presenter.Error(c, http.StatusNotFound, "Cannot submit CV, try again later")
	}
	return presenter.Inserted(c, id)
}

func (h *SubmissionHandler) submitDocument(c *fiber.Ctx) error {
	in := cv.Upload{JobID: c.Params("id"), Email: c.FormValue("email")}

	if fh, err := c.FormFile("file"); err == nil && fh != nil {
		tmp, err := os.CreateTemp(h.uploadDir, "cv-*"+uploadExt(fh.Filename))
		if err != nil {
			log.Printf("create upload file: %v", err)
			return presenter.Error(c, http.StatusInternalServerError, "cannot store upload")
		}
		_ = tmp.Close()
		if err := c.SaveFile(fh, tmp.Name()); err != nil {
			_ = os.Remove(tmp.Name())
			log.Printf("save upload: %v", err)
			return presenter.Error(c, http.StatusInternalServerError, "cannot store upload")
		}
		in.Path = tmp.Name()
		in.Size = fh.Size
	}

	res, err := h.cvs.SubmitDocument(c.UserContext(), in)
	switch {
	case err == nil:
		return presenter.JSON(c, http.StatusOK, submissionResponse{
			Message:    "CV submitted successfully",
			Match:      res.Match,
			InsertedID: res.ID,
		})
	case errors.Is(err, apperr.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "Job not found")
	case errors.Is(err, apperr.ErrInvalidInput):
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrExtraction):
		log.Printf("cv extraction for job %s: %v", in.JobID, err)
		return presenter.Error(c, http.StatusInternalServerError, "Failed to read the CV document")
	case errors.Is(err, apperr.ErrExternalService):
		log.Printf("cv judgment for job %s: %v", in.JobID, err)
		return presenter.Error(c, http.StatusInternalServerError, "CV matching service failed, try again later")
	default:
		log.Printf("cv submission for job %s: %v", in.JobID, err)
		return presenter.Error(c, http.StatusInternalServerError, "Cannot submit CV, try again later")
	}
}

// uploadExt keeps only extensions the extractor understands.
func uploadExt(name string) string {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".pdf", ".docx":
		return ext
	default:
		return ""
	}
}
