package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/kaytee124/jobserverapi/api/http/presenter"
	"github.com/kaytee124/jobserverapi/pkg/apperr"
	"github.com/kaytee124/jobserverapi/pkg/job"
)

type JobHandler struct {
	jobs job.UseCase
}

func NewJobHandler(jobs job.UseCase) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// Post stores the body as a new job posting. Fields are not validated.
// @Summary Post a job
// @Tags    jobs
// @Accept  json
// @Produce json
// @Param   input body map[string]any true "job fields (title, category, skills, postedBy, ...)"
// @Success 200 {object} presenter.InsertResult
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /post-job [post]
func (h *JobHandler) Post(c *fiber.Ctx) error {
	fields := map[string]any{}
	if err := c.BodyParser(&fields); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	id, err := h.jobs.Create(c.UserContext(), fields)
	if err != nil {
		log.Printf("post job: %v", err)
		return presenter.Error(c, http.StatusNotFound, "cannot insert, try again later")
	}
	return presenter.Inserted(c, id)
}

// List returns every job, newest first.
// @Summary List jobs
// @Tags    jobs
// @Produce json
// @Success 200 {array} map[string]any
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /all-jobs [get]
func (h *JobHandler) List(c *fiber.Ctx) error {
	jobs, err := h.jobs.ListAll(c.UserContext())
	if err != nil {
		log.Printf("list jobs: %v", err)
		return presenter.Error(c, http.StatusInternalServerError, "cannot load jobs")
	}
	return presenter.JSON(c, http.StatusOK, jobs)
}

// Get returns one job.
// @Summary Get job
// @Tags    jobs
// @Produce json
// @Param   id path string true "job id"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /all-jobs/{id} [get]
func (h *JobHandler) Get(c *fiber.Ctx) error {
	j, err := h.jobs.GetByID(c.UserContext(), c.Params("id"))
	switch {
	case err == nil:
		return presenter.JSON(c, http.StatusOK, j)
	case errors.Is(err, apperr.ErrInvalidInput):
		return presenter.Error(c, http.StatusBadRequest, "invalid job id")
	case errors.Is(err, apperr.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "Job not found")
	default:
		log.Printf("get job %s: %v", c.Params("id"), err)
		return presenter.Error(c, http.StatusInternalServerError, "cannot load job")
	}
}

// ListByPoster returns the jobs a poster email owns.
// @Summary List my jobs
// @Tags    jobs
// @Produce json
// @Param   email path string true "poster email"
// @Success 200 {array} map[string]any
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /myJobs/{email} [get]
func (h *JobHandler) ListByPoster(c *fiber.Ctx) error {
	jobs, err := h.jobs.ListByPoster(c.UserContext(), c.Params("email"))
	if err != nil {
		log.Printf("list jobs by poster: %v", err)
		return presenter.Error(c, http.StatusInternalServerError, "cannot load jobs")
	}
	return presenter.JSON(c, http.StatusOK, jobs)
}

// Delete removes a job. A second delete reports deletedCount 0.
// @Summary Delete job
// @Tags    jobs
// @Produce json
// @Param   id path string true "job id"
// @Success 200 {object} presenter.DeleteResult
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /delete-job/{id} [delete]
func (h *JobHandler) Delete(c *fiber.Ctx) error {
	n, err := h.jobs.DeleteByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, apperr.ErrInvalidInput) {
			return presenter.Error(c, http.StatusBadRequest, "invalid job id")
		}
		log.Printf("delete job %s: %v", c.Params("id"), err)
		return presenter.Error(c, http.StatusInternalServerError, "cannot delete job")
	}
	return presenter.Deleted(c, n)
}
