package endpoints

import (
	"net/http"

	"github.com/SergioDzul/agencyGiuseppi/internal/api/handler/mapper"
	"github.com/SergioDzul/agencyGiuseppi/internal/api/handler/request"
	"github.com/SergioDzul/agencyGiuseppi/internal/api/handler/response"
	"github.com/SergioDzul/agencyGiuseppi/internal/api/service"
	"github.com/SergioDzul/agencyGiuseppi/pkg"
	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type jobHandler struct {
	jobService *service.JobService
	logger     zerolog.Logger
	jobMapper  mapper.JobMapper
}

func JobHandler(router *graceful.Graceful, db *gorm.DB, logger zerolog.Logger) {
	h := &jobHandler{
		jobService: service.NewJobService(db, logger),
		logger:     logger,
	}

	jobs := router.Group("/api/v1/jobs")
	{
		jobs.POST("", h.create)
		jobs.GET("", h.list)
		jobs.GET("/:id", h.get)
		jobs.DELETE("/:id", h.delete)
		jobs.POST("/:id/chain-of-command", h.validateChainOfCommand)
	}
}

func (slf *jobHandler) create(c *gin.Context) {
	var createDTO request.CreateJobDTO
	if err := pkg.ParseAndValidate(c, &createDTO); err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	job, err := slf.jobService.Create(createDTO.Name, createDTO.ReportToID)
	if err != nil {
		slf.logger.Error().Err(err).Str("name", createDTO.Name).Msg("Error creating job")
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, slf.jobMapper.EntityToJobResponse(*job))
}

func (slf *jobHandler) list(c *gin.Context) {
	jobs, err := slf.jobService.GetAll()
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]response.JobResponseDTO, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, slf.jobMapper.EntityToJobResponse(job))
	}
	c.JSON(http.StatusOK, out)
}

func (slf *jobHandler) get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	job, err := slf.jobService.GetByID(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, slf.jobMapper.EntityToJobResponse(*job))
}

func (slf *jobHandler) delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := slf.jobService.Delete(id); err != nil {
		slf.logger.Error().Err(err).Uint("jobId", id).Msg("Error deleting job")
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// validateChainOfCommand probes whether the candidate job is the designated
// parent of this job. 204 means the reporting line is legal.
func (slf *jobHandler) validateChainOfCommand(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var probeDTO request.ChainOfCommandDTO
	if err := pkg.ParseAndValidate(c, &probeDTO); err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	if err := slf.jobService.ValidateChainOfCommand(id, probeDTO.CandidateID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
