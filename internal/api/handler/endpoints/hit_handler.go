package endpoints

import (
	"net/http"

	"github.com/SergioDzul/agencyGiuseppi/internal/api/handler/mapper"
	"github.com/SergioDzul/agencyGiuseppi/internal/api/handler/request"
	"github.com/SergioDzul/agencyGiuseppi/internal/api/handler/response"
	"github.com/SergioDzul/agencyGiuseppi/internal/api/models"
	"github.com/SergioDzul/agencyGiuseppi/internal/api/service"
	"github.com/SergioDzul/agencyGiuseppi/pkg"
	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type hitHandler struct {
	hitService  *service.HitService
	userService *service.UserService
	logger      zerolog.Logger
	hitMapper   mapper.HitMapper
}

func HitHandler(router *graceful.Graceful, db *gorm.DB, logger zerolog.Logger) {
	h := &hitHandler{
		hitService:  service.NewHitService(db, logger),
		userService: service.NewUserService(db, logger),
		logger:      logger,
	}

	hits := router.Group("/api/v1/hits")
	{
		hits.POST("", h.create)
		hits.GET("", h.list)
		hits.GET("/:id", h.get)
		hits.PATCH("/:id", h.update)
		hits.POST("/:id/assign", h.assign)
	}
}

func (slf *hitHandler) create(c *gin.Context) {
	var createDTO request.CreateHitDTO
	if err := pkg.ParseAndValidate(c, &createDTO); err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	hit := models.Hit{
		TargetName:   createDTO.TargetName,
		Description:  createDTO.Description,
		Status:       models.HitUnassigned,
		CreatedByID:  createDTO.CreatedByID,
		AssignedToID: createDTO.AssignedToID,
	}
	if err := slf.hitService.Save(&hit); err != nil {
		slf.logger.Error().Err(err).Str("target", createDTO.TargetName).Msg("Error creating hit")
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, slf.hitMapper.EntityToHitResponse(hit))
}

func (slf *hitHandler) list(c *gin.Context) {
	hits, err := slf.hitService.GetAll()
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]response.HitResponseDTO, 0, len(hits))
	for _, hit := range hits {
		out = append(out, slf.hitMapper.EntityToHitResponse(hit))
	}
	c.JSON(http.StatusOK, out)
}

func (slf *hitHandler) get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	hit, err := slf.hitService.GetByID(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, slf.hitMapper.EntityToHitResponse(*hit))
}

func (slf *hitHandler) update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var updateDTO request.UpdateHitDTO
	if err := pkg.ParseAndValidate(c, &updateDTO); err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	hit, err := slf.hitService.GetByID(id)
	if err != nil {
		writeError(c, err)
		return
	}

	if updateDTO.TargetName != nil {
		hit.TargetName = *updateDTO.TargetName
	}
	if updateDTO.Description != nil {
		hit.Description = *updateDTO.Description
	}
	if updateDTO.Status != nil {
		hit.Status = models.HitStatus(*updateDTO.Status)
	}

	if err := slf.hitService.Save(hit); err != nil {
		slf.logger.Error().Err(err).Uint("hitId", id).Msg("Error updating hit")
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, slf.hitMapper.EntityToHitResponse(*hit))
}

func (slf *hitHandler) assign(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var assignDTO request.AssignHitDTO
	if err := pkg.ParseAndValidate(c, &assignDTO); err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	hit, err := slf.hitService.GetByID(id)
	if err != nil {
		writeError(c, err)
		return
	}
	user, err := slf.userService.GetByID(assignDTO.UserID)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := slf.hitService.Assign(hit, user); err != nil {
		slf.logger.Error().Err(err).Uint("hitId", id).Uint("userId", user.ID).Msg("Error assigning hit")
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, slf.hitMapper.EntityToHitResponse(*hit))
}
