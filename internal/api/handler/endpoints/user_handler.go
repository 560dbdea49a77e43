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

type userHandler struct {
	userService *service.UserService
	logger      zerolog.Logger
	userMapper  mapper.UserMapper
}

func UserHandler(router *graceful.Graceful, db *gorm.DB, logger zerolog.Logger) {
	h := &userHandler{
		userService: service.NewUserService(db, logger),
		logger:      logger,
	}

	users := router.Group("/api/v1/users")
	{
		users.POST("", h.register)
		users.GET("", h.list)
		users.GET("/:id", h.get)
		users.PUT("/:id", h.update)
		users.DELETE("/:id", h.delete)
	}
}

func (slf *userHandler) register(c *gin.Context) {
	var registerDTO request.RegisterUserDTO
	if err := pkg.ParseAndValidate(c, &registerDTO); err != nil {
		slf.logger.Error().Err(err).Msg("Error parsing and validating register DTO")
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	user := slf.userMapper.DtoToEntity(registerDTO)
	created, err := slf.userService.Create(&user, registerDTO.Password1)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error creating user")
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, slf.userMapper.EntityToUserResponse(*created))
}

func (slf *userHandler) list(c *gin.Context) {
	users, err := slf.userService.GetAll()
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error listing users")
		writeError(c, err)
		return
	}

	out := make([]response.UserResponseDTO, 0, len(users))
	for _, user := range users {
		out = append(out, slf.userMapper.EntityToUserResponse(user))
	}
	c.JSON(http.StatusOK, out)
}

func (slf *userHandler) get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	user, err := slf.userService.GetByID(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, slf.userMapper.EntityToUserResponse(*user))
}

func (slf *userHandler) update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var updateDTO request.UpdateUserDTO
	if err := pkg.ParseAndValidate(c, &updateDTO); err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	user, err := slf.userService.GetByID(id)
	if err != nil {
		writeError(c, err)
		return
	}

	slf.userMapper.DtoToUpdate(updateDTO, user)
	if err := slf.userService.Save(user); err != nil {
		slf.logger.Error().Err(err).Uint("userId", id).Msg("Error updating user")
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, slf.userMapper.EntityToUserResponse(*user))
}

// delete performs the logical deletion: the account is deactivated and
// timestamped, the row stays.
func (slf *userHandler) delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	user, err := slf.userService.GetByID(id)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := slf.userService.Delete(user); err != nil {
		slf.logger.Error().Err(err).Uint("userId", id).Msg("Error deleting user")
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
