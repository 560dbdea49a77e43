package mapper

import (
	"github.com/SergioDzul/agencyGiuseppi/internal/api/handler/request"
	"github.com/SergioDzul/agencyGiuseppi/internal/api/handler/response"
	"github.com/SergioDzul/agencyGiuseppi/internal/api/models"
)

type UserMapper struct{}

func (UserMapper) DtoToEntity(dto request.RegisterUserDTO) models.User {
	return models.User{
		Email:              dto.Email,
		FirstName:          dto.FirstName,
		LastName:           dto.LastName,
		Gender:             dto.Gender,
		Birthday:           dto.Birthday,
		TermsAndConditions: dto.TermsAndConditions,
		Country:            dto.Country,
		State:              dto.State,
		IsSuperuser:        dto.IsSuperuser,
		JobID:              dto.JobID,
		ReportToID:         dto.ReportToID,
	}
}

func (UserMapper) DtoToUpdate(dto request.UpdateUserDTO, user *models.User) {
	if dto.Email != nil {
		user.Email = *dto.Email
	}
	if dto.FirstName != nil {
		user.FirstName = *dto.FirstName
	}
	if dto.LastName != nil {
		user.LastName = *dto.LastName
	}
	if dto.Gender != nil {
		user.Gender = dto.Gender
	}
	if dto.Country != nil {
		user.Country = dto.Country
	}
	if dto.State != nil {
		user.State = dto.State
	}
	if dto.IsActive != nil {
		user.IsActive = *dto.IsActive
	}
	if dto.JobID != nil {
		user.JobID = dto.JobID
	}
	if dto.ReportToID != nil {
		user.ReportToID = dto.ReportToID
	}
}

func (UserMapper) EntityToUserResponse(user models.User) response.UserResponseDTO {
	return response.UserResponseDTO{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		FullName:    user.GetFullName(),
		Gender:      user.Gender,
		Country:     user.Country,
		State:       user.State,
		IsSuperuser: user.IsSuperuser,
		IsActive:    user.IsActive,
		JobID:       user.JobID,
		ReportToID:  user.ReportToID,
		CreatedAt:   user.CreatedAt,
	}
}
