package user

import (
	"userdir/domain/user"
)

func toProfile(dto UserDTO) user.Profile {
	return user.Profile{
		Email:       dto.Email,
		FirstName:   dto.FirstName,
		LastName:    dto.LastName,
		BirthDate:   dto.BirthDate,
		Address:     dto.Address,
		PhoneNumber: dto.PhoneNumber,
	}
}

func toDTO(u *user.User) UserDTO {
	return UserDTO{
		Email:       u.Email(),
		FirstName:   u.FirstName(),
		LastName:    u.LastName(),
		BirthDate:   u.BirthDate(),
		Address:     u.Address(),
		PhoneNumber: u.PhoneNumber(),
	}
}

func toDTOList(users []*user.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, u := range users {
		dtos[i] = toDTO(u)
	}
	return dtos
}

func toDateRange(dto DateRangeDTO) user.DateRange {
	return user.DateRange{From: dto.From, To: dto.To}
}
