package request

import "court-reserve/internal/usecase"

type UpdateProfileRequest struct {
	FullName     string `json:"full_name" binding:"required"`
	FullNameKana string `json:"full_name_kana,omitempty"`
	Phone        string `json:"phone,omitempty"`
}

func (r UpdateProfileRequest) ToParams() usecase.ProfileParams {
	return usecase.ProfileParams{
		FullName:     r.FullName,
		FullNameKana: r.FullNameKana,
		Phone:        r.Phone,
	}
}
