package dto

import "lensboard/internal/pkg/request"

// 登入交接：外部 auth service 簽發的 token 連同宣稱的 user id 以表單送來
type LoginDto struct {
	Token  string `form:"token" binding:"required"`
	UserID int64  `form:"user_id" binding:"required"`
}

func (LoginDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"Token.required":  "token is required",
		"UserID.required": "user_id is required",
	}
}
