package response

import "court-reserve/internal/usecase/readmodel"

type LoginResponse struct {
	AccessToken string                      `json:"access_token"`
	User        *readmodel.AuthorizedUserRM `json:"user"`
}

type SignUpResponse struct {
	User *readmodel.AuthorizedUserRM `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// TokenIssuedResponse returns a confirmation token in the body. A mail
// sender would deliver these out of band; until one is wired the client
// completes the flow with the returned token directly.
type TokenIssuedResponse struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}
