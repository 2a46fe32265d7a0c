package models

type Response struct {
	Detail string `json:"detail"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func ErrorResponse(detail string) Response {
	return Response{Detail: detail}
}
