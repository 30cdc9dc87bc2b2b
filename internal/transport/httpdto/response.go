package httpdto

// Message keys returned by the registry write endpoints. These are the
// externally observed contract and are passed through the translator
// unchanged.
const (
	MsgSuccess     = "Success"
	MsgFail        = "Fail"
	MsgHeaderError = "Header Error"
)

// MessageResponse is the soft-fail body of the write endpoints.
type MessageResponse struct {
	Msg string `json:"msg"`
}

func NewMessageResponse(msg string) MessageResponse {
	return MessageResponse{Msg: msg}
}

// Response is the envelope used by the auth and operational endpoints.
type Response[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

func NewSuccessResponse[T any](data T) Response[T] {
	return Response[T]{
		Success: true,
		Data:    data,
	}
}

func NewErrorResponse(err string, code string) Response[any] {
	return Response[any]{
		Success: false,
		Error:   err,
		Code:    code,
	}
}
