package api

// Response 成功回應的共用外框
// swagger:model api.Response
type Response struct {
	Success bool   `json:"success" example:"true"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse 失敗回應；Stack 只在非 production 環境輸出
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Success bool         `json:"success" example:"false"`
	Message string       `json:"message" example:"Server Error"`
	Errors  []FieldError `json:"errors,omitempty"`
	Stack   string       `json:"stack,omitempty"`
}

// FieldError 單一欄位的驗證錯誤
type FieldError struct {
	Field   string `json:"field" example:"email"`
	Message string `json:"message" example:"email is required"`
}

func Data(v any) Response {
	return Response{Success: true, Data: v}
}

// List 帶筆數的列表回應
func List[T any](items []T) Response {
	n := len(items)
	if items == nil {
		items = []T{}
	}
	return Response{Success: true, Count: &n, Data: items}
}

func Message(msg string, v any) Response {
	return Response{Success: true, Message: msg, Data: v}
}

func Error(msg string) ErrorResponse {
	return ErrorResponse{Message: msg}
}
