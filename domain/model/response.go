package model

// Res is the JSON envelope every endpoint answers with.
type Res struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func OK(message string, data interface{}) Res {
	return Res{Status: "success", Message: message, Data: data}
}

func Err(message string) Res {
	return Res{Status: "error", Message: message}
}
