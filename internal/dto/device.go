package dto

type DeviceRequest struct {
	IP string `json:"ip"`
	UA string `json:"ua"`
}

type RecaptchaResponse struct {
	Success bool    `json:"success"`
	Score   float64 `json:"score"`
	Action  string  `json:"action"`
}
