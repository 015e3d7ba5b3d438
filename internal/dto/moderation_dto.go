package dto

type SetUserStatusRequest struct {
	Status  string `json:"status"`
	BanDays *int   `json:"ban_days,omitempty"`
}

type CascadeResponse struct {
	Message     string           `json:"message"`
	Updated     map[string]int64 `json:"updated"`
	FailedKinds int              `json:"failed_kinds"`
}
