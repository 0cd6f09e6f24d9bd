package api

// ReviewStatusRequest isApproved 必填，false 也必須明確送出
// swagger:model api.ReviewStatusRequest
type ReviewStatusRequest struct {
	IsApproved *bool `json:"isApproved" validate:"required" example:"true"`
}
