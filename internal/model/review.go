// File: internal/model/review.go
package model

import "time"

// Review 顧客評論；ApprovedAt 只在核准時有值
type Review struct {
	ID         string     `json:"_id"`
	User       string     `json:"user,omitempty"`
	Name       string     `json:"name" validate:"required"`
	Email      string     `json:"email" validate:"required,email"`
	Rating     int        `json:"rating" validate:"required,min=1,max=5"`
	Comment    string     `json:"comment" validate:"required,max=500"`
	IsApproved bool       `json:"isApproved"`
	ApprovedBy string     `json:"approvedBy,omitempty"`
	ApprovedAt *time.Time `json:"approvedAt"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// SetApproval 依核准結果更新審核欄位
func (r *Review) SetApproval(approved bool, actorID string, now time.Time) {
	r.IsApproved = approved
	r.ApprovedBy = actorID
	if approved {
		t := now
		r.ApprovedAt = &t
		return
	}
	r.ApprovedAt = nil
}
