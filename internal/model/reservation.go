// File: internal/model/reservation.go
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
)

// LooseInt 接受 JSON 數字或數字字串（前端表單會送出 "2"）
type LooseInt int

func (n *LooseInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*n = 0
			return nil
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid integer %q", s)
		}
		*n = LooseInt(v)
		return nil
	}
	var v int
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*n = LooseInt(v)
	return nil
}

// Reservation 訂位；狀態之間沒有轉換限制，任何值都可以接任何值
type Reservation struct {
	ID              string            `json:"_id"`
	User            string            `json:"user,omitempty"`
	Name            string            `json:"name" validate:"required"`
	Email           string            `json:"email" validate:"required,resvemail"`
	Phone           string            `json:"phone" validate:"required"`
	Date            string            `json:"date" validate:"required"`
	Time            string            `json:"time" validate:"required"`
	Guests          LooseInt          `json:"guests" validate:"required,min=1,max=20"`
	SpecialRequests string            `json:"specialRequests,omitempty" validate:"max=500"`
	Status          ReservationStatus `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
	CreatedAt       time.Time         `json:"createdAt"`
}
