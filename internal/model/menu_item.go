// File: internal/model/menu_item.go
package model

import (
	"strings"
	"time"
)

// 菜單分類與飲食標籤的固定列舉
var (
	MenuCategories = []string{"appetizers", "soups", "mains", "sides", "desserts", "wines"}
	DietaryTags    = []string{"vegetarian", "vegan", "gluten-free", "dairy-free"}
)

const DefaultMenuImage = "no-photo.jpg"

type MenuItem struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name" validate:"required,max=50"`
	Description string    `json:"description" validate:"required,max=500"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	Category    string    `json:"category" validate:"required,oneof=appetizers soups mains sides desserts wines"`
	Image       string    `json:"image"`
	Dietary     []string  `json:"dietary" validate:"omitempty,dive,oneof=vegetarian vegan gluten-free dairy-free"`
	Rating      float64   `json:"rating" validate:"gte=0,lte=5"`
	IsPopular   bool      `json:"isPopular"`
	IsAvailable bool      `json:"isAvailable"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewMenuItem 回傳帶有預設值的菜單項目，供 JSON 綁定覆寫
func NewMenuItem() MenuItem {
	return MenuItem{
		Image:       DefaultMenuImage,
		Dietary:     []string{},
		IsAvailable: true,
	}
}

// Normalize 修剪名稱並補上空白欄位的預設值
func (m *MenuItem) Normalize() {
	m.Name = strings.TrimSpace(m.Name)
	if m.Image == "" {
		m.Image = DefaultMenuImage
	}
	if m.Dietary == nil {
		m.Dietary = []string{}
	}
}
