package models

import (
	"errors"
	"time"

	"github.com/goatcricket/GCB-BookingService/internal/domain"
)

var (
	// ErrInvalidOrderBy возвращается при некорректном поле сортировки
	ErrInvalidOrderBy = errors.New("invalid order by field")
)

// Request модели

// ListVenuesRequest запрос на получение списка площадок
type ListVenuesRequest struct {
	Search  *string `json:"search,omitempty"`  // Поиск по названию, городу и адресу
	OrderBy *string `json:"orderBy,omitempty"` // name | rating | created_at
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListVenuesRequest) ToDomainFilter() (domain.VenueFilter, error) {
	filter := domain.VenueFilter{
		Search: r.Search,
	}

	if r.OrderBy != nil {
		switch *r.OrderBy {
		case "name", "rating", "created_at":
			filter.OrderBy = *r.OrderBy
		default:
			return filter, ErrInvalidOrderBy
		}
	}

	return filter, nil
}

// Response модели

// VenueResponse ответ с данными площадки
// Rating - средний рейтинг по отзывам, либо базовый рейтинг площадки,
// если отзывов еще нет
type VenueResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	CourtsCount int     `json:"courtsCount"`

	CreatedAt time.Time `json:"createdAt"`
}

// VenueListResponse ответ со списком площадок
type VenueListResponse struct {
	Venues []VenueResponse `json:"venues"`
}

// CourtResponse ответ с данными корта
type CourtResponse struct {
	ID           int64  `json:"id"`
	VenueID      int64  `json:"venueId"`
	Name         string `json:"name"`
	Capacity     int    `json:"capacity"`
	PricePerHour string `json:"pricePerHour"` // денежное значение с двумя знаками, "1500.00"
	Description  string `json:"description"`
	IsActive     bool   `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
}

// CourtListResponse ответ со списком кортов площадки
type CourtListResponse struct {
	Courts []CourtResponse `json:"courts"`
}

// VenueDetailResponse ответ с площадкой и её кортами
type VenueDetailResponse struct {
	VenueResponse
	Courts []CourtResponse `json:"courts"`
}

// Методы конвертации

// FromDomainVenue конвертирует domain модель в DTO
// rating передается снаружи: средний по отзывам или базовый
func FromDomainVenue(v *domain.Venue, rating float64, courtsCount int) *VenueResponse {
	if v == nil {
		return nil
	}

	return &VenueResponse{
		ID:          v.ID,
		Name:        v.Name,
		Address:     v.Address,
		City:        v.City,
		Phone:       v.Phone,
		Email:       v.Email,
		Description: v.Description,
		Rating:      rating,
		CourtsCount: courtsCount,
		CreatedAt:   v.CreatedAt,
	}
}

// FromDomainCourt конвертирует domain модель в DTO
func FromDomainCourt(c *domain.Court) *CourtResponse {
	if c == nil {
		return nil
	}

	return &CourtResponse{
		ID:           c.ID,
		VenueID:      c.VenueID,
		Name:         c.Name,
		Capacity:     c.Capacity,
		PricePerHour: c.PricePerHour.StringFixed(2),
		Description:  c.Description,
		IsActive:     c.IsActive,
		CreatedAt:    c.CreatedAt,
	}
}

// FromDomainCourtList конвертирует список domain моделей в DTO
func FromDomainCourtList(courts []*domain.Court) *CourtListResponse {
	resp := &CourtListResponse{
		Courts: make([]CourtResponse, 0, len(courts)),
	}

	for _, court := range courts {
		if courtResp := FromDomainCourt(court); courtResp != nil {
			resp.Courts = append(resp.Courts, *courtResp)
		}
	}

	return resp
}
