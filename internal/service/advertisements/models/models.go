package models

import (
	"errors"
	"time"

	"github.com/goatcricket/GCB-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid advertisement status")
)

// Request модели

// CreateAdvertisementRequest заявка бренда на размещение рекламы
type CreateAdvertisementRequest struct {
	BrandName         string `json:"brandName"`
	ContactPersonName string `json:"contactPersonName"`
	Email             string `json:"email"`
	MobileNo          string `json:"mobileNo"`
	PromotionType     string `json:"promotionType"` // ground | tournament | both
	CompanyDetails    string `json:"companyDetails"`
	AdvertiseDuration string `json:"advertiseDuration"`
}

// ListAdvertisementsRequest запрос на список заявок
type ListAdvertisementsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"` // pending | approved | rejected | active
}

// UpdateStatusRequest запрос на модерацию заявки
type UpdateStatusRequest struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"`
}

// Response модели

// AdvertisementResponse ответ с данными заявки
type AdvertisementResponse struct {
	ID                int64  `json:"id"`
	BrandName         string `json:"brandName"`
	ContactPersonName string `json:"contactPersonName"`
	Email             string `json:"email"`
	MobileNo          string `json:"mobileNo"`
	PromotionType     string `json:"promotionType"`
	CompanyDetails    string `json:"companyDetails"`
	AdvertiseDuration string `json:"advertiseDuration"`
	Status            string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AdvertisementListResponse ответ со списком заявок
type AdvertisementListResponse struct {
	Advertisements []AdvertisementResponse `json:"advertisements"`
}

// Методы конвертации

// FromDomainAdvertisement конвертирует domain модель в DTO
func FromDomainAdvertisement(a *domain.Advertisement) *AdvertisementResponse {
	if a == nil {
		return nil
	}

	return &AdvertisementResponse{
		ID:                a.ID,
		BrandName:         a.BrandName,
		ContactPersonName: a.ContactPersonName,
		Email:             a.Email,
		MobileNo:          a.MobileNo,
		PromotionType:     string(a.PromotionType),
		CompanyDetails:    a.CompanyDetails,
		AdvertiseDuration: a.AdvertiseDuration,
		Status:            string(a.Status),
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

// FromDomainAdvertisementList конвертирует список domain моделей в DTO
func FromDomainAdvertisementList(ads []*domain.Advertisement) *AdvertisementListResponse {
	resp := &AdvertisementListResponse{
		Advertisements: make([]AdvertisementResponse, 0, len(ads)),
	}

	for _, ad := range ads {
		if adResp := FromDomainAdvertisement(ad); adResp != nil {
			resp.Advertisements = append(resp.Advertisements, *adResp)
		}
	}

	return resp
}

// ToDomainAdvertisementStatus конвертирует строку в domain.AdvertisementStatus с валидацией
func ToDomainAdvertisementStatus(status string) (domain.AdvertisementStatus, error) {
	s := domain.AdvertisementStatus(status)

	switch s {
	case domain.AdStatusPending, domain.AdStatusApproved, domain.AdStatusRejected, domain.AdStatusActive:
		return s, nil
	default:
		return "", ErrInvalidStatus
	}
}
