package domain

import "time"

// PromotionType represents what an advertiser wants to sponsor
type PromotionType string

const (
	PromotionGround     PromotionType = "ground"
	PromotionTournament PromotionType = "tournament"
	PromotionBoth       PromotionType = "both"
)

// AdvertisementStatus represents the moderation state of a sponsorship request
type AdvertisementStatus string

const (
	AdStatusPending  AdvertisementStatus = "pending"
	AdStatusApproved AdvertisementStatus = "approved"
	AdStatusRejected AdvertisementStatus = "rejected"
	AdStatusActive   AdvertisementStatus = "active"
)

// Advertisement represents a sponsorship request submitted by a brand
type Advertisement struct {
	ID                int64
	BrandName         string
	ContactPersonName string
	Email             string
	MobileNo          string
	PromotionType     PromotionType
	CompanyDetails    string
	AdvertiseDuration string // free text, e.g. "3 months"
	Status            AdvertisementStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidPromotionType reports whether t is a known promotion type
func ValidPromotionType(t PromotionType) bool {
	switch t {
	case PromotionGround, PromotionTournament, PromotionBoth:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether a moderation transition is allowed:
// pending -> approved/rejected, approved -> active
func (a *Advertisement) CanTransitionTo(to AdvertisementStatus) bool {
	switch to {
	case AdStatusApproved, AdStatusRejected:
		return a.Status == AdStatusPending
	case AdStatusActive:
		return a.Status == AdStatusApproved
	default:
		return false
	}
}
