package bulk_update_bookings

// BulkUpdateRequest HTTP request model
// Action определяет массовое действие над набором бронирований
type BulkUpdateRequest struct {
	Action     string  `json:"action"` // confirm | complete | cancel
	BookingIDs []int64 `json:"bookingIds"`
}

// BulkUpdateResponse HTTP response model
type BulkUpdateResponse struct {
	Action   string `json:"action"`
	Affected int64  `json:"affected"`
}
