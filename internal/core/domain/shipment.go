package domain

import (
	"strings"
	"time"
)

// ShipmentStatus is the carrier-independent parcel state.
type ShipmentStatus string

const (
	ShipmentUnknown        ShipmentStatus = "UNKNOWN"
	ShipmentReadyToPick    ShipmentStatus = "READY_TO_PICK"
	ShipmentPicking        ShipmentStatus = "PICKING"
	ShipmentPicked         ShipmentStatus = "PICKED"
	ShipmentInTransit      ShipmentStatus = "IN_TRANSIT"
	ShipmentDelivering     ShipmentStatus = "DELIVERING"
	ShipmentDelivered      ShipmentStatus = "DELIVERED"
	ShipmentDeliveryFailed ShipmentStatus = "DELIVERY_FAILED"
	ShipmentReturning      ShipmentStatus = "RETURNING"
	ShipmentReturned       ShipmentStatus = "RETURNED"
	ShipmentCanceled       ShipmentStatus = "CANCELED"
	ShipmentException      ShipmentStatus = "EXCEPTION"
)

// ghnStatuses maps GHN order status codes.
var ghnStatuses = map[string]ShipmentStatus{
	"ready_to_pick":            ShipmentReadyToPick,
	"picking":                  ShipmentPicking,
	"money_collect_picking":    ShipmentPicking,
	"picked":                   ShipmentPicked,
	"storing":                  ShipmentInTransit,
	"transporting":             ShipmentInTransit,
	"sorting":                  ShipmentInTransit,
	"delivering":               ShipmentDelivering,
	"money_collect_delivering": ShipmentDelivering,
	"delivered":                ShipmentDelivered,
	"delivery_fail":            ShipmentDeliveryFailed,
	"waiting_to_return":        ShipmentReturning,
	"return":                   ShipmentReturning,
	"return_transporting":      ShipmentReturning,
	"return_sorting":           ShipmentReturning,
	"returning":                ShipmentReturning,
	"return_fail":              ShipmentReturning,
	"returned":                 ShipmentReturned,
	"cancel":                   ShipmentCanceled,
	"exception":                ShipmentException,
	"damage":                   ShipmentException,
	"lost":                     ShipmentException,
}

// MapCarrierStatus translates a carrier status code. Unknown codes map to ShipmentUnknown.
func MapCarrierStatus(code string) ShipmentStatus {
	if st, ok := ghnStatuses[strings.ToLower(strings.TrimSpace(code))]; ok {
		return st
	}
	return ShipmentUnknown
}

// KnownCarrierStatus reports whether code is part of the carrier's vocabulary.
func KnownCarrierStatus(code string) bool {
	_, ok := ghnStatuses[strings.ToLower(strings.TrimSpace(code))]
	return ok
}

// PickedUp reports whether the carrier has the parcel in hand.
func (s ShipmentStatus) PickedUp() bool {
	switch s {
	case ShipmentPicked, ShipmentInTransit, ShipmentDelivering, ShipmentDelivered:
		return true
	}
	return false
}

// CarrierUpdate is one status observation for a carrier order code,
// from a webhook or a poll.
type CarrierUpdate struct {
	OrderCode  string    `json:"order_code"`
	RawStatus  string    `json:"status"`
	TotalFee   *int64    `json:"total_fee,omitempty"`
	ObservedAt time.Time `json:"observed_at"`
}

// Status returns the mapped shipment status.
func (u CarrierUpdate) Status() ShipmentStatus {
	return MapCarrierStatus(u.RawStatus)
}
