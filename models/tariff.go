package models

import "time"

type AdditionalCharge struct {
	Name   string  `json:"name" bson:"name" db:"name"`
	Amount float64 `json:"amount" bson:"amount" db:"amount"`
}

// TariffItem prices one vehicle class. Rates are rupees.
type TariffItem struct {
	ID                string             `json:"id" bson:"_id,omitempty" db:"id"`
	VehicleType       string             `json:"vehicle_type" bson:"vehicle_type" db:"vehicle_type" validate:"required"`
	RatePerKm         float64            `json:"rate_per_km" bson:"rate_per_km" db:"rate_per_km" validate:"min=0"`
	MinimumKm         float64            `json:"minimum_km" bson:"minimum_km" db:"minimum_km" validate:"min=0"`
	MinimumFare       float64            `json:"minimum_fare" bson:"minimum_fare" db:"minimum_fare" validate:"min=0"`
	DriverBata        float64            `json:"driver_bata" bson:"driver_bata" db:"driver_bata" validate:"min=0"`
	AdditionalCharges []AdditionalCharge `json:"additional_charges" bson:"additional_charges" db:"additional_charges"`
	Status            string             `json:"status" bson:"status" db:"status" validate:"omitempty,oneof=active inactive"`
	CreatedAt         time.Time          `json:"created_at" bson:"created_at" db:"created_at"`
}
