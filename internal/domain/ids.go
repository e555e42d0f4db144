package domain

// BookingID is an internal identifier for a booking record.
type BookingID string
