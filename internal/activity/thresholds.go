package activity

// Thresholds are the numeric policy knobs behind classification. They are
// deployment policy, not physics, so every one of them can be overridden
// through configuration instead of living as literals in the rules.
type Thresholds struct {
	// MovementSpeedKmh is the GPS speed above which a forklift counts as
	// moving.
	MovementSpeedKmh float64

	// ForkRaisedCm and ForkPalletCm split fork height into
	// DOWN / PALLET_HEIGHT / RAISED bands. Both bounds are inclusive:
	// a height of exactly ForkRaisedCm is RAISED.
	ForkRaisedCm float64
	ForkPalletCm float64

	// VibrationNoiseFloor separates engine-off stillness from an idling
	// engine. Below the floor with no movement the truck is PARKED.
	VibrationNoiseFloor float64

	// Battery health bands. Critical is anything below BatteryCriticalPct,
	// warning is below BatteryGoodPct, good is the rest.
	BatteryCriticalPct float64
	BatteryGoodPct     float64

	// BatteryLowMaxPct caps the low-battery warning notification: it fires
	// for levels in [BatteryCriticalPct, BatteryLowMaxPct]. Narrower than
	// the warning health band on purpose; the bands serve different
	// outputs.
	BatteryLowMaxPct float64

	// HighProductivityBatteryPct is the battery level a WORKING forklift
	// must exceed to raise the high-productivity notification.
	HighProductivityBatteryPct float64
}

// DefaultThresholds mirrors the values the fleet hardware shipped with.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MovementSpeedKmh:    0.5,
		ForkRaisedCm:        50,
		ForkPalletCm:        10,
		VibrationNoiseFloor: 0.1,
		BatteryCriticalPct:  20,
		BatteryGoodPct:      50,

		BatteryLowMaxPct:           40,
		HighProductivityBatteryPct: 60,
	}
}
