package activity

// Classify derives the operating state of a forklift from one normalized
// reading. stationType is the type of the station matched to the reading's
// RFID scan, or "" when no station matched.
//
// The function is pure and total: it never fails, ambiguous input degrades
// to UNKNOWN/neutral values. Rules are evaluated in precedence order, first
// match wins:
//
//  1. RFID tag at a charging station     -> CHARGING
//  2. engine off (still, no speed)       -> PARKED
//  3. load on raised forks               -> WORKING
//  4. moving                             -> DRIVING
//  5. otherwise                          -> IDLE
//
// EngineOn is derived as state != PARKED; the hardware has no ignition
// sense line, so any non-parked truck is assumed running.
func Classify(r Reading, stationType string, th Thresholds) ActivityState {
	moving := r.GPS.Speed > th.MovementSpeedKmh

	if r.RFID.TagDetected && stationType == StationTypeCharging {
		return ActivityState{
			State:     StateCharging,
			ForkState: forkStateFor(r.Ultrasonic.ForkHeight, th),
			EngineOn:  true,
			InMotion:  false,
		}
	}

	if engineOff(r, th) {
		return ActivityState{
			State:     StateParked,
			ForkState: ForkDown,
			EngineOn:  false,
			InMotion:  false,
		}
	}

	if r.Ultrasonic.LoadDetected && r.Ultrasonic.ForkHeight >= th.ForkRaisedCm {
		return ActivityState{
			State:     StateWorking,
			ForkState: ForkRaised,
			EngineOn:  true,
			InMotion:  moving,
		}
	}

	if moving || r.Accelerometer.MovementDetected {
		return ActivityState{
			State:     StateDriving,
			ForkState: forkStateFor(r.Ultrasonic.ForkHeight, th),
			EngineOn:  true,
			InMotion:  true,
		}
	}

	return ActivityState{
		State:     StateIdle,
		ForkState: forkStateFor(r.Ultrasonic.ForkHeight, th),
		EngineOn:  true,
		InMotion:  false,
	}
}

// engineOff holds when the truck shows no accelerometer activity above the
// noise floor and GPS speed is effectively zero. This is the PARKED/IDLE
// boundary: vibration at or above the floor means a running engine.
func engineOff(r Reading, th Thresholds) bool {
	return !r.Accelerometer.MovementDetected &&
		r.Accelerometer.VibrationMagnitude < th.VibrationNoiseFloor &&
		r.GPS.Speed < th.MovementSpeedKmh
}

func forkStateFor(heightCm float64, th Thresholds) ForkState {
	switch {
	case heightCm >= th.ForkRaisedCm:
		return ForkRaised
	case heightCm >= th.ForkPalletCm:
		return ForkPalletHeight
	default:
		return ForkDown
	}
}

// BatteryBand buckets a battery percentage into the health bands used by
// the fleet aggregates.
type BatteryBand string

const (
	BatteryCritical BatteryBand = "critical"
	BatteryWarning  BatteryBand = "warning"
	BatteryGood     BatteryBand = "good"
)

func BandFor(batteryPct float64, th Thresholds) BatteryBand {
	switch {
	case batteryPct < th.BatteryCriticalPct:
		return BatteryCritical
	case batteryPct < th.BatteryGoodPct:
		return BatteryWarning
	default:
		return BatteryGood
	}
}
