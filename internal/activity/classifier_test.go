package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyChargingStationWins(t *testing.T) {
	th := DefaultThresholds()
	r := Reading{
		GPS:           GPSData{Speed: 3.2},
		Accelerometer: AccelerometerData{MovementDetected: true, VibrationMagnitude: 0.4},
		Ultrasonic:    UltrasonicData{LoadDetected: true, ForkHeight: 80},
		RFID:          RFIDData{TagDetected: true, StationID: "STN-CHG-01"},
	}

	got := Classify(r, StationTypeCharging, th)

	assert.Equal(t, StateCharging, got.State)
	assert.True(t, got.EngineOn)
	assert.False(t, got.InMotion)
}

func TestClassifyRFIDAtNonChargingStationDoesNotCharge(t *testing.T) {
	th := DefaultThresholds()
	r := Reading{
		Accelerometer: AccelerometerData{VibrationMagnitude: 0.3},
		RFID:          RFIDData{TagDetected: true, StationID: "STN-LOAD-01"},
	}

	got := Classify(r, "loading", th)

	assert.Equal(t, StateIdle, got.State)
}

func TestClassifyParkedWhenEngineOff(t *testing.T) {
	th := DefaultThresholds()
	r := Reading{
		GPS:           GPSData{Speed: 0},
		Accelerometer: AccelerometerData{VibrationMagnitude: 0.05, MovementDetected: false},
	}

	got := Classify(r, "", th)

	assert.Equal(t, StateParked, got.State)
	assert.Equal(t, ForkDown, got.ForkState)
	assert.False(t, got.EngineOn)
	assert.False(t, got.InMotion)
}

func TestClassifyIdleNotParkedWhenEngineVibrates(t *testing.T) {
	// Speed zero and no movement, but vibration at the noise floor means
	// the engine is running: IDLE, not PARKED.
	th := DefaultThresholds()
	r := Reading{
		GPS:           GPSData{Speed: 0},
		Accelerometer: AccelerometerData{VibrationMagnitude: 0.1, MovementDetected: false},
		RFID:          RFIDData{TagDetected: false},
	}

	got := Classify(r, "", th)

	assert.Equal(t, StateIdle, got.State)
	assert.True(t, got.EngineOn)
	assert.False(t, got.InMotion)
}

func TestClassifyWorkingAtExactRaisedBoundary(t *testing.T) {
	// The raised band is inclusive: exactly 50 cm with a load is WORKING.
	th := DefaultThresholds()
	r := Reading{
		Accelerometer: AccelerometerData{VibrationMagnitude: 0.5},
		Ultrasonic:    UltrasonicData{LoadDetected: true, ForkHeight: 50.0},
	}

	got := Classify(r, "", th)

	assert.Equal(t, StateWorking, got.State)
	assert.Equal(t, ForkRaised, got.ForkState)
}

func TestClassifyWorkingInMotionFollowsSpeed(t *testing.T) {
	th := DefaultThresholds()
	r := Reading{
		GPS:           GPSData{Speed: 2.1},
		Accelerometer: AccelerometerData{VibrationMagnitude: 0.55, MovementDetected: true},
		Ultrasonic:    UltrasonicData{LoadDetected: true, ForkHeight: 120},
	}

	got := Classify(r, "", th)

	assert.Equal(t, StateWorking, got.State)
	assert.True(t, got.InMotion)
}

func TestClassifyDrivingWithPalletHeightForks(t *testing.T) {
	th := DefaultThresholds()
	r := Reading{
		GPS:           GPSData{Speed: 8.5},
		Accelerometer: AccelerometerData{MovementDetected: true, VibrationMagnitude: 0.45},
		Ultrasonic:    UltrasonicData{LoadDetected: false, ForkHeight: 15},
	}

	got := Classify(r, "", th)

	assert.Equal(t, StateDriving, got.State)
	assert.Equal(t, ForkPalletHeight, got.ForkState)
	assert.True(t, got.InMotion)
	assert.True(t, got.EngineOn)
}

func TestClassifyDrivingOnAccelerometerAlone(t *testing.T) {
	// GPS dropout (speed 0) must not mask movement the IMU can see.
	th := DefaultThresholds()
	r := Reading{
		GPS:           GPSData{Speed: 0, Valid: false},
		Accelerometer: AccelerometerData{MovementDetected: true, VibrationMagnitude: 0.4},
	}

	got := Classify(r, "", th)

	assert.Equal(t, StateDriving, got.State)
	assert.True(t, got.InMotion)
}

func TestClassifyLoadAtLowHeightIsNotWorking(t *testing.T) {
	th := DefaultThresholds()
	r := Reading{
		Accelerometer: AccelerometerData{VibrationMagnitude: 0.3},
		Ultrasonic:    UltrasonicData{LoadDetected: true, ForkHeight: 30},
	}

	got := Classify(r, "", th)

	assert.Equal(t, StateIdle, got.State)
}

func TestClassifyZeroValueReadingIsTotal(t *testing.T) {
	// An all-default reading still classifies; nothing panics, nothing
	// leaves the enum.
	got := Classify(Reading{}, "", DefaultThresholds())

	assert.Equal(t, StateParked, got.State)
	assert.Contains(t, []State{
		StateParked, StateIdle, StateDriving, StateWorking, StateCharging, StateUnknown,
	}, got.State)
}

func TestClassifyIsIdempotent(t *testing.T) {
	th := DefaultThresholds()
	r := Reading{
		GPS:           GPSData{Speed: 4.4},
		Accelerometer: AccelerometerData{MovementDetected: true, VibrationMagnitude: 0.6},
		Ultrasonic:    UltrasonicData{ForkHeight: 55, LoadDetected: true},
	}

	first := Classify(r, "", th)
	second := Classify(r, "", th)

	assert.Equal(t, first, second)
}

func TestForkStateBands(t *testing.T) {
	th := DefaultThresholds()

	cases := []struct {
		height float64
		want   ForkState
	}{
		{0, ForkDown},
		{9.9, ForkDown},
		{10, ForkPalletHeight},
		{49.9, ForkPalletHeight},
		{50, ForkRaised},
		{200, ForkRaised},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, forkStateFor(tc.height, th), "height %v", tc.height)
	}
}

func TestBatteryBands(t *testing.T) {
	th := DefaultThresholds()

	assert.Equal(t, BatteryCritical, BandFor(0, th))
	assert.Equal(t, BatteryCritical, BandFor(19.9, th))
	assert.Equal(t, BatteryWarning, BandFor(20, th))
	assert.Equal(t, BatteryWarning, BandFor(49.9, th))
	assert.Equal(t, BatteryGood, BandFor(50, th))
	assert.Equal(t, BatteryGood, BandFor(100, th))
}
