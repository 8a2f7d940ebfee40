package activity

// State is the derived operating mode of a forklift.
type State string

const (
	StateParked   State = "PARKED"
	StateIdle     State = "IDLE"
	StateDriving  State = "DRIVING"
	StateWorking  State = "WORKING"
	StateCharging State = "CHARGING"
	StateUnknown  State = "UNKNOWN"
)

// ForkState describes the mast position derived from the ultrasonic sensor.
type ForkState string

const (
	ForkDown         ForkState = "DOWN"
	ForkPalletHeight ForkState = "PALLET_HEIGHT"
	ForkRaised       ForkState = "RAISED"
	ForkUnknown      ForkState = "UNKNOWN"
)

// StationTypeCharging is the station type that triggers the CHARGING state
// when a forklift scans its RFID tag.
const StationTypeCharging = "charging"

// ActivityState is the classifier output. It has no identity of its own;
// the ingestion pipeline stores the latest value on the forklift record.
type ActivityState struct {
	State     State     `json:"state"`
	ForkState ForkState `json:"fork_state"`
	EngineOn  bool      `json:"engine_on"`
	InMotion  bool      `json:"in_motion"`
}

// GPSData is one GPS fix from the vehicle-mounted module.
type GPSData struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Altitude   float64 `json:"altitude"`
	Speed      float64 `json:"speed"` // km/h
	Satellites int     `json:"satellites"`
	Valid      bool    `json:"valid"`
}

// AccelerometerData carries IMU readings plus the firmware's own
// motion/vibration derivations.
type AccelerometerData struct {
	AccelX             float64 `json:"accel_x"`
	AccelY             float64 `json:"accel_y"`
	AccelZ             float64 `json:"accel_z"`
	GyroX              float64 `json:"gyro_x"`
	GyroY              float64 `json:"gyro_y"`
	GyroZ              float64 `json:"gyro_z"`
	Temperature        float64 `json:"temperature"`
	VibrationMagnitude float64 `json:"vibration_magnitude"`
	TiltAngle          float64 `json:"tilt_angle"`
	MovementDetected   bool    `json:"movement_detected"`
}

// UltrasonicData carries fork height, load presence and obstacle distances.
type UltrasonicData struct {
	ForkHeight    float64 `json:"fork_height"` // cm
	LoadDistance  float64 `json:"load_distance"`
	FrontObstacle float64 `json:"front_obstacle"`
	RearObstacle  float64 `json:"rear_obstacle"`
	LoadDetected  bool    `json:"load_detected"`
	FrontWarning  bool    `json:"front_warning"`
	FrontDanger   bool    `json:"front_danger"`
	RearWarning   bool    `json:"rear_warning"`
	RearDanger    bool    `json:"rear_danger"`
}

// RFIDData is the last tag scan reported with the reading, if any.
type RFIDData struct {
	TagID       string `json:"tag_id"`
	StationID   string `json:"station_id"`
	StationName string `json:"station_name"`
	TagDetected bool   `json:"tag_detected"`
}

// Reading is the sensor portion of a normalized telemetry report, the
// classifier's sole input. Absent sub-objects arrive zero-valued, which
// reads as "not detected" throughout the rules.
type Reading struct {
	GPS           GPSData           `json:"gps"`
	Accelerometer AccelerometerData `json:"accelerometer"`
	Ultrasonic    UltrasonicData    `json:"ultrasonic"`
	RFID          RFIDData          `json:"rfid"`
}
