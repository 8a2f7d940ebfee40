package fleet

import (
	"fmt"
	"math"
	"time"

	"forklift_tracker/internal/activity"
	"forklift_tracker/internal/models"
)

// Notification severities, matching what the dashboards render.
const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
	SeveritySuccess  = "success"
)

// Notification codes. One forklift can raise several at once; battery and
// activity alerts are independent concerns and are never deduplicated.
const (
	CodeBatteryCritical  = "battery_critical"
	CodeBatteryLow       = "battery_low"
	CodeIdle             = "idle"
	CodeHighProductivity = "high_productivity"
)

type Notification struct {
	Severity   string    `json:"severity"`
	Code       string    `json:"code"`
	ForkliftID string    `json:"forklift_id"`
	Name       string    `json:"name"`
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
}

type BatteryStats struct {
	Average  float64 `json:"average"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Critical int     `json:"critical"`
	Warning  int     `json:"warning"`
	Good     int     `json:"good"`
}

type MostActive struct {
	ForkliftID string         `json:"forklift_id"`
	Name       string         `json:"name"`
	Activity   activity.State `json:"activity"`
}

// Snapshot is the point-in-time aggregate over the whole fleet. It is
// recomputed from scratch on every request; nothing here is cached.
type Snapshot struct {
	GeneratedAt    time.Time              `json:"generated_at"`
	Total          int                    `json:"total"`
	ActivityCounts map[activity.State]int `json:"activity_counts"`
	Battery        BatteryStats           `json:"battery"`
	// UtilizationPct is (DRIVING + WORKING) / total as an integer percent.
	UtilizationPct int            `json:"utilization_pct"`
	Notifications  []Notification `json:"notifications"`
	MostActive     *MostActive    `json:"most_active,omitempty"`
}

// Aggregate folds the current state of every forklift into one Snapshot.
// Deterministic and side-effect free; an empty fleet yields zeroed
// aggregates rather than an error.
func Aggregate(forklifts []models.Forklift, th activity.Thresholds, now time.Time) Snapshot {
	snap := Snapshot{
		GeneratedAt:    now,
		Total:          len(forklifts),
		ActivityCounts: map[activity.State]int{},
		Notifications:  []Notification{},
	}
	if len(forklifts) == 0 {
		return snap
	}

	var sum float64
	snap.Battery.Min = math.MaxFloat64
	snap.Battery.Max = -math.MaxFloat64

	for i := range forklifts {
		f := &forklifts[i]
		state := f.CurrentActivity
		if state == "" {
			state = activity.StateUnknown
		}
		snap.ActivityCounts[state]++

		sum += f.BatteryLevel
		snap.Battery.Min = math.Min(snap.Battery.Min, f.BatteryLevel)
		snap.Battery.Max = math.Max(snap.Battery.Max, f.BatteryLevel)
		switch activity.BandFor(f.BatteryLevel, th) {
		case activity.BatteryCritical:
			snap.Battery.Critical++
		case activity.BatteryWarning:
			snap.Battery.Warning++
		default:
			snap.Battery.Good++
		}

		snap.Notifications = append(snap.Notifications, notificationsFor(f, th, now)...)

		// First WORKING/DRIVING unit in input order wins; a deliberately
		// simple tie-break, not a ranking.
		if snap.MostActive == nil && (state == activity.StateWorking || state == activity.StateDriving) {
			snap.MostActive = &MostActive{
				ForkliftID: f.ForkliftID,
				Name:       f.Name,
				Activity:   state,
			}
		}
	}

	snap.Battery.Average = sum / float64(snap.Total)

	productive := snap.ActivityCounts[activity.StateDriving] + snap.ActivityCounts[activity.StateWorking]
	snap.UtilizationPct = int(math.Round(float64(productive) / float64(snap.Total) * 100))

	return snap
}

// notificationsFor applies the per-vehicle alert predicates. Battery
// critical and low are mutually exclusive bands sharing the critical
// threshold with the health buckets; idle and high-productivity fire
// independently of battery alerts.
func notificationsFor(f *models.Forklift, th activity.Thresholds, now time.Time) []Notification {
	name := f.Name
	if name == "" {
		name = f.ForkliftID
	}

	var out []Notification

	if f.BatteryLevel < th.BatteryCriticalPct {
		out = append(out, Notification{
			Severity:   SeverityCritical,
			Code:       CodeBatteryCritical,
			ForkliftID: f.ForkliftID,
			Name:       name,
			Message:    fmt.Sprintf("%s battery at %.0f%%", name, f.BatteryLevel),
			Timestamp:  now,
		})
	} else if f.BatteryLevel <= th.BatteryLowMaxPct {
		out = append(out, Notification{
			Severity:   SeverityWarning,
			Code:       CodeBatteryLow,
			ForkliftID: f.ForkliftID,
			Name:       name,
			Message:    fmt.Sprintf("%s battery at %.0f%%", name, f.BatteryLevel),
			Timestamp:  now,
		})
	}

	if f.CurrentActivity == activity.StateIdle {
		out = append(out, Notification{
			Severity:   SeverityWarning,
			Code:       CodeIdle,
			ForkliftID: f.ForkliftID,
			Name:       name,
			Message:    fmt.Sprintf("%s has been idle", name),
			Timestamp:  now,
		})
	}

	if f.CurrentActivity == activity.StateWorking && f.BatteryLevel > th.HighProductivityBatteryPct {
		out = append(out, Notification{
			Severity:   SeveritySuccess,
			Code:       CodeHighProductivity,
			ForkliftID: f.ForkliftID,
			Name:       name,
			Message:    fmt.Sprintf("%s is performing well", name),
			Timestamp:  now,
		})
	}

	return out
}
