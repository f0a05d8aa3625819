package activity

import "time"

// MetricSnapshot is today's headline numbers against their daily goals.
type MetricSnapshot struct {
	Steps        int     `json:"steps"`
	StepsGoal    int     `json:"steps_goal"`
	Calories     int     `json:"calories"`
	CaloriesGoal int     `json:"calories_goal"`
	Water        int     `json:"water"`
	WaterGoal    int     `json:"water_goal"`
	Sleep        float64 `json:"sleep"`
	SleepGoal    float64 `json:"sleep_goal"`
	HeartRate    int     `json:"heart_rate"`
	Workouts     int     `json:"workouts"`
	WorkoutsGoal int     `json:"workouts_goal"`
}

// Entry is one item in the recent activity feed.
type Entry struct {
	ID       string    `json:"id"`
	Type     string    `json:"type"` // workout, meal, water
	Name     string    `json:"name"`
	Time     string    `json:"time"`
	Duration string    `json:"duration,omitempty"`
	Calories int       `json:"calories,omitempty"`
	Amount   string    `json:"amount,omitempty"`
	LoggedAt time.Time `json:"-"`
}

// Summary is the activity surface payload: snapshot plus feed.
type Summary struct {
	Metrics MetricSnapshot `json:"metrics"`
	Recent  []*Entry       `json:"recent_activities"`
}
