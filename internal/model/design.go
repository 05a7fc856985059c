package model

import "time"

// Design is a computed gauge set saved to history.
type Design struct {
	CreatedAt time.Time   `json:"created_at"`
	ID        string      `json:"id"`
	Result    GaugeResult `json:"result"`
}
