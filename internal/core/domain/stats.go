package domain

// Stats are the counters exposed on /stats
type Stats struct {
	Users int64 `json:"users"`
	Files int64 `json:"files"`
}
