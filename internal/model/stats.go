package model

type PartStats struct {
	Total         int
	Available     int
	Sold          int
	OnHold        int
	AddedThisWeek int
}
