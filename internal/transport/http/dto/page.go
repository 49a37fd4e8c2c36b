package dto

type PublicPage struct {
	Parts       []PublicPart `json:"parts"`
	Total       int          `json:"total"`
	HasMore     bool         `json:"hasMore"`
	Page        int          `json:"page,omitempty"`
	PageSize    int          `json:"pageSize,omitempty"`
	TotalPages  int          `json:"totalPages,omitempty"`
	Unavailable bool         `json:"unavailable,omitempty"`
	CallUs      string       `json:"callUs,omitempty"`
}

type RecentResponse struct {
	Parts       []PublicPart `json:"parts"`
	Unavailable bool         `json:"unavailable,omitempty"`
	CallUs      string       `json:"callUs,omitempty"`
}

type IDsResponse struct {
	IDs []string `json:"ids"`
}

type AdminPage struct {
	Parts      []Part `json:"parts"`
	Total      int    `json:"total"`
	HasMore    bool   `json:"hasMore"`
	NextCursor string `json:"nextCursor,omitempty"`
}

type Stats struct {
	Total         int `json:"total"`
	Available     int `json:"available"`
	Sold          int `json:"sold"`
	OnHold        int `json:"onHold"`
	AddedThisWeek int `json:"addedThisWeek"`
}

type Dashboard struct {
	User  Identity `json:"user"`
	Stats Stats    `json:"stats"`
}

type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type SessionRequest struct {
	IDToken string `json:"idToken"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type Error struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
	Retry  bool              `json:"retry,omitempty"`
	CallUs string            `json:"callUs,omitempty"`
}
