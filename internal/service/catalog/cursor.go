package service

import (
	"encoding/base64"
	"encoding/json"
	"errors"

	"github.com/you-humble/partsyard/internal/model"
)

type cursorToken struct {
	Field     model.SortField     `json:"f"`
	Direction model.SortDirection `json:"d"`
	Value     int64               `json:"v"`
	ID        string              `json:"i"`
}

func encodeCursor(s model.Sort, p *model.Part) string {
	raw, _ := json.Marshal(cursorToken{
		Field:     s.Field,
		Direction: s.Direction,
		Value:     s.Field.ValueOf(p),
		ID:        p.ID,
	})
	return base64.RawURLEncoding.EncodeToString(raw)
}

// decodeCursor rejects cursors that are unreadable or were issued for another ordering.
func decodeCursor(cursor string, s model.Sort) (*model.Keyset, error) {
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return nil, errors.Join(model.ErrInvalidArgument, errors.New("malformed cursor"))
	}

	var tok cursorToken
	if err := json.Unmarshal(raw, &tok); err != nil || tok.ID == "" {
		return nil, errors.Join(model.ErrInvalidArgument, errors.New("malformed cursor"))
	}
	if tok.Field != s.Field || tok.Direction != s.Direction {
		return nil, errors.Join(model.ErrInvalidArgument, errors.New("cursor does not match sort order"))
	}

	return &model.Keyset{Value: tok.Value, ID: tok.ID}, nil
}

// isAfter reports whether p comes strictly after k in the order s.
func isAfter(p *model.Part, k *model.Keyset, s model.Sort) bool {
	v := s.Field.ValueOf(p)
	if s.Direction == model.SortAsc {
		return v > k.Value || (v == k.Value && p.ID > k.ID)
	}
	return v < k.Value || (v == k.Value && p.ID < k.ID)
}
