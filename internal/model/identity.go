package model

// Identity is an authenticated staff member.
type Identity struct {
	Subject string
	Email   string
	Name    string
}

func (i Identity) Empty() bool { return i.Email == "" }
