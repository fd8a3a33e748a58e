package profesor

import "time"

// Profesor is a teacher record as kept by the store.
type Profesor struct {
	ID              int64
	CheckDigit      string
	FirstName       string
	SecondName      string
	PaternalSurname string
	MaternalSurname string
	Email           string
	PasswordHash    string
	BirthDate       *time.Time
}

// applyFrom copies every client-supplied field of src onto p. Identity and
// password hash are owned by the caller.
func (p *Profesor) applyFrom(src Profesor) {
	p.CheckDigit = src.CheckDigit
	p.FirstName = src.FirstName
	p.SecondName = src.SecondName
	p.PaternalSurname = src.PaternalSurname
	p.MaternalSurname = src.MaternalSurname
	p.Email = src.Email
	p.BirthDate = src.BirthDate
}
