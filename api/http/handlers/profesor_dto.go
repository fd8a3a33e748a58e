package handlers

import (
	"bytes"
	"fmt"
	"time"

	"github.com/edutechinnovations/proyect/pkg/profesor"
)

const dateLayout = "2006-01-02"

// date is a calendar day carried as "YYYY-MM-DD". RFC 3339 timestamps are
// accepted on input and truncated to their date; "" reads as no date.
type date struct {
	time.Time
}

func (d date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("date must be a string, got %s", b)
	}
	s := string(b[1 : len(b)-1])
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		ts, err2 := time.Parse(time.RFC3339, s)
		if err2 != nil {
			return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
		}
		t = time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
	}
	d.Time = t
	return nil
}

// profesorRequest is the body of POST and PUT. id_profesor is only honoured
// on POST.
type profesorRequest struct {
	ID              int64  `json:"id_profesor"`
	CheckDigit      string `json:"dv_profesor"`
	FirstName       string `json:"pnombre_profesor"`
	SecondName      string `json:"snombre_profesor"`
	PaternalSurname string `json:"appaterno_profesor"`
	MaternalSurname string `json:"apmaterno_profesor"`
	Email           string `json:"correo_profesor"`
	Password        string `json:"contrasena_profesor"`
	BirthDate       *date  `json:"fecha_nacimiento_profesor"`
}

func (r profesorRequest) toEntity() profesor.Profesor {
	p := profesor.Profesor{
		ID:              r.ID,
		CheckDigit:      r.CheckDigit,
		FirstName:       r.FirstName,
		SecondName:      r.SecondName,
		PaternalSurname: r.PaternalSurname,
		MaternalSurname: r.MaternalSurname,
		Email:           r.Email,
	}
	if r.BirthDate != nil && !r.BirthDate.IsZero() {
		t := r.BirthDate.Time
		p.BirthDate = &t
	}
	return p
}

// profesorResponse never carries the password or its hash.
type profesorResponse struct {
	ID              int64  `json:"id_profesor"`
	CheckDigit      string `json:"dv_profesor"`
	FirstName       string `json:"pnombre_profesor"`
	SecondName      string `json:"snombre_profesor"`
	PaternalSurname string `json:"appaterno_profesor"`
	MaternalSurname string `json:"apmaterno_profesor"`
	Email           string `json:"correo_profesor"`
	BirthDate       *date  `json:"fecha_nacimiento_profesor"`
}

func toResponse(p profesor.Profesor) profesorResponse {
	res := profesorResponse{
		ID:              p.ID,
		CheckDigit:      p.CheckDigit,
		FirstName:       p.FirstName,
		SecondName:      p.SecondName,
		PaternalSurname: p.PaternalSurname,
		MaternalSurname: p.MaternalSurname,
		Email:           p.Email,
	}
	if p.BirthDate != nil {
		res.BirthDate = &date{Time: *p.BirthDate}
	}
	return res
}

func toResponses(ps []profesor.Profesor) []profesorResponse {
	res := make([]profesorResponse, 0, len(ps))
	for _, p := range ps {
		res = append(res, toResponse(p))
	}
	return res
}
