package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"clinic-portal/internal/delivery/dto"
)

//go:embed templates/*.html
var templates embed.FS

// DoctorCardRenderer turns one search result card into an HTML fragment.
type DoctorCardRenderer interface {
	Render(card dto.DoctorCard) (string, error)
}

type doctorCardRenderer struct {
	tmpl *template.Template
}

func NewDoctorCardRenderer() (DoctorCardRenderer, error) {
	tmpl, err := template.New("cards").
		Funcs(template.FuncMap{"join": strings.Join}).
		ParseFS(templates, "templates/doctor_card.html")
	if err != nil {
		return nil, fmt.Errorf("parse doctor card template: %w", err)
	}
	return &doctorCardRenderer{tmpl: tmpl}, nil
}

func (r *doctorCardRenderer) Render(card dto.DoctorCard) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "doctor_card", card); err != nil {
		return "", fmt.Errorf("render doctor card %d: %w", card.ID, err)
	}
	return buf.String(), nil
}
