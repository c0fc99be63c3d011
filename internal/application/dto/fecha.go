package dto

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// LayoutFecha es el formato de las fechas de calendario (sin hora).
const LayoutFecha = "2006-01-02"

// Formatos aceptados para fecha y hora. Sin zona horaria se interpreta como UTC.
var fechaHoraLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999", "2006-01-02T15:04"}

// ParseFechaHora interpreta s con cualquiera de los formatos de fecha y hora aceptados.
func ParseFechaHora(s string) (time.Time, error) {
	for _, layout := range fechaHoraLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha y hora inválida: %q", s)
}

// FechaHora es un instante en JSON. Acepta RFC 3339 o 2006-01-02T15:04:05 y se
// serializa en RFC 3339.
type FechaHora struct {
	time.Time
}

func (f FechaHora) MarshalJSON() ([]byte, error) {
	return f.Time.MarshalJSON()
}

func (f *FechaHora) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("fecha y hora: %w", err)
	}
	t, err := ParseFechaHora(s)
	if err != nil {
		return err
	}
	f.Time = t
	return nil
}

// Fecha es una fecha de calendario en JSON: se lee y se escribe como YYYY-MM-DD.
// También acepta RFC 3339 y se queda con la fecha.
type Fecha struct {
	time.Time
}

func (f Fecha) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(f.Format(LayoutFecha))), nil
}

func (f *Fecha) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("fecha: %w", err)
	}
	t, err := time.Parse(LayoutFecha, s)
	if err != nil {
		full, ferr := ParseFechaHora(s)
		if ferr != nil {
			return fmt.Errorf("fecha inválida: %q", s)
		}
		t = time.Date(full.Year(), full.Month(), full.Day(), 0, 0, 0, 0, time.UTC)
	}
	f.Time = t
	return nil
}
