package validate

import (
	"regexp"
	"strings"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

// Chilean regions HuertoHogar delivers to.
var regions = map[string]bool{
	"Arica y Parinacota": true,
	"Coquimbo":           true,
	"Valparaíso":         true,
	"Metropolitana":      true,
	"O'Higgins":          true,
	"Maule":              true,
	"Ñuble":              true,
	"Biobío":             true,
	"La Araucanía":       true,
	"Los Ríos":           true,
	"Los Lagos":          true,
}

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 60 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

func Region(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, regions[s]
}

// Name validates a displayable first or last name.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 40 {
		return "", false
	}
	return s, true
}

// ID validates a simple resource identifier (product/category ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Qty clamps a cart quantity to a sane window.
func Qty(n int) int {
	if n < 1 {
		return 1
	}
	if n > 50 {
		return 50
	}
	return n
}

// Password enforces length plus character classes.
func Password(s string) bool {
	l := len(s)
	if l < 8 || l > 64 {
		return false
	}
	var hasLower, hasUpper, hasDigit bool
	for _, r := range s {
		switch {
		case 'a' <= r && r <= 'z':
			hasLower = true
		case 'A' <= r && r <= 'Z':
			hasUpper = true
		case '0' <= r && r <= '9':
			hasDigit = true
		}
	}
	return hasLower && hasUpper && hasDigit
}

// Registration runs every field check for the register form and returns a
// per-field error map, empty when the submission is valid. All checks are
// synchronous; nothing is written anywhere until this map comes back empty.
func Registration(nombre, apellido, email, region, password, confirm string) map[string]string {
	errs := map[string]string{}
	if _, ok := Name(nombre); !ok {
		errs["nombre"] = "nombre requerido (máx. 40 caracteres)"
	}
	if _, ok := Name(apellido); !ok {
		errs["apellido"] = "apellido requerido (máx. 40 caracteres)"
	}
	if _, ok := Email(email); !ok {
		errs["email"] = "email inválido"
	}
	if _, ok := Region(region); !ok {
		errs["region"] = "región desconocida"
	}
	if !Password(password) {
		errs["password"] = "la contraseña debe tener 8+ caracteres con mayúscula, minúscula y dígito"
	}
	if password != confirm {
		errs["confirmar"] = "las contraseñas no coinciden"
	}
	return errs
}
