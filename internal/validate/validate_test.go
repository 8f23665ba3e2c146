package validate_test

import (
	"testing"

	"huertohogar/internal/validate"
)

func TestRegistrationAllValid(t *testing.T) {
	errs := validate.Registration("Ana", "Rojas", "ana@huertohogar.cl", "Metropolitana", "Secreta1!", "Secreta1!")
	if len(errs) != 0 {
		t.Fatalf("want no errors, got %v", errs)
	}
}

func TestRegistrationMismatchedConfirmation(t *testing.T) {
	errs := validate.Registration("Ana", "Rojas", "ana@huertohogar.cl", "Metropolitana", "Secreta1!", "Otra2!xx")
	if errs["confirmar"] == "" {
		t.Fatalf("want confirmar error, got %v", errs)
	}
}

func TestRegistrationCollectsPerFieldErrors(t *testing.T) {
	errs := validate.Registration("", "Rojas", "no-es-email", "Marte", "corta", "corta")
	for _, field := range []string{"nombre", "email", "region", "password"} {
		if errs[field] == "" {
			t.Errorf("missing error for field %q: %v", field, errs)
		}
	}
	if errs["apellido"] != "" {
		t.Errorf("unexpected apellido error: %v", errs)
	}
}

func TestQtyClamps(t *testing.T) {
	if validate.Qty(0) != 1 || validate.Qty(-3) != 1 {
		t.Fatal("qty below 1 must clamp to 1")
	}
	if validate.Qty(999) != 50 {
		t.Fatal("qty above 50 must clamp to 50")
	}
	if validate.Qty(7) != 7 {
		t.Fatal("in-range qty must pass through")
	}
}

func TestRegion(t *testing.T) {
	if _, ok := validate.Region("Biobío"); !ok {
		t.Fatal("Biobío is a valid region")
	}
	if _, ok := validate.Region("Narnia"); ok {
		t.Fatal("unknown region accepted")
	}
}
