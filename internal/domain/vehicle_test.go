package domain

import (
	"errors"
	"testing"
)

func TestParseVehicleStatus(t *testing.T) {
	cases := map[string]VehicleStatus{
		"available":   StatusAvailable,
		" Available ": StatusAvailable,
		"busy":        StatusBusy,
	}
	for in, want := range cases {
		got, err := ParseVehicleStatus(in)
		if err != nil {
			t.Fatalf("ParseVehicleStatus(%q): unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseVehicleStatus(%q) = %q, want %q", in, got, want)
		}
	}

	if _, err := ParseVehicleStatus("parked"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestVehicleNormalize(t *testing.T) {
	v, err := Vehicle{Plate: " ABC-1234 ", Model: "Fiorino", Status: "busy", CurrentLocation: " Depot "}.Normalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Plate != "ABC-1234" || v.CurrentLocation != "Depot" || v.Status != StatusBusy {
		t.Fatalf("unexpected normalized vehicle: %+v", v)
	}

	if _, err := (Vehicle{Plate: "X", Model: "M", Status: "available"}).Normalize(); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("missing location: expected ErrInvalidInput, got %v", err)
	}
}

func TestVehiclePatchApply(t *testing.T) {
	v := Vehicle{Plate: "P1", Model: "M", Status: StatusBusy, CurrentLocation: "A"}

	status := StatusAvailable
	loc := "B"
	got, changed := VehiclePatch{Status: &status, CurrentLocation: &loc}.Apply(v)
	if !changed {
		t.Fatal("expected patch to report a change")
	}
	if got.Status != StatusAvailable || got.CurrentLocation != "B" {
		t.Fatalf("patch not applied: %+v", got)
	}
	if v.CurrentLocation != "A" {
		t.Fatal("Apply must not mutate its argument")
	}

	if _, changed := (VehiclePatch{Status: &status, CurrentLocation: &loc}).Apply(got); changed {
		t.Fatal("re-applying the same patch must report no change")
	}
}

func TestOrderInputNormalize(t *testing.T) {
	if _, err := (OrderInput{OriginLocation: "A", DestinationLocation: "B", Weight: -1}).Normalize(); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative weight: expected ErrInvalidInput, got %v", err)
	}

	in, err := OrderInput{OriginLocation: " A", DestinationLocation: "B ", Weight: 0}.Normalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.OriginLocation != "A" || in.DestinationLocation != "B" {
		t.Fatalf("unexpected normalized input: %+v", in)
	}
}
