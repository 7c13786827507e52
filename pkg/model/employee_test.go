package model

import "testing"

func TestNewRoster_RejectsEmpty(t *testing.T) {
	if _, err := NewRoster(nil); err == nil {
		t.Fatal("expected error for empty roster")
	}
}

func TestNewRoster_RejectsDuplicateID(t *testing.T) {
	_, err := NewRoster([]Employee{
		{ID: "e1", Floor: "1F"},
		{ID: "e1", Floor: "2F"},
	})
	if err == nil {
		t.Fatal("expected error for duplicate employee id")
	}
}

func TestRoster_FloorGrouping(t *testing.T) {
	r, err := NewRoster([]Employee{
		{ID: "e1", Floor: "1F"},
		{ID: "e2", Floor: "1F"},
		{ID: "e3", Floor: "2F"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	floor1 := r.Floor("1F")
	if len(floor1) != 2 {
		t.Errorf("Floor(1F) = %v, expected 2 employees", floor1)
	}
	floor2 := r.Floor("2F")
	if len(floor2) != 1 {
		t.Errorf("Floor(2F) = %v, expected 1 employee", floor2)
	}
}

func TestRoster_ByEmploymentTypeAndStatus(t *testing.T) {
	r, err := NewRoster([]Employee{
		{ID: "e1", EmploymentType: "常勤", Status: ""},
		{ID: "e2", EmploymentType: "パート", Status: "育休"},
		{ID: "e3", EmploymentType: "常勤", Status: "病休"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fullTime := r.ByEmploymentType("常勤")
	if len(fullTime) != 2 {
		t.Errorf("ByEmploymentType(常勤) = %v, expected 2", fullTime)
	}

	onLeave := r.ByStatus([]string{"育休", "病休"})
	if len(onLeave) != 2 {
		t.Errorf("ByStatus(育休,病休) = %v, expected 2", onLeave)
	}
}

func TestRoster_Get(t *testing.T) {
	r, err := NewRoster([]Employee{{ID: "e1", Floor: "1F"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := r.Get("missing"); ok {
		t.Error("expected Get(missing) to report false")
	}
	e, ok := r.Get("e1")
	if !ok || e.Floor != "1F" {
		t.Errorf("Get(e1) = %v, %v, expected {Floor:1F}, true", e, ok)
	}
}
