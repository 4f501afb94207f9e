package models

import "testing"

func TestIsValidRoomStatus(t *testing.T) {
	valid := []string{"Available", "Occupied", "Retired"}
	for _, s := range valid {
		if !IsValidRoomStatus(s) {
			t.Errorf("IsValidRoomStatus(%q) = false, want true", s)
		}
	}
	invalid := []string{"", "available", "Booked", "occupied "}
	for _, s := range invalid {
		if IsValidRoomStatus(s) {
			t.Errorf("IsValidRoomStatus(%q) = true, want false", s)
		}
	}
}

func TestIsValidOrderStatus(t *testing.T) {
	valid := []string{"Pending", "Completed"}
	for _, s := range valid {
		if !IsValidOrderStatus(s) {
			t.Errorf("IsValidOrderStatus(%q) = false, want true", s)
		}
	}
	invalid := []string{"", "pending", "Cancelled", "Open"}
	for _, s := range invalid {
		if IsValidOrderStatus(s) {
			t.Errorf("IsValidOrderStatus(%q) = true, want false", s)
		}
	}
}
