package views

import "testing"

func TestInitial(t *testing.T) {
	if got := Initial(true); got != History {
		t.Errorf("Expected authenticated sessions to land on history, got %s", got)
	}
	if got := Initial(false); got != Landing {
		t.Errorf("Expected signed-out sessions to land on landing, got %s", got)
	}
}

func TestAllowed(t *testing.T) {
	cases := []struct {
		view          Name
		authenticated bool
		want          bool
	}{
		{Landing, false, true},
		{Landing, true, false},
		{Login, false, true},
		{Login, true, false},
		{Register, false, true},
		{History, true, true},
		{History, false, false},
		{Generator, true, true},
		{Generator, false, false},
		{Statistics, false, false},
		{Premium, true, true},
		{Reviews, false, false},
		{Success, true, true},
		{Success, false, true},
		{Cancel, true, true},
		{Cancel, false, true},
		{Name("unknown"), true, false},
	}
	for _, tc := range cases {
		if got := Allowed(tc.view, tc.authenticated); got != tc.want {
			t.Errorf("Allowed(%s, auth=%v) = %v, want %v", tc.view, tc.authenticated, got, tc.want)
		}
	}
}

func TestValid(t *testing.T) {
	for _, view := range []Name{Landing, Login, Register, Generator, History, Statistics, Premium, Reviews, Success, Cancel} {
		if !Valid(view) {
			t.Errorf("Expected %s to be a valid view", view)
		}
	}
	if Valid(Name("settings")) {
		t.Error("Expected an unknown view to be invalid")
	}
}

func TestPath(t *testing.T) {
	if got := Path(Success); got != "/payment/success" {
		t.Errorf("Unexpected success path %s", got)
	}
	if got := Path(Name("unknown")); got != "/" {
		t.Errorf("Expected unknown views to map to the root, got %s", got)
	}
}
