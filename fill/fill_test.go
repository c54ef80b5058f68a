package fill

import "testing"

func TestArea(t *testing.T) {
	a := NewArea(-3)
	if a.Width() != 0 {
		t.Fatalf("negative width kept: %v", a.Width())
	}

	a.Resize(200)
	a.SetLeftInset(50)
	a.SetRightInset(30)

	if l, r := a.Insets(); l != 50 || r != 30 {
		t.Fatalf("insets = %v, %v", l, r)
	}
	if start, end := a.Span(); start != 50 || end != 170 {
		t.Fatalf("span = %v, %v", start, end)
	}
	if got := a.String(); got != "[50.00, 170.00] of 200.00" {
		t.Fatalf("String() = %q", got)
	}
}
