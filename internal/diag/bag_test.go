package diag_test

import (
	"testing"

	"lexa/internal/diag"
	"lexa/internal/source"
)

func mkDiag(code diag.Code, sev diag.Severity, start, end uint32) diag.Diagnostic {
	return diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  "test",
		Primary:  source.Span{File: 0, Start: start, End: end},
	}
}

func TestBag_AddRespectsLimit(t *testing.T) {
	bag := diag.NewBag(2)

	if !bag.Add(mkDiag(diag.LexInvalidToken, diag.SevError, 0, 1)) {
		t.Fatal("first Add rejected")
	}
	if !bag.Add(mkDiag(diag.LexInvalidToken, diag.SevError, 1, 2)) {
		t.Fatal("second Add rejected")
	}
	if bag.Add(mkDiag(diag.LexInvalidToken, diag.SevError, 2, 3)) {
		t.Fatal("Add beyond the limit accepted")
	}
	if bag.Len() != 2 {
		t.Fatalf("Len = %d, want 2", bag.Len())
	}
}

func TestBag_HasErrorsAndWarnings(t *testing.T) {
	bag := diag.NewBag(10)
	if bag.HasErrors() || bag.HasWarnings() {
		t.Fatal("empty bag reports diagnostics")
	}

	bag.Add(mkDiag(diag.LexInfo, diag.SevInfo, 0, 1))
	if bag.HasErrors() || bag.HasWarnings() {
		t.Fatal("info-only bag reports errors")
	}

	bag.Add(mkDiag(diag.LexInvalidToken, diag.SevError, 1, 2))
	if !bag.HasErrors() || !bag.HasWarnings() {
		t.Fatal("bag with an error must report both")
	}
}

func TestBag_SortAndDedup(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(mkDiag(diag.LexInvalidToken, diag.SevError, 5, 6))
	bag.Add(mkDiag(diag.LexInvalidToken, diag.SevError, 1, 2))
	bag.Add(mkDiag(diag.LexInvalidToken, diag.SevError, 5, 6)) // дубликат

	bag.Sort()
	bag.Dedup()

	items := bag.Items()
	if len(items) != 2 {
		t.Fatalf("after Dedup Len = %d, want 2", len(items))
	}
	if items[0].Primary.Start != 1 || items[1].Primary.Start != 5 {
		t.Errorf("not sorted by span: %v", items)
	}
}

func TestBag_Merge(t *testing.T) {
	a := diag.NewBag(1)
	a.Add(mkDiag(diag.LexInvalidToken, diag.SevError, 0, 1))

	b := diag.NewBag(1)
	b.Add(mkDiag(diag.IOLoadFileError, diag.SevError, 0, 0))

	a.Merge(b)
	if a.Len() != 2 {
		t.Fatalf("after Merge Len = %d, want 2", a.Len())
	}
}

func TestBagReporter(t *testing.T) {
	bag := diag.NewBag(10)
	r := diag.BagReporter{Bag: bag}

	diag.ReportError(r, diag.LexInvalidToken, source.Span{Start: 3, End: 4}, "invalid token \"@\"")
	if bag.Len() != 1 {
		t.Fatalf("Len = %d, want 1", bag.Len())
	}
	d := bag.Items()[0]
	if d.Code != diag.LexInvalidToken || d.Severity != diag.SevError {
		t.Errorf("unexpected diagnostic: %+v", d)
	}

	// nil reporter не паникует
	diag.ReportError(nil, diag.LexInvalidToken, source.Span{}, "ignored")
}

func TestCodeID(t *testing.T) {
	tests := []struct {
		code diag.Code
		id   string
	}{
		{diag.LexInvalidToken, "LEX1001"},
		{diag.LexInfo, "LEX1000"},
		{diag.IOLoadFileError, "IO4001"},
		{diag.ObsTimings, "OBS6001"},
		{diag.UnknownCode, "E0000"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.id {
			t.Errorf("%d.ID() = %q, want %q", tt.code, got, tt.id)
		}
	}
}
