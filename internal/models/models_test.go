package models

import "testing"

func TestStringArrayValueNormalizesEmptyToLiteralArray(t *testing.T) {
	var empty StringArray
	v, err := empty.Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "{}" {
		t.Fatalf("expected empty array literal, got %v", v)
	}
}

func TestStringArrayValueAndScanRoundTrip(t *testing.T) {
	a := StringArray{"MGNREGA", "PM Kisan"}
	v, err := a.Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var out StringArray
	if err := out.Scan(v); err != nil {
		t.Fatalf("unexpected scan error: %v", err)
	}
	if len(out) != 2 || out[0] != "MGNREGA" || out[1] != "PM Kisan" {
		t.Fatalf("unexpected round-trip result: %+v", out)
	}
}

func TestJSONTextValueNormalizesEmptyToEmptyJSONArray(t *testing.T) {
	var empty JSONText
	v, err := empty.Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "[]" {
		t.Fatalf("expected empty JSON array, got %v", v)
	}
}

func TestJSONTextScanHandlesNilBytesAndString(t *testing.T) {
	var j JSONText

	if err := j.Scan(nil); err != nil || j != nil {
		t.Fatalf("expected nil scan to produce nil JSONText, got %v, err=%v", j, err)
	}

	if err := j.Scan([]byte(`{"a":1}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(j) != `{"a":1}` {
		t.Fatalf("unexpected scanned bytes value: %s", j)
	}

	if err := j.Scan(`{"b":2}`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(j) != `{"b":2}` {
		t.Fatalf("unexpected scanned string value: %s", j)
	}
}
