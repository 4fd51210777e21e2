package parsec

import (
	"testing"
)

func TestText(t *testing.T) {
	tests := []struct {
		name     string
		match    string
		input    string
		wantData string
		wantRest string
		wantFail bool
	}{
		{"prefix", "foo", "foobar", "foo", "bar", false},
		{"exact", "foo", "foo", "foo", "", false},
		{"mismatch", "foo", "bar", "", "", true},
		{"partial prefix", "foobar", "foo", "", "", true},
		{"empty match", "", "anything", "", "anything", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Text(tt.match)(tt.input)
			if r.Failed() != tt.wantFail {
				t.Fatalf("Failed() = %v, want %v", r.Failed(), tt.wantFail)
			}
			if tt.wantFail {
				return
			}
			if r.Data != tt.wantData {
				t.Errorf("Data = %q, want %q", r.Data, tt.wantData)
			}
			if r.Rest != tt.wantRest {
				t.Errorf("Rest = %q, want %q", r.Rest, tt.wantRest)
			}
		})
	}
}

func TestTextFailureDescribesMatch(t *testing.T) {
	r := Text("foo")("bar")
	if !r.Failed() {
		t.Fatal("expected failure")
	}
	if r.Failure.Expected != `"foo"` {
		t.Errorf("Expected = %q, want %q", r.Failure.Expected, `"foo"`)
	}
	if r.Failure.Actual != "bar" {
		t.Errorf("Actual = %q, want %q", r.Failure.Actual, "bar")
	}
}

func TestRegex(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		input    string
		wantData string
		wantRest string
		wantFail bool
	}{
		{"digits", `[0-9]+`, "123abc", "123", "abc", false},
		{"no match", `[0-9]+`, "abc", "", "", true},
		{"whole input", `[a-z]+`, "abc", "abc", "", false},
		{"zero width", `[0-9]*`, "abc", "", "abc", false},
		{"alternation stays anchored", `b|ab`, "abc", "ab", "c", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Regex(tt.pattern)(tt.input)
			if r.Failed() != tt.wantFail {
				t.Fatalf("Failed() = %v, want %v", r.Failed(), tt.wantFail)
			}
			if tt.wantFail {
				if r.Failure.Expected != tt.pattern {
					t.Errorf("Expected = %q, want %q", r.Failure.Expected, tt.pattern)
				}
				if r.Failure.Actual != tt.input {
					t.Errorf("Actual = %q, want %q", r.Failure.Actual, tt.input)
				}
				return
			}
			if r.Data != tt.wantData {
				t.Errorf("Data = %q, want %q", r.Data, tt.wantData)
			}
			if r.Rest != tt.wantRest {
				t.Errorf("Rest = %q, want %q", r.Rest, tt.wantRest)
			}
		})
	}
}

func TestRegexDoesNotSkipInput(t *testing.T) {
	// The pattern matches later in the input, but an anchored parser must
	// not skip ahead to find it.
	r := Regex(`[0-9]+`)("abc123")
	if !r.Failed() {
		t.Fatalf("Regex matched mid-input: Data = %q, Rest = %q", r.Data, r.Rest)
	}
}

func TestEOF(t *testing.T) {
	r := EOF("")
	if r.Failed() {
		t.Fatalf("EOF failed on empty input: %v", r.Failure)
	}
	if r.Data != "" || r.Rest != "" {
		t.Errorf("Data = %q, Rest = %q, want empty", r.Data, r.Rest)
	}

	r = EOF("leftover")
	if !r.Failed() {
		t.Fatal("EOF succeeded on non-empty input")
	}
	if r.Failure.Expected != "end of input" {
		t.Errorf("Expected = %q, want %q", r.Failure.Expected, "end of input")
	}
	if r.Failure.Actual != "leftover" {
		t.Errorf("Actual = %q, want %q", r.Failure.Actual, "leftover")
	}
}

func TestPure(t *testing.T) {
	r := Pure(42)("anything")
	if r.Failed() {
		t.Fatalf("Pure failed: %v", r.Failure)
	}
	if r.Data != 42 {
		t.Errorf("Data = %d, want 42", r.Data)
	}
	if r.Rest != "anything" {
		t.Errorf("Rest = %q, want %q (Pure must consume nothing)", r.Rest, "anything")
	}
}
