package descriptor

import "testing"

func testRegistry() Registry {
	return Registry{
		"Some_Suite":      {SuiteName: "Some_Suite", ClassName: "ExactMatch"},
		"SomeSuite":       {SuiteName: "SomeSuite", ClassName: "CamelMatch"},
		"OtherSuiteTests": {SuiteName: "OtherSuiteTests", ClassName: "SuffixMatch"},
	}
}

func TestLookup_ExactMatchTakesPrecedence(t *testing.T) {
	r := testRegistry()

	d := r.Lookup("Some_Suite")
	if d == nil {
		t.Fatal("expected descriptor, got nil")
	}
	// "Some_Suite" also camel-cases to the "SomeSuite" key; the exact key
	// must win.
	if d.ClassName != "ExactMatch" {
		t.Errorf("expected exact match, got %s", d.ClassName)
	}
}

func TestLookup_CamelCaseFallback(t *testing.T) {
	r := Registry{
		"SomeSuite": {SuiteName: "SomeSuite", ClassName: "CamelMatch"},
	}

	d := r.Lookup("Some_Suite")
	if d == nil {
		t.Fatal("expected descriptor, got nil")
	}
	if d.ClassName != "CamelMatch" {
		t.Errorf("expected camel match, got %s", d.ClassName)
	}
}

func TestLookup_CamelCaseSuffixFallback(t *testing.T) {
	r := testRegistry()

	d := r.Lookup("Other_Suite")
	if d == nil {
		t.Fatal("expected descriptor, got nil")
	}
	if d.ClassName != "SuffixMatch" {
		t.Errorf("expected suffix match, got %s", d.ClassName)
	}
}

func TestLookup_DigitSegmentSuffixFallback(t *testing.T) {
	r := Registry{
		"High3DTests": {SuiteName: "High3DTests", ClassName: "DigitMatch"},
	}

	// The "3d" segment must title-case to "3D" for the suffixed key to match.
	d := r.Lookup("high_3d")
	if d == nil {
		t.Fatal("expected descriptor, got nil")
	}
	if d.ClassName != "DigitMatch" {
		t.Errorf("expected digit-segment match, got %s", d.ClassName)
	}
}

func TestLookup_NoMatch(t *testing.T) {
	r := testRegistry()

	if d := r.Lookup("Unknown_Suite"); d != nil {
		t.Errorf("expected nil for unknown suite, got %+v", d)
	}
}

func TestLookup_EmptyRegistry(t *testing.T) {
	r := Registry{}

	if d := r.Lookup("Some_Suite"); d != nil {
		t.Errorf("expected nil from empty registry, got %+v", d)
	}
}

func TestLookup_Idempotent(t *testing.T) {
	r := testRegistry()

	first := r.Lookup("Other_Suite")
	second := r.Lookup("Other_Suite")
	if first != second {
		t.Error("expected repeated lookups to return the same descriptor")
	}
}

func TestCamelCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Some_Suite", "SomeSuite"},
		{"texture_format", "TextureFormat"},
		{"VERTEX_shader", "VertexShader"},
		{"single", "Single"},
		{"", ""},
		{"double__underscore", "DoubleUnderscore"},
		{"high_3d", "High3D"},
		{"texture_format_a8r8g8b8", "TextureFormatA8R8G8B8"},
		{"w32_float", "W32Float"},
	}

	for _, tt := range tests {
		if got := camelCase(tt.in); got != tt.want {
			t.Errorf("camelCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
