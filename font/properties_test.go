package font

import "testing"

func TestProperties(t *testing.T) {
	font := Fallback()
	family, err := GetFamily(font)
	if err != nil { t.Fatal(err) }
	if family != "Go" { t.Fatalf("expected family \"Go\", got %q", family) }
	subfamily, err := GetSubfamily(font)
	if err != nil { t.Fatal(err) }
	if subfamily != "Bold" { t.Fatalf("expected subfamily \"Bold\", got %q", subfamily) }
}

func TestGetMissingRunes(t *testing.T) {
	font := Fallback()
	missing, err := GetMissingRunes(font, "TOP TEXT\n")
	if err != nil { t.Fatal(err) }
	if len(missing) != 0 { t.Fatalf("unexpected missing runes %q", missing) }

	missing, err = GetMissingRunes(font, "A\uE000B\uE000\uE001")
	if err != nil { t.Fatal(err) }
	if len(missing) != 2 || missing[0] != '\uE000' || missing[1] != '\uE001' {
		t.Fatalf("expected private use runes to be missing once each, got %q", missing)
	}
}

func TestValidFontExtension(t *testing.T) {
	tests := []struct { path string; valid bool }{
		{"font.ttf", true}, {"FONT.OTF", true}, {".ttf", false},
		{"font.woff", false}, {"dir/x.otf", true},
	}
	for _, test := range tests {
		if hasValidFontExtension(test.path) != test.valid {
			t.Fatalf("hasValidFontExtension(%q) != %t", test.path, test.valid)
		}
	}
}
