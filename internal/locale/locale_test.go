package locale

import (
	"reflect"
	"testing"
)

func TestHeaderCounts(t *testing.T) {
	for code, s := range tables {
		t.Run(code, func(t *testing.T) {
			if got := len(s.DBHeaders); got != 85 {
				t.Errorf("DBHeaders: got %d, want 85", got)
			}
			if got := len(s.RiskHeaders); got != 29 {
				t.Errorf("RiskHeaders: got %d, want 29", got)
			}
			if got := len(s.ExpHeaders); got != 18 {
				t.Errorf("ExpHeaders: got %d, want 18", got)
			}
			if got := len(s.ActionHeaders); got != 9 {
				t.Errorf("ActionHeaders: got %d, want 9", got)
			}
		})
	}
}

func TestForFallback(t *testing.T) {
	t.Run("known code", func(t *testing.T) {
		s := For("hu")
		if s.Code != "hu" {
			t.Errorf("got code %q, want hu", s.Code)
		}
	})

	t.Run("unknown code falls back to default", func(t *testing.T) {
		s := For("xx")
		if s.Code != DefaultLanguage {
			t.Errorf("got code %q, want %q", s.Code, DefaultLanguage)
		}
	})

	t.Run("empty code falls back to default", func(t *testing.T) {
		if s := For(""); s.Code != DefaultLanguage {
			t.Errorf("got code %q, want %q", s.Code, DefaultLanguage)
		}
	})
}

func TestSupported(t *testing.T) {
	for _, code := range []string{"hu", "en", "de"} {
		if !Supported(code) {
			t.Errorf("Supported(%q) = false", code)
		}
	}
	if Supported("fr") {
		t.Error("Supported(fr) = true, want false")
	}
}

func TestCodes(t *testing.T) {
	got := Codes()
	want := []string{"de", "en", "hu"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Codes() = %v, want %v", got, want)
	}
}

func TestKeywordTablesCoverAllBands(t *testing.T) {
	for code, s := range tables {
		t.Run(code, func(t *testing.T) {
			kw := s.Keywords
			for name, set := range map[string][]string{
				"acceptable":   kw.Acceptable,
				"tolerable":    kw.Tolerable,
				"significant":  kw.Significant,
				"unacceptable": kw.Unacceptable,
			} {
				if len(set) == 0 {
					t.Errorf("no keywords for band %s", name)
				}
			}
		})
	}
}

func TestGenericPPETermsPresent(t *testing.T) {
	for code, s := range tables {
		if len(s.GenericPPETerms) == 0 {
			t.Errorf("%s: no generic PPE terms", code)
		}
	}
}
