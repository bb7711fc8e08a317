package raw

import "testing"

func seed(t *testing.T, env map[string]string) {
	t.Helper()
	for k, v := range env {
		t.Setenv(k, v)
	}
}

func TestGet_PrefixAndTrim(t *testing.T) {
	seed(t, map[string]string{
		"APP_NAME": " padala ",
		"API_PORT": " 8080 ",
	})

	root := New()
	api := root.Prefix("API_")

	for name, tc := range map[string]struct {
		conf Conf
		key  string
		want string
	}{
		"root value trimmed":      {root, "APP_NAME", "padala"},
		"prefixed hit":            {api, "PORT", "8080"},
		"missing returns default": {api, "MISSING", "defv"},
	} {
		t.Run(name, func(t *testing.T) {
			if got := tc.conf.Get(tc.key, "defv"); got != tc.want {
				t.Fatalf("Get(%q) = %q, want %q", tc.key, got, tc.want)
			}
		})
	}
}

func TestGetBool(t *testing.T) {
	seed(t, map[string]string{
		"API_T1": "true",
		"API_T2": "1",
		"API_T3": "YES",
		"API_F1": "false",
		"API_F2": "0",
		"API_F3": "no",
		"API_WS": "   true   ",
	})
	api := New().Prefix("API_")

	truthy := []string{"T1", "T2", "T3", "WS"}
	falsy := []string{"F1", "F2", "F3"}
	for _, k := range truthy {
		if !api.GetBool(k, false) {
			t.Errorf("GetBool(%q) = false, want true", k)
		}
	}
	for _, k := range falsy {
		if api.GetBool(k, true) {
			t.Errorf("GetBool(%q) = true, want false", k)
		}
	}

	// unset keys echo the default either way
	for _, def := range []bool{true, false} {
		if got := api.GetBool("MISSING", def); got != def {
			t.Errorf("GetBool(MISSING, %v) = %v", def, got)
		}
	}
}

func TestGetInt(t *testing.T) {
	seed(t, map[string]string{
		"RATES_OK":     "30",
		"RATES_WS":     "  7  ",
		"RATES_NONNUM": "12x",
		"RATES_NEG":    "-5",
	})
	rates := New().Prefix("RATES_")

	for name, tc := range map[string]struct {
		key  string
		def  int
		want int
	}{
		"numeric":                {"OK", 0, 30},
		"trimmed":                {"WS", 1, 7},
		"non numeric falls back": {"NONNUM", 9, 9},
		// the parser only accepts bare non-negative digits
		"negative falls back": {"NEG", 3, 3},
		"missing uses default": {"MISSING", 11, 11},
	} {
		t.Run(name, func(t *testing.T) {
			if got := rates.GetInt(tc.key, tc.def); got != tc.want {
				t.Fatalf("GetInt(%q) = %d, want %d", tc.key, got, tc.want)
			}
		})
	}
}

// Nested prefixes concatenate, so api.Prefix("LOG_") reads API_LOG_* keys.
func TestPrefix_Composes(t *testing.T) {
	seed(t, map[string]string{
		"LOG_LEVEL":    "info",
		"API_LEVEL":    "debug",
		"API_LOG_MODE": "console",
	})

	root := New()
	api := root.Prefix("API_")

	for _, tc := range []struct {
		conf Conf
		key  string
		want string
	}{
		{root.Prefix("LOG_"), "LEVEL", "info"},
		{api, "LEVEL", "debug"},
		{api.Prefix("LOG_"), "MODE", "console"},
	} {
		if got := tc.conf.Get(tc.key, ""); got != tc.want {
			t.Fatalf("Get(%q) = %q, want %q", tc.key, got, tc.want)
		}
	}
}
