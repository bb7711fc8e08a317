package bind

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "padala/internal/platform/errors"
)

type quoteReq struct {
	Courier string `json:"courier" validate:"required,min=2"`
	Days    int    `json:"days" validate:"min=1"`
}

func postJSON(body string) *http.Request {
	if body == "" {
		return httptest.NewRequest("POST", "/estimate", http.NoBody)
	}
	return httptest.NewRequest("POST", "/estimate", strings.NewReader(body))
}

func TestParseJSON_CodePaths(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		opts     []JSONOptions
		wantCode perr.ErrorCode
	}{
		{name: "valid body", body: `{"courier":"LBC","days":3}`},
		{name: "empty body rejected", body: "", wantCode: perr.ErrorCodeJSON},
		{name: "truncated json", body: `{`, wantCode: perr.ErrorCodeJSON},
		{name: "unknown field rejected", body: `{"courier":"LBC","days":3,"boom":1}`, wantCode: perr.ErrorCodeJSON},
		{
			name: "unknown field tolerated when configured",
			body: `{"courier":"LBC","days":3,"extra":"ok"}`,
			opts: []JSONOptions{{DisallowUnknown: false}},
		},
		{name: "validation failure", body: `{"courier":"L","days":0}`, wantCode: perr.ErrorCodeValidation},
		{name: "no size cap", body: `{"courier":"J&T","days":2}`, opts: []JSONOptions{{MaxBytes: 0}}},
		{name: "under size cap", body: `{"courier":"J&T","days":2}`, opts: []JSONOptions{{MaxBytes: 64}}},
		{
			name:     "over size cap",
			body:     `{"courier":"LBC","days":3}`,
			opts:     []JSONOptions{{MaxBytes: 5, DisallowUnknown: true}},
			wantCode: perr.ErrorCodeJSON,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseJSON[quoteReq](postJSON(tc.body), tc.opts...)
			if tc.wantCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			} else if code := perr.CodeOf(err); code != tc.wantCode {
				t.Fatalf("code = %v, want %v (err: %v)", code, tc.wantCode, err)
			}
			if tc.wantCode == "" && tc.body != "" {
				if got.Courier == "" || got.Days == 0 {
					t.Fatalf("decoded payload incomplete: %+v", got)
				}
			}
		})
	}
}

func TestParseJSON_AllowEmptyBody(t *testing.T) {
	type note struct {
		Note string `json:"note"`
	}

	// EOF on an empty body decodes to the zero value
	got, err := ParseJSON[note](postJSON(""), JSONOptions{AllowEmptyBody: true})
	if err != nil {
		t.Fatalf("empty body: %v", err)
	}
	if got != (note{}) {
		t.Fatalf("want zero value, got %+v", got)
	}

	// the size cap still applies on this path
	got, err = ParseJSON[note](postJSON(`{}`), JSONOptions{AllowEmptyBody: true, MaxBytes: 8})
	if err != nil {
		t.Fatalf("capped body: %v", err)
	}
	if got != (note{}) {
		t.Fatalf("want zero value, got %+v", got)
	}
}

func TestParseJSON_TrailingData(t *testing.T) {
	orig := jsonMore
	jsonMore = func(_ *json.Decoder) bool { return true }
	defer func() { jsonMore = orig }()

	_, err := ParseJSON[quoteReq](postJSON(`{"courier":"LBC","days":3}`))
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("want JSON error for trailing data, got %v (%v)", perr.CodeOf(err), err)
	}
}

// validator.Struct on a non-struct yields InvalidValidationError, which maps
// to a JSON-coded error.
func TestParseJSON_NonStructTarget(t *testing.T) {
	_, err := ParseJSON[int](postJSON(`5`))
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("want JSON-coded error, got %v (%v)", perr.CodeOf(err), err)
	}
}

func TestJSONMiddleware_BindsPayload(t *testing.T) {
	mw := JSON[quoteReq]()
	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		p := FromContext[quoteReq](r)
		if p == nil {
			t.Fatal("payload missing from context")
		}
		if p.Courier != "LBC" || p.Days != 3 {
			t.Fatalf("unexpected payload: %+v", *p)
		}
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	mw(next).ServeHTTP(rec, postJSON(`{"courier":"LBC","days":3}`))

	if !nextCalled {
		t.Fatal("next handler not reached")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestJSONMiddleware_BadBodyShortCircuits(t *testing.T) {
	mw := JSON[quoteReq]()
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next must not run on a bind failure")
	})

	rec := httptest.NewRecorder()
	mw(next).ServeHTTP(rec, postJSON(""))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) == "" {
		t.Fatal("want an error body")
	}
}

func TestFromContext_Absent(t *testing.T) {
	req := httptest.NewRequest("GET", "/estimate", nil)
	if v := FromContext[quoteReq](req); v != nil {
		t.Fatalf("want nil without a bound payload, got %+v", v)
	}
}

func TestFieldNames_FollowJSONTags(t *testing.T) {
	Init()

	t.Run("tag trimmed at comma", func(t *testing.T) {
		type s struct {
			Val int `json:"foo,omitempty" validate:"min=1"`
		}
		field, msg := ValidationFieldAndMessage(Get().Validator.Struct(s{}))
		if field != "foo" {
			t.Fatalf("field = %q, want foo", field)
		}
		if !strings.Contains(msg, "at least") {
			t.Fatalf("unexpected message: %q", msg)
		}
	})

	t.Run("dash falls back to Go name", func(t *testing.T) {
		type s struct {
			Secret int `json:"-" validate:"min=1"`
		}
		field, _ := ValidationFieldAndMessage(Get().Validator.Struct(s{}))
		if field != "Secret" {
			t.Fatalf("field = %q, want Secret", field)
		}
	})

	t.Run("missing tag falls back to Go name", func(t *testing.T) {
		type s struct {
			Plain int `validate:"min=1"`
		}
		field, _ := ValidationFieldAndMessage(Get().Validator.Struct(s{}))
		if field != "Plain" {
			t.Fatalf("field = %q, want Plain", field)
		}
	})
}

func TestValidationFieldAndMessage_PlainError(t *testing.T) {
	field, msg := ValidationFieldAndMessage(errors.New("boom"))
	if field != "" || msg != "boom" {
		t.Fatalf("want passthrough, got field=%q msg=%q", field, msg)
	}
}

func TestShortTranslations(t *testing.T) {
	Init()

	type s struct {
		Count int    `json:"count" validate:"max=5"`
		Name  string `json:"name" validate:"min=2"`
	}

	_, msg := ValidationFieldAndMessage(Get().Validator.Struct(s{Count: 6, Name: "ok"}))
	if msg != "count must be at most 5" {
		t.Fatalf("max message = %q", msg)
	}

	_, msg = ValidationFieldAndMessage(Get().Validator.Struct(s{Count: 1, Name: "x"}))
	if msg != "name must be at least 2" {
		t.Fatalf("min message = %q", msg)
	}
}

func TestRegisterValidation_ReRegisterWins(t *testing.T) {
	Init()

	if err := RegisterValidation("dupe_tag", func(FieldLevel) bool { return false }); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := RegisterValidation("dupe_tag", func(FieldLevel) bool { return true }); err != nil {
		t.Fatalf("second register: %v", err)
	}

	type s struct {
		N int `json:"n" validate:"dupe_tag"`
	}
	if err := Get().Validator.Struct(s{}); err != nil {
		t.Fatalf("want pass after re-register, got %v", err)
	}
}
