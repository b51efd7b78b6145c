package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"agentdesk/internal/transport/http/api"
)

// ValidationIssue is one {loc, msg, type} entry of a 422 detail list.
type ValidationIssue struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

type Validator struct {
	issues []ValidationIssue
}

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func NewValidator() *Validator {
	return &Validator{issues: make([]ValidationIssue, 0, 4)}
}

func (v *Validator) Add(loc []string, msg, kind string) {
	if v == nil {
		return
	}
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return
	}
	v.issues = append(v.issues, ValidationIssue{Loc: loc, Msg: msg, Type: kind})
}

func (v *Validator) HasIssues() bool {
	return v != nil && len(v.issues) > 0
}

func (v *Validator) Issues() []ValidationIssue {
	if v == nil || len(v.issues) == 0 {
		return nil
	}
	out := make([]ValidationIssue, len(v.issues))
	copy(out, v.issues)
	return out
}

// Reject writes a 422 with the collected issues and reports whether it did.
func (v *Validator) Reject(w http.ResponseWriter) bool {
	if !v.HasIssues() {
		return false
	}
	api.Fail(w, http.StatusUnprocessableEntity, v.Issues())
	return true
}

// DecodeJSON decodes the request body into dst and, for structs, runs its
// `validate` tags.
func DecodeJSON(r *http.Request, dst any) *Validator {
	v := NewValidator()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			v.Add([]string{"body"}, "request body too large", "value_error.body_too_large")
			return v
		}
		v.Add([]string{"body"}, "value is not a valid JSON object: "+err.Error(), "value_error.jsondecode")
		return v
	}
	if reflect.Indirect(reflect.ValueOf(dst)).Kind() == reflect.Struct {
		v.Struct(dst)
	}
	return v
}

func (v *Validator) Struct(dst any) {
	err := validate.Struct(dst)
	if err == nil {
		return
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		v.Add([]string{"body"}, err.Error(), "value_error")
		return
	}
	for _, fe := range fieldErrs {
		loc := []string{"body", fe.Field()}
		switch fe.Tag() {
		case "required":
			v.Add(loc, "field required", "value_error.missing")
		default:
			v.Add(loc, fmt.Sprintf("failed on the '%s' rule", fe.Tag()), "value_error."+fe.Tag())
		}
	}
}

// PathInt parses an integer path parameter, recording an issue when it is
// malformed. Zero and negative values pass; range checks belong to the caller.
func (v *Validator) PathInt(name, raw string) int64 {
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		v.Add([]string{"path", name}, "value is not a valid integer", "type_error.integer")
		return 0
	}
	return value
}
