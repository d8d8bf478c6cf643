// Package httpx writes rop results as HTTP responses.
package httpx

import (
	"encoding/json"
	"net/http"
	"slices"

	"github.com/ib-77/results/pkg/rop"
)

const ValidationTitle = "One or more validation errors occurred."

// Mapping tells Write which failures map onto client errors.
type Mapping[C rop.Code] struct {
	// NotFound lists tags whose single failure answers 404. Tags match
	// exactly; a composite code sharing bits with one of them does not.
	NotFound []C
	// Validation is the category flag that makes a failure a 400.
	Validation C
}

// Problem is an RFC 9457 validation problem document.
type Problem struct {
	Type   string                `json:"type"`
	Title  string                `json:"title"`
	Status int                   `json:"status"`
	Errors *rop.ValidationErrors `json:"errors"`
}

// Write answers with the outcome r: 200 with the JSON value, or 200 with an
// empty body when there is no value. It returns the unhandled-error signal
// when r failed with errors m does not cover; nothing is written then.
func Write[T any, C rop.Code](w http.ResponseWriter, r rop.Result[T, C], m Mapping[C]) *rop.UnhandledError {
	if r.IsSuccess() {
		if _, unit := any(r.ValueOrDefault()).(rop.Unit); unit || !r.HasValue() {
			w.WriteHeader(http.StatusOK)
			return nil
		}
		WriteJSON(w, http.StatusOK, r.ValueOrDefault())
		return nil
	}

	errs := r.Errors()
	if len(errs) == 1 && slices.Contains(m.NotFound, errs[0].Code) {
		WriteText(w, http.StatusNotFound, r.ErrorsText())
		return nil
	}
	if ve, ok := r.TryAsValidationErrors(m.Validation); ok {
		WriteValidationProblem(w, ve)
		return nil
	}
	return r.UnhandledError("")
}

func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func WriteValidationProblem(w http.ResponseWriter, ve *rop.ValidationErrors) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(Problem{
		Type:   "https://tools.ietf.org/html/rfc9110#section-15.5.1",
		Title:  ValidationTitle,
		Status: http.StatusBadRequest,
		Errors: ve,
	})
}

func WriteText(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(text))
}
