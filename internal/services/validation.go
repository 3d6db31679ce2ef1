package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/monocle-dev/trackr/internal/apperrors"
	"github.com/monocle-dev/trackr/internal/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
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

// validateInput runs the struct tags of input and turns failures into
// field errors, using messages[field] as the client text when present.
func validateInput(input interface{}, messages map[string]string) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.Internal(err)
	}

	out := make(apperrors.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg, ok := messages[fe.Field()]
		if !ok {
			msg = fmt.Sprintf("Invalid value for %s", fe.Field())
		}
		out = append(out, apperrors.Validation(fe.Field(), msg))
	}
	return out
}

// OptionalString tells an absent JSON field apart from an explicit null.
type OptionalString struct {
	Set   bool
	Null  bool
	Value string
}

func (o *OptionalString) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Null = true
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}

// Empty reports an explicit null or blank value.
func (o OptionalString) Empty() bool {
	return o.Null || strings.TrimSpace(o.Value) == ""
}

func parseDeadline(o OptionalString) (models.Deadline, error) {
	if !o.Set || o.Empty() {
		return models.Deadline{}, nil
	}
	d, err := models.ParseDeadline(o.Value)
	if err != nil {
		return models.Deadline{}, apperrors.Validation("deadline", "Deadline must be a valid date")
	}
	return d, nil
}

func checkStatus(status *int) error {
	if status != nil && !models.IssueStatus(*status).Valid() {
		return apperrors.Validation("status", "Status must be one of 0, 1 or 2")
	}
	return nil
}

func checkPriority(priority *int) error {
	if priority != nil && !models.IssuePriority(*priority).Valid() {
		return apperrors.Validation("priority", "Priority must be one of 0, 1 or 2")
	}
	return nil
}
