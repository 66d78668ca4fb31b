package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-fundraiser/models"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

var errMustMatchPassword = errors.New("must match password")

// RequestValidator validates the JSON payloads accepted by the HTTP API.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error
	switch value := obj.(type) {
	case models.RegisterRequest:
		err = validateRegisterRequest(value)
	case *models.RegisterRequest:
		err = validateRegisterRequest(*value)

	case models.LoginRequest:
		err = validateLoginRequest(value)
	case *models.LoginRequest:
		err = validateLoginRequest(*value)

	case models.ActivationRequest:
		err = validateActivationRequest(value)
	case *models.ActivationRequest:
		err = validateActivationRequest(*value)

	case models.CategoryRequest:
		err = validateCategoryRequest(value)
	case *models.CategoryRequest:
		err = validateCategoryRequest(*value)

	case models.CampaignRequest:
		err = validateCampaignRequest(value)
	case *models.CampaignRequest:
		err = validateCampaignRequest(*value)

	case models.RemoveMediaRequest:
		err = validateRemoveMediaRequest(value)
	case *models.RemoveMediaRequest:
		err = validateRemoveMediaRequest(*value)

	default:
		return ErrUnsupportedType
	}

	return toValidationError(err, fields...)
}

func validateRegisterRequest(r models.RegisterRequest) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FullName, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Username, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Email, validation.Required, validation.Length(3, 254), is.Email),
		validation.Field(&r.Password, validation.By(checkPassword)),
		validation.Field(
			&r.ConfirmPassword,
			validation.Required,
			validation.By(equalTo(r.Password)),
		),
	)
}

func validateLoginRequest(r models.LoginRequest) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Identifier, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

func validateActivationRequest(r models.ActivationRequest) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Code, validation.Required),
	)
}

func validateCategoryRequest(r models.CategoryRequest) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Description, validation.Length(0, 1000)),
		validation.Field(&r.Icon, validation.Length(0, 255)),
	)
}

func validateCampaignRequest(r models.CampaignRequest) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(3, 150)),
		validation.Field(&r.Description, validation.Required),
		validation.Field(&r.GoalAmount, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.CategoryID, validation.Required, is.UUID),
		validation.Field(&r.Banner, validation.Length(0, 512)),
		validation.Field(&r.Status, validation.In(
			models.CampaignPending,
			models.CampaignApproved,
			models.CampaignRejected,
		)),
	)
}

func validateRemoveMediaRequest(r models.RemoveMediaRequest) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Key, validation.Required, validation.Length(1, 512)),
	)
}

// toValidationError converts ozzo field errors into a *ValidationError,
// optionally keeping only the named fields.
func toValidationError(err error, fields ...string) error {
	if err == nil {
		return nil
	}

	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("error validating request: %w", err)
	}

	keep := make(map[string]bool, len(fields))
	for _, f := range fields {
		keep[f] = true
	}

	result := &ValidationError{Fields: make(map[string][]string, len(fieldErrs))}
	for name, fieldErr := range fieldErrs {
		if len(keep) > 0 && !keep[name] {
			continue
		}
		var policyErr passwordPolicyError
		if errors.As(fieldErr, &policyErr) {
			result.Fields[name] = policyErr.clauses
			continue
		}
		result.Fields[name] = []string{fieldErr.Error()}
	}

	if len(result.Fields) == 0 {
		return nil
	}
	return result
}
