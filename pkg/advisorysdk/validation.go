package advisorysdk

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validate returns field → message for every problem, or nil.
func (r AdvisoryRequest) Validate() map[string]string {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.By(notBlank), validation.Length(1, 100)),
		validation.Field(&r.Location, validation.By(notBlank), validation.Length(1, 200)),
		validation.Field(&r.Crop, validation.By(notBlank), validation.Length(1, 50)),
	)
	if err == nil {
		return nil
	}

	var errs validation.Errors
	if errors.As(err, &errs) {
		out := make(map[string]string, len(errs))
		for field, fieldErr := range errs {
			out[field] = fieldErr.Error()
		}
		return out
	}
	return map[string]string{"request": err.Error()}
}

func notBlank(v any) error {
	s, _ := v.(string)
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}
	return nil
}
