package marketsdk

import (
	"errors"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var (
	phonePattern      = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
	registerableRoles = []any{"farmer", "expert", "dealer"}
	productCategories = []any{"drones", "tractors", "robots", "seeds", "fertilizers", "machinery"}
)

// details flattens an ozzo validation error into field → message. Keys are
// the JSON field names.
func details(err error) map[string]string {
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

// normalized matches a string case-insensitively against one of values.
func normalized(values ...any) validation.Rule {
	return validation.By(func(v any) error {
		s, _ := v.(string)
		if s == "" {
			return nil
		}
		return validation.In(values...).Validate(strings.ToLower(strings.TrimSpace(s)))
	})
}

var (
	emailRules    = []validation.Rule{validation.Required, validation.Length(3, 254), is.EmailFormat}
	phoneRules    = []validation.Rule{validation.Length(7, 20), validation.Match(phonePattern).Error("must be 7-15 digits with an optional leading +")}
	passwordRules = []validation.Rule{validation.Required, validation.Length(8, 128)}
	nameRules     = []validation.Rule{validation.Length(1, 100)}
)

func (r RegisterRequest) Validate() map[string]string {
	return details(validation.ValidateStruct(&r,
		validation.Field(&r.Email, emailRules...),
		validation.Field(&r.Phone, append([]validation.Rule{validation.Required}, phoneRules...)...),
		validation.Field(&r.Name, append([]validation.Rule{validation.Required}, nameRules...)...),
		validation.Field(&r.Country, validation.Length(0, 64)),
		validation.Field(&r.Password, passwordRules...),
		validation.Field(&r.Role, validation.Required, normalized(registerableRoles...)),
	))
}

func (r LoginRequest) Validate() map[string]string {
	return details(validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required),
	))
}

func (r UpdateMeRequest) Validate() map[string]string {
	return details(validation.ValidateStruct(&r,
		validation.Field(&r.Name, nameRules...),
		validation.Field(&r.Phone, phoneRules...),
		validation.Field(&r.Country, validation.Length(0, 64)),
	))
}

func (r BootstrapRequest) Validate() map[string]string {
	return details(validation.ValidateStruct(&r,
		validation.Field(&r.Email, emailRules...),
		validation.Field(&r.Phone, append([]validation.Rule{validation.Required}, phoneRules...)...),
		validation.Field(&r.Name, append([]validation.Rule{validation.Required}, nameRules...)...),
		validation.Field(&r.Country, validation.Length(0, 64)),
		validation.Field(&r.Password, passwordRules...),
	))
}

func (r RejectRequest) Validate() map[string]string {
	return details(validation.ValidateStruct(&r,
		validation.Field(&r.Reason, validation.Length(0, 500)),
	))
}

func (r SetActiveRequest) Validate() map[string]string {
	return details(validation.ValidateStruct(&r,
		validation.Field(&r.Active, validation.NotNil),
	))
}

func (r FarmerProfileRequest) Validate() map[string]string {
	return details(validation.ValidateStruct(&r,
		validation.Field(&r.FarmSize, validation.Required, validation.Min(0.0).Exclusive()),
		validation.Field(&r.CropTypes, validation.Each(validation.Required, validation.Length(1, 50))),
		validation.Field(&r.ExperienceYears, validation.Min(0), validation.Max(100)),
		validation.Field(&r.Location, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Bio, validation.Length(0, 2000)),
	))
}

func (r ExpertProfileRequest) Validate() map[string]string {
	return details(validation.ValidateStruct(&r,
		validation.Field(&r.Specialization, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Qualification, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.ExperienceYears, validation.Min(0), validation.Max(100)),
		validation.Field(&r.ConsultationFee, validation.Min(0.0)),
		validation.Field(&r.Bio, validation.Length(0, 2000)),
	))
}

func (r DealerProfileRequest) Validate() map[string]string {
	return details(validation.ValidateStruct(&r,
		validation.Field(&r.CompanyName, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.BusinessType, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.ProductsOffered, validation.Each(validation.Required, validation.Length(1, 50))),
		validation.Field(&r.Location, validation.Required, validation.Length(1, 200)),
	))
}

func (r ProductRequest) Validate() map[string]string {
	return details(validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Description, validation.Length(0, 5000)),
		validation.Field(&r.Category, validation.Required, validation.In(productCategories...)),
		validation.Field(&r.Price, validation.Required, validation.Min(0.0).Exclusive()),
		validation.Field(&r.StockQuantity, validation.Min(0)),
		validation.Field(&r.ImageURL, is.URL),
	))
}

func (r OrderRequest) Validate() map[string]string {
	return details(validation.ValidateStruct(&r,
		validation.Field(&r.ProductID, validation.Required),
		validation.Field(&r.Quantity, validation.Required, validation.Min(1)),
		validation.Field(&r.DeliveryAddress, validation.Required, validation.Length(1, 500)),
	))
}

func (r StatusUpdateRequest) Validate() map[string]string {
	return details(validation.ValidateStruct(&r,
		validation.Field(&r.Status, validation.Required,
			validation.In("pending", "confirmed", "shipped", "delivered", "completed", "cancelled")),
	))
}

func (r AppointmentRequest) Validate() map[string]string {
	return details(validation.ValidateStruct(&r,
		validation.Field(&r.ExpertID, validation.Required),
		validation.Field(&r.ServiceType, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.PreferredDate, validation.Required),
		validation.Field(&r.Notes, validation.Length(0, 2000)),
	))
}

func (r PrebookingRequest) Validate() map[string]string {
	return details(validation.ValidateStruct(&r,
		validation.Field(&r.ServiceType, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.CropType, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.AreaAcres, validation.Required, validation.Min(0.0).Exclusive()),
		validation.Field(&r.Location, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.PreferredDate, validation.Required),
		validation.Field(&r.Notes, validation.Length(0, 2000)),
	))
}

func (r RatingRequest) Validate() map[string]string {
	return details(validation.ValidateStruct(&r,
		validation.Field(&r.Rating, validation.Required, validation.Min(1), validation.Max(5)),
		validation.Field(&r.Comment, validation.Length(0, 1000)),
	))
}
