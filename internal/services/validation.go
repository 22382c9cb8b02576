package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	types "github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/domain/portfolio"
)

// Validated shapes. Field names drive the human readable labels through the
// json tag ("ip_address" -> "Ip address").
type preferenceRules struct {
	PersonalityScore *float64 `json:"personality_score" validate:"required,gte=0,lte=100"`
	Theme            string   `json:"theme" validate:"required,server_theme"`
	UserAgent        string   `json:"user_agent" validate:"required"`
	IPAddress        string   `json:"ip_address" validate:"required"`
}

type themeRules struct {
	Theme string `json:"theme" validate:"required,server_theme"`
}

type contactRules struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=10,max=1000"`
	Status  string `json:"status" validate:"required,contact_status"`
}

type statusRules struct {
	Status string `json:"status" validate:"required,contact_status"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
		_ = v.RegisterValidation("server_theme", func(fl validator.FieldLevel) bool {
			return types.IsServerTheme(fl.Field().String())
		})
		_ = v.RegisterValidation("contact_status", func(fl validator.FieldLevel) bool {
			return types.IsContactStatus(fl.Field().String())
		})
		validate = v
	})
	return validate
}

// validationMessages runs the struct rules and returns every violation as a
// sentence. An empty result means s is valid.
func validationMessages(s any) []string {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	rt := reflect.TypeOf(s)
	if rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	var out []string
	for _, fe := range verrs {
		rules := ""
		if sf, ok := rt.FieldByName(fe.StructField()); ok {
			rules = sf.Tag.Get("validate")
		}
		out = append(out, messagesFor(fe, rules)...)
	}
	return out
}

func messagesFor(fe validator.FieldError, rules string) []string {
	label := humanize(fe.Field())
	switch fe.Tag() {
	case "required":
		// A blank value also fails the remaining format rules.
		out := []string{label + " can't be blank"}
		for _, rule := range strings.Split(rules, ",") {
			name, param, _ := strings.Cut(rule, "=")
			switch name {
			case "min":
				out = append(out, tooShort(label, param))
			case "email":
				out = append(out, label+" is invalid")
			case "server_theme", "contact_status", "oneof":
				out = append(out, label+" is not included in the list")
			}
		}
		return out
	case "min":
		return []string{tooShort(label, fe.Param())}
	case "max":
		return []string{fmt.Sprintf("%s is too long (maximum is %s characters)", label, fe.Param())}
	case "gte":
		return []string{fmt.Sprintf("%s must be greater than or equal to %s", label, fe.Param())}
	case "lte":
		return []string{fmt.Sprintf("%s must be less than or equal to %s", label, fe.Param())}
	case "server_theme", "contact_status", "oneof":
		return []string{label + " is not included in the list"}
	default:
		return []string{label + " is invalid"}
	}
}

func tooShort(label, param string) string {
	return fmt.Sprintf("%s is too short (minimum is %s characters)", label, param)
}

func humanize(field string) string {
	s := strings.ReplaceAll(strings.TrimSpace(field), "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
