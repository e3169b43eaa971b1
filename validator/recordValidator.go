package validator

import (
	"net/url"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/John2013/phone-book/constant"
	"github.com/John2013/phone-book/model"
)

// E.164-like: optional +, non-zero leading digit, 2 to 15 digits total
var phoneRegexp = regexp.MustCompile(`^\+?[1-9][0-9]{1,14}$`)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneValid(fl.Field().String())
	})
	v.RegisterValidation("address", func(fl validator.FieldLevel) bool {
		return utf8.RuneCountInString(fl.Field().String()) <= constant.ADDRESS_MAX_LENGTH
	})
	// report json names instead of struct field names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

func phoneValid(phone string) bool {
	return utf8.RuneCountInString(phone) <= constant.PHONE_MAX_LENGTH &&
		phoneRegexp.MatchString(phone)
}

func CreateRecordValidator(request *model.CreateRecordRequest) url.Values {
	request.Phone = strings.TrimSpace(request.Phone)
	request.Address = strings.TrimSpace(request.Address)
	return structErrors(validate.Struct(request))
}

func UpdateAddressValidator(request *model.UpdateAddressRequest) url.Values {
	request.Address = strings.TrimSpace(request.Address)
	return structErrors(validate.Struct(request))
}

func PhoneValidator(phone string) url.Values {
	errs := url.Values{}
	if phone == "" {
		errs.Add("phone", "The phone is required!")
		return errs
	}
	if utf8.RuneCountInString(phone) > constant.PHONE_MAX_LENGTH {
		errs.Add("phone", "The phone must be "+strconv.Itoa(constant.PHONE_MAX_LENGTH)+" characters or less!")
		return errs
	}
	if !phoneRegexp.MatchString(phone) {
		errs.Add("phone", phoneFormatMessage)
	}
	return errs
}

const phoneFormatMessage = "The phone must be 2 to 15 digits with an optional leading +, not starting with 0!"

func structErrors(err error) url.Values {
	errs := url.Values{}
	if err == nil {
		return errs
	}
	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errs.Add("request", "The request is invalid!")
		return errs
	}
	for _, fieldError := range fieldErrors {
		field := fieldError.Field()
		switch fieldError.Tag() {
		case "required":
			errs.Add(field, "The "+field+" is required!")
		case "phone":
			errs.Add(field, phoneFormatMessage)
		case "address":
			errs.Add(field, "The "+field+" must be "+strconv.Itoa(constant.ADDRESS_MAX_LENGTH)+" characters or less!")
		default:
			errs.Add(field, "The "+field+" is invalid!")
		}
	}
	return errs
}
