package schemafile

import (
	"errors"
	"fmt"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	identifierPattern = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)
	optionPattern     = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)
)

// validatorInstance returns the shared validator with the schema rules
// registered.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("identifier", func(fl validator.FieldLevel) bool {
			return identifierPattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("option_name", func(fl validator.FieldLevel) bool {
			return optionPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})
	return validateInst
}

// Validate checks names and list shapes. Every failure is returned, each
// as an *Error pointing at the offending element.
func Validate(def *Definition) error {
	var errs []error
	add := func(p Position, field string, err error) {
		if err == nil {
			return
		}
		errs = append(errs, convertValidationError(def.File, p, field, err))
	}

	v := validatorInstance()
	add(def.Pos, "name", v.Var(def.Name, "required,identifier"))
	for _, g := range def.Groups {
		field := fmt.Sprintf("variants.%s", g.Name)
		add(g.Pos, field, v.Struct(g))
		for _, o := range g.Options {
			add(o.Pos, field+"."+o.Name, v.Struct(o))
		}
	}
	for _, d := range def.Defaults {
		add(d.Pos, "defaults."+d.Group, v.Struct(d))
	}
	for i, c := range def.Compounds {
		for _, cond := range c.When {
			add(cond.Pos, fmt.Sprintf("compounds[%d].when.%s", i, cond.Group), v.Struct(cond))
		}
	}
	return errors.Join(errs...)
}

func convertValidationError(file string, p Position, field string, err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		return &Error{
			File: file,
			Pos:  p,
			Msg:  fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag()),
			Err:  err,
		}
	}
	return &Error{File: file, Pos: p, Msg: err.Error(), Err: err}
}
