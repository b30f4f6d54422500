package http

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/zealand/roombooking/internal/booking"
)

// RegisterValidators adds the booking binding tags to gin's validator:
//
//	isodate   - a calendar date in YYYY-MM-DD form
//	timeofday - "15", "15:04" or "15:04:05"
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	if err := v.RegisterValidation("isodate", isoDate); err != nil {
		return fmt.Errorf("register isodate: %w", err)
	}
	if err := v.RegisterValidation("timeofday", timeOfDay); err != nil {
		return fmt.Errorf("register timeofday: %w", err)
	}
	return nil
}

func isoDate(fl validator.FieldLevel) bool {
	_, err := booking.ParseDate(fl.Field().String())
	return err == nil
}

func timeOfDay(fl validator.FieldLevel) bool {
	_, err := booking.ParseTimeOfDay(fl.Field().String())
	return err == nil
}
