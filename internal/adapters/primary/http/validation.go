package server

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Aayushsharma490/viprakarma-sub003/internal/pkg/julian"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators добавляет в валидатор gin тег tzoffset (±HH:MM)
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = fmt.Errorf("unexpected gin validator engine %T", binding.Validator.Engine())
			return
		}
		registerErr = v.RegisterValidation("tzoffset", tzOffset)
	})
	return registerErr
}

func tzOffset(fl validator.FieldLevel) bool {
	_, err := julian.ParseOffset(fl.Field().String())
	return err == nil
}
