package contracts

import (
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/taxonomy"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/pkg"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adiciona as tags "ulid" e "attributetype" ao validador do gin.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return Register(v)
}

func Register(v *validator.Validate) error {
	if err := v.RegisterValidation("ulid", func(fl validator.FieldLevel) bool {
		return pkg.IsValidULID(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("attributetype", func(fl validator.FieldLevel) bool {
		_, err := taxonomy.ParseAttributeType(fl.Field().String())
		return err == nil
	})
}
