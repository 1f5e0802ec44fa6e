package handlers

import (
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/samparc/medical-api/internal/models"
)

var sectionKeyPattern = regexp.MustCompile(`^[a-z0-9_-]{1,64}$`)

var registerOnce sync.Once

// RegisterValidators adds the domain rules to gin's binding validator.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		rules := map[string]validator.Func{
			"notblank":          notBlank,
			"sellerstatus":      sellerStatus,
			"appointmentstatus": appointmentStatus,
			"sectionkey":        sectionKey,
		}
		for tag, fn := range rules {
			if err := v.RegisterValidation(tag, fn); err != nil {
				panic(err)
			}
		}
	})
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func sellerStatus(fl validator.FieldLevel) bool {
	return models.SellerStatus(fl.Field().String()).Valid()
}

func appointmentStatus(fl validator.FieldLevel) bool {
	return models.AppointmentStatus(fl.Field().String()).Valid()
}

func sectionKey(fl validator.FieldLevel) bool {
	return sectionKeyPattern.MatchString(fl.Field().String())
}
