package service

import (
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("leetcode_username", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Cannot start with a hyphen or underscore
				if i == 0 && (char == '-' || char == '_') {
					return false
				}
				// Letters, digits, underscore or hyphen
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' && char != '-' {
					return false
				}
			}
			return true
		})
	})
}
