package handler

import "github.com/go-playground/validator/v10"

// Satu instance validator untuk semua handler (thread-safe, cache struct).
var validate = validator.New()
