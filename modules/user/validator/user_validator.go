package validator

import (
	"myevent-api/core/validator"
	"myevent-api/modules/user/dto"
)

var userMessages = validator.Messages{
	"FullName.trimmin":  "El nombre debe tener al menos 3 caracteres",
	"FullName.trimmax":  "El nombre no puede exceder 100 caracteres",
	"Email.trimemail":   "El correo no es válido",
	"Email.notblank":    "El correo es requerido",
	"Password.min":      "La contraseña debe tener al menos 8 caracteres",
	"Password.notblank": "La contraseña es requerida",
	"Nickname.trimmax":  "El apodo no puede exceder 30 caracteres",
}

func ValidateRegisterRequest(req *dto.RegisterRequest) *validator.ValidationResult {
	v := validator.New()
	v.Struct(req, userMessages)
	return v
}

func ValidateLoginRequest(req *dto.LoginRequest) *validator.ValidationResult {
	v := validator.New()
	v.Struct(req, userMessages)
	return v
}

func ValidateUpdateProfileRequest(req *dto.UpdateProfileRequest) *validator.ValidationResult {
	v := validator.New()
	if req.FullName == nil && req.Nickname == nil {
		v.Add("No hay datos para actualizar")
	}
	v.Struct(req, userMessages)
	return v
}
