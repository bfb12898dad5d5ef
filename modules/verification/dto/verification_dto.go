package dto

type SendCodeRequest struct {
	Email string `json:"correo"`
}

type VerifyCodeRequest struct {
	Email string `json:"correo"`
	Code  string `json:"codigo"`
}

type SendCodeResponse struct {
	ExpiresInMinutes int `json:"expira_en_minutos"`
}
