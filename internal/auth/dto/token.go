package dto

type TokenResponse struct {
	BearerToken string `json:"bearerToken"`
}
