package types

// DataResponse is the envelope every endpoint returns. Details carries
// diagnostic information and is only filled outside production.
type DataResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Details string      `json:"details,omitempty"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

type IntegrateResponse struct {
	Outcome    IntegrationOutcome `json:"outcome"`
	Summary    string             `json:"summary"`
	Integrated bool               `json:"integrated"`
}

type StatusResponse struct {
	Status           string `json:"status"`
	Timestamp        string `json:"timestamp"`
	OpenAIConfigured bool   `json:"openai_configured"`
	Env              string `json:"env"`
}
