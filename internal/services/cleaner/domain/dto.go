package domain

// CleanInput is the request body for POST /clean
type CleanInput struct {
	Texts []string `json:"texts" validate:"required,min=1,max=1000,dive,max=10000"`
}

// CleanOutput is the response body for POST /clean
// Dropped counts inputs that vanished entirely (blank or fully stripped)
type CleanOutput struct {
	Texts   []string `json:"texts"`
	Dropped int      `json:"dropped"`
}
