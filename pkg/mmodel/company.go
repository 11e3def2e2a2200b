package mmodel

// Company is the descriptive company tuple referenced by the settings object.
type Company struct {
	Name        string `json:"name"`
	INN         string `json:"inn"`
	BIC         string `json:"bic"`
	CorrAccount string `json:"corr_account"`
	Account     string `json:"account"`
	Ownership   string `json:"ownership"`
}
