package metadomain

type Business struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type AdAccount struct {
	ID            string `json:"id"`
	AccountID     string `json:"account_id"`
	Name          string `json:"name"`
	Currency      string `json:"currency"`
	Timezone      string `json:"timezone"`
	AccountStatus int    `json:"account_status"`
}

// ExternalID devolve o identificador usado nas seleções: account_id quando
// presente, senão o id do nó (formato act_123...)
func (a *AdAccount) ExternalID() string {
	if a.AccountID != "" {
		return a.AccountID
	}
	return a.ID
}

type Campaign struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Objective string `json:"objective"`
	Status    string `json:"status"`
	StartTime string `json:"start_time"`
	StopTime  string `json:"stop_time"`
}
