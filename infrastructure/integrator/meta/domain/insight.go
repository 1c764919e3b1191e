package metadomain

// Action é um item das listas actions/action_values da Graph API: o tipo da
// conversão e o valor acumulado como string decimal
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
}

// InsightRecord é uma linha bruta do endpoint de insights. A Graph API devolve
// todos os contadores como strings; a conversão numérica acontece na derivação
// de métricas, nunca aqui.
type InsightRecord struct {
	AccountID    string   `json:"account_id"`
	CampaignID   string   `json:"campaign_id"`
	CampaignName string   `json:"campaign_name"`
	AdsetID      string   `json:"adset_id"`
	AdID         string   `json:"ad_id"`
	DateStart    string   `json:"date_start"`
	DateStop     string   `json:"date_stop"`
	Date         string   `json:"date"`
	Spend        string   `json:"spend"`
	Impressions  string   `json:"impressions"`
	Clicks       string   `json:"clicks"`
	Reach        string   `json:"reach"`
	Objective    string   `json:"objective"`
	Actions      []Action `json:"actions"`
	ActionValues []Action `json:"action_values"`
}

// ResolveDate devolve a data da linha (date_start tem precedência) ou vazio
// quando o registro não tem data utilizável
func (r *InsightRecord) ResolveDate() string {
	if r.DateStart != "" {
		return r.DateStart
	}
	return r.Date
}
