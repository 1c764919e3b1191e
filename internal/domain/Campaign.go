package domain

import (
	"time"
)

type MetaCampaign struct {
	ID         string    `json:"id"`
	TenantID   string    `json:"tenant_id"`
	AccountID  string    `json:"account_id"`
	CampaignID string    `json:"campaign_id"`
	Name       string    `json:"name"`
	Objective  *string   `json:"objective"`
	Status     *string   `json:"status"`
	StartTime  *string   `json:"start_time"`
	StopTime   *string   `json:"stop_time"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
