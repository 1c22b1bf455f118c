package models

// ReportRequest carries the query parameters of GET /api/report.
type ReportRequest struct {
	From    string `query:"from" validate:"required,datetime=2006-01-02"`
	To      string `query:"to" validate:"required,datetime=2006-01-02"`
	Refresh bool   `query:"refresh" default:"false"`
}

// ChannelsResponse lists the channels the service is configured to fetch.
type ChannelsResponse struct {
	Enabled []string `json:"enabled"`
}
