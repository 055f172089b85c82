package importer

import "fitclub-admin-backend/internal/store"

// ApiResponse models the top-level structure of the booking platform's
// feed response.
type ApiResponse struct {
	Code int `json:"code"`
	Data struct {
		Page     int              `json:"page"`
		PageSize int              `json:"pageSize"`
		Total    int              `json:"total"`
		Items    []store.FeedItem `json:"items"`
	} `json:"data"`
}
