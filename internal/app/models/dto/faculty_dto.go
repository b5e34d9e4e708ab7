package dto

import "github.com/rkabir/profscope/internal/scraper"

// SyncStats summarizes one reconciliation run against the professor table.
type SyncStats struct {
	Total        int      `json:"total"`
	Created      int      `json:"created"`
	Updated      int      `json:"updated"`
	Errors       int      `json:"errors"`
	ErrorDetails []string `json:"errorDetails,omitempty"`
}

// FacultyPreviewResponse is the scrape-without-persisting payload.
type FacultyPreviewResponse struct {
	Count int                     `json:"count"`
	Data  []scraper.FacultyMember `json:"data"`
}

// FacultySyncResponse is the full-sync payload; SampleData carries the first
// few scraped records so an operator can sanity-check field mapping.
type FacultySyncResponse struct {
	Message    string                  `json:"message"`
	Stats      SyncStats               `json:"stats"`
	SampleData []scraper.FacultyMember `json:"sampleData"`
}

// AutoSyncResponse is the incremental-sync payload; only additions are
// reported because auto-sync never touches existing rows.
type AutoSyncResponse struct {
	Message         string `json:"message"`
	NewFacultyAdded int    `json:"newFacultyAdded"`
	TotalScraped    int    `json:"totalScraped"`
}
