package importer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"fitclub-admin-backend/config"
	"fitclub-admin-backend/internal/analytics"
	"fitclub-admin-backend/internal/parse"
	"fitclub-admin-backend/internal/store"
)

// Service periodically pulls the booking platform's reservation feed
// into the local database and reloads the analytics snapshot.
type Service struct {
	cfg    *config.Config
	store  store.Store
	engine *analytics.Engine
	client *http.Client
	loc    *time.Location
}

// NewService creates and initializes a new importer service.
func NewService(cfg *config.Config, s store.Store, engine *analytics.Engine, loc *time.Location) *Service {
	return &Service{
		cfg:    cfg,
		store:  s,
		engine: engine,
		client: &http.Client{Timeout: 30 * time.Second},
		loc:    loc,
	}
}

// Run starts the import loop.
func (s *Service) Run(ctx context.Context) {
	if !s.cfg.Importer.Enabled {
		log.Println("Importer is disabled. Not starting.")
		return
	}
	log.Println("Starting importer service...")

	s.ImportOnce(ctx)

	timer := time.NewTimer(s.cfg.Importer.Interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Importer service shutting down.")
			return
		case <-timer.C:
			s.ImportOnce(ctx)
			timer.Reset(s.cfg.Importer.Interval)
		}
	}
}

// ImportOnce performs a single import cycle: fetch every feed page,
// normalize the raw fields, upsert through the store and reload the
// engine snapshot.
func (s *Service) ImportOnce(ctx context.Context) {
	log.Println("Executing import cycle...")

	var allItems []store.FeedItem
	total := 1
	pageSize := s.cfg.Importer.Request.PageSize
	var fetchErr error
	for page := 1; (page-1)*pageSize < total; page++ {
		resp, err := s.fetchPage(ctx, page)
		if err != nil {
			log.Printf("Error fetching page %d: %v", page, err)
			fetchErr = err
			break
		}
		if resp.Data.Total == 0 || len(resp.Data.Items) == 0 {
			break
		}
		total = resp.Data.Total
		allItems = append(allItems, resp.Data.Items...)
		log.Printf("Fetched page %d, total items so far: %d", page, len(allItems))
	}

	// A failed fetch with nothing retrieved aborts the cycle so
	// existing rows are left alone.
	if fetchErr != nil && len(allItems) == 0 {
		log.Println("Import cycle aborted due to fetch error with no items retrieved.")
		return
	}

	items := s.normalize(allItems)
	if len(items) == 0 {
		log.Println("Import cycle finished: no items to persist.")
		return
	}

	if err := s.store.UpsertFeed(ctx, items); err != nil {
		log.Printf("Error persisting feed items: %v", err)
		return
	}

	if err := s.engine.Reload(ctx); err != nil && !errors.Is(err, analytics.ErrReloadInProgress) {
		log.Printf("Error reloading snapshot after import: %v", err)
	}

	log.Printf("Import cycle finished: %d items persisted.", len(items))
}

// normalize parses the raw feed strings and drops items this service
// cannot represent.
func (s *Service) normalize(raw []store.FeedItem) []store.FeedItem {
	items := make([]store.FeedItem, 0, len(raw))
	for _, item := range raw {
		status, err := parse.Status(item.Status)
		if err != nil {
			log.Printf("Warning: skipping reservation %d: %v", item.ID, err)
			continue
		}
		date, err := parse.Date(item.Date)
		if err != nil {
			log.Printf("Warning: skipping reservation %d: %v", item.ID, err)
			continue
		}
		createdAt, err := parse.Timestamp(item.CreatedAt, s.loc)
		if err != nil {
			log.Printf("Warning: could not parse createdAt for reservation %d: %v", item.ID, err)
		}
		if item.StartTime != "" {
			if normalized, err := parse.TimeOfDay(item.StartTime); err == nil {
				item.StartTime = normalized
			} else {
				log.Printf("Warning: could not parse startTime for reservation %d: %v", item.ID, err)
				item.StartTime = ""
			}
		}

		item.StatusParsed = status
		item.DateParsed = date
		item.CreatedAtParsed = createdAt
		items = append(items, item)
	}
	return items
}

// fetchPage fetches a single page of the reservation feed.
func (s *Service) fetchPage(ctx context.Context, page int) (*ApiResponse, error) {
	payload := map[string]any{
		"page":     page,
		"pageSize": s.cfg.Importer.Request.PageSize,
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Importer.Request.URL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for key, value := range s.cfg.Importer.Request.Headers {
		req.Header.Set(key, value)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received non-200 status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var apiResp ApiResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal feed response: %w", err)
	}

	if apiResp.Code != 0 {
		return nil, fmt.Errorf("feed returned non-zero application code: %d", apiResp.Code)
	}

	return &apiResp, nil
}
