package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// client is a minimal API client carrying the session token
type client struct {
	baseURL string
	token   string
	http    *http.Client
}

// TestStats collects latency figures for the concurrent phase
type TestStats struct {
	mu            sync.Mutex
	ResponseTimes []time.Duration
	Failures      int
}

func (s *TestStats) record(d time.Duration, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ResponseTimes = append(s.ResponseTimes, d)
	if err != nil {
		s.Failures++
	}
}

func (s *TestStats) percentile(p float64) time.Duration {
	if len(s.ResponseTimes) == 0 {
		return 0
	}
	sorted := append([]time.Duration(nil), s.ResponseTimes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted[int(float64(len(sorted)-1)*p)]
}

func main() {
	baseURL := flag.String("url", "http://localhost:5000", "Base URL for the API")
	concurrency := flag.Int("c", 5, "Number of concurrent expense writers")
	expenses := flag.Int("n", 50, "Number of expenses recorded against the budget")
	flag.Parse()

	c := &client{baseURL: *baseURL, http: &http.Client{Timeout: 10 * time.Second}}
	if err := run(c, *concurrency, *expenses); err != nil {
		fmt.Println("FAIL:", err)
		os.Exit(1)
	}
	fmt.Println("PASS")
}

func run(c *client, concurrency, expenses int) error {
	suffix := uuid.NewString()[:8]
	username := "smoke_" + suffix

	step("Health check")
	if _, err := c.call(http.MethodGet, "/health", nil, http.StatusOK); err != nil {
		return err
	}

	step("Register " + username)
	if _, err := c.call(http.MethodPost, "/api/register", map[string]any{
		"fullName": "Smoke Test",
		"email":    username + "@example.com",
		"username": username,
		"password": "secret123",
	}, http.StatusCreated); err != nil {
		return err
	}

	step("Duplicate registration is rejected")
	if _, err := c.call(http.MethodPost, "/api/register", map[string]any{
		"fullName": "Smoke Test",
		"email":    username + "@example.com",
		"username": username,
		"password": "secret123",
	}, http.StatusBadRequest); err != nil {
		return err
	}

	step("Protected routes need a token")
	if _, err := c.call(http.MethodGet, "/api/transactions", nil, http.StatusUnauthorized); err != nil {
		return err
	}

	step("Login")
	login, err := c.call(http.MethodPost, "/api/login", map[string]any{
		"usernameOrEmail": username,
		"password":        "secret123",
	}, http.StatusOK)
	if err != nil {
		return err
	}
	token, _ := login["token"].(string)
	if token == "" {
		return fmt.Errorf("login returned no token")
	}
	c.token = token

	step("Set Food budget")
	if _, err := c.call(http.MethodPost, "/api/budgets", map[string]any{
		"category": "Food", "limitAmount": 500,
	}, http.StatusCreated); err != nil {
		return err
	}

	step("Record income")
	today := time.Now().UTC().Format("2006-01-02")
	if _, err := c.call(http.MethodPost, "/api/transactions", map[string]any{
		"type": "income", "amount": 3000, "category": "Salary", "date": today,
	}, http.StatusCreated); err != nil {
		return err
	}

	step(fmt.Sprintf("Record %d expenses with %d writers", expenses, concurrency))
	stats := &TestStats{}
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(concurrency)
	start := time.Now()
	for i := 0; i < expenses; i++ {
		g.Go(func() error {
			began := time.Now()
			_, err := c.call(http.MethodPost, "/api/transactions", map[string]any{
				"type": "expense", "amount": 10, "category": "Food", "date": today,
			}, http.StatusCreated)
			stats.record(time.Since(began), err)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	fmt.Printf("    %d requests in %s, p50 %s, p95 %s, failures %d\n",
		expenses, time.Since(start).Round(time.Millisecond),
		stats.percentile(0.50), stats.percentile(0.95), stats.Failures)

	step("Budget spent matches recorded expenses")
	budgets, err := c.list("/api/budgets")
	if err != nil {
		return err
	}
	if len(budgets) != 1 {
		return fmt.Errorf("expected 1 budget, got %d", len(budgets))
	}
	wantSpent := float64(expenses * 10)
	if spent := budgets[0]["spent_amount"]; spent != wantSpent {
		return fmt.Errorf("budget spent = %v, want %v", spent, wantSpent)
	}

	step("Create goal")
	goal, err := c.call(http.MethodPost, "/api/goals", map[string]any{
		"name":         "Emergency fund",
		"targetAmount": 1000,
		"deadline":     time.Now().UTC().AddDate(0, 6, 0).Format("2006-01-02"),
	}, http.StatusCreated)
	if err != nil {
		return err
	}
	goalID := int(goal["id"].(float64))

	step("Add goal progress")
	if _, err := c.call(http.MethodPost, fmt.Sprintf("/api/goals/%d/progress", goalID), map[string]any{
		"amount": 200,
	}, http.StatusOK); err != nil {
		return err
	}

	step("Unknown goal is 404")
	if _, err := c.call(http.MethodPut, "/api/goals/999999999", map[string]any{
		"name": "x", "targetAmount": 1, "currentAmount": 0, "deadline": today,
	}, http.StatusNotFound); err != nil {
		return err
	}

	step("Dashboard")
	dashboard, err := c.call(http.MethodGet, "/api/dashboard", nil, http.StatusOK)
	if err != nil {
		return err
	}
	wantNet := 3000 - wantSpent - 200
	if dashboard["netAmount"] != wantNet {
		return fmt.Errorf("netAmount = %v, want %v", dashboard["netAmount"], wantNet)
	}

	for _, path := range []string{"/api/dashboard/trend?months=3", "/api/dashboard/categories", "/api/dashboard/summary"} {
		step("GET " + path)
		if _, err := c.raw(http.MethodGet, path, nil, http.StatusOK); err != nil {
			return err
		}
	}

	return nil
}

func step(name string) {
	fmt.Println("==>", name)
}

func (c *client) call(method, path string, body any, wantStatus int) (map[string]any, error) {
	raw, err := c.raw(method, path, body, wantStatus)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%s %s: decoding response: %w", method, path, err)
	}
	return out, nil
}

func (c *client) list(path string) ([]map[string]any, error) {
	raw, err := c.raw(http.MethodGet, path, nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	var out []map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("GET %s: decoding response: %w", path, err)
	}
	return out, nil
}

func (c *client) raw(method, path string, body any, wantStatus int) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != wantStatus {
		return nil, fmt.Errorf("%s %s: status %d, want %d: %s", method, path, resp.StatusCode, wantStatus, data)
	}
	return data, nil
}
