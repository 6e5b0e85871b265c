package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"voxql/internal/apperrors"
)

// ChatRequest is one question plus the connection parameters it runs against.
type ChatRequest struct {
	Query    string
	DBType   string
	Host     string
	User     string
	Password string
	DBName   string
}

// ChatResult is the decoded success payload of the NLQ service. Optional
// fields are nil when the service produced no value for them.
type ChatResult struct {
	UserQuery      string
	SQLQuery       *string
	Rows           []map[string]interface{}
	Summary        *string
	ThoughtProcess *string
	Title          *string
}

// NLQService calls the external natural-language-to-SQL service. Outcomes are
// classified three ways: transport failure (apperrors.ErrUnavailable),
// service-reported error (apperrors.ErrUpstream, carrying the detail text),
// or success.
type NLQService struct {
	baseURL string
	client  *http.Client
}

func NewNLQService(baseURL string, timeout time.Duration) *NLQService {
	return &NLQService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type nlqChatRequest struct {
	QueryRequest struct {
		Query string `json:"query"`
	} `json:"query_request"`
	DatabaseConfig struct {
		DBType   string `json:"dbtype"`
		Host     string `json:"host"`
		User     string `json:"user"`
		Password string `json:"password"`
		DBName   string `json:"dbname"`
	} `json:"database_config"`
}

type nlqChatResponse struct {
	UserQuery      string          `json:"user_query"`
	SQLQuery       string          `json:"sql_query"`
	SQLResult      json.RawMessage `json:"sql_result"`
	Summary        string          `json:"summary"`
	ThoughtProcess string          `json:"agent_thought_process"`
	Title          string          `json:"title"`

	// Error payload variants: a 2xx body signalling a semantic error, or a
	// non-2xx body with a detail field.
	Error   string `json:"error"`
	Details string `json:"details"`
	Detail  string `json:"detail"`
}

func (s *NLQService) Chat(ctx context.Context, req ChatRequest) (*ChatResult, error) {
	var payload nlqChatRequest
	payload.QueryRequest.Query = req.Query
	payload.DatabaseConfig.DBType = req.DBType
	payload.DatabaseConfig.Host = req.Host
	payload.DatabaseConfig.User = req.User
	payload.DatabaseConfig.Password = req.Password
	payload.DatabaseConfig.DBName = req.DBName

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: NLQ service unreachable: %v", apperrors.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading NLQ response: %v", apperrors.ErrUnavailable, err)
	}

	var decoded nlqChatResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return nil, fmt.Errorf("%w: malformed NLQ response: %v", apperrors.ErrUpstream, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := decoded.Detail
		if detail == "" {
			detail = fmt.Sprintf("NLQ service returned status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUpstream, detail)
	}

	if decoded.Error != "" {
		detail := decoded.Error
		if decoded.Details != "" {
			detail = fmt.Sprintf("%s: %s", decoded.Error, decoded.Details)
		}
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUpstream, detail)
	}

	result := &ChatResult{
		UserQuery:      decoded.UserQuery,
		SQLQuery:       optionalString(decoded.SQLQuery),
		Summary:        optionalString(decoded.Summary),
		ThoughtProcess: optionalString(decoded.ThoughtProcess),
		Title:          optionalString(decoded.Title),
	}

	// sql_result is either a row array or a plain informational string
	// ("Query executed successfully. No rows returned."); only the array
	// form carries data.
	if len(decoded.SQLResult) > 0 {
		var rows []map[string]interface{}
		if err := json.Unmarshal(decoded.SQLResult, &rows); err == nil {
			result.Rows = rows
		}
	}

	return result, nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
