package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"yapback/internal/domain/dto"
	"yapback/internal/domain/entity"
	"yapback/internal/domain/model"
	"yapback/internal/domain/repository/transport"
)

const feedbackPath = "api/feedback"

// Submitter sends the finished feedback payload. It transports the message
// as given; trimming and non-empty enforcement happen before the draft
// reaches it.
type Submitter struct {
	requester transport.Requester
	baseURL   string
	apiKey    string
}

func NewSubmitter(requester transport.Requester, baseURL, apiKey string) *Submitter {
	return &Submitter{
		requester: requester,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		apiKey:    apiKey,
	}
}

func (s *Submitter) Submit(ctx context.Context, draft model.FeedbackDraft) (*entity.FeedbackResult, error) {
	body, err := json.Marshal(dto.FeedbackRequest{
		Type:        string(draft.Type),
		Message:     draft.Message,
		Email:       draft.Email,
		DeviceInfo:  draft.DeviceInfo,
		Attachments: draft.Attachments,
	})
	if err != nil {
		return nil, ErrInvalidResponse
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.baseURL+"/"+feedbackPath, bytes.NewReader(body))
	if err != nil {
		return nil, ErrInvalidResponse
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.requester.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		return nil, ErrInvalidResponse
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp dto.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
			return nil, &ServerError{Message: errResp.Error}
		}

		return nil, &HTTPError{StatusCode: resp.StatusCode}
	}

	var decoded dto.FeedbackResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, ErrDecoding
	}

	result := &entity.FeedbackResult{
		Success:    decoded.Success,
		FeedbackID: decoded.FeedbackID,
	}
	if decoded.GithubIssue != nil {
		result.GithubIssue = *decoded.GithubIssue
	}

	return result, nil
}
