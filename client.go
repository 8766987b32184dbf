// Package yapback is the client SDK for the yapback feedback-collection API.
// It composes feedback payloads, validates media attachments against the
// limits policy, orchestrates the two-phase upload (signed slots, then direct
// PUTs) and submits the finished record.
package yapback

import (
	"context"
	"math"

	"github.com/google/uuid"

	"yapback/config"
	"yapback/internal/application/usecase"
	"yapback/internal/application/usecase/abstraction"
	"yapback/internal/domain/entity"
	"yapback/internal/domain/model"
	probeRepository "yapback/internal/domain/repository/probe"
	transportRepository "yapback/internal/domain/repository/transport"
	probeInfra "yapback/internal/infrastructure/probe"
	"yapback/internal/infrastructure/transport"
)

// Client is the SDK entry point. It is read-only after construction and safe
// to share across goroutines; every Upload or Submit call keeps its state
// local.
type Client struct {
	baseURL     string
	apiKey      string
	uploader    abstraction.Uploader
	submitter   abstraction.Submitter
	imageProber *probeInfra.ImageProber
	videoProber probeRepository.VideoProber
	limits      model.AttachmentLimits
}

// Option overrides a collaborator after the defaults are wired.
type Option func(*Client)

// WithRequester swaps the HTTP primitive, e.g. for tests.
func WithRequester(requester transportRepository.Requester) Option {
	return func(c *Client) {
		validator := usecase.NewValidator(c.limits)
		c.uploader = usecase.NewUploader(requester, validator, c.baseURL, c.apiKey)
		c.submitter = usecase.NewSubmitter(requester, c.baseURL, c.apiKey)
	}
}

// WithVideoProber swaps the platform media decoder.
func WithVideoProber(prober probeRepository.VideoProber) Option {
	return func(c *Client) {
		c.videoProber = prober
	}
}

func New(cfg *config.Config, opts ...Option) *Client {
	limits := cfg.Limits
	if limits.IsZero() {
		limits = model.DefaultLimits()
	}

	baseURL := cfg.Client.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultBaseURL
	}

	requester := transport.New(cfg.Transport)
	validator := usecase.NewValidator(limits)

	c := &Client{
		baseURL:     baseURL,
		apiKey:      cfg.Client.APIKey,
		uploader:    usecase.NewUploader(requester, validator, baseURL, cfg.Client.APIKey),
		submitter:   usecase.NewSubmitter(requester, baseURL, cfg.Client.APIKey),
		imageProber: probeInfra.NewImageProber(),
		videoProber: probeInfra.NewFFProber(cfg.Probe),
		limits:      limits,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewImageAttachment builds an image attachment from raw bytes. The MIME
// type comes from signature sniffing; dimensions are advisory and degrade to
// zero when the payload cannot be decoded.
func (c *Client) NewImageAttachment(fileName string, data []byte) *model.Attachment {
	mimeType, width, height := c.imageProber.Detect(data)

	return &model.Attachment{
		ID:       uuid.NewString(),
		FileName: fileName,
		MimeType: mimeType,
		Data:     data,
		Width:    width,
		Height:   height,
	}
}

// NewVideoAttachment builds a video attachment, probing duration and
// dimensions first. The duration gate runs here so an over-long video fails
// fast, before validation sees the batch; validation checks it again as the
// final authority.
func (c *Client) NewVideoAttachment(ctx context.Context, fileName, mimeType string, data []byte) (*model.Attachment, error) {
	meta, err := c.videoProber.Probe(ctx, data)
	if err != nil {
		return nil, err
	}

	duration := meta.DurationSeconds
	if math.IsNaN(duration) || math.IsInf(duration, 0) || duration < 0 {
		return nil, probeRepository.ErrInvalidVideo
	}

	if duration > c.limits.MaxVideoDuration {
		return nil, &probeRepository.DurationTooLongError{
			Duration:    duration,
			MaxDuration: c.limits.MaxVideoDuration,
		}
	}

	return &model.Attachment{
		ID:       uuid.NewString(),
		FileName: fileName,
		MimeType: mimeType,
		Data:     data,
		Width:    meta.Width,
		Height:   meta.Height,
		Duration: &duration,
	}, nil
}

// UploadAttachments validates the batch and performs the two-phase upload.
// See usecase.Uploader for the ordering and partial-failure guarantees.
func (c *Client) UploadAttachments(ctx context.Context, attachments []*model.Attachment,
	progress entity.ProgressFunc,
) ([]entity.AttachmentSubmission, error) {
	return c.uploader.Upload(ctx, attachments, progress)
}

// SubmitFeedback sends the finished draft and returns the server's result.
func (c *Client) SubmitFeedback(ctx context.Context, draft model.FeedbackDraft) (*entity.FeedbackResult, error) {
	return c.submitter.Submit(ctx, draft)
}
