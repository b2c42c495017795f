package anchor

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/Lideeyah/Haid/internal/adapter"
	"github.com/Lideeyah/Haid/internal/domain"
)

// RESTConfig configures the REST consensus transport
type RESTConfig struct {
	// GatewayURL is the base URL of the submission gateway
	GatewayURL string
	// MirrorURL is the base URL of the mirror node used for reads
	MirrorURL string
	// TopicID is the consensus topic all payloads are written to
	TopicID string
	// SubmitTimeout bounds a single submission attempt
	SubmitTimeout time.Duration
}

type submitRequest struct {
	Message string `json:"message"`
}

type submitResponse struct {
	TransactionID      string `json:"transaction_id"`
	SequenceNumber     uint64 `json:"sequence_number"`
	ConsensusTimestamp string `json:"consensus_timestamp"`
	RunningHash        string `json:"running_hash"`
}

type mirrorMessage struct {
	ConsensusTimestamp string `json:"consensus_timestamp"`
	Message            string `json:"message"`
	RunningHash        string `json:"running_hash"`
	SequenceNumber     uint64 `json:"sequence_number"`
	TopicID            string `json:"topic_id"`
}

type mirrorMessagesResponse struct {
	Messages []mirrorMessage `json:"messages"`
	Links    struct {
		Next *string `json:"next"`
	} `json:"links"`
}

// restTransport submits payloads to a consensus gateway and reads them back
// from a mirror node. A Submit call is exactly one HTTP attempt; the mirror
// client may retry reads internally because reads are idempotent.
type restTransport struct {
	cfg       RESTConfig
	submitter *http.Client
	mirror    adapter.HTTPClient
	jsonCodec adapter.JSON
}

// NewRESTTransport creates a transport backed by a consensus gateway and a
// mirror node
func NewRESTTransport(cfg RESTConfig, mirror adapter.HTTPClient, jsonCodec adapter.JSON) Transport {
	timeout := cfg.SubmitTimeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &restTransport{
		cfg:       cfg,
		submitter: &http.Client{Timeout: timeout},
		mirror:    mirror,
		jsonCodec: jsonCodec,
	}
}

func (t *restTransport) Submit(ctx context.Context, payload []byte) (*domain.AnchorProof, error) {
	body, err := t.jsonCodec.Marshal(submitRequest{
		Message: base64.StdEncoding.EncodeToString(payload),
	})
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("failed to marshal submit request: %w", err))
	}

	url := fmt.Sprintf("%s/topics/%s/messages", strings.TrimRight(t.cfg.GatewayURL, "/"), t.cfg.TopicID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("failed to create submit request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.submitter.Do(req)
	if err != nil {
		// Network errors are retryable
		return nil, fmt.Errorf("submit request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read submit response: %w", err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, fmt.Errorf("gateway returned status %d: %s", resp.StatusCode, string(respBody))
	default:
		// 4xx rejections will not succeed on retry
		return nil, backoff.Permanent(fmt.Errorf("gateway rejected submission with status %d: %s", resp.StatusCode, string(respBody)))
	}

	var result submitResponse
	if err := t.jsonCodec.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to decode submit response: %w", err)
	}

	consensusAt, err := parseConsensusTimestamp(result.ConsensusTimestamp)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("gateway returned malformed consensus timestamp %q: %w", result.ConsensusTimestamp, err))
	}

	return &domain.AnchorProof{
		TransactionID:      result.TransactionID,
		SequenceNumber:     result.SequenceNumber,
		ConsensusTimestamp: consensusAt,
		RunningHash:        result.RunningHash,
	}, nil
}

func (t *restTransport) Query(ctx context.Context, filter Filter) ([]Record, error) {
	base := fmt.Sprintf("%s/api/v1/topics/%s/messages", strings.TrimRight(t.cfg.MirrorURL, "/"), t.cfg.TopicID)

	params := []string{"order=asc"}
	if filter.Since != nil {
		params = append(params, "timestamp=gte:"+formatConsensusTimestamp(*filter.Since))
	}
	if filter.Limit > 0 {
		params = append(params, "limit="+strconv.Itoa(filter.Limit))
	}

	var records []Record
	next := base + "?" + strings.Join(params, "&")

	for next != "" {
		var page mirrorMessagesResponse
		if err := t.mirror.Get(ctx, next, &page); err != nil {
			return nil, fmt.Errorf("mirror query failed: %w", err)
		}

		for _, msg := range page.Messages {
			payload, err := base64.StdEncoding.DecodeString(msg.Message)
			if err != nil {
				return nil, fmt.Errorf("mirror returned malformed message at sequence %d: %w", msg.SequenceNumber, err)
			}
			consensusAt, err := parseConsensusTimestamp(msg.ConsensusTimestamp)
			if err != nil {
				return nil, fmt.Errorf("mirror returned malformed consensus timestamp %q: %w", msg.ConsensusTimestamp, err)
			}
			records = append(records, Record{
				Payload: payload,
				Proof: domain.AnchorProof{
					SequenceNumber:     msg.SequenceNumber,
					ConsensusTimestamp: consensusAt,
					RunningHash:        msg.RunningHash,
				},
			})
			if filter.Limit > 0 && len(records) >= filter.Limit {
				return records, nil
			}
		}

		next = ""
		if page.Links.Next != nil && *page.Links.Next != "" {
			next = strings.TrimRight(t.cfg.MirrorURL, "/") + *page.Links.Next
		}
	}

	return records, nil
}

// parseConsensusTimestamp parses the mirror node "seconds.nanoseconds"
// timestamp format
func parseConsensusTimestamp(value string) (time.Time, error) {
	parts := strings.SplitN(value, ".", 2)
	seconds, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid seconds component: %w", err)
	}
	var nanos int64
	if len(parts) == 2 {
		padded := parts[1]
		for len(padded) < 9 {
			padded += "0"
		}
		nanos, err = strconv.ParseInt(padded[:9], 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid nanoseconds component: %w", err)
		}
	}
	return time.Unix(seconds, nanos).UTC(), nil
}

// formatConsensusTimestamp renders a time in the mirror node query format
func formatConsensusTimestamp(t time.Time) string {
	return fmt.Sprintf("%d.%09d", t.Unix(), t.Nanosecond())
}
