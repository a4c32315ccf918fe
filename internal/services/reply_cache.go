package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/jwebster45206/mathbrain/pkg/dialog"
)

// ReplyCache remembers the response given to each message of a session, so a
// platform retry of the same message gets the same answer instead of advancing
// the dialogue a second time.
type ReplyCache struct {
	cache Cache
	ttl   time.Duration
}

// NewReplyCache stores responses in cache for ttl.
func NewReplyCache(cache Cache, ttl time.Duration) *ReplyCache {
	return &ReplyCache{cache: cache, ttl: ttl}
}

func replyKey(sessionID string, messageID int) string {
	return "reply:" + sessionID + ":" + strconv.Itoa(messageID)
}

// Get returns the stored response, or nil when there is none.
func (c *ReplyCache) Get(ctx context.Context, sessionID string, messageID int) (*dialog.Response, error) {
	raw, err := c.cache.Get(ctx, replyKey(sessionID, messageID))
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	var resp dialog.Response
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, fmt.Errorf("failed to decode cached reply: %w", err)
	}
	return &resp, nil
}

// Put stores the response given to a message.
func (c *ReplyCache) Put(ctx context.Context, sessionID string, messageID int, resp dialog.Response) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to encode reply: %w", err)
	}
	return c.cache.Set(ctx, replyKey(sessionID, messageID), data, c.ttl)
}

// Ping checks the underlying cache.
func (c *ReplyCache) Ping(ctx context.Context) error {
	return c.cache.Ping(ctx)
}
