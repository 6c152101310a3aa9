package translation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	domain "github.com/PolyglAI/PolyglAI/pkg/domain/translation"
	"github.com/PolyglAI/PolyglAI/pkg/infra/cache"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultCacheTTL    = 24 * time.Hour
	DefaultCallTimeout = 30 * time.Second
)

// CachedTranslator memoizes translations in redis and collapses concurrent
// identical requests into one provider call. The shared call is detached from
// any single caller's cancellation and bounded by its own timeout. Detection
// is not cached.
type CachedTranslator struct {
	next    domain.Translator
	cache   cache.Client
	logger  *logrus.Logger
	ttl     time.Duration
	timeout time.Duration
	sf      singleflight.Group
}

func NewCachedTranslator(
	next domain.Translator,
	c cache.Client,
	logger *logrus.Logger,
	ttl time.Duration,
	timeout time.Duration,
) *CachedTranslator {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if timeout <= 0 {
		timeout = DefaultCallTimeout
	}
	return &CachedTranslator{
		next:    next,
		cache:   c,
		logger:  logger,
		ttl:     ttl,
		timeout: timeout,
	}
}

func (t *CachedTranslator) Name() string {
	return t.next.Name()
}

func (t *CachedTranslator) DetectLanguage(ctx context.Context, text string) (string, error) {
	return t.next.DetectLanguage(ctx, text)
}

func (t *CachedTranslator) Translate(ctx context.Context, req domain.Request) (*domain.Translation, error) {
	key := CacheKey(t.next.Name(), req)

	raw, err := t.cache.Get(ctx, key)
	if err == nil {
		var cached domain.Translation
		if jsonErr := json.Unmarshal([]byte(raw), &cached); jsonErr == nil {
			return &cached, nil
		}
		t.logger.WithField("key", key).Warn("discarding malformed cached translation")
	} else if !errors.Is(err, redis.Nil) {
		t.logger.WithError(err).Debug("translation cache read failure")
	}

	ch := t.sf.DoChan(key, func() (interface{}, error) {
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), t.timeout)
		defer cancel()

		translated, err := t.next.Translate(callCtx, req)
		if err != nil {
			return nil, err
		}
		if translated == nil {
			return nil, domain.ErrNoTranslation
		}
		if data, err := json.Marshal(translated); err == nil {
			if err := t.cache.Set(callCtx, key, string(data), t.ttl); err != nil {
				t.logger.WithError(err).Warn("failed to cache translation")
			}
		}
		return translated, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, res.Err
	}
	translated, ok := res.Val.(*domain.Translation)
	if !ok {
		return nil, fmt.Errorf("unexpected translation type %T", res.Val)
	}
	result := *translated
	return &result, nil
}

// CacheKey hashes everything that determines a translation.
func CacheKey(provider string, req domain.Request) string {
	h := sha256.New()
	h.Write([]byte(provider))
	h.Write([]byte{0})
	h.Write([]byte(req.SourceLanguage))
	h.Write([]byte{0})
	h.Write([]byte(req.TargetLanguage))
	h.Write([]byte{0})
	h.Write([]byte(req.Text))
	return fmt.Sprintf(cache.TranslationKeyPattern, hex.EncodeToString(h.Sum(nil)))
}
