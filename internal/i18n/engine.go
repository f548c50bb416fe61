package i18n

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/wchklaus97/remind-me/internal/storage"
)

// Engine owns the current-locale state and its persistence. Translation
// documents live in the embedded Translator; the engine only decides which
// locale is active.
type Engine struct {
	translator *Translator
	store      storage.Store
	logger     *zap.Logger

	mu     sync.RWMutex
	locale Locale
}

// NewEngine creates a locale engine starting at the default locale. Call
// Resolve once at startup to apply the URL/preference precedence.
func NewEngine(translator *Translator, store storage.Store, logger *zap.Logger) *Engine {
	return &Engine{
		translator: translator,
		store:      store,
		logger:     logger,
		locale:     DefaultLocale,
	}
}

// Resolve picks the startup locale: an explicit locale token found in the
// URL wins, then the persisted preference, then the default. The result is
// applied in memory and returned.
func (e *Engine) Resolve(ctx context.Context, urlLocale string) Locale {
	locale := DefaultLocale
	switch {
	case urlLocale != "":
		locale = ParseLocale(urlLocale)
	default:
		if saved, ok := e.store.Get(ctx, storage.LocaleKey); ok {
			locale = ParseLocale(saved)
		}
	}

	e.mu.Lock()
	e.locale = locale
	e.mu.Unlock()
	return locale
}

// Current returns the active locale.
func (e *Engine) Current() Locale {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.locale
}

// SetLocale switches the active locale and persists the preference. The
// in-memory switch always happens; a failed persist is logged and the new
// preference is simply lost for the next session.
func (e *Engine) SetLocale(ctx context.Context, locale Locale) {
	e.mu.Lock()
	e.locale = locale
	e.mu.Unlock()

	if err := e.store.Set(ctx, storage.LocaleKey, locale.String()); err != nil {
		e.logger.Warn("locale_persist_failed",
			zap.String("locale", locale.String()),
			zap.Error(err),
		)
	}
}

// Translate resolves key against the active locale with English fallback.
func (e *Engine) Translate(key string) string {
	return e.translator.Translate(e.Current(), key)
}
