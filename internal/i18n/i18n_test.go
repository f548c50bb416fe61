package i18n

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/wchklaus97/remind-me/internal/storage"
)

func TestParseLocale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Locale
	}{
		{"en", LocaleEn},
		{"zh", LocaleZhHans},
		{"zh-CN", LocaleZhHans},
		{"zh-Hans", LocaleZhHans},
		{"zh-TW", LocaleZhHant},
		{"zh-Hant", LocaleZhHant},
		{"fr", LocaleEn},
		{"", LocaleEn},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			if got := ParseLocale(tt.in); got != tt.want {
				t.Errorf("ParseLocale(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTranslator_Translate(t *testing.T) {
	t.Parallel()

	tr, err := NewTranslator()
	if err != nil {
		t.Fatalf("NewTranslator failed: %v", err)
	}

	tests := []struct {
		name   string
		locale Locale
		key    string
		want   string
	}{
		{"english key", LocaleEn, "stats.overdue", "Overdue"},
		{"simplified chinese key", LocaleZhHans, "stats.overdue", "已逾期"},
		{"traditional chinese key", LocaleZhHant, "form.save", "儲存變更"},
		{"nested path", LocaleEn, "form.title.placeholder", "What do you want to remember?"},
		{"missing key falls back to the key itself", LocaleZhHans, "missing.key", "missing.key"},
		{"non-leaf path is not a translation", LocaleEn, "form.title", "form.title"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tr.Translate(tt.locale, tt.key); got != tt.want {
				t.Errorf("Translate(%q, %q) = %q, want %q", tt.locale, tt.key, got, tt.want)
			}
		})
	}
}

func TestEngine_ResolvePrecedence(t *testing.T) {
	t.Parallel()

	tr, err := NewTranslator()
	if err != nil {
		t.Fatalf("NewTranslator failed: %v", err)
	}
	ctx := context.Background()

	t.Run("url locale wins over persisted preference", func(t *testing.T) {
		t.Parallel()
		store := storage.NewMemoryStore()
		_ = store.Set(ctx, storage.LocaleKey, "zh-Hant")

		engine := NewEngine(tr, store, zap.NewNop())
		if got := engine.Resolve(ctx, "zh"); got != LocaleZhHans {
			t.Errorf("Resolve = %q, want zh-Hans", got)
		}
	})

	t.Run("persisted preference used when url has none", func(t *testing.T) {
		t.Parallel()
		store := storage.NewMemoryStore()
		_ = store.Set(ctx, storage.LocaleKey, "zh-Hant")

		engine := NewEngine(tr, store, zap.NewNop())
		if got := engine.Resolve(ctx, ""); got != LocaleZhHant {
			t.Errorf("Resolve = %q, want zh-Hant", got)
		}
	})

	t.Run("default when nothing is set", func(t *testing.T) {
		t.Parallel()
		engine := NewEngine(tr, storage.NewMemoryStore(), zap.NewNop())
		if got := engine.Resolve(ctx, ""); got != LocaleEn {
			t.Errorf("Resolve = %q, want en", got)
		}
	})
}

func TestEngine_SetLocalePersists(t *testing.T) {
	t.Parallel()

	tr, err := NewTranslator()
	if err != nil {
		t.Fatalf("NewTranslator failed: %v", err)
	}

	ctx := context.Background()
	store := storage.NewMemoryStore()
	engine := NewEngine(tr, store, zap.NewNop())

	engine.SetLocale(ctx, LocaleZhHant)

	if got := engine.Current(); got != LocaleZhHant {
		t.Errorf("Current = %q, want zh-Hant", got)
	}
	if saved, ok := store.Get(ctx, storage.LocaleKey); !ok || saved != "zh-Hant" {
		t.Errorf("persisted preference = (%q, %v), want (zh-Hant, true)", saved, ok)
	}
	if got := engine.Translate("app.header.new_reminder"); got != "新增提醒" {
		t.Errorf("Translate after switch = %q, want 新增提醒", got)
	}
}
