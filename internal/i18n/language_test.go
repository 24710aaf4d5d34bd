package i18n

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubKV struct {
	values map[string]string
	err    error
}

func (s *stubKV) Get(_ context.Context, key string) (string, bool, error) {
	if s.err != nil {
		return "", false, s.err
	}
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *stubKV) Set(_ context.Context, key, value string) error {
	if s.err != nil {
		return s.err
	}
	s.values[key] = value
	return nil
}

func TestParse(t *testing.T) {
	tests := []struct {
		tag  string
		want Language
	}{
		{"en", English},
		{"it", Italian},
		{" IT ", Italian},
		{"fr", English},
		{"", English},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.tag))
		})
	}
}

func TestLanguage_Next(t *testing.T) {
	assert.Equal(t, Italian, English.Next())
	assert.Equal(t, English, Italian.Next())
	assert.Equal(t, DefaultLanguage, Language("de").Next())
}

func TestLoadSave(t *testing.T) {
	ctx := context.Background()
	kv := &stubKV{values: map[string]string{}}

	assert.Equal(t, English, Load(ctx, kv))

	Save(ctx, kv, Italian)
	assert.Equal(t, "it", kv.values[StorageKey])
	assert.Equal(t, Italian, Load(ctx, kv))

	kv.values[StorageKey] = "IT"
	assert.Equal(t, English, Load(ctx, kv), "stored tags must match exactly")
}

func TestLoad_ReadFailure(t *testing.T) {
	kv := &stubKV{values: map[string]string{StorageKey: "it"}, err: errors.New("boom")}
	assert.Equal(t, DefaultLanguage, Load(context.Background(), kv))
	assert.NotPanics(t, func() { Save(context.Background(), kv, Italian) })
}

func TestFor_EveryStringTranslated(t *testing.T) {
	for _, lang := range Languages {
		table := For(lang)
		assert.NotEmpty(t, table.AppTitle, lang)
		assert.NotEmpty(t, table.WarningMessage, lang)
		assert.Len(t, table.DefaultExpenses, 4, lang)
		assert.Len(t, table.DefaultIncomes, 2, lang)
	}
	assert.Equal(t, For(English), For(Language("xx")))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "Email already in use", ErrorMessage(English, CodeEmailInUse))
	assert.Equal(t, "Password errata", ErrorMessage(Italian, CodeWrongPassword))
	assert.Equal(t, "Login cancelled", ErrorMessage(English, CodeCancelled))
	assert.Equal(t, "Authentication error", ErrorMessage(English, ErrorCode("unknown")))
	assert.Equal(t, "Errore durante l'autenticazione", ErrorMessage(Italian, CodeAuthentication))
}
