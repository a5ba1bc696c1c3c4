package tui

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/MKhiriev/go-skladischer/models"
	"github.com/stretchr/testify/assert"
)

func TestFitText(t *testing.T) {
	assert.Equal(t, "Drill", fitText("Drill", 10))
	assert.Equal(t, "Отвёр...", fitText("Отвёртка крестовая", 8))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "abc", fitText("abc", 0))
}

func TestClampIndex(t *testing.T) {
	assert.Equal(t, 0, clampIndex(3, 0))
	assert.Equal(t, 1, clampIndex(5, 2))
	assert.Equal(t, 0, clampIndex(-1, 2))
	assert.Equal(t, 1, clampIndex(1, 2))
}

func TestValueOrDash(t *testing.T) {
	empty, text := "", "cordless"
	assert.Equal(t, "-", valueOrDash(nil))
	assert.Equal(t, "-", valueOrDash(&empty))
	assert.Equal(t, "cordless", valueOrDash(&text))
}

func TestImageSize(t *testing.T) {
	assert.Equal(t, "-", imageSize(models.Item{}))
	assert.Equal(t, "3 Б", imageSize(models.Item{ImageBase64: base64.StdEncoding.EncodeToString([]byte("png"))}))
	assert.Equal(t, "повреждено", imageSize(models.Item{ImageBase64: "%%%"}))
}

func TestSessionExpiry(t *testing.T) {
	expires := time.Date(2026, 3, 1, 18, 30, 0, 0, time.UTC)
	session := models.Session{Username: "alice", Token: "T1", ExpiresAt: expires}
	want := "Сессия до: " + expires.Local().Format(expiryLayout)

	assert.Equal(t, want, sessionExpiry(session, expires.Add(-time.Minute)))
	assert.Equal(t, want+" (истекла, войдите снова)", sessionExpiry(session, expires.Add(time.Minute)))
	assert.Empty(t, sessionExpiry(models.Session{Username: "alice"}, expires))
}
