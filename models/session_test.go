package models

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionSubmitKeepsCart(t *testing.T) {
	start := time.Date(2026, 10, 14, 7, 30, 0, 0, time.UTC)
	session := NewSession("s1", start, time.Hour)
	soy, soyMods, rice, riceMods := scenarioLines(t)

	_, err := session.Submit(start)
	assert.ErrorIs(t, err, ErrEmptyCart)

	session.AddLine(soy, soyMods, 2)
	session.AddLine(rice, riceMods, 1)

	confirmation, err := session.Submit(start.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "s1", confirmation.SessionID)
	assert.Equal(t, 105, confirmation.GrandTotal)
	assert.Len(t, confirmation.Lines, 2)
	assert.Equal(t, start.Add(time.Minute), confirmation.SubmittedAt)
	assert.NotEmpty(t, confirmation.Message)

	assert.Len(t, session.Lines(), 2)
	assert.Equal(t, 105, session.GrandTotal())
}

func TestSessionExpiry(t *testing.T) {
	start := time.Date(2026, 10, 14, 7, 30, 0, 0, time.UTC)
	session := NewSession("s1", start, time.Hour)

	assert.False(t, session.Expired(start.Add(59*time.Minute)))
	assert.True(t, session.Expired(start.Add(time.Hour)))
}

func TestSessionConcurrentAdds(t *testing.T) {
	session := NewSession("s1", time.Now(), time.Hour)
	item := DefaultMenu[1]

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			session.AddLine(item, nil, 1)
		}()
	}
	wg.Wait()

	assert.Len(t, session.Lines(), 50)
	assert.Equal(t, 50*item.Price, session.GrandTotal())
}

func TestSessionSnapshotMatchesLines(t *testing.T) {
	session := NewSession("s1", time.Now(), time.Hour)
	item := DefaultMenu[0]

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			line, total := session.AddLine(item, nil, 1)
			assert.Equal(t, item.Price, line.Subtotal())
			assert.Zero(t, total%item.Price)
		}()
		go func() {
			defer wg.Done()
			lines, total := session.Snapshot()
			assert.Equal(t, len(lines)*item.Price, total)
		}()
	}
	wg.Wait()

	lines, total := session.Snapshot()
	assert.Len(t, lines, 100)
	assert.Equal(t, 100*item.Price, total)
}
