package widget

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleCommand(t *testing.T) {
	f := newFixture(t)
	ctx := t.Context()

	out := f.widget.HandleCommand(ctx, "aapl")
	assert.Contains(t, out, "<b>AAPL</b>")

	out = f.widget.HandleCommand(ctx, "/save")
	assert.Equal(t, "⭐ Saved AAPL to favorites.", out)
	assert.Equal(t, "AAPL is already a favorite.", f.widget.HandleCommand(ctx, "/save"))

	out = f.widget.HandleCommand(ctx, "/favorites")
	assert.Contains(t, out, "<b>AAPL</b> (aapl.us)")

	assert.Equal(t, "Removed AAPL from favorites.", f.widget.HandleCommand(ctx, "/remove aapl"))
	assert.Equal(t, "MSFT is not a favorite.", f.widget.HandleCommand(ctx, "/remove MSFT"))

	out = f.widget.HandleCommand(ctx, "/load tesla motors")
	assert.Contains(t, out, "needs an API key")
	assert.Contains(t, out, "<b>AAPL</b>", "previous card stays visible")

	assert.Contains(t, f.widget.HandleCommand(ctx, "/search tesla"), "needs an API key")
	assert.Equal(t, "Usage: /key YOUR_API_KEY", f.widget.HandleCommand(ctx, "/key   "))
	assert.True(t, strings.HasPrefix(f.widget.HandleCommand(ctx, "/key abc"), "🔑"))
	assert.Contains(t, f.widget.HandleCommand(ctx, "/search@TickerPaneBot tesla"), "<b>TSLA</b> · Tesla, Inc. (NASDAQ)")

	out = f.widget.HandleCommand(ctx, "/refresh")
	assert.Contains(t, out, "<b>AAPL</b>")

	assert.Equal(t, "Lookup key cleared.", f.widget.HandleCommand(ctx, "/clearkey"))
	assert.False(t, f.keys.Present())

	assert.Equal(t, helpText, f.widget.HandleCommand(ctx, "/help"))
	assert.Equal(t, helpText, f.widget.HandleCommand(ctx, "/start"))
}

func TestHandleCommand_SaveBeforeLoad(t *testing.T) {
	f := newFixture(t)

	out := f.widget.HandleCommand(t.Context(), "/save")

	assert.Equal(t, "Nothing loaded yet. Send a ticker first.", out)
}
