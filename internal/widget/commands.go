package widget

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"TickerPane/internal/notifier"
	"TickerPane/internal/prefs"
	"TickerPane/internal/search"
	"TickerPane/internal/symbol"
)

const helpText = `Commands:
• /load SYMBOL or just send a ticker / company name
• /refresh reloads the current symbol
• /save adds the current symbol to favorites
• /remove SYMBOL drops a favorite
• /favorites lists favorites
• /search NAME looks up companies (needs a key)
• /key YOUR_API_KEY saves the lookup key
• /clearkey forgets it`

// HandleCommand processes a chat command and returns the reply.
func (w *Widget) HandleCommand(ctx context.Context, text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return helpText
	}
	if !strings.HasPrefix(text, "/") {
		return w.loadReply(ctx, text)
	}

	cmd, arg, _ := strings.Cut(text, " ")
	cmd, _, _ = strings.Cut(strings.ToLower(cmd), "@")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "/load":
		return w.loadReply(ctx, arg)
	case "/refresh":
		if _, err := w.Refresh(ctx); err != nil && !errors.Is(err, ErrStale) {
			return StatusMessage(err)
		}
		return notifier.FormatView(w.View())
	case "/save":
		ticker, added, err := w.SaveCurrent()
		if err != nil {
			return StatusMessage(err)
		}
		if !added {
			return fmt.Sprintf("%s is already a favorite.", symbol.ToDisplay(ticker))
		}
		return fmt.Sprintf("⭐ Saved %s to favorites.", symbol.ToDisplay(ticker))
	case "/remove":
		ticker, removed, err := w.RemoveFavorite(arg)
		if err != nil {
			return StatusMessage(err)
		}
		if !removed {
			return fmt.Sprintf("%s is not a favorite.", symbol.ToDisplay(ticker))
		}
		return fmt.Sprintf("Removed %s from favorites.", symbol.ToDisplay(ticker))
	case "/favorites":
		return notifier.FormatFavorites(w.Favorites())
	case "/search":
		if arg == "" {
			return "Usage: /search COMPANY NAME"
		}
		results, err := w.Suggest(ctx, search.NewDebouncer(0), arg)
		if err != nil {
			return StatusMessage(err)
		}
		return notifier.FormatSuggestions(arg, results)
	case "/key":
		if err := w.SetKey(arg); err != nil {
			if errors.Is(err, prefs.ErrEmptyKey) {
				return StatusMessage(err)
			}
			return "Couldn't save the lookup key: " + html.EscapeString(err.Error())
		}
		return "🔑 Lookup key saved. Company search and sector/industry are enabled."
	case "/clearkey":
		if err := w.ClearKey(); err != nil {
			return "Couldn't clear the lookup key: " + html.EscapeString(err.Error())
		}
		return "Lookup key cleared."
	default:
		return helpText
	}
}

func (w *Widget) loadReply(ctx context.Context, input string) string {
	_, err := w.Load(ctx, input)
	if errors.Is(err, ErrStale) {
		return ""
	}
	return notifier.FormatView(w.View())
}
