package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"codeberg.org/critique/client/internal/analyze"
	"codeberg.org/critique/client/internal/auth"
	"codeberg.org/critique/client/internal/logger"
)

// returns a tea.Cmd that performs one analyze exchange. A fresh client
// and, when configured, a fresh short-lived token per exchange - nothing
// is reused across exchanges.
func submitCmd(cfg analyze.Config, authSecret string, req analyze.Request) tea.Cmd {
	return func() tea.Msg {
		if authSecret != "" {
			token, err := auth.MintToken(authSecret)
			if err != nil {
				return analyzeFailureMsg{err: &analyze.Error{
					Kind:    analyze.KindTransport,
					Message: fmt.Sprintf("failed to mint auth token: %v", err),
				}}
			}

			cfg.AuthToken = token
		}

		result, err := analyze.New(cfg).Submit(context.Background(), req)
		if err != nil {
			var reqErr *analyze.Error
			if !errors.As(err, &reqErr) {
				reqErr = &analyze.Error{Kind: analyze.KindTransport, Message: err.Error()}
			}

			logger.ErrorErr(err, "analyze exchange failed", "kind", reqErr.Kind.String())

			return analyzeFailureMsg{err: reqErr}
		}

		return analyzeSuccessMsg{result: result}
	}
}
