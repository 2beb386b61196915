// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"errors"
	"strings"

	"github.com/mfadhilr/contekan/internal/adapter"
)

func humanizeAuthError(err error) string {
	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Email atau kata sandi salah"
	case errors.Is(err, adapter.ErrConflict):
		return "Email sudah terdaftar"
	default:
		return humanizeServerUnavailableError(err)
	}
}

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Tidak ada jaringan atau server tidak tersedia"
	}

	return err.Error()
}
