package logging

import (
	"log/slog"

	"github.com/m-mizutani/masq"
)

// NewReplaceAttr returns a slog ReplaceAttr func that redacts secrets such as
// the Telegram bot token, whether logged directly or inside a config struct.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	all := append([]masq.Option{
		masq.WithFieldName("Token"),
		masq.WithFieldName("token"),
		masq.WithFieldName("Password"),
		masq.WithFieldName("password"),
		masq.WithFieldPrefix("secret"),
	}, opts...)
	return masq.New(all...)
}
