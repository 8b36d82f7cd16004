package bot

import (
	"context"

	"github.com/go-telegram/bot/models"
	"github.com/graffic/citas-go/internal/pages"
)

// HomeDeleteCommand handles /homedelete [on|off]
type HomeDeleteCommand struct {
	settings *pages.Settings
	sender   Sender
}

func (c *HomeDeleteCommand) Command() string { return "homedelete" }
func (c *HomeDeleteCommand) Description() string {
	return "Show or change whether /delhome is allowed: on or off"
}

func (c *HomeDeleteCommand) Handle(ctx context.Context, msg *models.Message, args string) error {
	var (
		allow bool
		err   error
	)

	switch args {
	case "":
		allow, err = c.settings.Enter(ctx)
	case "on":
		allow, err = c.settings.Toggle(ctx, true)
	case "off":
		allow, err = c.settings.Toggle(ctx, false)
	default:
		return reply(ctx, c.sender, msg, "Usage: /homedelete [on|off]")
	}
	if err != nil {
		return err
	}

	if allow {
		return reply(ctx, c.sender, msg, "Deleting from home is enabled.")
	}
	return reply(ctx, c.sender, msg, "Deleting from home is disabled.")
}
