package bot

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const (
	BotSource   = "https://github.com/Paoda/arona"
	GachaSource = "https://github.com/Paoda/bluearch-recruitment"
	ImageSource = "https://thearchive.gg"
)

// BlueArchiveBlue is RGB(0, 215, 251).
const BlueArchiveBlue = 0x00D7FB

// RegisterGeneral adds ping, source and help.
func RegisterGeneral(r *Router) {
	r.Register(Command{
		Name:    "ping",
		Aliases: []string{"response"},
		Help:    "Check how long the bot took to see your message.",
		Handler: Ping(time.Now),
	})
	r.Register(Command{
		Name:    "source",
		Aliases: []string{"github", "code", "dev"},
		Help:    "Links to the bot, gacha and image sources.",
		Handler: Source,
	})
	r.Register(Command{
		Name:    "help",
		Help:    "List the available commands.",
		Handler: Help(r),
	})
}

// Ping replies with the delay between the message timestamp and now.
func Ping(now func() time.Time) Handler {
	return func(ctx context.Context, req *Request) error {
		if req.SentAt.IsZero() {
			return req.Out.Reply(ctx, "Pong! (Response: ??ms)")
		}
		diff := now().Sub(req.SentAt)
		if diff < 0 {
			return req.Out.Reply(ctx, "Pong! (Response: ??ms)")
		}
		return req.Out.Reply(ctx, fmt.Sprintf("Pong! (Response: %dms)", diff.Milliseconds()))
	}
}

func Source(ctx context.Context, req *Request) error {
	return req.Out.SendEmbed(ctx, Embed{
		Fields: []Field{
			{Name: "Bot Source", Value: BotSource},
			{Name: "Gacha Source", Value: GachaSource},
			{Name: "Image Source", Value: ImageSource},
		},
		Color: BlueArchiveBlue,
	})
}

// Help lists r's commands with their aliases.
func Help(r *Router) Handler {
	return func(ctx context.Context, req *Request) error {
		var fields []Field
		for _, c := range r.Commands() {
			name := r.Prefix() + c.Name
			if c.Usage != "" {
				name += " " + c.Usage
			}
			value := c.Help
			if len(c.Aliases) > 0 {
				value += fmt.Sprintf("\nAliases: %s", strings.Join(c.Aliases, ", "))
			}
			fields = append(fields, Field{Name: name, Value: value})
		}
		return req.Out.SendEmbed(ctx, Embed{
			Title:  "Commands",
			Fields: fields,
			Color:  BlueArchiveBlue,
		})
	}
}
