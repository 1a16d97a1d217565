// Package discord connects the command router to the Discord gateway.
package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/xtding233/arona/internal/bot"
	"go.uber.org/zap"
)

// Bot owns one gateway session.
type Bot struct {
	session  *discordgo.Session
	router   *bot.Router
	log      *zap.Logger
	onStatus func(connected bool)

	ctx context.Context
}

func New(token string, router *bot.Router, log *zap.Logger) (*Bot, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	b := &Bot{session: s, router: router, log: log, ctx: context.Background()}
	s.AddHandler(b.onReady)
	s.AddHandler(b.onDisconnect)
	s.AddHandler(b.onMessage)
	return b, nil
}

// OnStatus registers fn to hear about gateway connects and disconnects.
func (b *Bot) OnStatus(fn func(connected bool)) { b.onStatus = fn }

// Run connects and blocks until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	b.ctx = ctx
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open gateway: %w", err)
	}
	<-ctx.Done()
	b.status(false)
	if err := b.session.Close(); err != nil {
		return fmt.Errorf("close gateway: %w", err)
	}
	return nil
}

func (b *Bot) onReady(_ *discordgo.Session, r *discordgo.Ready) {
	b.log.Info("connected", zap.String("user", r.User.String()), zap.Int("guilds", len(r.Guilds)))
	b.status(true)
}

func (b *Bot) onDisconnect(_ *discordgo.Session, _ *discordgo.Disconnect) {
	b.log.Warn("gateway disconnected")
	b.status(false)
}

func (b *Bot) onMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	req := &bot.Request{
		AuthorID:   m.Author.ID,
		AuthorName: m.Author.String(),
		SentAt:     m.Timestamp,
		Out: &channelMessenger{
			s:       s,
			channel: m.ChannelID,
			ref:     m.Reference(),
			log:     b.log,
		},
	}
	b.router.Dispatch(b.ctx, m.Content, req)
}

func (b *Bot) status(connected bool) {
	if b.onStatus != nil {
		b.onStatus(connected)
	}
}
