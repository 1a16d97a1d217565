package bot

import (
	"context"
	"time"
)

// Embed is a platform-neutral rich message.
type Embed struct {
	Title       string
	Description string
	URL         string
	Color       int
	ImageURL    string
	Footer      *Footer
	Fields      []Field
}

type Footer struct {
	Text    string
	IconURL string
}

type Field struct {
	Name   string
	Value  string
	Inline bool
}

// File is an attachment. Embeds refer to it as "attachment://" + Name.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Messenger sends replies into the channel a command came from.
type Messenger interface {
	Reply(ctx context.Context, content string) error
	SendEmbed(ctx context.Context, e Embed) error
	SendFiles(ctx context.Context, e Embed, files ...File) error
	// StartTyping shows a typing indicator until stop is called.
	StartTyping(ctx context.Context) (stop func())
}

// Request is one invocation of a command.
type Request struct {
	AuthorID   string
	AuthorName string
	Args       []string
	SentAt     time.Time
	Out        Messenger
}
