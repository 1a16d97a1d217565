// Package bottest provides a Messenger that records what commands send.
package bottest

import (
	"context"
	"sync"

	"github.com/xtding233/arona/internal/bot"
)

// Sent is one SendEmbed or SendFiles call.
type Sent struct {
	Embed bot.Embed
	Files []bot.File
}

// Recorder is a bot.Messenger for tests. Err, when set, is returned by every send.
type Recorder struct {
	Err error

	mu       sync.Mutex
	replies  []string
	sent     []Sent
	typing   int
	stopped  int
	typingAt []int // len(sent) when typing stopped
}

var _ bot.Messenger = (*Recorder)(nil)

func (r *Recorder) Reply(_ context.Context, content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.replies = append(r.replies, content)
	return r.Err
}

func (r *Recorder) SendEmbed(_ context.Context, e bot.Embed) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, Sent{Embed: e})
	return r.Err
}

func (r *Recorder) SendFiles(_ context.Context, e bot.Embed, files ...bot.File) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, Sent{Embed: e, Files: files})
	return r.Err
}

func (r *Recorder) StartTyping(context.Context) func() {
	r.mu.Lock()
	r.typing++
	r.mu.Unlock()
	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			r.stopped++
			r.typingAt = append(r.typingAt, len(r.sent))
			r.mu.Unlock()
		})
	}
}

func (r *Recorder) Replies() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.replies...)
}

func (r *Recorder) Sent() []Sent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Sent(nil), r.sent...)
}

// Typing reports how many indicators were started and stopped.
func (r *Recorder) Typing() (started, stopped int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.typing, r.stopped
}

// StoppedBefore reports the number of sends made before each typing stop.
func (r *Recorder) StoppedBefore() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.typingAt...)
}

// Request builds a request from author with r as its output.
func (r *Recorder) Request(author string, args ...string) *bot.Request {
	return &bot.Request{AuthorID: author, AuthorName: author, Args: args, Out: r}
}
