package bot

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Handler runs a command. Errors are reserved for failed sends.
type Handler func(ctx context.Context, req *Request) error

type Command struct {
	Name    string
	Aliases []string
	Usage   string
	Help    string
	Handler Handler
}

// Router maps prefixed message text to commands. Names are case-insensitive.
type Router struct {
	prefix string
	log    *zap.Logger
	byName map[string]*Command
	cmds   []*Command
}

func NewRouter(prefix string, log *zap.Logger) *Router {
	if prefix == "" {
		prefix = "!"
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Router{prefix: prefix, log: log, byName: make(map[string]*Command)}
}

func (r *Router) Prefix() string { return r.prefix }

// Register adds cmd under its name and aliases. A later registration of the
// same name replaces the earlier one.
func (r *Router) Register(cmd Command) {
	c := &cmd
	r.cmds = append(r.cmds, c)
	for _, name := range append([]string{cmd.Name}, cmd.Aliases...) {
		r.byName[strings.ToLower(name)] = c
	}
}

// Commands lists registered commands sorted by name.
func (r *Router) Commands() []Command {
	out := make([]Command, 0, len(r.cmds))
	for _, c := range r.cmds {
		if r.byName[strings.ToLower(c.Name)] == c {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Dispatch runs the command named in content, if any, and reports whether one matched.
func (r *Router) Dispatch(ctx context.Context, content string, req *Request) bool {
	if !strings.HasPrefix(content, r.prefix) {
		return false
	}
	fields := strings.Fields(strings.TrimPrefix(content, r.prefix))
	if len(fields) == 0 {
		return false
	}
	cmd, ok := r.byName[strings.ToLower(fields[0])]
	if !ok {
		return false
	}
	req.Args = fields[1:]

	log := r.log.With(zap.String("command", cmd.Name), zap.String("author", req.AuthorName))
	log.Info("command invoked")
	if err := cmd.Handler(ctx, req); err != nil {
		log.Error("command failed", zap.Error(err))
	}
	return true
}
