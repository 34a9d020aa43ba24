// Package seed drives generated users through the portfolio service:
// register, log in, create a profile, one identity at a time.
package seed

import (
	"context"
	"log/slog"

	"github.com/zarlcorp/zseed/internal/api"
	"github.com/zarlcorp/zseed/internal/credential"
	"github.com/zarlcorp/zseed/internal/identity"
	"github.com/zarlcorp/zseed/internal/profile"
	"github.com/zarlcorp/zseed/internal/vocab"
)

// API is the part of the portfolio service the runner calls.
type API interface {
	Register(ctx context.Context, req api.RegisterRequest) error
	Login(ctx context.Context, email, password string) (string, error)
	CreateProfile(ctx context.Context, token string, doc *profile.Document) error
}

// Synthesizer builds the profile for an identity index.
type Synthesizer interface {
	Synthesize(index int) *profile.Document
}

// Runner seeds identities sequentially. It holds no state between runs.
type Runner struct {
	api      API
	synth    Synthesizer
	creds    credential.Strategy
	reporter Reporter
	logger   *slog.Logger
	target   string
}

// Option configures a Runner.
type Option func(*Runner)

// WithCredentials sets the password strategy. Default: credential.Default().
func WithCredentials(s credential.Strategy) Option {
	return func(r *Runner) { r.creds = s }
}

// WithReporter sets where progress goes. Default: nowhere.
func WithReporter(rep Reporter) Option {
	return func(r *Runner) { r.reporter = rep }
}

// WithLogger sets the diagnostic logger. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithTarget names the API being seeded in progress output.
func WithTarget(baseURL string) Option {
	return func(r *Runner) { r.target = baseURL }
}

// NewRunner creates a runner over client and synth.
func NewRunner(client API, synth Synthesizer, opts ...Option) *Runner {
	r := &Runner{
		api:      client,
		synth:    synth,
		creds:    credential.Default(),
		reporter: Discard,
		logger:   slog.Default(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Run seeds total identities against baseURL starting at index start, using
// the built-in vocabulary and a crypto-seeded random source.
func Run(ctx context.Context, baseURL string, total, start int, opts ...Option) Summary {
	client := api.NewClient(baseURL)
	synth := profile.NewSynthesizer(vocab.NewStatic(), profile.NewSource())

	opts = append([]Option{WithTarget(client.BaseURL())}, opts...)
	return NewRunner(client, synth, opts...).Run(ctx, total, start)
}

// Run seeds identities start, start+1, ..., start+total-1 in order. A failed
// identity never stops the batch; a done context does, before the next
// identity begins. Outcomes are streamed to the reporter and only counted
// here, so memory does not grow with total.
func (r *Runner) Run(ctx context.Context, total, start int) Summary {
	total = max(total, 0)
	r.reporter.Start(Plan{
		Target:     r.target,
		Count:      total,
		StartIndex: start,
		FirstEmail: identity.New(start).Email,
	})

	s := Summary{Requested: total}
	for i := range total {
		index := start + i
		if ctx.Err() != nil {
			r.logger.Info("seeding interrupted", "next_index", index, "err", ctx.Err())
			break
		}

		id := identity.New(index)
		r.reporter.Begin(id)
		o := r.seedOne(ctx, id)
		r.reporter.Finish(o)
		s.record(o)
	}
	// also covers a cancel that landed while the last identity was in flight
	s.Interrupted = ctx.Err() != nil

	r.reporter.Done(s)
	return s
}

func (r *Runner) seedOne(ctx context.Context, id identity.Identity) Outcome {
	o := Outcome{Index: id.Index, Email: id.Email, State: Pending}
	log := r.logger.With("email", id.Email)
	cred := credential.For(r.creds, id)
	doc := r.synth.Synthesize(id.Index)

	o.advance(Registering)
	err := r.api.Register(ctx, api.RegisterRequest{
		FirstName: id.FirstName,
		LastName:  id.LastName,
		Email:     cred.Email,
		Password:  cred.Password,
	})
	if err != nil {
		// the account may exist from an earlier partial run; login decides
		log.Debug("register failed", "err", err)
		o.warn(err)
	}

	o.advance(LoggingIn)
	token, err := r.api.Login(ctx, cred.Email, cred.Password)
	if err != nil {
		log.Debug("login failed", "err", err)
		o.fail(err)
		return o
	}

	o.advance(CreatingProfile)
	if err := r.api.CreateProfile(ctx, token, doc); err != nil {
		log.Debug("create profile failed", "err", err)
		o.warn(err)
	}

	o.advance(Done)
	log.Debug("identity seeded", "warnings", len(o.Warnings))
	return o
}
