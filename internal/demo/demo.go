// Package demo is the interactive front end of the sparsepath binary: it
// collects the graph parameters, generates (or loads the sample) graph,
// prints the route between two nodes and the average route cost from node 1.
package demo

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/katalvlaran/sparsepath/bfs"
	"github.com/katalvlaran/sparsepath/builder"
	"github.com/katalvlaran/sparsepath/core"
	"github.com/katalvlaran/sparsepath/internal/config"
	"github.com/katalvlaran/sparsepath/query"
	"github.com/katalvlaran/sparsepath/render"
)

const (
	promptNodes       = "Input the number of nodes in the graph: "
	promptProbability = "Enter the edge probability (in percent, e.g. for 15 percent, enter 15): "
	promptOrigin      = "Enter the origin node: "
	promptDestination = "Enter the destination node: "
	promptPrint       = "Print out graph? (y/n): "

	bannerSample = "Using the sample network\n"
	bannerSweep  = "===== Now computing the average route cost =====\n"

	sweepOrigin core.NodeID = 1
)

// App runs one demo session.
type App struct {
	cfg     *config.Config
	in      io.Reader
	out     io.Writer
	logger  *slog.Logger
	querier *query.Querier
	now     func() time.Time
}

// Option configures an App.
type Option func(*App)

// WithIO replaces stdin/stdout.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *App) {
		a.in, a.out = in, out
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithQuerier sets the query façade used for every route lookup.
func WithQuerier(q *query.Querier) Option {
	return func(a *App) {
		if q != nil {
			a.querier = q
		}
	}
}

// New builds an App around cfg. A nil cfg means config.Default().
func New(cfg *config.Config, opts ...Option) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &App{
		cfg:     cfg,
		in:      os.Stdin,
		out:     os.Stdout,
		logger:  slog.New(slog.DiscardHandler),
		querier: query.New(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// params are the resolved session inputs.
type params struct {
	nodes       int
	probability int
	origin      core.NodeID
	destination core.NodeID
	printGraph  bool
	seed        int64
}

// Run asks for whatever the config leaves open, builds the graph and prints
// the route, its cost and the average route cost from node 1.
func (a *App) Run(ctx context.Context) error {
	p, g, err := a.prepare()
	if err != nil {
		return err
	}
	a.logger.Info("graph ready",
		slog.Int("nodes", g.NodeCount()),
		slog.Int("edges", g.EdgeCount()),
		slog.Bool("sample", a.cfg.Sample),
		slog.Int64("seed", p.seed),
	)

	if p.printGraph {
		err = render.Graph(a.out, g)
	} else {
		err = render.Summary(a.out, g)
	}
	if err != nil {
		return err
	}

	if err := a.route(g, p.origin, p.destination); err != nil {
		return err
	}

	if _, err := io.WriteString(a.out, bannerSweep); err != nil {
		return err
	}
	avg, err := Sweep(ctx, a.querier, g, sweepOrigin)
	if err != nil {
		return err
	}

	return render.AverageCost(a.out, avg)
}

// prepare resolves every parameter, prompting for the missing ones in the
// historical order, and builds the graph.
func (a *App) prepare() (params, *core.Graph, error) {
	pr := newPrompter(a.in, a.out)
	p := params{
		nodes:       a.cfg.Nodes,
		probability: a.cfg.Probability,
		origin:      core.NodeID(a.cfg.Origin),
		destination: core.NodeID(a.cfg.Destination),
	}
	var err error

	if a.cfg.Sample {
		if _, err = io.WriteString(a.out, bannerSample); err != nil {
			return p, nil, err
		}
		p.nodes = builder.Sample().NodeCount()
	} else {
		if p.nodes == 0 {
			if p.nodes, err = pr.intInRange(promptNodes, 1, math.MaxInt32); err != nil {
				return p, nil, err
			}
		}
		if p.probability == 0 {
			if p.probability, err = pr.intInRange(promptProbability, 1, 100); err != nil {
				return p, nil, err
			}
		}
	}
	if p.origin == 0 || int(p.origin) > p.nodes {
		v, err := pr.intInRange(promptOrigin, 1, p.nodes)
		if err != nil {
			return p, nil, err
		}
		p.origin = core.NodeID(v)
	}
	if p.destination == 0 || int(p.destination) > p.nodes {
		v, err := pr.intInRange(promptDestination, 1, p.nodes)
		if err != nil {
			return p, nil, err
		}
		p.destination = core.NodeID(v)
	}
	if a.cfg.PrintGraph != nil {
		p.printGraph = *a.cfg.PrintGraph
	} else if p.printGraph, err = pr.yesNo(promptPrint); err != nil {
		return p, nil, err
	}

	if a.cfg.Sample {
		return p, builder.Sample(), nil
	}

	p.seed = a.now().UnixNano()
	if a.cfg.Seed != nil {
		p.seed = *a.cfg.Seed
	}
	g, err := builder.NewRandomSparse(p.nodes, p.probability, builder.WithSeed(p.seed))
	if err != nil {
		return p, nil, fmt.Errorf("demo: generate graph: %w", err)
	}

	return p, g, nil
}

// route prints the path between origin and dest and, when positive, its cost.
func (a *App) route(g *core.Graph, origin, dest core.NodeID) error {
	path := a.querier.Path(g, origin, dest)
	if err := render.Route(a.out, path); err != nil {
		return err
	}
	if len(path) == 0 && origin != dest {
		if res, err := bfs.BFS(g, origin); err == nil {
			a.logger.Info("destination unreachable",
				slog.Uint64("origin", uint64(origin)),
				slog.Uint64("dest", uint64(dest)),
				slog.Int("reachable_from_origin", len(res.Order)-1),
			)
		}
	}

	return render.Cost(a.out, a.querier.Cost(g, origin, dest))
}

// Sweep averages the positive route costs from origin to the nodes
// 1..NodeCount()-1. Unreachable nodes and origin itself (cost 0) are skipped,
// and the node keyed NodeCount() is not part of the sweep.
func Sweep(ctx context.Context, q *query.Querier, g *core.Graph, origin core.NodeID) (render.Average, error) {
	var avg render.Average
	n := q.NodeCount(g)
	for i := 1; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return avg, err
		}
		cost := q.Cost(g, origin, core.NodeID(i))
		if cost <= 0 {
			continue
		}
		avg.Add(cost)
	}

	return avg, nil
}
