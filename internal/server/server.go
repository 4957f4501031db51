// Package server serves demo pages of bar charts with animated updates and a
// pointer probe for the interactive charts.
package server

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/admpub/barchart/pkg/barchart"
	"github.com/admpub/barchart/pkg/dataset"
	"github.com/admpub/barchart/pkg/surface"
	"github.com/admpub/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// Demo describes one chart of the page.
type Demo struct {
	Name        string
	Title       string
	Description string
	Points      int
	Options     []barchart.Option
}

// Demos are the charts the page shows by default.
var Demos = []Demo{
	{
		Name:        `defaults`,
		Title:       `Defaults`,
		Description: `Chart default settings.`,
		Points:      24,
	},
	{
		Name:        `small`,
		Title:       `Small`,
		Description: `Chart with a smaller size.`,
		Points:      10,
		Options:     []barchart.Option{barchart.WithSize(220, 120)},
	},
	{
		Name:        `kitchen-sink`,
		Title:       `Kitchen Sink`,
		Description: `Chart with most settings configured.`,
		Points:      24,
		Options: []barchart.Option{
			barchart.WithAxisPadding(5),
			barchart.WithBarPadding(15),
			barchart.WithTickSize(3),
		},
	},
}

type entry struct {
	Demo
	id      string
	doc     *surface.Document
	chart   *barchart.Chart
	hovered *barchart.Point
}

// Server owns the demo charts. Charts are not safe for concurrent use, so
// every handler holds mu.
type Server struct {
	mu      sync.Mutex
	charts  map[string]*entry
	order   []string
	now     func() time.Time
	rnd     *rand.Rand
	options []barchart.Option
}

type Option func(*Server)

func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

func WithRand(rnd *rand.Rand) Option {
	return func(s *Server) {
		s.rnd = rnd
	}
}

// WithChartOptions applies options to every chart before its own.
func WithChartOptions(options ...barchart.Option) Option {
	return func(s *Server) {
		s.options = append(s.options, options...)
	}
}

// New builds the demo charts and renders their first data.
func New(demos []Demo, options ...Option) (*Server, error) {
	s := &Server{charts: map[string]*entry{}, now: time.Now}
	for _, o := range options {
		o(s)
	}
	if s.rnd == nil {
		s.rnd = rand.New(rand.NewSource(s.now().UnixNano()))
	}
	for _, demo := range demos {
		if err := s.add(demo); err != nil {
			return nil, fmt.Errorf(`chart %s: %w`, demo.Name, err)
		}
	}
	return s, nil
}

func (s *Server) add(demo Demo) error {
	e := &entry{Demo: demo, id: `chart-` + uuid.NewString()}
	e.doc = surface.NewDocument(surface.WithID(e.id), surface.WithClass(`chart`), surface.WithClock(s.now))
	options := append([]barchart.Option{}, s.options...)
	options = append(options, demo.Options...)
	options = append(options,
		barchart.WithTarget(`#`+e.id),
		barchart.OnMouseOver(func(p barchart.Point) {
			e.hovered = &p
		}),
		barchart.OnMouseOut(func() {
			e.hovered = nil
		}),
	)
	chart, err := barchart.New(e.doc, options...)
	if err != nil {
		return err
	}
	e.chart = chart
	if err := chart.Render(s.generate(demo.Points)); err != nil {
		return err
	}
	s.charts[demo.Name] = e
	s.order = append(s.order, demo.Name)
	return nil
}

func (s *Server) generate(n int) []barchart.Point {
	return dataset.Generate(n, s.now().Truncate(time.Second), s.rnd)
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get(`/`, s.handleIndex)
	r.Get(`/reference`, s.handleReference)
	r.Post(`/update`, s.handleUpdateAll)
	r.Get(`/charts/{name}.svg`, s.handleSVG)
	r.Post(`/charts/{name}/update`, s.handleUpdate)
	r.Get(`/charts/{name}/pointer`, s.handlePointer)
	r.Get(`/charts/{name}/leave`, s.handleLeave)
	return r
}

// Start serves the demo page on addr until the listener fails.
func (s *Server) Start(addr string) error {
	log.Infof(`serving %d charts on http://%s`, len(s.order), addr)
	err := http.ListenAndServe(addr, s.Handler())
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Update renders fresh data into the named chart with animation.
func (s *Server) Update(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(name)
}

func (s *Server) update(name string) error {
	e, ok := s.charts[name]
	if !ok {
		return fmt.Errorf(`%w: %s`, errChartNotFound, name)
	}
	if err := e.chart.Update(s.generate(e.Points)); err != nil {
		return err
	}
	log.Debugf(`updated chart %s with %d points`, name, e.Points)
	return nil
}

var errChartNotFound = errors.New(`chart not found`)
