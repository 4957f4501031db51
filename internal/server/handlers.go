package server

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/admpub/barchart/pkg/barchart"
	"github.com/admpub/barchart/pkg/chartutil"
	"github.com/admpub/barchart/pkg/surface"
	"github.com/admpub/log"
	"github.com/coscms/tables"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/webx-top/com"
)

type section struct {
	Name        string
	Title       string
	Description string
	SVG         template.HTML
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data := struct {
		Sections []section
		Table    template.HTML
	}{}
	for _, name := range s.order {
		e := s.charts[name]
		e.doc.Settle()
		data.Sections = append(data.Sections, section{
			Name:        e.Name,
			Title:       e.Title,
			Description: e.Description,
			SVG:         template.HTML(e.doc.SVG()),
		})
	}
	if len(s.order) > 0 {
		data.Table = template.HTML(pointsTable(s.charts[s.order[0]].chart.Data()))
	}
	w.Header().Set(`Content-Type`, `text/html; charset=utf-8`)
	if err := indexTemplate.Execute(w, data); err != nil {
		log.Error(err)
	}
}

func pointsTable(points []barchart.Point) string {
	table := tables.New()
	table.SetCaptionContent(`Data`)
	table.Head.AddRow(new(tables.Row).AddCell(tables.NewCell(`Time`), tables.NewCell(`Value`)))
	for _, p := range points {
		table.Body.AddRow(new(tables.Row).AddCell(
			tables.NewCell(p.Time.Format(`2006-01-02 15:04`)),
			tables.NewCell(p.Value),
		))
	}
	return string(table.Render())
}

func (s *Server) chartParam(w http.ResponseWriter, r *http.Request) (*entry, bool) {
	e, ok := s.charts[chi.URLParam(r, `name`)]
	if !ok {
		render.Render(w, r, ErrNotFound)
	}
	return e, ok
}

func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.chartParam(w, r)
	if !ok {
		return
	}
	e.doc.Settle()
	w.Header().Set(`Content-Type`, `image/svg+xml`)
	if err := e.doc.WriteSVG(w); err != nil {
		log.Error(err)
	}
}

// ChartResponse is the JSON state of a chart after an update or a pointer
// event.
type ChartResponse struct {
	Name    string           `json:"name"`
	Points  int              `json:"points"`
	Hovered *barchart.Point  `json:"hovered"`
	Data    []barchart.Point `json:"data,omitempty"`
}

func (c *ChartResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

func newChartResponse(e *entry, withData bool) *ChartResponse {
	resp := &ChartResponse{Name: e.Name, Points: len(e.chart.Data()), Hovered: e.hovered}
	if withData {
		resp.Data = e.chart.Data()
	}
	return resp
}

func (s *Server) renderUpdateError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, barchart.ErrInsufficientSpace):
		render.Render(w, r, ErrUnprocessable(err))
	case errors.Is(err, errChartNotFound):
		render.Render(w, r, ErrNotFound)
	default:
		render.Render(w, r, ErrInternalServerError(err))
	}
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.chartParam(w, r)
	if !ok {
		return
	}
	if err := s.update(e.Name); err != nil {
		s.renderUpdateError(w, r, err)
		return
	}
	render.Render(w, r, newChartResponse(e, true))
}

func (s *Server) handleUpdateAll(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]render.Renderer, 0, len(s.order))
	for _, name := range s.order {
		if err := s.update(name); err != nil {
			s.renderUpdateError(w, r, err)
			return
		}
		list = append(list, newChartResponse(s.charts[name], false))
	}
	if r.FormValue(`redirect`) == `1` {
		http.Redirect(w, r, `/`, http.StatusSeeOther)
		return
	}
	render.RenderList(w, r, list)
}

// handlePointer moves the pointer to x, y in svg coordinates.
func (s *Server) handlePointer(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.chartParam(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	if len(q.Get(`x`)) == 0 {
		render.Render(w, r, ErrInvalidRequest(errors.New(`missing x`)))
		return
	}
	x, y := com.Float64(q.Get(`x`)), com.Float64(q.Get(`y`))
	target := e.doc.HitTest(x, y)
	e.doc.Dispatch(target, surface.Event{Type: `mousemove`, X: x, Y: y})
	render.Render(w, r, newChartResponse(e, false))
}

func (s *Server) handleLeave(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.chartParam(w, r)
	if !ok {
		return
	}
	e.doc.Dispatch(e.doc.Root(), surface.Event{Type: `mouseleave`})
	render.Render(w, r, newChartResponse(e, false))
}

// handleReference shows the same data drawn by echarts.
func (s *Server) handleReference(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)
	for _, name := range s.order {
		e := s.charts[name]
		cfg := e.chart.Config()
		bar, err := chartutil.NewBar(nil, []charts.GlobalOpts{
			chartutil.Title(e.Title, e.Description),
			chartutil.Initialization(cfg.Width*2, cfg.Height*3),
			chartutil.Tooltip(),
		}, `value`, e.chart.Data())
		if err != nil {
			render.Render(w, r, ErrInternalServerError(err))
			return
		}
		page.AddCharts(bar)
	}
	if err := page.Render(w); err != nil {
		log.Error(err)
	}
}
