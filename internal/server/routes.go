package server

import (
	"net/http"

	"github.com/DjordjeVuckovic/chunkviz/internal/apperr"
	"github.com/DjordjeVuckovic/chunkviz/internal/viz/manifest"
	"github.com/DjordjeVuckovic/chunkviz/pkg/pagination"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	ChartsPrefix = "/charts"
	runsPath     = "/api/runs"
)

type RunsResponse struct {
	Root string `json:"root"`
	*pagination.OffsetResult[manifest.Entry]
}

// RunsRouter exposes manifests and chart files under a result root.
type RunsRouter struct {
	e    *echo.Echo
	root string
}

func NewRunsRouter(e *echo.Echo, root string) *RunsRouter {
	return &RunsRouter{e: e, root: root}
}

func (r *RunsRouter) Bind() {
	r.e.GET(runsPath, r.listRuns)
	r.e.GET(runsPath+"/:id", r.getRun)
	r.e.Static(ChartsPrefix, r.root)
}

// listRuns returns one page of manifests, optionally narrowed by the filename
// and model query parameters.
func (r *RunsRouter) listRuns(c echo.Context) error {
	var page pagination.OffsetRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &page); err != nil {
		return apperr.NewValidationWrap("page and size must be integers", err)
	}

	entries, err := manifest.Find(r.root)
	if err != nil {
		return err
	}

	filename := c.QueryParam("filename")
	model := c.QueryParam("model")

	runs := make([]manifest.Entry, 0, len(entries))
	for _, e := range entries {
		if filename != "" && e.Manifest.Context.Filename != filename {
			continue
		}
		if model != "" && e.Manifest.Context.EmbeddingModel != model {
			continue
		}
		runs = append(runs, e)
	}

	return c.JSON(http.StatusOK, RunsResponse{
		Root:         r.root,
		OffsetResult: pagination.Slice(runs, page),
	})
}

func (r *RunsRouter) getRun(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewValidationWrap("run id must be a UUID", err)
	}

	entries, err := manifest.Find(r.root)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.Manifest.RunID == id {
			return c.JSON(http.StatusOK, e)
		}
	}
	return echo.NewHTTPError(http.StatusNotFound, "run not found")
}
