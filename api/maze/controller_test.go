package mazeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/api/identity"
	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/mazefile"
	"github.com/beka-birhanu/vinom-pathfinder/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSolver struct {
	record   *dmn.MazeRecord
	solution *dmn.Solution
	err      error

	gotName string
	gotRows int
	gotCols int
	gotSeed int64
}

func (f *fakeSolver) Submit(_ context.Context, owner uuid.UUID, name, raw string) (*dmn.MazeRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.gotName = name
	return f.record, nil
}

func (f *fakeSolver) Generate(_ context.Context, owner uuid.UUID, name string, rows, cols int, seed int64) (*dmn.MazeRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.gotName, f.gotRows, f.gotCols, f.gotSeed = name, rows, cols, seed
	return f.record, nil
}

func (f *fakeSolver) Get(context.Context, uuid.UUID, uuid.UUID) (*dmn.MazeRecord, error) {
	return f.record, f.err
}

func (f *fakeSolver) Solve(context.Context, uuid.UUID, uuid.UUID) (*dmn.Solution, error) {
	return f.solution, f.err
}

func (f *fakeSolver) Render(_ context.Context, _, _ uuid.UUID, format string, w io.Writer) error {
	if f.err != nil {
		return f.err
	}
	_, err := io.WriteString(w, "image:"+format)
	return err
}

type nopLogger struct{}

func (nopLogger) Debug(string)   {}
func (nopLogger) Info(string)    {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}

func newTestEngine(solver *fakeSolver, caller uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	group := engine.Group("/api/v1")
	group.Use(func(c *gin.Context) {
		c.Set(identity.ContextAccountID, caller)
		c.Next()
	})
	NewMazeController(solver, nopLogger{}).RegisterProtected(group)
	return engine
}

func do(engine *gin.Engine, method, url, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestMazeController(t *testing.T) {
	caller := uuid.New()
	record := &dmn.MazeRecord{
		ID:        uuid.New(),
		OwnerID:   caller,
		Name:      "corridor",
		Raw:       "1 2\n00\n0 0\n0 1\n",
		Rows:      1,
		Cols:      2,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	solution := &dmn.Solution{
		Found:    true,
		Path:     []maze.Coord{maze.NewCoord(0, 0), maze.NewCoord(0, 1)},
		SolvedAt: time.Date(2024, 1, 1, 0, 1, 0, 0, time.UTC),
	}
	mazeURL := "/api/v1/mazes/" + record.ID.String()

	t.Run("submit", func(t *testing.T) {
		solver := &fakeSolver{record: record}
		w := do(newTestEngine(solver, caller), http.MethodPost, "/api/v1/mazes", `{"name":"corridor","raw":"1 2\n00\n0 0\n0 1\n"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		var resp CreatedResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, CreatedResponse{ID: record.ID.String(), Rows: 1, Cols: 2}, resp)
		assert.Equal(t, "corridor", solver.gotName)
	})

	t.Run("submit without raw", func(t *testing.T) {
		w := do(newTestEngine(&fakeSolver{record: record}, caller), http.MethodPost, "/api/v1/mazes", `{"name":"x"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("submit malformed maze", func(t *testing.T) {
		err := fmt.Errorf("%w: %w", service.ErrInvalidMaze, mazefile.ErrBadCell)
		w := do(newTestEngine(&fakeSolver{err: err}, caller), http.MethodPost, "/api/v1/mazes", `{"raw":"1 1\n2\n0 0\n0 0\n"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid maze cell")
	})

	t.Run("generate", func(t *testing.T) {
		solver := &fakeSolver{record: record}
		w := do(newTestEngine(solver, caller), http.MethodPost, "/api/v1/mazes/generate", `{"name":"g","rows":4,"cols":5,"seed":9}`)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 4, solver.gotRows)
		assert.Equal(t, 5, solver.gotCols)
		assert.Equal(t, int64(9), solver.gotSeed)
	})

	t.Run("generate needs positive dimensions", func(t *testing.T) {
		w := do(newTestEngine(&fakeSolver{record: record}, caller), http.MethodPost, "/api/v1/mazes/generate", `{"rows":0,"cols":5}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("get", func(t *testing.T) {
		w := do(newTestEngine(&fakeSolver{record: record}, caller), http.MethodGet, mazeURL, "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp MazeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, record.Name, resp.Name)
		assert.False(t, resp.Solved)
		assert.NotContains(t, w.Body.String(), "path")
	})

	t.Run("solve", func(t *testing.T) {
		w := do(newTestEngine(&fakeSolver{solution: solution}, caller), http.MethodPost, mazeURL+"/solve", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp SolutionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Found)
		assert.Equal(t, 2, resp.Length)
		assert.Equal(t, []CoordDTO{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, resp.Path)
	})

	t.Run("solve without path", func(t *testing.T) {
		w := do(newTestEngine(&fakeSolver{solution: &dmn.Solution{}}, caller), http.MethodPost, mazeURL+"/solve", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"path":[]`)
		assert.Contains(t, w.Body.String(), `"length":0`)
	})

	t.Run("image", func(t *testing.T) {
		engine := newTestEngine(&fakeSolver{}, caller)

		w := do(engine, http.MethodGet, mazeURL+"/image", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.Equal(t, "image:png", w.Body.String())

		w = do(engine, http.MethodGet, mazeURL+"/image?format=gif", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/gif", w.Header().Get("Content-Type"))
	})

	t.Run("image with empty format", func(t *testing.T) {
		w := do(newTestEngine(&fakeSolver{}, caller), http.MethodGet, mazeURL+"/image?format=", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.Equal(t, "image:png", w.Body.String())
	})

	errorCases := []struct {
		name string
		err  error
		code int
	}{
		{"not found", service.ErrMazeNotFound, http.StatusNotFound},
		{"forbidden", service.ErrForbidden, http.StatusForbidden},
		{"bad format", service.ErrUnsupportedFormat, http.StatusBadRequest},
		{"internal", fmt.Errorf("mongo down"), http.StatusInternalServerError},
	}
	for _, tc := range errorCases {
		t.Run("error "+tc.name, func(t *testing.T) {
			w := do(newTestEngine(&fakeSolver{err: tc.err}, caller), http.MethodGet, mazeURL, "")
			assert.Equal(t, tc.code, w.Code)
		})
	}

	t.Run("internal errors are not leaked", func(t *testing.T) {
		w := do(newTestEngine(&fakeSolver{err: fmt.Errorf("mongo down")}, caller), http.MethodPost, mazeURL+"/solve", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "mongo")
	})

	t.Run("malformed id", func(t *testing.T) {
		w := do(newTestEngine(&fakeSolver{record: record}, caller), http.MethodGet, "/api/v1/mazes/not-a-uuid", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
