package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/maze/wilson"
	"github.com/beka-birhanu/vinom-pathfinder/mazefile"
	"github.com/beka-birhanu/vinom-pathfinder/render"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
)

const (
	defaultMaxDimension = 200
	defaultSolutionTTL  = time.Hour
	defaultMazeName     = "untitled"

	FormatPNG = "png"
	FormatGIF = "gif"
)

var (
	ErrMazeNotFound      = dmn.ErrMazeNotFound
	ErrForbidden         = errors.New("maze belongs to another account")
	ErrInvalidMaze       = errors.New("invalid maze")
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

type Options struct {
	// Largest row or column count accepted from uploads.
	MaxDimension int
	// How long solutions stay in the cache.
	SolutionTTL time.Duration
	// Drawing geometry for Render.
	Image render.Options
	// Clock for creation and solve times, time.Now when nil.
	Now func() time.Time
}

// Solver stores mazes and searches them on request. Solutions are kept on
// the maze record and in the cache; a per-maze lock keeps concurrent
// requests from searching the same maze twice.
type Solver struct {
	repo    i.MazeRepo
	cache   i.SolutionCache
	encoder i.SolutionEncoder
	logger  i.Logger
	opts    *Options
}

var _ i.MazeSolver = &Solver{}

func NewSolver(repo i.MazeRepo, cache i.SolutionCache, encoder i.SolutionEncoder, logger i.Logger, opts *Options) (*Solver, error) {
	if repo == nil || cache == nil || encoder == nil || logger == nil {
		return nil, errors.New("solver dependencies must not be nil")
	}
	if opts == nil {
		opts = &Options{}
	}
	if opts.MaxDimension <= 0 {
		opts.MaxDimension = defaultMaxDimension
	}
	if opts.SolutionTTL <= 0 {
		opts.SolutionTTL = defaultSolutionTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Solver{
		repo:    repo,
		cache:   cache,
		encoder: encoder,
		logger:  logger,
		opts:    opts,
	}, nil
}

// Submit implements i.MazeSolver.
func (s *Solver) Submit(ctx context.Context, owner uuid.UUID, name, raw string) (*dmn.MazeRecord, error) {
	m, err := mazefile.Parse(raw, mazefile.ReadOptions{MaxDimension: s.opts.MaxDimension})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMaze, err)
	}
	return s.store(ctx, owner, name, m)
}

// Generate implements i.MazeSolver. A zero seed picks a random one. The
// generated grid, 2*rows-1 by 2*cols-1 cells, is held to the same size
// limit as uploads.
func (s *Solver) Generate(ctx context.Context, owner uuid.UUID, name string, rows, cols int, seed int64) (*dmn.MazeRecord, error) {
	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewSource(seed))
	}
	layout, err := wilson.Generate(rows, cols, rng)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMaze, err)
	}
	m, err := maze.New(layout.Grid, layout.Start, layout.Exit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMaze, err)
	}
	if max(m.NumRows(), m.NumCols()) > s.opts.MaxDimension {
		return nil, fmt.Errorf("%w: %w: %dx%d grid exceeds %d", ErrInvalidMaze, mazefile.ErrTooLarge, m.NumRows(), m.NumCols(), s.opts.MaxDimension)
	}
	return s.store(ctx, owner, name, m)
}

func (s *Solver) store(ctx context.Context, owner uuid.UUID, name string, m *maze.Maze) (*dmn.MazeRecord, error) {
	raw, err := mazefile.Format(m)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = defaultMazeName
	}

	record := &dmn.MazeRecord{
		ID:        uuid.New(),
		OwnerID:   owner,
		Name:      name,
		Raw:       raw,
		Rows:      m.NumRows(),
		Cols:      m.NumCols(),
		CreatedAt: s.opts.Now().UTC(),
	}
	if err := s.repo.Save(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("Stored maze %s (%dx%d) for %s", record.ID, record.Rows, record.Cols, owner))
	return record, nil
}

// Get implements i.MazeSolver.
func (s *Solver) Get(ctx context.Context, caller, mazeID uuid.UUID) (*dmn.MazeRecord, error) {
	record, err := s.repo.ByID(ctx, mazeID)
	if err != nil {
		return nil, err
	}
	if record.OwnerID != caller {
		return nil, ErrForbidden
	}
	return record, nil
}

// Solve implements i.MazeSolver. Both outcomes are cached, so a maze
// without a path is not searched again until its cache entry expires.
func (s *Solver) Solve(ctx context.Context, caller, mazeID uuid.UUID) (*dmn.Solution, error) {
	record, err := s.Get(ctx, caller, mazeID)
	if err != nil {
		return nil, err
	}
	return s.solve(ctx, record)
}

func (s *Solver) solve(ctx context.Context, record *dmn.MazeRecord) (*dmn.Solution, error) {
	if sol, ok := s.cached(ctx, record.ID); ok {
		return sol, nil
	}

	unlock, err := s.cache.Lock(ctx, record.ID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := unlock(context.WithoutCancel(ctx)); err != nil {
			s.logger.Warning(fmt.Sprintf("Releasing solve lock for %s: %s", record.ID, err))
		}
	}()

	// another worker may have finished while we waited for the lock
	if sol, ok := s.cached(ctx, record.ID); ok {
		return sol, nil
	}

	if record.Solution == nil {
		if err := s.search(ctx, record); err != nil {
			return nil, err
		}
	}

	s.remember(ctx, record.ID, record.Solution)
	return record.Solution, nil
}

// search runs the path search on the record's maze and persists the result.
func (s *Solver) search(ctx context.Context, record *dmn.MazeRecord) error {
	m, err := mazefile.Parse(record.Raw, mazefile.ReadOptions{})
	if err != nil {
		return fmt.Errorf("stored maze %s: %w", record.ID, err)
	}

	start := s.opts.Now()
	found := m.Search()
	s.logger.Debug(fmt.Sprintf("Searched maze %s in %s, found=%t", record.ID, time.Since(start), found))

	record.Solution = &dmn.Solution{
		Found:    found,
		Path:     m.Path(),
		SolvedAt: s.opts.Now().UTC(),
	}
	return s.repo.Save(ctx, record)
}

// cached returns the cached solution. Cache errors count as a miss.
func (s *Solver) cached(ctx context.Context, mazeID uuid.UUID) (*dmn.Solution, bool) {
	data, ok, err := s.cache.Get(ctx, mazeID)
	if err != nil {
		s.logger.Warning(fmt.Sprintf("Reading cached solution for %s: %s", mazeID, err))
		return nil, false
	}
	if !ok {
		return nil, false
	}

	sol, err := s.encoder.Unmarshal(data)
	if err != nil {
		s.logger.Warning(fmt.Sprintf("Decoding cached solution for %s: %s", mazeID, err))
		return nil, false
	}
	return sol, true
}

func (s *Solver) remember(ctx context.Context, mazeID uuid.UUID, sol *dmn.Solution) {
	data, err := s.encoder.Marshal(sol)
	if err == nil {
		err = s.cache.Put(ctx, mazeID, data, s.opts.SolutionTTL)
	}
	if err != nil {
		s.logger.Warning(fmt.Sprintf("Caching solution for %s: %s", mazeID, err))
	}
}

// Render implements i.MazeSolver. An empty format means PNG.
func (s *Solver) Render(ctx context.Context, caller, mazeID uuid.UUID, format string, w io.Writer) error {
	if format == "" {
		format = FormatPNG
	}
	if format != FormatPNG && format != FormatGIF {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	record, err := s.Get(ctx, caller, mazeID)
	if err != nil {
		return err
	}
	sol, err := s.solve(ctx, record)
	if err != nil {
		return err
	}

	m, err := mazefile.Parse(record.Raw, mazefile.ReadOptions{})
	if err != nil {
		return fmt.Errorf("stored maze %s: %w", record.ID, err)
	}
	g := solvedMaze{Maze: m, path: sol.Path}

	if format == FormatGIF {
		return render.GIF(w, g, s.opts.Image)
	}
	return render.PNG(w, g, s.opts.Image)
}

// solvedMaze pairs a freshly loaded maze with a stored path so it can be
// drawn without searching again.
type solvedMaze struct {
	*maze.Maze
	path []maze.Coord
}

func (s solvedMaze) Path() []maze.Coord {
	return s.path
}
