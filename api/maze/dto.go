// Package mazeapi exposes maze upload, generation, solving and rendering over HTTP.
package mazeapi

import (
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
)

// SubmitRequest uploads a maze in file format.
type SubmitRequest struct {
	Name string `json:"name"`
	Raw  string `json:"raw" binding:"required"`
}

// GenerateRequest asks for a random perfect maze with Rows x Cols rooms.
type GenerateRequest struct {
	Name string `json:"name"`
	Rows int    `json:"rows" binding:"required,min=1"`
	Cols int    `json:"cols" binding:"required,min=1"`
	Seed int64  `json:"seed"`
}

// CreatedResponse is returned after a maze is stored.
type CreatedResponse struct {
	ID   string `json:"id"`
	Rows int    `json:"rows"`
	Cols int    `json:"cols"`
}

// MazeResponse describes a stored maze without its path.
type MazeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Raw       string    `json:"raw"`
	Rows      int       `json:"rows"`
	Cols      int       `json:"cols"`
	CreatedAt time.Time `json:"created_at"`
	Solved    bool      `json:"solved"`
}

type CoordDTO struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// SolutionResponse is the outcome of a solve request.
type SolutionResponse struct {
	Found    bool       `json:"found"`
	Path     []CoordDTO `json:"path"`
	Length   int        `json:"length"`
	SolvedAt time.Time  `json:"solved_at"`
}

func newMazeResponse(r *dmn.MazeRecord) *MazeResponse {
	return &MazeResponse{
		ID:        r.ID.String(),
		Name:      r.Name,
		Raw:       r.Raw,
		Rows:      r.Rows,
		Cols:      r.Cols,
		CreatedAt: r.CreatedAt,
		Solved:    r.Solution != nil,
	}
}

func newSolutionResponse(s *dmn.Solution) *SolutionResponse {
	path := make([]CoordDTO, len(s.Path))
	for idx, c := range s.Path {
		path[idx] = newCoordDTO(c)
	}
	return &SolutionResponse{
		Found:    s.Found,
		Path:     path,
		Length:   s.Length(),
		SolvedAt: s.SolvedAt,
	}
}

func newCoordDTO(c maze.Coord) CoordDTO {
	return CoordDTO{Row: c.Row(), Col: c.Col()}
}
