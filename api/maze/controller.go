package mazeapi

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/beka-birhanu/vinom-pathfinder/api/identity"
	"github.com/beka-birhanu/vinom-pathfinder/service"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var contentTypes = map[string]string{
	service.FormatPNG: "image/png",
	service.FormatGIF: "image/gif",
}

// MazeController serves the maze endpoints. All of them need an authenticated caller.
type MazeController struct {
	solver i.MazeSolver
	logger i.Logger
}

// NewMazeController initializes a MazeController.
func NewMazeController(solver i.MazeSolver, logger i.Logger) *MazeController {
	return &MazeController{
		solver: solver,
		logger: logger,
	}
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.submit)
		mazes.POST("/generate", mc.generate)
		mazes.GET("/:ID", mc.get)
		mazes.POST("/:ID/solve", mc.solve)
		mazes.GET("/:ID/image", mc.image)
	}
}

func (mc *MazeController) submit(ctx *gin.Context) {
	caller, ok := identity.AccountID(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var request SubmitRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := mc.solver.Submit(ctx.Request.Context(), caller, request.Name, request.Raw)
	if err != nil {
		mc.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, &CreatedResponse{ID: record.ID.String(), Rows: record.Rows, Cols: record.Cols})
}

func (mc *MazeController) generate(ctx *gin.Context) {
	caller, ok := identity.AccountID(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var request GenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := mc.solver.Generate(ctx.Request.Context(), caller, request.Name, request.Rows, request.Cols, request.Seed)
	if err != nil {
		mc.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, &CreatedResponse{ID: record.ID.String(), Rows: record.Rows, Cols: record.Cols})
}

func (mc *MazeController) get(ctx *gin.Context) {
	caller, mazeID, ok := mc.target(ctx)
	if !ok {
		return
	}

	record, err := mc.solver.Get(ctx.Request.Context(), caller, mazeID)
	if err != nil {
		mc.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newMazeResponse(record))
}

func (mc *MazeController) solve(ctx *gin.Context) {
	caller, mazeID, ok := mc.target(ctx)
	if !ok {
		return
	}

	sol, err := mc.solver.Solve(ctx.Request.Context(), caller, mazeID)
	if err != nil {
		mc.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newSolutionResponse(sol))
}

func (mc *MazeController) image(ctx *gin.Context) {
	caller, mazeID, ok := mc.target(ctx)
	if !ok {
		return
	}

	format := ctx.Query("format")
	if format == "" {
		format = service.FormatPNG
	}
	var buf bytes.Buffer
	if err := mc.solver.Render(ctx.Request.Context(), caller, mazeID, format, &buf); err != nil {
		mc.writeError(ctx, err)
		return
	}

	ctx.Data(http.StatusOK, contentTypes[format], buf.Bytes())
}

// target reads the caller and the maze ID path parameter. On failure the
// response has already been written.
func (mc *MazeController) target(ctx *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	caller, ok := identity.AccountID(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return uuid.Nil, uuid.Nil, false
	}

	mazeID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return uuid.Nil, uuid.Nil, false
	}
	return caller, mazeID, true
}

func (mc *MazeController) writeError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMazeNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidMaze), errors.Is(err, service.ErrUnsupportedFormat):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		mc.logger.Error(ctx.Request.Method + " " + ctx.Request.URL.Path + ": " + err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
