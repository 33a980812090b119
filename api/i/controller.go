package i

import "github.com/gin-gonic/gin"

// Controller mounts a group of related endpoints on the router.
type Controller interface {
	RegisterPublic(*gin.RouterGroup)
	RegisterProtected(*gin.RouterGroup)
}
