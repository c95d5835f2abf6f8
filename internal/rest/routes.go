package rest

import "github.com/gin-gonic/gin"

// Register mounts the public routes on route.
func Register(route *gin.Engine, blogs *BlogHandler, display *displayHandler) {
	// match on the raw path so an encoded '/' stays inside the title segment
	route.UseRawPath = true
	route.UnescapePathValues = false

	route.GET("/blogs", blogs.FetchBlogs)
	route.GET("/blogs/:title", blogs.GetByTitle)
	route.GET("/tags/:tag/target", blogs.TagTarget)

	route.GET("/preferences/display-mode", display.GetDisplayMode)
	route.PUT("/preferences/display-mode", display.SetDisplayMode)
}
