package middleware

import "github.com/gin-gonic/gin"

// CacheHeader is set on cacheable responses so clients can tell whether the
// payload came from the cache.
const CacheHeader = "X-Cache"

// MarkCache stamps the response with HIT or MISS.
func MarkCache(c *gin.Context, hit bool) {
	if hit {
		c.Header(CacheHeader, "HIT")
		return
	}
	c.Header(CacheHeader, "MISS")
}
