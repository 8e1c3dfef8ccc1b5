// Package auth identifies API callers and protects the import endpoints.
//
// User identity is resolved by an upstream gateway and forwarded in the
// X-User-ID header. Requests to protected routes without that header are
// rejected with 401.
//
// # Usage
//
//	router.Use(auth.SecurityHeadersMiddleware())
//	api := router.Group("/api", auth.RequireUser())
//	api.POST("/import/notion", limiter.Middleware(), handler)
//
// Extract the user in handlers:
//
//	userID := auth.GetUserID(c)
package auth
