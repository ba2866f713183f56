package httpkit

import "hourglass/internal/platform/net/middleware"

// Protected groups routes behind bearer auth
func Protected(r Router, p middleware.AuthPort, fn func(Router)) {
	r.Group(func(gr Router) {
		gr.Use(Auth(p))
		fn(gr)
	})
}
