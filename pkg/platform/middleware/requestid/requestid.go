package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"policyguard/pkg/requestcontext"
)

// Header carries the request ID in both directions.
const Header = "X-Request-ID"

// Middleware reuses an inbound X-Request-ID or mints a UUID, stores it in the
// context and echoes it on the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		ctx := requestcontext.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
