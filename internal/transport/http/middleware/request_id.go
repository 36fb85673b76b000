package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"ipcr/internal/requestctx"
)

func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", reqID)
		ctx := requestctx.WithRequestID(r.Context(), reqID)
		if actor := r.Header.Get("X-Actor"); actor != "" {
			ctx = requestctx.WithActor(ctx, actor)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetRequestID(ctx context.Context) string {
	return requestctx.GetRequestID(ctx)
}

func GetActor(ctx context.Context) string {
	return requestctx.GetActor(ctx)
}
