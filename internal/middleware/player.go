package middleware

import (
	"context"
	"net/http"
	"strconv"

	"frogcasino_backend/pkg/resp"
)

type ctxKey int

const playerIDKey ctxKey = iota

// Заголовок с ID игрока. Проставляется шлюзом аутентификации,
// который находится перед этим сервисом
const playerIDHeader = "X-Player-ID"

// WithPlayerID - кладет ID игрока в контекст запроса
func WithPlayerID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, playerIDKey, id)
}

// PlayerIDFromContext - достает ID игрока из контекста
func PlayerIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(playerIDKey).(int)
	return id, ok
}

// PlayerID - middleware: без валидного X-Player-ID запрос не проходит
func PlayerID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(playerIDHeader)
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			resp.WriteErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "player id is missing or malformed")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithPlayerID(r.Context(), id)))
	})
}
