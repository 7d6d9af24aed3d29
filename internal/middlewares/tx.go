package middlewares

import (
	"bytes"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-spin-settlement/internal/logger"
	"github.com/sbilibin2017/gw-spin-settlement/internal/transaction"
)

// TxMiddleware wraps an HTTP handler with a database transaction. The
// response is buffered so the client only sees success once the commit
// went through. Responses with status >= 400 roll the transaction back.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			buf := &bufferedWriter{header: make(http.Header), statusCode: http.StatusOK}
			next.ServeHTTP(buf, r.WithContext(transaction.WithTx(r.Context(), tx)))

			if buf.statusCode >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to roll back transaction", "error", err)
				}
				buf.flush(w)
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			buf.flush(w)
		})
	}
}

// bufferedWriter holds the response until the transaction is resolved.
type bufferedWriter struct {
	header     http.Header
	statusCode int
	body       bytes.Buffer
}

func (b *bufferedWriter) Header() http.Header { return b.header }

func (b *bufferedWriter) WriteHeader(code int) { b.statusCode = code }

func (b *bufferedWriter) Write(p []byte) (int, error) { return b.body.Write(p) }

func (b *bufferedWriter) flush(w http.ResponseWriter) {
	for k, v := range b.header {
		w.Header()[k] = v
	}
	w.WriteHeader(b.statusCode)
	w.Write(b.body.Bytes())
}
