package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"veriflow/internal/files"
	"veriflow/internal/qr"
	"veriflow/internal/registry"
	"veriflow/internal/utils"
)

// Server wires the HTTP surface over the issuing and verifying core.
type Server struct {
	Issuer   *qr.Issuer
	Verifier *qr.Verifier
	Registry registry.Directory
	Store    *files.RecordStore
	BaseURL  string
	Log      *utils.Logger // nil disables request logging
}

// NewRouter builds the route table.
func (s *Server) NewRouter() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.requestLog)
	r.HandleFunc("/health", HealthHandler).Methods("GET")
	r.HandleFunc("/time", GetTimeHandler).Methods("GET")
	r.HandleFunc("/api/companies", s.ListCompaniesHandler).Methods("GET")
	r.HandleFunc("/api/companies/{id}", s.GetCompanyHandler).Methods("GET")
	r.HandleFunc("/api/qr", s.CreateQRHandler).Methods("POST")
	r.HandleFunc("/api/qr/{id}/image.png", s.QRImageHandler).Methods("GET")
	r.HandleFunc("/api/records/{companyId}", s.ListRecordsHandler).Methods("GET")
	r.HandleFunc("/api/verify", s.VerifyHandler).Methods("GET")
	return r
}

// requestLog tags each request with a short id so related lines can be
// grepped together.
func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.Log != nil {
			rid := uuid.NewString()[:8]
			start := time.Now()
			s.Log.Infof("[%s] %s %s", rid, r.Method, r.URL.Path)
			defer func() {
				s.Log.Infof("[%s] done in %s", rid, time.Since(start))
			}()
		}
		next.ServeHTTP(w, r)
	})
}
