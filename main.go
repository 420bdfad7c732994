package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"Soilworks/internal/auth"
	"Soilworks/internal/calc/consolidation"
	"Soilworks/internal/calc/effdepth"
	"Soilworks/internal/calc/elastic"
	"Soilworks/internal/calc/liquefaction"
	"Soilworks/internal/calc/pointloadbc"
	"Soilworks/internal/calc/sliding"
	"Soilworks/internal/calc/soilclass"
	"Soilworks/internal/calc/subgrade"
	"Soilworks/internal/calc/swelling"
	"Soilworks/internal/calc/tezcan"
	"Soilworks/internal/calc/vesic"
	"Soilworks/internal/importer"
	"Soilworks/internal/project"
	"Soilworks/internal/repo"
	"Soilworks/internal/report"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	userRepo := repo.NewPostgresDB(db)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, reading environment directly")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: userRepo}
	projectH := &project.Handler{Repo: userRepo}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/projects", projectH.Save).Methods("POST")
	secureApi.HandleFunc("/projects", projectH.List).Methods("GET")
	secureApi.HandleFunc("/projects/{id:[0-9]+}", projectH.Get).Methods("GET")
	secureApi.HandleFunc("/projects/{id:[0-9]+}", projectH.Delete).Methods("DELETE")

	vesicH := &vesic.Handler{}
	tezcanH := &tezcan.Handler{}
	pointLoadH := &pointloadbc.Handler{}
	elasticH := &elastic.Handler{}
	consolidationH := &consolidation.Handler{}
	liquefactionH := &liquefaction.Handler{}
	soilClassH := &soilclass.Handler{}
	effDepthH := &effdepth.Handler{}
	slidingH := &sliding.Handler{}
	swellingH := &swelling.Handler{}
	subgradeH := &subgrade.Handler{}
	reportH := &report.Handler{}
	importH := &importer.Handler{}

	secureApi.HandleFunc("/tools/bearing-capacity/vesic/calc", vesicH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/bearing-capacity/tezcan/calc", tezcanH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/bearing-capacity/point-load/calc", pointLoadH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/settlement/elastic/calc", elasticH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/settlement/consolidation/calc", consolidationH.CalcByCompressionIndex).Methods("POST")
	secureApi.HandleFunc("/tools/settlement/consolidation-mv/calc", consolidationH.CalcByMv).Methods("POST")
	secureApi.HandleFunc("/tools/liquefaction/spt/calc", liquefactionH.CalcSPT).Methods("POST")
	secureApi.HandleFunc("/tools/liquefaction/vs/calc", liquefactionH.CalcVS).Methods("POST")
	secureApi.HandleFunc("/tools/soil-class/cu/calc", soilClassH.CalcByCu).Methods("POST")
	secureApi.HandleFunc("/tools/soil-class/spt/calc", soilClassH.CalcBySPT).Methods("POST")
	secureApi.HandleFunc("/tools/soil-class/vs/calc", soilClassH.CalcByVs).Methods("POST")
	secureApi.HandleFunc("/tools/effective-depth/calc", effDepthH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/sliding/calc", slidingH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/swelling/calc", swellingH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/subgrade/settlement/calc", subgradeH.CalcBySettlement).Methods("POST")
	secureApi.HandleFunc("/tools/subgrade/bearing-capacity/calc", subgradeH.CalcByBearingCapacity).Methods("POST")

	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")
	secureApi.HandleFunc("/tools/import/spt", importH.Import).Methods("POST")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()
	HandleList(mux, db)
	handler := CORS(mux)

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Println("Starting server on", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
