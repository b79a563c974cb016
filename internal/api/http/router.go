package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"finanzas-backend/internal/security"
	"finanzas-backend/internal/service"
	"finanzas-backend/internal/storage"
)

// Services bundles everything the HTTP surface depends on.
type Services struct {
	Auth     service.AuthService
	User     service.UserService
	Bill     service.BillService
	Payment  service.PaymentService
	Budget   service.BudgetService
	Category service.CategoryService
	Photos   storage.Service
}

// NewRouter builds the full route table. Everything under /api/v1 except the
// auth endpoints requires a valid access token.
func NewRouter(services Services, tokens security.TokenManager) *mux.Router {
	router := mux.NewRouter()
	router.Use(LoggingMiddleware)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()

	authHandler := NewAuthHandler(services.Auth)
	api.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods("POST")

	protected := api.NewRoute().Subrouter()
	protected.Use(AuthMiddleware(tokens))

	userHandler := NewUserHandler(services.User)
	protected.HandleFunc("/me", userHandler.Me).Methods("GET")
	protected.HandleFunc("/me", userHandler.UpdateMe).Methods("PUT")

	if services.Photos != nil {
		photoHandler := NewPhotoHandler(services.Photos, services.User)
		protected.HandleFunc("/me/photo", photoHandler.Upload).Methods("PUT")
		protected.HandleFunc("/me/photo", photoHandler.Download).Methods("GET")
		protected.HandleFunc("/me/photo", photoHandler.Delete).Methods("DELETE")
	}

	billHandler := NewBillHandler(services.Bill)
	protected.HandleFunc("/bills", billHandler.Create).Methods("POST")
	protected.HandleFunc("/bills", billHandler.List).Methods("GET")
	protected.HandleFunc("/bills/overview", billHandler.Overview).Methods("GET")
	protected.HandleFunc("/bills/{id}", billHandler.Get).Methods("GET")
	protected.HandleFunc("/bills/{id}", billHandler.Update).Methods("PUT")
	protected.HandleFunc("/bills/{id}", billHandler.Delete).Methods("DELETE")
	protected.HandleFunc("/bills/{id}/analysis", billHandler.Analysis).Methods("GET")

	paymentHandler := NewPaymentHandler(services.Payment)
	protected.HandleFunc("/bills/{id}/payments", paymentHandler.Record).Methods("POST")
	protected.HandleFunc("/bills/{id}/payments", paymentHandler.List).Methods("GET")
	protected.HandleFunc("/bills/{id}/payments/{paymentID}", paymentHandler.Delete).Methods("DELETE")

	budgetHandler := NewBudgetHandler(services.Budget)
	protected.HandleFunc("/expenses", budgetHandler.AddExpense).Methods("POST")
	protected.HandleFunc("/expenses", budgetHandler.ListExpenses).Methods("GET")
	protected.HandleFunc("/expenses/{id}", budgetHandler.UpdateExpense).Methods("PUT")
	protected.HandleFunc("/expenses/{id}", budgetHandler.DeleteExpense).Methods("DELETE")
	protected.HandleFunc("/lifestyle", budgetHandler.GetLifestyle).Methods("GET")
	protected.HandleFunc("/lifestyle", budgetHandler.SaveLifestyle).Methods("PUT")
	protected.HandleFunc("/budget/summary", budgetHandler.MonthlySummary).Methods("GET")

	categoryHandler := NewCategoryHandler(services.Category)
	protected.HandleFunc("/categories", categoryHandler.List).Methods("GET")
	protected.HandleFunc("/categories/favorites", categoryHandler.ListFavorites).Methods("GET")
	protected.HandleFunc("/categories/favorites", categoryHandler.AddFavorite).Methods("POST")
	protected.HandleFunc("/categories/favorites/{subcategoryID}", categoryHandler.RemoveFavorite).Methods("DELETE")

	return router
}
