package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"amc-backend/internal/handlers"
	"amc-backend/internal/middleware"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	customerHandler *handlers.CustomerHandler,
	locationHandler *handlers.LocationHandler,
	catalogHandler *handlers.CatalogHandler,
	invoiceHandler *handlers.InvoiceHandler,
	proposalHandler *handlers.ProposalHandler,
	documentHandler *handlers.DocumentHandler,
	mailSetupHandler *handlers.MailSetupHandler,
	dashboardHandler *handlers.DashboardHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
	documentsDir string,
) *mux.Router {
	r := mux.NewRouter()

	// Public API routes - Authentication
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")

	// Generated PDFs when running on local storage
	if documentsDir != "" {
		r.PathPrefix("/documents/").Handler(
			http.StripPrefix("/documents/", http.FileServer(http.Dir(documentsDir))))
	}

	// Protected API routes - Current user
	meAPI := r.PathPrefix("/api/me").Subrouter()
	meAPI.Use(authMiddleware.Authenticate)
	meAPI.HandleFunc("", authHandler.Me).Methods("GET")

	// Protected API routes - Dashboard
	dashboardAPI := r.PathPrefix("/api/dashboard").Subrouter()
	dashboardAPI.Use(authMiddleware.Authenticate)
	dashboardAPI.HandleFunc("", dashboardHandler.Summary).Methods("GET")

	// Protected API routes - Customers
	customersAPI := r.PathPrefix("/api/customers").Subrouter()
	customersAPI.Use(authMiddleware.Authenticate)
	customersAPI.HandleFunc("", customerHandler.ListCustomers).Methods("GET")
	customersAPI.HandleFunc("", customerHandler.CreateCustomer).Methods("POST")
	customersAPI.HandleFunc("/options", customerHandler.Options).Methods("GET")
	customersAPI.HandleFunc("/{id}", customerHandler.GetCustomer).Methods("GET")
	customersAPI.HandleFunc("/{id}", customerHandler.UpdateCustomer).Methods("PUT")
	customersAPI.HandleFunc("/{id}", customerHandler.DeleteCustomer).Methods("DELETE")

	// Protected API routes - Customer Locations
	locationsAPI := r.PathPrefix("/api/locations").Subrouter()
	locationsAPI.Use(authMiddleware.Authenticate)
	locationsAPI.HandleFunc("", locationHandler.ListLocations).Methods("GET")
	locationsAPI.HandleFunc("", locationHandler.CreateLocation).Methods("POST")
	locationsAPI.HandleFunc("/{id}", locationHandler.GetLocation).Methods("GET")
	locationsAPI.HandleFunc("/{id}", locationHandler.UpdateLocation).Methods("PUT")
	locationsAPI.HandleFunc("/{id}", locationHandler.DeleteLocation).Methods("DELETE")

	// Protected API routes - Brands
	brandsAPI := r.PathPrefix("/api/brands").Subrouter()
	brandsAPI.Use(authMiddleware.Authenticate)
	brandsAPI.HandleFunc("", catalogHandler.ListBrands).Methods("GET")
	brandsAPI.HandleFunc("", catalogHandler.CreateBrand).Methods("POST")
	brandsAPI.HandleFunc("/options", catalogHandler.BrandOptions).Methods("GET")
	brandsAPI.HandleFunc("/{id}", catalogHandler.GetBrand).Methods("GET")
	brandsAPI.HandleFunc("/{id}", catalogHandler.UpdateBrand).Methods("PUT")
	brandsAPI.HandleFunc("/{id}", catalogHandler.DeleteBrand).Methods("DELETE")

	// Protected API routes - Categories
	categoriesAPI := r.PathPrefix("/api/categories").Subrouter()
	categoriesAPI.Use(authMiddleware.Authenticate)
	categoriesAPI.HandleFunc("", catalogHandler.ListCategories).Methods("GET")
	categoriesAPI.HandleFunc("", catalogHandler.CreateCategory).Methods("POST")
	categoriesAPI.HandleFunc("/options", catalogHandler.CategoryOptions).Methods("GET")
	categoriesAPI.HandleFunc("/{id}", catalogHandler.GetCategory).Methods("GET")
	categoriesAPI.HandleFunc("/{id}", catalogHandler.UpdateCategory).Methods("PUT")
	categoriesAPI.HandleFunc("/{id}", catalogHandler.DeleteCategory).Methods("DELETE")

	// Protected API routes - Products
	productsAPI := r.PathPrefix("/api/products").Subrouter()
	productsAPI.Use(authMiddleware.Authenticate)
	productsAPI.HandleFunc("", catalogHandler.ListProducts).Methods("GET")
	productsAPI.HandleFunc("", catalogHandler.CreateProduct).Methods("POST")
	productsAPI.HandleFunc("/options", catalogHandler.ProductOptions).Methods("GET")
	productsAPI.HandleFunc("/{id}", catalogHandler.GetProduct).Methods("GET")
	productsAPI.HandleFunc("/{id}", catalogHandler.UpdateProduct).Methods("PUT")
	productsAPI.HandleFunc("/{id}", catalogHandler.DeleteProduct).Methods("DELETE")

	// Protected API routes - Invoices
	invoicesAPI := r.PathPrefix("/api/invoices").Subrouter()
	invoicesAPI.Use(authMiddleware.Authenticate)
	invoicesAPI.HandleFunc("", invoiceHandler.ListInvoices).Methods("GET")
	invoicesAPI.HandleFunc("", invoiceHandler.CreateInvoice).Methods("POST")
	invoicesAPI.HandleFunc("/{id}", invoiceHandler.GetInvoice).Methods("GET")
	invoicesAPI.HandleFunc("/{id}", invoiceHandler.UpdateInvoice).Methods("PUT")
	invoicesAPI.HandleFunc("/{id}", invoiceHandler.DeleteInvoice).Methods("DELETE")

	// Protected API routes - Invoice Items
	invoiceItemsAPI := r.PathPrefix("/api/invoice-items").Subrouter()
	invoiceItemsAPI.Use(authMiddleware.Authenticate)
	invoiceItemsAPI.HandleFunc("", invoiceHandler.ListItems).Methods("GET")
	invoiceItemsAPI.HandleFunc("", invoiceHandler.CreateItem).Methods("POST")
	invoiceItemsAPI.HandleFunc("/{id}", invoiceHandler.UpdateItem).Methods("PUT")
	invoiceItemsAPI.HandleFunc("/{id}", invoiceHandler.DeleteItem).Methods("DELETE")

	// Protected API routes - AMC Proposals
	proposalsAPI := r.PathPrefix("/api/proposals").Subrouter()
	proposalsAPI.Use(authMiddleware.Authenticate)
	proposalsAPI.HandleFunc("", proposalHandler.ListProposals).Methods("GET")
	proposalsAPI.HandleFunc("", proposalHandler.CreateProposal).Methods("POST")
	proposalsAPI.HandleFunc("/{id}", proposalHandler.GetProposal).Methods("GET")
	proposalsAPI.HandleFunc("/{id}", proposalHandler.UpdateProposal).Methods("PUT")
	proposalsAPI.HandleFunc("/{id}", proposalHandler.DeleteProposal).Methods("DELETE")
	proposalsAPI.HandleFunc("/{id}/item-form", proposalHandler.ItemForm).Methods("GET")
	proposalsAPI.HandleFunc("/{id}/generate-document", proposalHandler.GenerateDocument).Methods("POST")
	proposalsAPI.HandleFunc("/{id}/send-email", proposalHandler.SendEmail).Methods("POST")

	// Protected API routes - Proposal Items
	proposalItemsAPI := r.PathPrefix("/api/proposal-items").Subrouter()
	proposalItemsAPI.Use(authMiddleware.Authenticate)
	proposalItemsAPI.HandleFunc("", proposalHandler.ListItems).Methods("GET")
	proposalItemsAPI.HandleFunc("", proposalHandler.CreateItem).Methods("POST")
	proposalItemsAPI.HandleFunc("/{id}", proposalHandler.UpdateItem).Methods("PUT")
	proposalItemsAPI.HandleFunc("/{id}", proposalHandler.DeleteItem).Methods("DELETE")

	// Protected API routes - Proposal Documents and Email Records
	documentsAPI := r.PathPrefix("/api/proposal-documents").Subrouter()
	documentsAPI.Use(authMiddleware.Authenticate)
	documentsAPI.HandleFunc("", documentHandler.ListDocuments).Methods("GET")

	emailRecordsAPI := r.PathPrefix("/api/email-records").Subrouter()
	emailRecordsAPI.Use(authMiddleware.Authenticate)
	emailRecordsAPI.HandleFunc("", documentHandler.ListEmailRecords).Methods("GET")

	// Protected API routes - Mail Setup
	mailSetupAPI := r.PathPrefix("/api/mail-setup").Subrouter()
	mailSetupAPI.Use(authMiddleware.Authenticate)
	mailSetupAPI.HandleFunc("", mailSetupHandler.Get).Methods("GET")
	mailSetupAPI.HandleFunc("", mailSetupHandler.Save).Methods("PUT")

	// Health endpoints (no auth required - for Kubernetes probes)
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")
	r.HandleFunc("/health/detailed", healthHandler.DetailedHealth).Methods("GET")

	// Metrics endpoint (Prometheus format)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
