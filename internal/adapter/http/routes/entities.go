package routes

import (
	request "fieldservice/internal/adapter/http/dto/request"
	"fieldservice/internal/adapter/http/handlers"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomers = "/customers"
	PathEstimates = "/estimates"
	PathJobs      = "/jobs"
	PathInvoices  = "/invoices"
	PathPipeline  = "/pipeline"
	PathSession   = "/session"
	PathSync      = "/sync"
)

// crudHandler is the route surface shared by every EntityHandler
// instantiation.
type crudHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type entityHandlers struct {
	customers crudHandler
	estimates crudHandler
	jobs      crudHandler
	invoices  crudHandler
}

func newEntityHandlers(r *usecase.Registry) entityHandlers {
	return entityHandlers{
		customers: handlers.NewEntityHandler[entities.Customer, request.CustomerRequest](r.Customers, request.CustomerPatchRules),
		estimates: handlers.NewEntityHandler[entities.Estimate, request.EstimateRequest](r.Estimates, request.EstimatePatchRules),
		jobs:      handlers.NewEntityHandler[entities.Job, request.JobRequest](r.Jobs, request.JobPatchRules),
		invoices:  handlers.NewEntityHandler[entities.Invoice, request.InvoiceRequest](r.Invoices, request.InvoicePatchRules),
	}
}

func addEntityRoutes(rg *gin.RouterGroup, h entityHandlers) {
	addCRUDRoutes(rg.Group(PathCustomers), h.customers)
	addCRUDRoutes(rg.Group(PathEstimates), h.estimates)
	addCRUDRoutes(rg.Group(PathJobs), h.jobs)
	addCRUDRoutes(rg.Group(PathInvoices), h.invoices)
}

func addCRUDRoutes(g *gin.RouterGroup, h crudHandler) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.PATCH("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func addPipelineRoutes(rg *gin.RouterGroup, h *handlers.PipelineHandler) {
	rg.GET(PathCustomers+"/:id/stages", h.GetCustomerStages)
	rg.GET(PathPipeline, h.GetBoard)
}

func addSessionRoutes(rg *gin.RouterGroup, h *handlers.SessionHandler) {
	session := rg.Group(PathSession)
	{
		session.POST("/reset", h.Reset)
		session.POST("/refresh", h.Refresh)
	}
	rg.GET(PathSync+"/pending", h.PendingSync)
}
