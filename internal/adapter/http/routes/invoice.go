package routes

import (
	"fleet_bill_verifier/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathInvoices = "/invoices"
)

func addInvoiceRoutes(rg *gin.RouterGroup, invoiceHandler *handlers.InvoiceHandler) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("/demo", invoiceHandler.GetDemoInvoice)
		invoices.POST("/evaluate", invoiceHandler.EvaluateInvoice)
	}
}
