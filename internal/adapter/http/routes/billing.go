package routes

import (
	"printdesk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes   = "/quotes"
	PathInvoices = "/invoices"
	PathPayments = "/payments"
	PathCoupons  = "/coupons"
)

func addBillingRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, invoiceHandler *handlers.InvoiceHandler, paymentHandler *handlers.InvoicePaymentHandler, couponHandler *handlers.CouponHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.PUT("/:id", quoteHandler.UpdateQuote)
		quotes.DELETE("/:id", quoteHandler.DeleteQuote)
		quotes.POST("/:id/convert", quoteHandler.ConvertQuote)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.POST("", invoiceHandler.CreateInvoice)
		invoices.GET("/:id", invoiceHandler.GetInvoice)
		invoices.PUT("/:id", invoiceHandler.UpdateInvoice)
		invoices.DELETE("/:id", invoiceHandler.DeleteInvoice)
		invoices.POST("/:id/convert-to-order", invoiceHandler.ConvertToOrders)
		invoices.POST("/:id/payments", paymentHandler.PayInvoice)
		invoices.GET("/:id/payments", paymentHandler.ListInvoicePayments)
	}

	payments := rg.Group(PathPayments)
	{
		payments.GET("/:payment_id", paymentHandler.GetPayment)
	}

	coupons := rg.Group(PathCoupons)
	{
		coupons.GET("", couponHandler.ListCoupons)
		coupons.POST("", couponHandler.SaveCoupon)
		coupons.POST("/validate", couponHandler.ValidateCoupon)
		coupons.DELETE("/:id", couponHandler.DeleteCoupon)
	}
}
