package service

import (
	"context"
	"fmt"
	"time"

	"fitbite/internal/repository"
)

// Issuer identity printed on billing documents.
const (
	companyName    = "FitBite SpA"
	companyRUT     = "76.543.210-3"
	companyAddress = "Av. Principal 1234"
)

// CompanyInfo identifies the issuing company on billing documents.
type CompanyInfo struct {
	Name    string `json:"name"`
	RUT     string `json:"rut"`
	Address string `json:"address"`
}

// InvoiceCustomer is the customer block of an invoice.
type InvoiceCustomer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	RUT     string `json:"rut"`
	Address string `json:"address"`
}

// InvoiceLine is a priced order line on an invoice.
type InvoiceLine struct {
	Name      string `json:"name"`
	UnitPrice int    `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

// InvoiceData is the order snapshot handed to the document generator.
type InvoiceData struct {
	Customer  InvoiceCustomer `json:"customer"`
	OrderID   uint            `json:"order_id"`
	Total     int             `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
	Lines     []InvoiceLine   `json:"lines"`
	Company   CompanyInfo     `json:"company"`
}

// ReceiptRequest asks for a consumer receipt for an order.
type ReceiptRequest struct {
	OrderID uint
	RUT     string
	Email   string
}

// InvoiceRequest asks for a business invoice for an order.
type InvoiceRequest struct {
	OrderID          uint
	RUT              string
	BusinessName     string
	BusinessActivity string
}

// IssueResult is the document generator's answer: a folio and where the
// rendered document can be fetched.
type IssueResult struct {
	Success bool   `json:"success"`
	Folio   string `json:"folio"`
	PDFURL  string `json:"pdf_url"`
}

// BillingService builds invoice data and issues billing documents. Document
// rendering and tax-authority submission are an external collaborator; the
// issue operations validate input and stub the remote call.
type BillingService interface {
	InvoiceData(ctx context.Context, userID, orderID uint) (*InvoiceData, error)
	IssueReceipt(ctx context.Context, userID uint, in ReceiptRequest) (*IssueResult, error)
	IssueInvoice(ctx context.Context, userID uint, in InvoiceRequest) (*IssueResult, error)
}

type billingService struct {
	userRepo     repository.UserRepository
	orderService OrderService
	rutValidator *RUTValidator
}

// NewBillingService creates a new billing service.
func NewBillingService(userRepo repository.UserRepository, orderService OrderService) BillingService {
	return &billingService{
		userRepo:     userRepo,
		orderService: orderService,
		rutValidator: NewRUTValidator(),
	}
}

// InvoiceData assembles the snapshot for a user's own order.
func (s *billingService) InvoiceData(ctx context.Context, userID, orderID uint) (*InvoiceData, error) {
	order, err := s.orderService.Get(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	lines := make([]InvoiceLine, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, InvoiceLine{
			Name:      item.ProductName,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	return &InvoiceData{
		Customer: InvoiceCustomer{
			Name:    user.Name,
			Email:   user.Email,
			RUT:     user.RUT,
			Address: user.Address,
		},
		OrderID:   order.ID,
		Total:     order.Total,
		CreatedAt: order.CreatedAt,
		Lines:     lines,
		Company: CompanyInfo{
			Name:    companyName,
			RUT:     companyRUT,
			Address: companyAddress,
		},
	}, nil
}

// IssueReceipt validates the RUT and order ownership, then stubs the
// document generator.
func (s *billingService) IssueReceipt(ctx context.Context, userID uint, in ReceiptRequest) (*IssueResult, error) {
	if err := s.rutValidator.ValidateRUT(in.RUT); err != nil {
		return nil, err
	}
	if _, err := s.orderService.Get(ctx, userID, in.OrderID); err != nil {
		return nil, err
	}

	folio := fmt.Sprintf("B%08d", in.OrderID)
	return &IssueResult{
		Success: true,
		Folio:   folio,
		PDFURL:  fmt.Sprintf("/receipts/%s.pdf", folio),
	}, nil
}

// IssueInvoice validates the RUT and order ownership, then stubs the
// document generator.
func (s *billingService) IssueInvoice(ctx context.Context, userID uint, in InvoiceRequest) (*IssueResult, error) {
	if err := s.rutValidator.ValidateRUT(in.RUT); err != nil {
		return nil, err
	}
	if _, err := s.orderService.Get(ctx, userID, in.OrderID); err != nil {
		return nil, err
	}

	folio := fmt.Sprintf("F%08d", in.OrderID)
	return &IssueResult{
		Success: true,
		Folio:   folio,
		PDFURL:  fmt.Sprintf("/invoices/%s.pdf", folio),
	}, nil
}
